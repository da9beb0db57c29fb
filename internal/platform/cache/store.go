package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrEmptyKey  = errors.New("cache key is required")
	ErrStoreFull = errors.New("cache store is full")
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !e.expiresAt.After(now)
}

// Store is an in-process byte cache with a TTL per entry.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	defaultTTL time.Duration
	maxEntries int
	now        func() time.Time
}

// NewStore builds a store. defaultTTL applies when Set gets no ttl; zero
// keeps such entries until evicted. maxEntries <= 0 means unbounded.
func NewStore(defaultTTL time.Duration, maxEntries int) *Store {
	return &Store{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, nil
	}

	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if e.expired(now) {
		s.mu.Lock()
		if current, exists := s.entries[key]; exists && current.expired(now) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false, nil
	}

	return append([]byte(nil), e.value...), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := s.now()
	expiresAt := time.Time{}
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists && s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.evictExpiredLocked(now)
		if len(s.entries) >= s.maxEntries {
			return ErrStoreFull
		}
	}

	s.entries[key] = entry{
		value:     append([]byte(nil), value...),
		expiresAt: expiresAt,
	}
	return nil
}

// Len counts stored entries, expired ones included until they are evicted.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) evictExpiredLocked(now time.Time) {
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
		}
	}
}
