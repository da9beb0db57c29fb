package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestStore(defaultTTL time.Duration, maxEntries int) (*Store, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := NewStore(defaultTTL, maxEntries)
	store.now = clock.Now
	return store, clock
}

func TestStore_SetGetHonoursEntryTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, clock := newTestStore(time.Minute, 0)

	if err := store.Set(ctx, "live", []byte("score"), 25*time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "teams", []byte("list"), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}

	clock.Advance(24 * time.Second)
	if got, ok, _ := store.Get(ctx, "live"); !ok || string(got) != "score" {
		t.Fatalf("expected live entry before expiry, got ok=%v value=%q", ok, got)
	}

	clock.Advance(2 * time.Second)
	if _, ok, _ := store.Get(ctx, "live"); ok {
		t.Fatalf("expected live entry to expire after 25s")
	}
	if _, ok, _ := store.Get(ctx, "teams"); !ok {
		t.Fatalf("expected long lived entry to survive")
	}
	if store.Len() != 1 {
		t.Fatalf("expected expired entry to be evicted on read, len=%d", store.Len())
	}
}

func TestStore_DefaultTTLAppliesWhenTTLMissing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, clock := newTestStore(10*time.Second, 0)

	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	clock.Advance(11 * time.Second)
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatalf("expected default ttl to expire entry")
	}
}

func TestStore_RejectsWritesWhenFull(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, clock := newTestStore(0, 2)

	if err := store.Set(ctx, "a", []byte("1"), time.Second); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if err := store.Set(ctx, "b", []byte("2"), time.Hour); err != nil {
		t.Fatalf("set b: %v", err)
	}
	if err := store.Set(ctx, "c", []byte("3"), time.Hour); !errors.Is(err, ErrStoreFull) {
		t.Fatalf("expected ErrStoreFull, got %v", err)
	}
	if err := store.Set(ctx, "b", []byte("2b"), time.Hour); err != nil {
		t.Fatalf("overwrite of existing key should succeed when full: %v", err)
	}

	clock.Advance(2 * time.Second)
	if err := store.Set(ctx, "c", []byte("3"), time.Hour); err != nil {
		t.Fatalf("expected expired entry to make room: %v", err)
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(time.Minute, 0)

	value := []byte("abc")
	if err := store.Set(ctx, "k", value, 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'z'

	got, _, _ := store.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value changed through caller slice: %q", got)
	}
	got[1] = 'z'
	again, _, _ := store.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored value changed through returned slice: %q", again)
	}
}

func TestStore_EmptyKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(time.Minute, 0)

	if err := store.Set(ctx, "", []byte("v"), 0); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
	if _, ok, err := store.Get(ctx, ""); ok || err != nil {
		t.Fatalf("expected empty key to miss, got ok=%v err=%v", ok, err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected nothing stored, len=%d", store.Len())
	}
}
