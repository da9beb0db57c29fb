package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/match"
)

type MatchRepository struct {
	mu          sync.RWMutex
	items       map[int64]match.Match
	byInterface map[int64]int64
	nextID      int64
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		items:       make(map[int64]match.Match),
		byInterface: make(map[int64]int64),
	}
}

func (r *MatchRepository) GetByInterfaceID(_ context.Context, interfaceID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := lookupInterface(r.byInterface, interfaceID)
	if !ok {
		return match.Match{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *MatchRepository) Upsert(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := lookupInterface(r.byInterface, item.InterfaceID); ok {
		item.ID = id
		r.items[id] = item
		return item, nil
	}

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	rememberInterface(r.byInterface, item.InterfaceID, item.ID)
	return item, nil
}
