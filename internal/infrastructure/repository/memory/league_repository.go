package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/league"
)

type LeagueRepository struct {
	mu          sync.RWMutex
	items       map[int64]league.League
	byInterface map[int64]int64
	orders      []int64
	nextID      int64
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	r := &LeagueRepository{
		items:       make(map[int64]league.League, len(leagues)),
		byInterface: make(map[int64]int64, len(leagues)),
	}
	for _, l := range leagues {
		_, _ = r.Upsert(context.Background(), l)
	}
	return r
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, id int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[id]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) Upsert(_ context.Context, item league.League) (league.League, error) {
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
	r.orders = append(r.orders, item.ID)
	rememberInterface(r.byInterface, item.InterfaceID, item.ID)
	return item, nil
}

// lookupInterface resolves a provider id. Zero ids are never matched.
func lookupInterface(index map[int64]int64, interfaceID int64) (int64, bool) {
	if interfaceID <= 0 {
		return 0, false
	}
	id, ok := index[interfaceID]
	return id, ok
}

func rememberInterface(index map[int64]int64, interfaceID, id int64) {
	if interfaceID > 0 {
		index[interfaceID] = id
	}
}
