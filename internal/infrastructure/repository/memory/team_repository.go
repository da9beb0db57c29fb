package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/team"
)

type TeamRepository struct {
	mu          sync.RWMutex
	items       map[int64]team.Team
	byInterface map[int64]int64
	nextID      int64
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{
		items:       make(map[int64]team.Team),
		byInterface: make(map[int64]int64),
	}
}

func (r *TeamRepository) ListByInterfaceIDs(_ context.Context, interfaceIDs []int64) (map[int64]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]team.Team, len(interfaceIDs))
	for _, interfaceID := range interfaceIDs {
		if id, ok := lookupInterface(r.byInterface, interfaceID); ok {
			out[interfaceID] = r.items[id]
		}
	}
	return out, nil
}

func (r *TeamRepository) Upsert(_ context.Context, item team.Team) (team.Team, error) {
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
