package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/group"
)

type GroupRepository struct {
	mu          sync.RWMutex
	items       map[int64]group.Group
	byInterface map[int64]int64
	nextID      int64
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		items:       make(map[int64]group.Group),
		byInterface: make(map[int64]int64),
	}
}

func (r *GroupRepository) ListByLeague(_ context.Context, leagueID int64) (map[int64]group.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]group.Group)
	for _, g := range r.items {
		if g.LeagueID == leagueID && g.InterfaceID > 0 {
			out[g.InterfaceID] = g
		}
	}
	return out, nil
}

func (r *GroupRepository) Upsert(_ context.Context, item group.Group) (group.Group, error) {
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
