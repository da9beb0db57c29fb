package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/player"
)

type PlayerRepository struct {
	mu          sync.RWMutex
	items       map[int64]player.Player
	byInterface map[int64]int64
	nextID      int64
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		items:       make(map[int64]player.Player),
		byInterface: make(map[int64]int64),
	}
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.items {
		if p.TeamID != nil && *p.TeamID == teamID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) (player.Player, error) {
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
