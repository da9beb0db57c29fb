package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/goal"
)

type GoalRepository struct {
	mu     sync.RWMutex
	items  []goal.Goal
	nextID int64
}

func NewGoalRepository() *GoalRepository {
	return &GoalRepository{}
}

func (r *GoalRepository) Exists(_ context.Context, matchID, teamID int64, minute int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.items {
		if g.MatchID == matchID && g.TeamID == teamID && g.Minute == minute {
			return true, nil
		}
	}
	return false, nil
}

func (r *GoalRepository) Create(_ context.Context, item goal.Goal) (goal.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items = append(r.items, item)
	return item, nil
}

func (r *GoalRepository) ListByMatch(_ context.Context, matchID int64) ([]goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goal.Goal, 0)
	for _, g := range r.items {
		if g.MatchID == matchID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minute != out[j].Minute {
			return out[i].Minute < out[j].Minute
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
