package goal

import "context"

// Repository describes goal persistence needs from use cases.
type Repository interface {
	// Exists reports whether a goal was already stored for the team at minute.
	Exists(ctx context.Context, matchID, teamID int64, minute int) (bool, error)
	Create(ctx context.Context, item Goal) (Goal, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Goal, error)
}
