package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
	Upsert(ctx context.Context, item Player) (Player, error)
}
