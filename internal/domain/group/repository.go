package group

import "context"

// Repository describes group persistence needs from use cases.
type Repository interface {
	// ListByLeague returns the league's groups keyed by provider id.
	ListByLeague(ctx context.Context, leagueID int64) (map[int64]Group, error)
	Upsert(ctx context.Context, item Group) (Group, error)
}
