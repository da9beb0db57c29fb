package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// ListByInterfaceIDs returns the stored teams keyed by provider id.
	ListByInterfaceIDs(ctx context.Context, interfaceIDs []int64) (map[int64]Team, error)
	Upsert(ctx context.Context, item Team) (Team, error)
}
