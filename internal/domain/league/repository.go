package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, id int64) (League, bool, error)
	// Upsert inserts or updates by InterfaceID and returns the stored row.
	Upsert(ctx context.Context, item League) (League, error)
}
