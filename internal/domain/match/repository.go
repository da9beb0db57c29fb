package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	GetByInterfaceID(ctx context.Context, interfaceID int64) (Match, bool, error)
	Upsert(ctx context.Context, item Match) (Match, error)
}
