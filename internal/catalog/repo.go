package catalog

import "context"

// Repository is the read-only course source. All returns the full
// collection in a stable order that every derived view preserves.
type Repository interface {
	All(ctx context.Context) ([]Course, error)
	Get(ctx context.Context, id string) (Course, bool, error)
	Ping(ctx context.Context) error
}
