package ports

import "context"

// StateStore persists small client-side values across restarts.
// Get returns domain.ErrNotFound for a missing key; Delete of a missing key
// is not an error.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
