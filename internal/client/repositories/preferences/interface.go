package preferences

import (
	"context"
)

type Repository interface {
	// Get returns (nil, nil) when key is not stored.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
}
