package persistence

import (
	"context"
	"fmt"
)

type StoreOptions struct {
	Backend     string
	DataDir     string
	DatabaseURL string
	Redis       RedisOptions
}

// Open builds the configured store. The returned func releases any
// connections the store holds.
func Open(ctx context.Context, options *StoreOptions) (Store, func(), error) {
	switch options.Backend {
	case "", "file":
		return NewFileStore(options.DataDir), func() {}, nil
	case "postgres":
		pool, err := NewPostgresPool(ctx, options.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := InitPostgresSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return NewPostgresStore(pool), pool.Close, nil
	case "redis":
		client, err := NewRedisClient(ctx, &options.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(client, options.Redis.Prefix), func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStore, options.Backend)
	}
}
