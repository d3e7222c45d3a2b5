package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paologalligit/showtime/constant"
	"github.com/paologalligit/showtime/entities"
	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedisClient builds a client and pings it with a short timeout.
func NewRedisClient(ctx context.Context, opts *RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opts.Addr, err)
	}
	return client, nil
}

// RedisStore keeps each theatre artifact under <prefix>:<key>.
type RedisStore struct {
	client       *redis.Client
	prefix       string
	timeProvider TimeProvider
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = constant.REDIS_KEY_PREFIX
	}
	return &RedisStore{client: client, prefix: prefix, timeProvider: realTimeProvider{}}
}

func (r *RedisStore) Key(key string) string {
	return r.prefix + ":" + ArtifactKey(key)
}

func (r *RedisStore) SaveTheatre(ctx context.Context, theatre *entities.Theatre) error {
	if _, err := saveKey(theatre.Movie); err != nil {
		return err
	}
	data, err := Encode(theatre, r.timeProvider.Now())
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.Key(theatre.Movie), data, 0).Err(); err != nil {
		return fmt.Errorf("error writing %s: %w", r.Key(theatre.Movie), err)
	}
	return nil
}

func (r *RedisStore) LoadTheatre(ctx context.Context, key string) (*entities.Theatre, error) {
	if _, err := loadKey(key); err != nil {
		return nil, err
	}
	redisKey := r.Key(key)
	data, err := r.client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", redisKey, ErrArtifactNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", redisKey, err)
	}
	theatre, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", redisKey, err)
	}
	return theatre, nil
}
