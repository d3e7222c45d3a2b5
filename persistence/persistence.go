package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/paologalligit/showtime/entities"
	"go.uber.org/zap"
)

var (
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrCorruptArtifact  = errors.New("corrupt artifact")
	ErrUnknownStore     = errors.New("unknown store backend")
	ErrEmptyArtifactKey = errors.New("movie title has no characters usable in an artifact key")
)

// Store persists whole theatres, one artifact per theatre.
// Implementations: FileStore, PostgresStore, RedisStore
type Store interface {
	SaveTheatre(ctx context.Context, theatre *entities.Theatre) error
	LoadTheatre(ctx context.Context, key string) (*entities.Theatre, error)
}

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// ArtifactKey derives the artifact identifier from a movie title. Passing a
// key back in returns the same key.
func ArtifactKey(movie string) string {
	return slug.Make(movie)
}

func saveKey(movie string) (string, error) {
	key := ArtifactKey(movie)
	if key == "" {
		return "", fmt.Errorf("theatre %q: %w", movie, ErrEmptyArtifactKey)
	}
	return key, nil
}

// loadKey treats a key that slugs to nothing as a missing artifact.
func loadKey(key string) (string, error) {
	slugged := ArtifactKey(key)
	if slugged == "" {
		return "", fmt.Errorf("%q: %w", key, ErrArtifactNotFound)
	}
	return slugged, nil
}

// SaveAll writes every theatre in order. A failing theatre does not stop the
// others; all failures are returned together.
func SaveAll(ctx context.Context, store Store, theatres []*entities.Theatre, logger *zap.Logger) error {
	var errs []error
	for _, theatre := range theatres {
		key := ArtifactKey(theatre.Movie)
		if err := store.SaveTheatre(ctx, theatre); err != nil {
			logger.Error("failed to save theatre", zap.String("movie", theatre.Movie), zap.String("key", key), zap.Error(err))
			errs = append(errs, fmt.Errorf("save %q: %w", theatre.Movie, err))
			continue
		}
		logger.Info("theatre saved",
			zap.String("movie", theatre.Movie),
			zap.String("key", key),
			zap.Int("booked", theatre.NumSeats()-theatre.Available()),
		)
	}
	return errors.Join(errs...)
}
