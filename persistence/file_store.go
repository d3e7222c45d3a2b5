package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/paologalligit/showtime/constant"
	"github.com/paologalligit/showtime/entities"
	"github.com/paologalligit/showtime/utils"
)

// FileStore keeps one JSON artifact per theatre under Dir.
type FileStore struct {
	Dir          string
	timeProvider TimeProvider
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir, timeProvider: realTimeProvider{}}
}

func NewFileStoreWithTimeProvider(dir string, tp TimeProvider) *FileStore {
	return &FileStore{Dir: dir, timeProvider: tp}
}

// Path returns the artifact file for a movie title or artifact key.
func (f *FileStore) Path(key string) string {
	return filepath.Join(f.Dir, ArtifactKey(key)+constant.ARTIFACT_EXT)
}

func (f *FileStore) SaveTheatre(ctx context.Context, theatre *entities.Theatre) error {
	if _, err := saveKey(theatre.Movie); err != nil {
		return err
	}
	data, err := Encode(theatre, f.timeProvider.Now())
	if err != nil {
		return err
	}
	if err := utils.WriteFileAtomic(f.Path(theatre.Movie), data); err != nil {
		return fmt.Errorf("error writing artifact: %w", err)
	}
	return nil
}

func (f *FileStore) LoadTheatre(ctx context.Context, key string) (*entities.Theatre, error) {
	if _, err := loadKey(key); err != nil {
		return nil, err
	}
	path := f.Path(key)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrArtifactNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	theatre, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return theatre, nil
}
