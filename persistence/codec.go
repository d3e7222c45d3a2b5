package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/paologalligit/showtime/constant"
	"github.com/paologalligit/showtime/entities"
)

// Encode serializes a theatre into the versioned artifact document.
func Encode(theatre *entities.Theatre, savedAt time.Time) ([]byte, error) {
	snapshot := theatre.Snapshot()
	snapshot.Version = constant.ARTIFACT_VERSION
	snapshot.SavedAt = savedAt
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theatre %q: %w", theatre.Movie, err)
	}
	return data, nil
}

func Decode(data []byte) (*entities.Theatre, error) {
	var snapshot entities.TheatreSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifact, err)
	}
	if snapshot.Version != constant.ARTIFACT_VERSION {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptArtifact, snapshot.Version)
	}
	theatre, err := entities.RestoreTheatre(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptArtifact, err)
	}
	return theatre, nil
}
