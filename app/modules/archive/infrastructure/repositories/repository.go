package archivedb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
)

// DefaultArchiveKey is the key the archive list lives under.
const DefaultArchiveKey = "discGolfGames"

// ArchiveRepository stores the archive list as one JSON array under a single key.
type ArchiveRepository struct {
	store Store
	key   string
}

// NewArchiveRepository binds a store to an archive key. An empty key uses DefaultArchiveKey.
func NewArchiveRepository(store Store, key string) *ArchiveRepository {
	if key == "" {
		key = DefaultArchiveKey
	}
	return &ArchiveRepository{store: store, key: key}
}

// Key returns the archive key.
func (r *ArchiveRepository) Key() string { return r.key }

// Load reads the archive list. A missing or blank value is an empty list.
// A value that does not decode returns ErrCorrupt.
func (r *ArchiveRepository) Load(ctx context.Context) ([]archivetypes.ArchivedRound, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []archivetypes.ArchivedRound{}, nil
	}

	var rounds []archivetypes.ArchivedRound
	if err := json.Unmarshal([]byte(raw), &rounds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if rounds == nil {
		rounds = []archivetypes.ArchivedRound{}
	}
	return rounds, nil
}

// Replace writes the whole list in one store write.
func (r *ArchiveRepository) Replace(ctx context.Context, rounds []archivetypes.ArchivedRound) error {
	if rounds == nil {
		rounds = []archivetypes.ArchivedRound{}
	}
	data, err := json.Marshal(rounds)
	if err != nil {
		return fmt.Errorf("failed to encode archive: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	return nil
}
