package archivedb

import (
	"context"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
)

// Store is a string key-value store. Every backend replaces the whole value on Set.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Repository reads and writes the archive list.
type Repository interface {
	Load(ctx context.Context) ([]archivetypes.ArchivedRound, error)
	Replace(ctx context.Context, rounds []archivetypes.ArchivedRound) error
}
