package archiveservice

import (
	"context"
	"fmt"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
)

// List reads the archive. On any failure it still returns an empty, non-nil
// list together with an ErrArchiveUnreadable error for the caller to surface.
func (s *ArchiveService) List(ctx context.Context) ([]archivetypes.ArchivedRound, error) {
	rounds, err := withTelemetry(s, ctx, "List", "", func(ctx context.Context) ([]archivetypes.ArchivedRound, error) {
		rounds, err := s.repo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrArchiveUnreadable, err)
		}
		return rounds, nil
	})
	if err != nil {
		return []archivetypes.ArchivedRound{}, err
	}
	return rounds, nil
}

// Get reads the archive and returns the record at index.
func (s *ArchiveService) Get(ctx context.Context, index int) (archivetypes.ArchivedRound, error) {
	rounds, err := s.List(ctx)
	if err != nil {
		return archivetypes.ArchivedRound{}, err
	}
	if index < 0 || index >= len(rounds) {
		return archivetypes.ArchivedRound{}, ErrIndexOutOfRange
	}
	return rounds[index], nil
}
