package archiveservice

import (
	"context"
	"fmt"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	archiveevents "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/events"
)

// Delete removes the record at index from current and writes the shortened
// list back in a single write. current is never modified. On failure current
// is returned as-is; the caller should reload from storage.
func (s *ArchiveService) Delete(ctx context.Context, current []archivetypes.ArchivedRound, index int) ([]archivetypes.ArchivedRound, error) {
	if index < 0 || index >= len(current) {
		return current, ErrIndexOutOfRange
	}
	removed := current[index]

	return withTelemetry(s, ctx, "Delete", removed.ID, func(ctx context.Context) ([]archivetypes.ArchivedRound, error) {
		next := make([]archivetypes.ArchivedRound, 0, len(current)-1)
		next = append(next, current[:index]...)
		next = append(next, current[index+1:]...)

		if err := s.repo.Replace(ctx, next); err != nil {
			return current, fmt.Errorf("%w: %w", ErrArchiveWrite, err)
		}

		s.metrics.RecordRoundDeleted(ctx)
		s.publish(ctx, archiveevents.RoundDeletedV1, archiveevents.RoundDeletedPayloadV1{
			RoundID:     removed.ID,
			Index:       index,
			ArchiveSize: len(next),
		})
		return next, nil
	})
}
