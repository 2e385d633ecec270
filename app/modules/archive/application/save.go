package archiveservice

import (
	"context"
	"fmt"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	archiveevents "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/events"
	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
)

// Save prepends the round's summary to the archive. A round that has already
// been saved is left alone and reported as AlreadySaved. Any read, decode or
// write failure leaves the round unsaved so the caller can retry.
func (s *ArchiveService) Save(ctx context.Context, round *roundtypes.Round) (SaveOutcome, error) {
	snap := round.Snapshot()

	return withTelemetry(s, ctx, "Save", snap.ID, func(ctx context.Context) (SaveOutcome, error) {
		if round.IsSaved() {
			return AlreadySaved, nil
		}

		record, err := s.ToSummary(snap, s.clock.Now())
		if err != nil {
			return 0, err
		}

		existing, err := s.repo.Load(ctx)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrArchiveUnreadable, err)
		}

		updated := make([]archivetypes.ArchivedRound, 0, len(existing)+1)
		updated = append(updated, record)
		updated = append(updated, existing...)

		if err := s.repo.Replace(ctx, updated); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrArchiveWrite, err)
		}

		round.MarkSaved()
		s.metrics.RecordRoundArchived(ctx)
		s.publish(ctx, archiveevents.RoundArchivedV1, archiveevents.RoundArchivedPayloadV1{
			RoundID:     record.ID,
			Date:        record.Date,
			Players:     record.Players,
			HoleCount:   record.HoleCount,
			ArchiveSize: len(updated),
		})
		return Saved, nil
	})
}
