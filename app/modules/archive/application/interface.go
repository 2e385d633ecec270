package archiveservice

import (
	"context"
	"time"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
)

// Service defines the archive operations.
type Service interface {
	ToSummary(snap roundtypes.Snapshot, date time.Time) (archivetypes.ArchivedRound, error)
	Save(ctx context.Context, round *roundtypes.Round) (SaveOutcome, error)
	List(ctx context.Context) ([]archivetypes.ArchivedRound, error)
	Get(ctx context.Context, index int) (archivetypes.ArchivedRound, error)
	Delete(ctx context.Context, current []archivetypes.ArchivedRound, index int) ([]archivetypes.ArchivedRound, error)
}

// SaveOutcome tells a successful save apart from a repeated one.
type SaveOutcome int

const (
	// Saved means a new record was prepended to the archive.
	Saved SaveOutcome = iota + 1
	// AlreadySaved means the round had been archived before and nothing was written.
	AlreadySaved
)

func (o SaveOutcome) String() string {
	switch o {
	case Saved:
		return "saved"
	case AlreadySaved:
		return "already_saved"
	default:
		return "unknown"
	}
}
