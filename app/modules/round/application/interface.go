package roundservice

import (
	"context"

	archiveservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/application"
	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
)

// Archive is the part of the archive service a session drives.
type Archive interface {
	Save(ctx context.Context, round *roundtypes.Round) (archiveservice.SaveOutcome, error)
	List(ctx context.Context) ([]archivetypes.ArchivedRound, error)
	Delete(ctx context.Context, current []archivetypes.ArchivedRound, index int) ([]archivetypes.ArchivedRound, error)
}

var _ Archive = archiveservice.Service(nil)
