package archiveservice

import (
	"time"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
	scoredomain "github.com/Black-And-White-Club/frolf-scorecard/app/modules/score/domain"
)

// ToSummary builds the archive record for a finished round. It works on a
// snapshot, so the round itself is never touched.
func (s *ArchiveService) ToSummary(snap roundtypes.Snapshot, date time.Time) (archivetypes.ArchivedRound, error) {
	if !snap.Phase.IsFinished() {
		return archivetypes.ArchivedRound{}, ErrRoundNotFinished
	}

	scores := make([][]string, len(snap.Scores))
	for i, row := range snap.Scores {
		scores[i] = append([]string(nil), row...)
	}

	var end *time.Time
	if snap.RoundEnd != nil {
		e := *snap.RoundEnd
		end = &e
	}

	return archivetypes.ArchivedRound{
		ID:            snap.ID,
		Date:          date.UTC(),
		HoleCount:     snap.HoleCount,
		Players:       snap.PlayerNames(),
		ParPerHole:    append([]string(nil), snap.ParPerHole...),
		Scores:        scores,
		RoundStart:    snap.RoundStart,
		RoundEnd:      end,
		Summary:       scoredomain.PlayerTotals(snap),
		HoleDurations: scoredomain.HoleDurations(snap),
	}, nil
}
