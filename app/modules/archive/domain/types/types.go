package archivetypes

import (
	"time"

	scoredomain "github.com/Black-And-White-Club/frolf-scorecard/app/modules/score/domain"
)

// ArchivedRound is the persisted summary of a finished round. Records are
// immutable once written; the archive list holds them newest first.
type ArchivedRound struct {
	ID            string                     `json:"id"`
	Date          time.Time                  `json:"date"`
	HoleCount     int                        `json:"holeCount"`
	Players       []string                   `json:"players"`
	ParPerHole    []string                   `json:"parPerHole"`
	Scores        [][]string                 `json:"scores"`
	RoundStart    time.Time                  `json:"roundStart"`
	RoundEnd      *time.Time                 `json:"roundEnd,omitempty"`
	Summary       []scoredomain.PlayerTotal  `json:"summary"`
	HoleDurations []scoredomain.HoleDuration `json:"holeDurations"`
}

// DurationMinutes is the whole-minute round length shown in the saved games list.
// ok is false when the record has no end stamp.
func (a ArchivedRound) DurationMinutes() (int, bool) {
	if a.RoundEnd == nil {
		return 0, false
	}
	return scoredomain.ElapsedMinutes(a.RoundStart, *a.RoundEnd), true
}

// ParTotal sums the record's pars with the same coercion used for totals.
func (a ArchivedRound) ParTotal() int {
	return scoredomain.ParTotal(a.ParPerHole)
}
