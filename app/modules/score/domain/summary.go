package scoredomain

import roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"

// RoundSummary is the end-of-round view: totals, elapsed time and hole timings.
type RoundSummary struct {
	Totals   []PlayerTotal  `json:"totals"`
	ParTotal int            `json:"parTotal"`
	Elapsed  string         `json:"elapsed,omitempty"`
	Holes    []HoleDuration `json:"holes"`
}

// Summarize aggregates a round snapshot. Elapsed is left empty until the round has ended.
func Summarize(snap roundtypes.Snapshot) RoundSummary {
	summary := RoundSummary{
		Totals:   PlayerTotals(snap),
		ParTotal: ParTotal(snap.ParPerHole),
		Holes:    HoleDurations(snap),
	}
	if snap.RoundEnd != nil {
		summary.Elapsed = FormatElapsed(snap.RoundEnd.Sub(snap.RoundStart))
	}
	return summary
}
