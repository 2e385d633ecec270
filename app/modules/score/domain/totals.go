package scoredomain

import (
	"strconv"

	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/utils"
)

// PlayerTotal is one roster slot's result for a round.
type PlayerTotal struct {
	Player          string `json:"player"`
	TotalThrows     int    `json:"totalThrows"`
	DifferenceVsPar int    `json:"differenceVsPar"`
	// Incomplete is set when any hole for the player has no numeric score.
	// Such holes still count as zero in TotalThrows.
	Incomplete bool `json:"incomplete,omitempty"`
}

// ParTotal sums the per-hole pars, counting unset or non-numeric entries as zero.
func ParTotal(pars []string) int {
	total := 0
	for _, p := range pars {
		total += utils.IntOrZero(p)
	}
	return total
}

// PlayerTotals computes throws and difference vs. par for every roster slot, in order.
func PlayerTotals(snap roundtypes.Snapshot) []PlayerTotal {
	parTotal := ParTotal(snap.ParPerHole)

	totals := make([]PlayerTotal, len(snap.Players))
	for i, player := range snap.Players {
		var row []string
		if i < len(snap.Scores) {
			row = snap.Scores[i]
		}

		sum, incomplete := 0, len(row) < snap.HoleCount
		for _, v := range row {
			n, ok := utils.ParseLenientInt(v)
			if !ok {
				incomplete = true
			}
			sum += n
		}

		totals[i] = PlayerTotal{
			Player:          player.Name,
			TotalThrows:     sum,
			DifferenceVsPar: sum - parTotal,
			Incomplete:      incomplete,
		}
	}
	return totals
}

// FormatDifference renders a difference vs. par with an explicit sign for non-negative values.
func FormatDifference(diff int) string {
	if diff >= 0 {
		return "+" + strconv.Itoa(diff)
	}
	return strconv.Itoa(diff)
}
