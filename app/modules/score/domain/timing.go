package scoredomain

import (
	"fmt"
	"math"
	"time"

	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
)

// NotAvailable marks a hole whose start or end stamp is missing.
const NotAvailable = "N/A"

// HoleDuration is the per-hole line of a round summary.
type HoleDuration struct {
	Hole     int    `json:"hole"`
	Par      string `json:"par"`
	Duration string `json:"duration"`
}

// FormatHoleDuration renders end-start in whole seconds, e.g. "95s", or "N/A".
func FormatHoleDuration(t roundtypes.HoleTiming) string {
	d, ok := t.Duration()
	if !ok {
		return NotAvailable
	}
	return fmt.Sprintf("%ds", roundHalfUp(float64(d.Milliseconds())/1000))
}

// HoleDurations lists every hole with its par and duration.
func HoleDurations(snap roundtypes.Snapshot) []HoleDuration {
	holes := make([]HoleDuration, snap.HoleCount)
	for i := range holes {
		var timing roundtypes.HoleTiming
		if i < len(snap.HoleTiming) {
			timing = snap.HoleTiming[i]
		}
		var par string
		if i < len(snap.ParPerHole) {
			par = snap.ParPerHole[i]
		}
		holes[i] = HoleDuration{
			Hole:     i + 1,
			Par:      par,
			Duration: FormatHoleDuration(timing),
		}
	}
	return holes
}

// FormatElapsed renders a round length as "<m>m <s>s": whole minutes, then the
// remaining seconds rounded.
func FormatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	minutes := int64(math.Floor(float64(ms) / 60000))
	seconds := roundHalfUp(float64(ms%60000) / 1000)
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// ElapsedMinutes is the whole-minute length shown in the saved games list.
func ElapsedMinutes(start, end time.Time) int {
	return int(math.Floor(float64(end.Sub(start).Milliseconds()) / 60000))
}

func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
