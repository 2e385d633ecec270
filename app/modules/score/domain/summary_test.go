package scoredomain

import (
	"testing"
	"time"

	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
	"github.com/google/go-cmp/cmp"
)

func ptr(t time.Time) *time.Time { return &t }

func TestPlayerTotals(t *testing.T) {
	snap := roundtypes.Snapshot{
		HoleCount:  2,
		Players:    []roundtypes.Player{{Name: "A"}, {Name: "B"}},
		ParPerHole: []string{"3", "4"},
		Scores:     [][]string{{"4", "4"}, {"3", "3"}},
	}

	want := []PlayerTotal{
		{Player: "A", TotalThrows: 8, DifferenceVsPar: 1},
		{Player: "B", TotalThrows: 6, DifferenceVsPar: -1},
	}
	if diff := cmp.Diff(want, PlayerTotals(snap)); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}
	if got := ParTotal(snap.ParPerHole); got != 7 {
		t.Errorf("ParTotal = %d, want 7", got)
	}
	if got := FormatDifference(1); got != "+1" {
		t.Errorf("FormatDifference(1) = %q, want +1", got)
	}
	if got := FormatDifference(-1); got != "-1" {
		t.Errorf("FormatDifference(-1) = %q, want -1", got)
	}
	if got := FormatDifference(0); got != "+0" {
		t.Errorf("FormatDifference(0) = %q, want +0", got)
	}
}

func TestPlayerTotals_UnsetAndNonNumericCountAsZero(t *testing.T) {
	snap := roundtypes.Snapshot{
		HoleCount:  3,
		Players:    []roundtypes.Player{{Name: "A"}, {Name: "A"}},
		ParPerHole: []string{"3", "", "x"},
		Scores:     [][]string{{"4", "", "2"}, {"3", "abc", "0"}},
	}

	want := []PlayerTotal{
		{Player: "A", TotalThrows: 6, DifferenceVsPar: 3, Incomplete: true},
		{Player: "A", TotalThrows: 3, DifferenceVsPar: 0, Incomplete: true},
	}
	if diff := cmp.Diff(want, PlayerTotals(snap)); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatHoleDuration(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		timing roundtypes.HoleTiming
		want   string
	}{
		{name: "both stamps", timing: roundtypes.HoleTiming{Start: ptr(start), End: ptr(start.Add(95 * time.Second))}, want: "95s"},
		{name: "rounds half up", timing: roundtypes.HoleTiming{Start: ptr(start), End: ptr(start.Add(1500 * time.Millisecond))}, want: "2s"},
		{name: "rounds down", timing: roundtypes.HoleTiming{Start: ptr(start), End: ptr(start.Add(1499 * time.Millisecond))}, want: "1s"},
		{name: "missing end", timing: roundtypes.HoleTiming{Start: ptr(start)}, want: NotAvailable},
		{name: "missing both", timing: roundtypes.HoleTiming{}, want: NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHoleDuration(tt.timing); got != tt.want {
				t.Errorf("FormatHoleDuration = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0m 0s"},
		{d: 95 * time.Second, want: "1m 35s"},
		{d: 42*time.Minute + 7*time.Second + 400*time.Millisecond, want: "42m 7s"},
		{d: 59*time.Second + 600*time.Millisecond, want: "0m 60s"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestElapsedMinutes(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	if got := ElapsedMinutes(start, start.Add(119*time.Second)); got != 1 {
		t.Errorf("ElapsedMinutes = %d, want 1", got)
	}
}

func TestSummarize(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	snap := roundtypes.Snapshot{
		HoleCount:  2,
		Players:    []roundtypes.Player{{Name: "A"}},
		ParPerHole: []string{"3", "4"},
		Scores:     [][]string{{"3", "5"}},
		HoleTiming: []roundtypes.HoleTiming{
			{Start: ptr(start), End: ptr(start.Add(95 * time.Second))},
			{Start: ptr(start.Add(2 * time.Minute))},
		},
		RoundStart: start,
		RoundEnd:   ptr(start.Add(10*time.Minute + 5*time.Second)),
	}

	want := RoundSummary{
		Totals:   []PlayerTotal{{Player: "A", TotalThrows: 8, DifferenceVsPar: 1}},
		ParTotal: 7,
		Elapsed:  "10m 5s",
		Holes: []HoleDuration{
			{Hole: 1, Par: "3", Duration: "95s"},
			{Hole: 2, Par: "4", Duration: NotAvailable},
		},
	}
	if diff := cmp.Diff(want, Summarize(snap)); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	snap.RoundEnd = nil
	if got := Summarize(snap).Elapsed; got != "" {
		t.Errorf("Elapsed for unfinished round = %q, want empty", got)
	}
}
