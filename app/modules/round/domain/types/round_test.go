package roundtypes

import (
	"errors"
	"testing"
	"time"

	roundutil "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/utils"
	"github.com/google/go-cmp/cmp"
)

var testStart = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func startRound(t *testing.T, holes string, clock roundutil.Clock, players ...string) *Round {
	t.Helper()
	s := NewSetup()
	s.SetHoleCount(holes)
	for _, p := range players {
		if err := s.AddPlayer(p); err != nil {
			t.Fatalf("AddPlayer(%q): %v", p, err)
		}
	}
	r, err := s.Start(clock)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return r
}

func TestRound_HoleAdvancement(t *testing.T) {
	tests := []struct {
		name  string
		order []int
	}{
		{name: "A then B", order: []int{0, 1}},
		{name: "B then A", order: []int{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := roundutil.NewFakeClock(testStart)
			r := startRound(t, "2", clock, "A", "B")

			if got := r.Phase(); got != (Phase{Kind: PhaseAwaitingPar, Hole: 1}) {
				t.Fatalf("phase = %+v, want awaiting par on hole 1", got)
			}
			if err := r.SetPar(1, "3"); err != nil {
				t.Fatalf("SetPar: %v", err)
			}
			if got := r.Phase(); got != (Phase{Kind: PhaseAwaitingScores, Hole: 1}) {
				t.Fatalf("phase = %+v, want awaiting scores on hole 1", got)
			}

			values := []string{"4", "3"}
			clock.Advance(95 * time.Second)
			for i, p := range tt.order {
				if err := r.EnterScore(p, values[p]); err != nil {
					t.Fatalf("EnterScore(%d): %v", p, err)
				}
				if i == 0 && r.CurrentHole() != 1 {
					t.Fatalf("advanced after first score")
				}
			}

			if r.CurrentHole() != 2 {
				t.Fatalf("current hole = %d, want 2", r.CurrentHole())
			}
			snap := r.Snapshot()
			if snap.HoleTiming[0].End == nil {
				t.Fatal("hole 1 end not stamped")
			}
			if d, ok := snap.HoleTiming[0].Duration(); !ok || d != 95*time.Second {
				t.Errorf("hole 1 duration = %v (%v), want 95s", d, ok)
			}
			if diff := cmp.Diff([][]string{{"4", ""}, {"3", ""}}, snap.Scores); diff != "" {
				t.Errorf("scores mismatch (-want +got):\n%s", diff)
			}
			if got := r.Phase(); got != (Phase{Kind: PhaseAwaitingPar, Hole: 2}) {
				t.Errorf("phase = %+v, want awaiting par on hole 2", got)
			}
		})
	}
}

func TestRound_FinishesOnLastScore(t *testing.T) {
	clock := roundutil.NewFakeClock(testStart)
	r := startRound(t, "1", clock, "Solo")

	if err := r.SetPar(1, "3"); err != nil {
		t.Fatalf("SetPar: %v", err)
	}
	clock.Advance(2 * time.Minute)
	if err := r.EnterScore(0, "2"); err != nil {
		t.Fatalf("EnterScore: %v", err)
	}

	if !r.IsFinished() || !r.Phase().IsFinished() {
		t.Fatalf("round not finished, phase %+v", r.Phase())
	}
	end, ok := r.EndedAt()
	if !ok || !end.Equal(testStart.Add(2*time.Minute)) {
		t.Errorf("round end = %v (%v), want %v", end, ok, testStart.Add(2*time.Minute))
	}
	if elapsed, _ := r.Elapsed(); elapsed != 2*time.Minute {
		t.Errorf("elapsed = %v, want 2m", elapsed)
	}
	if r.CurrentHole() != 1 {
		t.Errorf("current hole moved past hole count: %d", r.CurrentHole())
	}

	if err := r.EnterScore(0, "5"); !errors.Is(err, ErrRoundFinished) {
		t.Errorf("EnterScore after finish error = %v, want %v", err, ErrRoundFinished)
	}
	if err := r.SetPar(1, "4"); !errors.Is(err, ErrRoundFinished) {
		t.Errorf("SetPar after finish error = %v, want %v", err, ErrRoundFinished)
	}
}

func TestRound_SetParRejections(t *testing.T) {
	r := startRound(t, "3", roundutil.NewFakeClock(testStart), "A")

	tests := []struct {
		name    string
		hole    int
		value   string
		wantErr error
	}{
		{name: "future hole", hole: 2, value: "3", wantErr: ErrHoleNotCurrent},
		{name: "hole zero", hole: 0, value: "3", wantErr: ErrHoleNotCurrent},
		{name: "blank par", hole: 1, value: "  ", wantErr: ErrEmptyPar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.SetPar(tt.hole, tt.value); !errors.Is(err, tt.wantErr) {
				t.Errorf("SetPar(%d, %q) error = %v, want %v", tt.hole, tt.value, err, tt.wantErr)
			}
			if !r.Phase().IsAwaitingPar() {
				t.Errorf("rejected SetPar changed phase to %+v", r.Phase())
			}
		})
	}

	if err := r.SetPar(1, "3"); err != nil {
		t.Fatalf("SetPar: %v", err)
	}
	if err := r.SetPar(1, "4"); !errors.Is(err, ErrParAlreadySet) {
		t.Errorf("second SetPar error = %v, want %v", err, ErrParAlreadySet)
	}
	if got := r.Snapshot().ParPerHole[0]; got != "3" {
		t.Errorf("par = %q, want 3", got)
	}
}

func TestRound_EnterScoreRejections(t *testing.T) {
	r := startRound(t, "2", roundutil.NewFakeClock(testStart), "A", "B")

	if err := r.EnterScore(0, "3"); !errors.Is(err, ErrParNotSet) {
		t.Errorf("EnterScore before par error = %v, want %v", err, ErrParNotSet)
	}
	if err := r.SetPar(1, "3"); err != nil {
		t.Fatalf("SetPar: %v", err)
	}
	if err := r.EnterScore(2, "3"); !errors.Is(err, ErrPlayerOutOfRange) {
		t.Errorf("EnterScore(2) error = %v, want %v", err, ErrPlayerOutOfRange)
	}
	if err := r.EnterScore(-1, "3"); !errors.Is(err, ErrPlayerOutOfRange) {
		t.Errorf("EnterScore(-1) error = %v, want %v", err, ErrPlayerOutOfRange)
	}
	if got := r.Snapshot().Scores; got[0][0] != "" || got[1][0] != "" {
		t.Errorf("rejected scores were stored: %v", got)
	}
}

func TestRound_ZeroCountsAsEntered(t *testing.T) {
	r := startRound(t, "2", roundutil.NewFakeClock(testStart), "A")
	if err := r.SetPar(1, "3"); err != nil {
		t.Fatalf("SetPar: %v", err)
	}
	if err := r.EnterScore(0, "0"); err != nil {
		t.Fatalf("EnterScore: %v", err)
	}
	if r.CurrentHole() != 2 {
		t.Errorf("\"0\" did not complete the hole; current hole = %d", r.CurrentHole())
	}
}

func TestRound_ClearingScoreKeepsHoleOpen(t *testing.T) {
	r := startRound(t, "2", roundutil.NewFakeClock(testStart), "A", "B")
	if err := r.SetPar(1, "3"); err != nil {
		t.Fatalf("SetPar: %v", err)
	}
	_ = r.EnterScore(0, "4")
	_ = r.EnterScore(0, "")

	if diff := cmp.Diff([]int{0, 1}, r.PendingPlayers()); diff != "" {
		t.Errorf("pending mismatch (-want +got):\n%s", diff)
	}
	_ = r.EnterScore(1, "3")
	if r.CurrentHole() != 1 {
		t.Fatalf("hole advanced with a cleared slot")
	}
	if diff := cmp.Diff([]int{0}, r.PendingPlayers()); diff != "" {
		t.Errorf("pending mismatch (-want +got):\n%s", diff)
	}
}

func TestRound_SnapshotIsIndependent(t *testing.T) {
	r := startRound(t, "1", roundutil.NewFakeClock(testStart), "A")
	_ = r.SetPar(1, "3")

	snap := r.Snapshot()
	snap.Scores[0][0] = "9"
	snap.ParPerHole[0] = "9"
	*snap.HoleTiming[0].Start = time.Time{}

	again := r.Snapshot()
	if again.Scores[0][0] != "" || again.ParPerHole[0] != "3" || again.HoleTiming[0].Start.IsZero() {
		t.Errorf("mutating a snapshot leaked into the round: %+v", again)
	}
}

func TestRound_MarkSaved(t *testing.T) {
	r := startRound(t, "1", roundutil.NewFakeClock(testStart), "A")
	if r.IsSaved() {
		t.Fatal("new round reports saved")
	}
	r.MarkSaved()
	if !r.IsSaved() || !r.Snapshot().Saved {
		t.Error("MarkSaved not reflected")
	}
}
