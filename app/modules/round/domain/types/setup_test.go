package roundtypes

import (
	"errors"
	"strconv"
	"testing"
	"time"

	roundutil "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/utils"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
)

func TestSetup_AddPlayer(t *testing.T) {
	s := NewSetup()

	if err := s.AddPlayer(""); !errors.Is(err, ErrEmptyPlayerName) {
		t.Errorf("AddPlayer(\"\") error = %v, want %v", err, ErrEmptyPlayerName)
	}
	if err := s.AddPlayer("   "); !errors.Is(err, ErrEmptyPlayerName) {
		t.Errorf("AddPlayer(blank) error = %v, want %v", err, ErrEmptyPlayerName)
	}
	if got := len(s.Players()); got != 0 {
		t.Fatalf("roster size = %d after blank names, want 0", got)
	}

	if err := s.AddPlayer(" Alice "); err != nil {
		t.Fatalf("AddPlayer: unexpected error: %v", err)
	}
	if err := s.AddPlayer("Alice"); err != nil {
		t.Fatalf("AddPlayer duplicate: unexpected error: %v", err)
	}

	want := []Player{{Name: "Alice"}, {Name: "Alice"}}
	if diff := cmp.Diff(want, s.Players()); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestSetup_CanStart(t *testing.T) {
	tests := []struct {
		name      string
		holeCount string
		players   []string
		want      bool
	}{
		{name: "ready", holeCount: "9", players: []string{"A"}, want: true},
		{name: "no players", holeCount: "9", want: false},
		{name: "no hole count", holeCount: "", players: []string{"A"}, want: false},
		{name: "zero holes", holeCount: "0", players: []string{"A"}, want: false},
		{name: "non-numeric holes", holeCount: "front nine", players: []string{"A"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSetup()
			s.SetHoleCount(tt.holeCount)
			for _, p := range tt.players {
				_ = s.AddPlayer(p)
			}
			if got := s.CanStart(); got != tt.want {
				t.Errorf("CanStart() = %v, want %v", got, tt.want)
			}
			if !tt.want {
				if _, err := s.Start(roundutil.RealClock{}); !errors.Is(err, ErrNotReady) {
					t.Errorf("Start() error = %v, want %v", err, ErrNotReady)
				}
			}
		})
	}
}

func TestSetup_StartAllocatesEmptyRound(t *testing.T) {
	faker := gofakeit.New(42)
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		holes := faker.Number(1, 27)
		roster := faker.Number(1, 8)

		s := NewSetup()
		s.SetHoleCount(strconv.Itoa(holes))
		for p := 0; p < roster; p++ {
			if err := s.AddPlayer(faker.FirstName()); err != nil {
				t.Fatalf("AddPlayer: %v", err)
			}
		}

		r, err := s.Start(roundutil.NewFakeClock(start))
		if err != nil {
			t.Fatalf("Start(holes=%d, players=%d): %v", holes, roster, err)
		}

		snap := r.Snapshot()
		if len(snap.Scores) != roster {
			t.Fatalf("score rows = %d, want %d", len(snap.Scores), roster)
		}
		for p, row := range snap.Scores {
			if len(row) != holes {
				t.Fatalf("player %d score slots = %d, want %d", p, len(row), holes)
			}
			for h, v := range row {
				if v != "" {
					t.Fatalf("player %d hole %d = %q, want unset", p, h+1, v)
				}
			}
		}
		if len(snap.ParPerHole) != holes || len(snap.HoleTiming) != holes {
			t.Fatalf("par/timing lengths = %d/%d, want %d", len(snap.ParPerHole), len(snap.HoleTiming), holes)
		}
		for h := 0; h < holes; h++ {
			if snap.ParPerHole[h] != "" || snap.HoleTiming[h].Start != nil || snap.HoleTiming[h].End != nil {
				t.Fatalf("hole %d not unset: par=%q timing=%+v", h+1, snap.ParPerHole[h], snap.HoleTiming[h])
			}
		}
		if snap.CurrentHole != 1 {
			t.Errorf("current hole = %d, want 1", snap.CurrentHole)
		}
		if !snap.RoundStart.Equal(start) {
			t.Errorf("round start = %v, want %v", snap.RoundStart, start)
		}
		if snap.RoundEnd != nil || snap.Saved || r.IsFinished() {
			t.Errorf("fresh round carries end/saved/finished state: %+v", snap)
		}
	}
}
