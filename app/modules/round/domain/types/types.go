// types.go
package roundtypes

import "time"

// Player is one roster slot. Names are not unique; slots are addressed by position.
type Player struct {
	Name string `json:"name"`
}

// PhaseKind names the state a round is in.
type PhaseKind string

const (
	PhaseAwaitingPar    PhaseKind = "AWAITING_PAR"
	PhaseAwaitingScores PhaseKind = "AWAITING_SCORES"
	PhaseFinished       PhaseKind = "FINISHED"
)

// Phase is the per-hole state of a round. Hole is 1-based and zero once finished.
type Phase struct {
	Kind PhaseKind `json:"kind"`
	Hole int       `json:"hole,omitempty"`
}

// IsAwaitingPar reports whether the round is waiting for the current hole's par.
func (p Phase) IsAwaitingPar() bool { return p.Kind == PhaseAwaitingPar }

// IsAwaitingScores reports whether the round is collecting throws for the current hole.
func (p Phase) IsAwaitingScores() bool { return p.Kind == PhaseAwaitingScores }

// IsFinished reports whether the last hole has been completed.
func (p Phase) IsFinished() bool { return p.Kind == PhaseFinished }

// HoleTiming holds when par was set for a hole and when its last score came in.
type HoleTiming struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// Duration returns End-Start when both stamps are present.
func (t HoleTiming) Duration() (time.Duration, bool) {
	if t.Start == nil || t.End == nil {
		return 0, false
	}
	return t.End.Sub(*t.Start), true
}

// Snapshot is a read-only copy of a round, safe to hand to renderers and the archive.
type Snapshot struct {
	ID          string       `json:"id"`
	HoleCount   int          `json:"holeCount"`
	Players     []Player     `json:"players"`
	ParPerHole  []string     `json:"parPerHole"`
	Scores      [][]string   `json:"scores"`
	HoleTiming  []HoleTiming `json:"holeTiming"`
	CurrentHole int          `json:"currentHole"`
	Phase       Phase        `json:"phase"`
	RoundStart  time.Time    `json:"roundStart"`
	RoundEnd    *time.Time   `json:"roundEnd,omitempty"`
	Saved       bool         `json:"saved"`
}

// PlayerNames returns the roster names in slot order.
func (s Snapshot) PlayerNames() []string {
	names := make([]string, len(s.Players))
	for i, p := range s.Players {
		names[i] = p.Name
	}
	return names
}
