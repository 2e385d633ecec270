package roundtypes

import (
	"strings"
	"time"

	roundutil "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/utils"
	"github.com/google/uuid"
)

// Round is an in-progress play-through of a fixed roster over a fixed number of holes.
// All mutation goes through SetPar and EnterScore so the par, score, timing and
// hole-advance fields always move together.
type Round struct {
	id          uuid.UUID
	clock       roundutil.Clock
	holeCount   int
	players     []Player
	pars        []string
	scores      [][]string
	timings     []HoleTiming
	currentHole int
	startedAt   time.Time
	endedAt     *time.Time
	finished    bool
	saved       bool
}

func newRound(id uuid.UUID, players []Player, holeCount int, clock roundutil.Clock) *Round {
	if clock == nil {
		clock = roundutil.RealClock{}
	}

	scores := make([][]string, len(players))
	for i := range scores {
		scores[i] = make([]string, holeCount)
	}

	return &Round{
		id:          id,
		clock:       clock,
		holeCount:   holeCount,
		players:     players,
		pars:        make([]string, holeCount),
		scores:      scores,
		timings:     make([]HoleTiming, holeCount),
		currentHole: 1,
		startedAt:   clock.Now(),
	}
}

// ID identifies the round.
func (r *Round) ID() uuid.UUID { return r.id }

// HoleCount is fixed at start.
func (r *Round) HoleCount() int { return r.holeCount }

// CurrentHole is the 1-based hole being played.
func (r *Round) CurrentHole() int { return r.currentHole }

// StartedAt is when play began.
func (r *Round) StartedAt() time.Time { return r.startedAt }

// EndedAt is when the final hole completed.
func (r *Round) EndedAt() (time.Time, bool) {
	if r.endedAt == nil {
		return time.Time{}, false
	}
	return *r.endedAt, true
}

// IsFinished reports whether every hole is complete.
func (r *Round) IsFinished() bool { return r.finished }

// IsSaved reports whether the round has been archived.
func (r *Round) IsSaved() bool { return r.saved }

// MarkSaved records a successful archive write.
func (r *Round) MarkSaved() { r.saved = true }

// Players returns a copy of the roster.
func (r *Round) Players() []Player {
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}

// Phase derives the current state from the aggregate.
func (r *Round) Phase() Phase {
	switch {
	case r.finished:
		return Phase{Kind: PhaseFinished}
	case r.pars[r.currentHole-1] == "":
		return Phase{Kind: PhaseAwaitingPar, Hole: r.currentHole}
	default:
		return Phase{Kind: PhaseAwaitingScores, Hole: r.currentHole}
	}
}

// SetPar records par for the current hole and starts its timer.
func (r *Round) SetPar(hole int, value string) error {
	if r.finished {
		return ErrRoundFinished
	}
	if hole != r.currentHole {
		return ErrHoleNotCurrent
	}
	idx := hole - 1
	if r.pars[idx] != "" {
		return ErrParAlreadySet
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrEmptyPar
	}

	now := r.clock.Now()
	r.pars[idx] = value
	r.timings[idx] = HoleTiming{Start: &now}
	return nil
}

// EnterScore records a player's raw throw count for the current hole. An empty
// value clears the slot. When every slot for the hole is filled the hole is
// closed and play moves on, or the round finishes after the last hole.
func (r *Round) EnterScore(player int, value string) error {
	if r.finished {
		return ErrRoundFinished
	}
	if player < 0 || player >= len(r.players) {
		return ErrPlayerOutOfRange
	}
	idx := r.currentHole - 1
	if r.pars[idx] == "" {
		return ErrParNotSet
	}

	r.scores[player][idx] = value
	r.completeHoleIfReady()
	return nil
}

func (r *Round) completeHoleIfReady() {
	idx := r.currentHole - 1
	for p := range r.players {
		if r.scores[p][idx] == "" {
			return
		}
	}

	now := r.clock.Now()
	r.timings[idx].End = &now

	if r.currentHole == r.holeCount {
		r.endedAt = &now
		r.finished = true
		return
	}
	r.currentHole++
}

// PendingPlayers lists the roster slots still missing a score on the current hole.
func (r *Round) PendingPlayers() []int {
	if r.finished {
		return nil
	}
	idx := r.currentHole - 1
	var pending []int
	for p := range r.players {
		if r.scores[p][idx] == "" {
			pending = append(pending, p)
		}
	}
	return pending
}

// Elapsed is the total round time once finished.
func (r *Round) Elapsed() (time.Duration, bool) {
	if r.endedAt == nil {
		return 0, false
	}
	return r.endedAt.Sub(r.startedAt), true
}

// Snapshot copies the round's state.
func (r *Round) Snapshot() Snapshot {
	scores := make([][]string, len(r.scores))
	for i, row := range r.scores {
		scores[i] = append([]string(nil), row...)
	}

	timings := make([]HoleTiming, len(r.timings))
	for i, t := range r.timings {
		timings[i] = HoleTiming{Start: copyTime(t.Start), End: copyTime(t.End)}
	}

	return Snapshot{
		ID:          r.id.String(),
		HoleCount:   r.holeCount,
		Players:     r.Players(),
		ParPerHole:  append([]string(nil), r.pars...),
		Scores:      scores,
		HoleTiming:  timings,
		CurrentHole: r.currentHole,
		Phase:       r.Phase(),
		RoundStart:  r.startedAt,
		RoundEnd:    copyTime(r.endedAt),
		Saved:       r.saved,
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
