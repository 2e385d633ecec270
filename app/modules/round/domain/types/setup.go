package roundtypes

import (
	roundutil "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/utils"
	"github.com/google/uuid"
)

// Setup collects the hole count and roster before play starts.
type Setup struct {
	holeCount string
	players   []Player
}

// NewSetup returns an empty setup.
func NewSetup() *Setup {
	return &Setup{}
}

// AddPlayer appends the trimmed name to the roster.
func (s *Setup) AddPlayer(name string) error {
	trimmed, ok := roundutil.NormalizePlayerName(name)
	if !ok {
		return ErrEmptyPlayerName
	}
	s.players = append(s.players, Player{Name: trimmed})
	return nil
}

// SetHoleCount stores the raw hole count input; it is only interpreted at start.
func (s *Setup) SetHoleCount(raw string) {
	s.holeCount = raw
}

// HoleCountInput returns the raw hole count as entered.
func (s *Setup) HoleCountInput() string {
	return s.holeCount
}

// Players returns a copy of the roster.
func (s *Setup) Players() []Player {
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

// CanStart reports whether there is at least one player and a positive hole count.
func (s *Setup) CanStart() bool {
	_, ok := roundutil.CoerceHoleCount(s.holeCount)
	return ok && len(s.players) > 0
}

// Start builds a fresh round from the setup.
func (s *Setup) Start(clock roundutil.Clock) (*Round, error) {
	holes, ok := roundutil.CoerceHoleCount(s.holeCount)
	if !ok || len(s.players) == 0 {
		return nil, ErrNotReady
	}
	return newRound(uuid.New(), s.Players(), holes, clock), nil
}
