package roundservice

import (
	"log/slog"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
	roundutil "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/utils"
)

// View is the screen a session is showing.
type View string

const (
	ViewSetup      View = "SETUP"
	ViewPlaying    View = "PLAYING"
	ViewSummary    View = "SUMMARY"
	ViewSavedGames View = "SAVED_GAMES"
)

// Session drives one user's scorecard: setup, play, the end-of-round summary
// and the saved games list. A Session is not safe for concurrent use; callers
// serialize access.
type Session struct {
	archive Archive
	clock   roundutil.Clock
	logger  *slog.Logger

	view  View
	setup *roundtypes.Setup
	round *roundtypes.Round
	saved []archivetypes.ArchivedRound
}

// NewSession starts a session on the setup screen.
func NewSession(archive Archive, clock roundutil.Clock, logger *slog.Logger) *Session {
	if clock == nil {
		clock = roundutil.RealClock{}
	}
	return &Session{
		archive: archive,
		clock:   clock,
		logger:  logger,
		view:    ViewSetup,
		setup:   roundtypes.NewSetup(),
	}
}

// View returns the current screen.
func (s *Session) View() View { return s.view }

// Round returns the round in play, if any.
func (s *Session) Round() *roundtypes.Round { return s.round }

func (s *Session) requireView(v View) error {
	if s.view != v {
		return ErrWrongView
	}
	return nil
}
