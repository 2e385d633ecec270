package roundservice

import (
	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
	scoredomain "github.com/Black-And-White-Club/frolf-scorecard/app/modules/score/domain"
)

// SetPar records par for the current hole.
func (s *Session) SetPar(hole int, value string) error {
	if err := s.requireView(ViewPlaying); err != nil {
		return err
	}
	return s.round.SetPar(hole, value)
}

// EnterScore records a throw count for the player in roster slot player.
// Completing the last hole moves the session to the summary.
func (s *Session) EnterScore(player int, value string) error {
	if err := s.requireView(ViewPlaying); err != nil {
		return err
	}
	if err := s.round.EnterScore(player, value); err != nil {
		return err
	}
	if s.round.IsFinished() {
		s.view = ViewSummary
		s.logger.Info("Round finished", "round_id", s.round.ID().String())
	}
	return nil
}

// Summary aggregates the round in play.
func (s *Session) Summary() (scoredomain.RoundSummary, error) {
	if s.round == nil {
		return scoredomain.RoundSummary{}, ErrNoRound
	}
	return scoredomain.Summarize(s.round.Snapshot()), nil
}

// Phase is the round's current phase.
func (s *Session) Phase() (roundtypes.Phase, error) {
	if s.round == nil {
		return roundtypes.Phase{}, ErrNoRound
	}
	return s.round.Phase(), nil
}

// BackToHome leaves the summary and discards the round, roster and hole count.
// Archived data is not touched.
func (s *Session) BackToHome() error {
	if err := s.requireView(ViewSummary); err != nil {
		return err
	}
	s.round = nil
	s.setup = roundtypes.NewSetup()
	s.view = ViewSetup
	return nil
}
