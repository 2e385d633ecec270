package roundservice

// AddPlayer appends a trimmed name to the roster. Blank names are rejected and
// leave the roster unchanged.
func (s *Session) AddPlayer(name string) error {
	if err := s.requireView(ViewSetup); err != nil {
		return err
	}
	return s.setup.AddPlayer(name)
}

// SetHoleCount records the raw hole count input.
func (s *Session) SetHoleCount(raw string) error {
	if err := s.requireView(ViewSetup); err != nil {
		return err
	}
	s.setup.SetHoleCount(raw)
	return nil
}

// CanStart reports whether Start would succeed.
func (s *Session) CanStart() bool {
	return s.view == ViewSetup && s.setup.CanStart()
}

// Start begins play with the configured roster and hole count.
func (s *Session) Start() error {
	if err := s.requireView(ViewSetup); err != nil {
		return err
	}
	round, err := s.setup.Start(s.clock)
	if err != nil {
		return err
	}
	s.round = round
	s.view = ViewPlaying
	s.logger.Info("Round started",
		"round_id", round.ID().String(),
		"hole_count", round.HoleCount(),
		"players", len(round.Players()),
	)
	return nil
}
