package roundservice

import (
	"time"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
	scoredomain "github.com/Black-And-White-Club/frolf-scorecard/app/modules/score/domain"
)

// State is everything a presentation layer needs to draw the current screen.
type State struct {
	View           View                      `json:"view"`
	HoleCountInput string                    `json:"holeCountInput"`
	Players        []string                  `json:"players"`
	CanStart       bool                      `json:"canStart"`
	Round          *roundtypes.Snapshot      `json:"round,omitempty"`
	PendingPlayers []int                     `json:"pendingPlayers,omitempty"`
	Summary        *scoredomain.RoundSummary `json:"summary,omitempty"`
	CanSave        bool                      `json:"canSave"`
	SavedGames     []SavedGame               `json:"savedGames,omitempty"`
}

// SavedGame is one line of the saved games list.
type SavedGame struct {
	Index           int                        `json:"index"`
	Date            time.Time                  `json:"date"`
	Summary         []scoredomain.PlayerTotal  `json:"summary"`
	DurationMinutes *int                       `json:"durationMinutes,omitempty"`
	HoleDurations   []scoredomain.HoleDuration `json:"holeDurations"`
}

// NewSavedGame builds the list line for the record at index.
func NewSavedGame(index int, record archivetypes.ArchivedRound) SavedGame {
	g := SavedGame{
		Index:         index,
		Date:          record.Date,
		Summary:       record.Summary,
		HoleDurations: record.HoleDurations,
	}
	if m, ok := record.DurationMinutes(); ok {
		g.DurationMinutes = &m
	}
	return g
}

// State snapshots the session for rendering.
func (s *Session) State() State {
	st := State{
		View:           s.view,
		HoleCountInput: s.setup.HoleCountInput(),
		CanStart:       s.CanStart(),
		CanSave:        s.CanSave(),
	}
	for _, p := range s.setup.Players() {
		st.Players = append(st.Players, p.Name)
	}

	if s.round != nil && (s.view == ViewPlaying || s.view == ViewSummary) {
		snap := s.round.Snapshot()
		st.Round = &snap
		st.PendingPlayers = s.round.PendingPlayers()
		if s.view == ViewSummary {
			summary := scoredomain.Summarize(snap)
			st.Summary = &summary
		}
	}

	if s.view == ViewSavedGames {
		st.SavedGames = make([]SavedGame, len(s.saved))
		for i, r := range s.saved {
			st.SavedGames[i] = NewSavedGame(i, r)
		}
	}
	return st
}
