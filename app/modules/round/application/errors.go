package roundservice

import "errors"

var (
	// ErrWrongView indicates an action that the current screen does not offer.
	ErrWrongView = errors.New("action not available in the current view")

	// ErrNoRound indicates a round action with no round in play.
	ErrNoRound = errors.New("no round in progress")
)
