package roundtypes

import "errors"

// Validation errors for round setup and play. Callers treat these as rejected
// input: nothing changed and the round stays in the same phase.
var (
	// ErrEmptyPlayerName indicates a roster entry that is blank after trimming.
	ErrEmptyPlayerName = errors.New("player name cannot be empty")

	// ErrNotReady indicates Start was called without players or a usable hole count.
	ErrNotReady = errors.New("round is not ready to start")

	// ErrRoundFinished indicates the round has already been completed.
	ErrRoundFinished = errors.New("round has already finished")

	// ErrHoleNotCurrent indicates an operation targeted a hole other than the current one.
	ErrHoleNotCurrent = errors.New("hole is not the current hole")

	// ErrParAlreadySet indicates par for the hole was already entered.
	ErrParAlreadySet = errors.New("par already set for hole")

	// ErrEmptyPar indicates a blank par value.
	ErrEmptyPar = errors.New("par cannot be empty")

	// ErrParNotSet indicates scores were entered before the current hole's par.
	ErrParNotSet = errors.New("par not set for current hole")

	// ErrPlayerOutOfRange indicates a roster slot that does not exist.
	ErrPlayerOutOfRange = errors.New("player index out of range")
)
