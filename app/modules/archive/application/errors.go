package archiveservice

import "errors"

// Archive service errors. Storage failures are reported to the user and never
// end the process.
var (
	// ErrRoundNotFinished indicates an attempt to archive a round that is still in play.
	ErrRoundNotFinished = errors.New("round is not finished")

	// ErrArchiveUnreadable indicates the archive could not be read or decoded.
	ErrArchiveUnreadable = errors.New("archive could not be read")

	// ErrArchiveWrite indicates the archive list could not be written back.
	ErrArchiveWrite = errors.New("archive could not be written")

	// ErrIndexOutOfRange indicates a saved game position that does not exist.
	ErrIndexOutOfRange = errors.New("saved game index out of range")

	// ErrUnrecognizedDate indicates a --since value that could not be parsed.
	ErrUnrecognizedDate = errors.New("unrecognized date")
)
