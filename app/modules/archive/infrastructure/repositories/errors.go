package archivedb

import "errors"

// Sentinel errors for the archive storage layer.
var (
	// ErrCorrupt indicates the stored archive value is not a JSON list of rounds.
	// Callers that list treat it as an empty archive; callers that write must not
	// overwrite it blindly.
	ErrCorrupt = errors.New("archive data is corrupt")

	// ErrStoreClosed indicates an operation on a store that has been shut down.
	ErrStoreClosed = errors.New("store is closed")
)
