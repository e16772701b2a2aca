package segment

import "errors"

var (
	// ErrPersistFailed indicates the segment could not be encrypted or written.
	// The segment stays changed so Save can be retried.
	ErrPersistFailed = errors.New("segment.persist_failed")
)
