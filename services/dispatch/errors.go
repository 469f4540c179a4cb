package dispatch

import "errors"

// Dispatch error taxonomy.
//
// ErrAlreadyClaimed and ErrDriverBusy are expected concurrency outcomes of a
// claim attempt, not failures: callers advance to the next candidate.
// ErrStorageUnavailable is the single failure mode for backing-store trouble.
var (
	ErrInvalidCoordinate  = errors.New("coordinate out of range")
	ErrStorageUnavailable = errors.New("dispatch storage unavailable")
	ErrAlreadyClaimed     = errors.New("order already claimed by another driver")
	ErrDriverBusy         = errors.New("driver already committed to another order")
	ErrNotFound           = errors.New("not found")
	ErrNoCandidates       = errors.New("no drivers available within radius")
	ErrUnknownCategory    = errors.New("unknown order category")
)
