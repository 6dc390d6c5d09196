package alternance

import "errors"

var (
	// ErrNotFound is returned when a mentor or contract does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition is returned when a contract status change is not allowed.
	ErrInvalidTransition = errors.New("invalid contract status transition")
	// ErrMentorUnavailable is returned when a mentor is inactive or already
	// supervises the maximum number of contracts.
	ErrMentorUnavailable = errors.New("mentor unavailable")
)
