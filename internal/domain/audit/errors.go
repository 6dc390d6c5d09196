package audit

import "errors"

// ErrNotFound is returned when a log entry does not exist.
var ErrNotFound = errors.New("not found")
