package prospects

import "errors"

// ErrNotFound is returned when a prospect, note or request does not exist.
var ErrNotFound = errors.New("not found")
