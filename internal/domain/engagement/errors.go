package engagement

import "errors"

var (
	// ErrNotFound is returned when no engagement record exists for a student.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedFormat is returned for an unknown export format.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrCacheMiss is returned by a DashboardCache holding no entry.
	ErrCacheMiss = errors.New("cache miss")
)
