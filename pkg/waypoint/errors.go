package waypoint

import "errors"

var (
	// ErrNotFound is returned when an operation references an unknown id.
	// It is not fatal; the operation is a no-op.
	ErrNotFound = errors.New("waypoint not found")

	// ErrMalformedSeed is returned when seed positions cannot be used to
	// initialize a store.
	ErrMalformedSeed = errors.New("malformed seed")

	// ErrInvalidPosition is returned for positions with NaN or infinite components.
	ErrInvalidPosition = errors.New("invalid position")
)
