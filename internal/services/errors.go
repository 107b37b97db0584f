package services

import "errors"

// Invalid-input failures surfaced by the tour constructor.
// Handlers map both to a client error; everything else in this package is a
// total function over well-formed tours and never fails.
var (
	ErrNoWaypoints          = errors.New("waypoint list must not be empty")
	ErrStartIndexOutOfRange = errors.New("start index out of range")
)
