package intake

import "errors"

// Sentinel kinds for intake errors.
var (
	ErrUnknownFormat = errors.New("unknown intake format")
	ErrMalformedFile = errors.New("malformed indicator file")
	ErrBadValue      = errors.New("bad indicator value")
)
