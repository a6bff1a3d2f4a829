package repository

import "errors"

// Sentinel kinds for history errors.
var (
	ErrNotFound     = errors.New("evaluation not found")
	ErrInvalidLimit = errors.New("invalid history limit")
	ErrOpenStore    = errors.New("open history store failed")
)
