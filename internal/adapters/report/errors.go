package report

import "errors"

// Sentinel kinds for rendering errors.
var (
	ErrUnknownFormat = errors.New("unknown report format")
	ErrRender        = errors.New("report render failed")
)
