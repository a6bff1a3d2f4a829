package advice

import "errors"

// Sentinel kinds for advice errors.
var (
	ErrInvalidCatalog = errors.New("invalid advice catalog")
)
