package depcheck

import "errors"

// Error definitions for depcheck package.
var (
	ErrMalformedReport = errors.New("malformed dependency report")
)
