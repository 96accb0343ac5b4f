package orphans

import "errors"

// Error definitions for orphans package.
var (
	ErrMalformedOutput = errors.New("malformed orphan list")
	ErrDirectoryCheck  = errors.New("failed to check scan directory")
)
