package packagemanager

import "errors"

// Error definitions for packagemanager package.
var (
	ErrPackageManagerNotFound    = errors.New("package manager not found in PATH")
	ErrUnsupportedPackageManager = errors.New("unsupported package manager")
	ErrCommandFailed             = errors.New("package manager command failed")
)
