// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrAtomicWrite is returned when a file cannot be written and renamed into place.
	ErrAtomicWrite = errors.New("failed to write file atomically")
	// ErrIsDirectory is returned when a file operation targets a directory.
	ErrIsDirectory = errors.New("path is a directory")
	// ErrExecutableNotFound is returned when a command is not in PATH.
	ErrExecutableNotFound = errors.New("executable not found in PATH")
)
