package cli

import "errors"

// Error definitions for the CLI.
var (
	ErrConflictingFlags = errors.New("--yes and --dry-run cannot be used together")
	ErrWorkingDirectory = errors.New("failed to determine the working directory")
	ErrConfigExists     = errors.New("configuration file already exists")
)
