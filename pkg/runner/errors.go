package runner

import "errors"

// Error definitions for runner package.
var (
	// ErrCommandExecution is returned when a command cannot be started or is interrupted.
	ErrCommandExecution = errors.New("command execution failed")
)
