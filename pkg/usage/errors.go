package usage

import "errors"

// Error definitions for usage package.
var (
	ErrWalk      = errors.New("failed to walk project tree")
	ErrGitignore = errors.New("failed to read .gitignore")
)
