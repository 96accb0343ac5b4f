package cleanup

import "errors"

// Error definitions for the cleanup package.
var (
	ErrRootDirEmpty    = errors.New("project root cannot be empty")
	ErrConfigLoad      = errors.New("failed to load configuration")
	ErrGitignoreLoad   = errors.New("failed to load .gitignore")
	ErrContentCache    = errors.New("failed to create content cache")
	ErrToolUnavailable = errors.New("analysis tool unavailable")
	ErrCandidateFile   = errors.New("candidate is not an existing file")
)
