package tools

import "errors"

// Error definitions for tools package.
var (
	ErrInstallDeclined = errors.New("tool is required but its installation was declined")
	ErrInstallFailed   = errors.New("tool installation failed")
)
