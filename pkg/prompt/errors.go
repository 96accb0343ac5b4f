// Package prompt provides interactive prompt functionality for jsprune.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrNoScriptedAnswer = errors.New("no scripted answer left")
)
