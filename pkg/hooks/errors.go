package hooks

import "errors"

// Error definitions for hook management.
var (
	ErrNilHook         = errors.New("hook cannot be nil")
	ErrUnsupportedHook = errors.New("unsupported hook type")
	ErrPreHookFailed   = errors.New("pre-hook failed")
	ErrPostHookFailed  = errors.New("post-hook failed")
	ErrErrorHookFailed = errors.New("error-hook failed")
)
