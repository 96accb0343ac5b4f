// Package hooks provides a middleware system for jsprune operations.
package hooks

// HookContext provides context for hook execution.
type HookContext struct {
	OperationName string
	Parameters    map[string]interface{}
	Results       map[string]interface{}
	Error         error
	Metadata      map[string]interface{}
}

// NewHookContext creates a context for one execution of operation.
func NewHookContext(operation string, params map[string]interface{}) *HookContext {
	if params == nil {
		params = make(map[string]interface{})
	}
	return &HookContext{
		OperationName: operation,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      make(map[string]interface{}),
	}
}

// Hook defines the interface for all hooks.
type Hook interface {
	Name() string
	Priority() int
	Execute(ctx *HookContext) error
}

// PreHook executes before an operation.
type PreHook interface {
	Hook
	PreExecute(ctx *HookContext) error
}

// PostHook executes after an operation.
type PostHook interface {
	Hook
	PostExecute(ctx *HookContext) error
}

// ErrorHook executes when an operation fails.
type ErrorHook interface {
	Hook
	OnError(ctx *HookContext) error
}
