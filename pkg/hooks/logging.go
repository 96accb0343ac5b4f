package hooks

import (
	"github.com/lerenn/jsprune/pkg/logger"
)

// LoggingHook logs the start, completion and failure of operations.
type LoggingHook struct {
	logger logger.Logger
}

// NewLoggingHook creates a new LoggingHook instance.
func NewLoggingHook(l logger.Logger) *LoggingHook {
	return &LoggingHook{logger: l}
}

// Name returns the hook name.
func (h *LoggingHook) Name() string {
	return "logging"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *LoggingHook) Priority() int {
	return 100
}

// Execute is a no-op for LoggingHook as it implements specific methods.
func (h *LoggingHook) Execute(_ *HookContext) error {
	return nil
}

// PreExecute logs the start of an operation.
func (h *LoggingHook) PreExecute(ctx *HookContext) error {
	h.logger.Logf("Starting operation: %s with params: %v", ctx.OperationName, ctx.Parameters)
	return nil
}

// PostExecute logs the completion of an operation.
func (h *LoggingHook) PostExecute(ctx *HookContext) error {
	h.logger.Logf("Operation completed: %s with results: %v", ctx.OperationName, ctx.Results)
	return nil
}

// OnError logs when an operation fails.
func (h *LoggingHook) OnError(ctx *HookContext) error {
	h.logger.Logf("Operation failed: %s, error: %v", ctx.OperationName, ctx.Error)
	return nil
}
