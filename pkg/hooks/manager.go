package hooks

import (
	"fmt"
	"sort"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// HookManagerInterface defines the interface for hook management.
type HookManagerInterface interface {
	// Hook registration.
	Register(operation string, hook Hook) error
	RegisterPreHook(operation string, hook PreHook) error
	RegisterPostHook(operation string, hook PostHook) error
	RegisterErrorHook(operation string, hook ErrorHook) error

	// Hook execution.
	ExecutePreHooks(operation string, ctx *HookContext) error
	ExecutePostHooks(operation string, ctx *HookContext) error
	ExecuteErrorHooks(operation string, ctx *HookContext) error
}

// HookManager manages hook registration and execution.
type HookManager struct {
	preHooks   map[string][]PreHook
	postHooks  map[string][]PostHook
	errorHooks map[string][]ErrorHook
	mu         sync.RWMutex
}

// NewHookManager creates a new HookManager instance.
func NewHookManager() HookManagerInterface {
	return &HookManager{
		preHooks:   make(map[string][]PreHook),
		postHooks:  make(map[string][]PostHook),
		errorHooks: make(map[string][]ErrorHook),
	}
}

// Register registers hook for every stage it implements.
func (hm *HookManager) Register(operation string, hook Hook) error {
	if hook == nil {
		return ErrNilHook
	}

	registered := false
	if h, ok := hook.(PreHook); ok {
		if err := hm.RegisterPreHook(operation, h); err != nil {
			return err
		}
		registered = true
	}
	if h, ok := hook.(PostHook); ok {
		if err := hm.RegisterPostHook(operation, h); err != nil {
			return err
		}
		registered = true
	}
	if h, ok := hook.(ErrorHook); ok {
		if err := hm.RegisterErrorHook(operation, h); err != nil {
			return err
		}
		registered = true
	}

	if !registered {
		return fmt.Errorf("%w: %s", ErrUnsupportedHook, hook.Name())
	}
	return nil
}

// RegisterPreHook registers a pre-hook for a specific operation.
func (hm *HookManager) RegisterPreHook(operation string, hook PreHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()

	hm.preHooks[operation] = append(hm.preHooks[operation], hook)
	sort.SliceStable(hm.preHooks[operation], func(i, j int) bool {
		return hm.preHooks[operation][i].Priority() < hm.preHooks[operation][j].Priority()
	})
	return nil
}

// RegisterPostHook registers a post-hook for a specific operation.
func (hm *HookManager) RegisterPostHook(operation string, hook PostHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()

	hm.postHooks[operation] = append(hm.postHooks[operation], hook)
	sort.SliceStable(hm.postHooks[operation], func(i, j int) bool {
		return hm.postHooks[operation][i].Priority() < hm.postHooks[operation][j].Priority()
	})
	return nil
}

// RegisterErrorHook registers an error-hook for a specific operation.
func (hm *HookManager) RegisterErrorHook(operation string, hook ErrorHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()

	hm.errorHooks[operation] = append(hm.errorHooks[operation], hook)
	sort.SliceStable(hm.errorHooks[operation], func(i, j int) bool {
		return hm.errorHooks[operation][i].Priority() < hm.errorHooks[operation][j].Priority()
	})
	return nil
}

// ExecutePreHooks executes all pre-hooks for a specific operation.
func (hm *HookManager) ExecutePreHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.preHooks[operation] {
		if err := hook.PreExecute(ctx); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPreHookFailed, hook.Name(), err)
		}
	}

	return nil
}

// ExecutePostHooks executes all post-hooks for a specific operation.
func (hm *HookManager) ExecutePostHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.postHooks[operation] {
		if err := hook.PostExecute(ctx); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPostHookFailed, hook.Name(), err)
		}
	}

	return nil
}

// ExecuteErrorHooks executes all error-hooks for a specific operation.
func (hm *HookManager) ExecuteErrorHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.errorHooks[operation] {
		if err := hook.OnError(ctx); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrErrorHookFailed, hook.Name(), err)
		}
	}

	return nil
}
