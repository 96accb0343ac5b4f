// Package dependencies provides a centralized dependency container for jsprune.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/jsprune/pkg/config"
	"github.com/lerenn/jsprune/pkg/fs"
	"github.com/lerenn/jsprune/pkg/hooks"
	"github.com/lerenn/jsprune/pkg/logger"
	"github.com/lerenn/jsprune/pkg/packagemanager"
	"github.com/lerenn/jsprune/pkg/prompt"
	"github.com/lerenn/jsprune/pkg/report"
	"github.com/lerenn/jsprune/pkg/runner"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing                     = errors.New("fs dependency is required but not set")
	ErrRunnerMissing                 = errors.New("runner dependency is required but not set")
	ErrConfigMissing                 = errors.New("config dependency is required but not set")
	ErrLoggerMissing                 = errors.New("logger dependency is required but not set")
	ErrPromptMissing                 = errors.New("prompt dependency is required but not set")
	ErrHookManagerMissing            = errors.New("hook manager dependency is required but not set")
	ErrPrinterMissing                = errors.New("printer dependency is required but not set")
	ErrPackageManagerProviderMissing = errors.New("package manager provider dependency is required but not set")
)

// PackageManagerProvider builds the package manager of a project.
type PackageManagerProvider func(params packagemanager.NewPackageManagerParams) (packagemanager.PackageManager, error)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS                     fs.FS
	Runner                 runner.Runner
	Config                 config.Manager
	Logger                 logger.Logger
	Prompt                 prompt.Prompter
	HookManager            hooks.HookManagerInterface
	Printer                *report.Printer
	PackageManagerProvider PackageManagerProvider
}

// New creates a new Dependencies instance with sensible defaults.
// Config is left nil as it depends on the project root.
func New() *Dependencies {
	l := logger.NewNoopLogger()
	return &Dependencies{
		FS:                     fs.NewFS(),
		Runner:                 runner.NewRunner(l),
		Logger:                 l,
		Prompt:                 prompt.NewPrompt(),
		HookManager:            hooks.NewHookManager(),
		Printer:                report.NewPrinter(report.NewPrinterParams{}),
		PackageManagerProvider: packagemanager.NewPackageManager,
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithRunner sets the command runner and returns the instance for chaining.
func (d *Dependencies) WithRunner(r runner.Runner) *Dependencies {
	d.Runner = r
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// WithPrinter sets the output printer and returns the instance for chaining.
func (d *Dependencies) WithPrinter(p *report.Printer) *Dependencies {
	d.Printer = p
	return d
}

// WithPackageManagerProvider sets the package manager provider and returns the instance for chaining.
func (d *Dependencies) WithPackageManagerProvider(p PackageManagerProvider) *Dependencies {
	d.PackageManagerProvider = p
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Runner == nil, ErrRunnerMissing},
		{d.Config == nil, ErrConfigMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Prompt == nil, ErrPromptMissing},
		{d.HookManager == nil, ErrHookManagerMissing},
		{d.Printer == nil, ErrPrinterMissing},
		{d.PackageManagerProvider == nil, ErrPackageManagerProviderMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
