// Package cli provides the shared flags and wiring of the jsprune commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lerenn/jsprune/pkg/cleanup"
	"github.com/lerenn/jsprune/pkg/cleanup/consts"
	"github.com/lerenn/jsprune/pkg/config"
	"github.com/lerenn/jsprune/pkg/dependencies"
	"github.com/lerenn/jsprune/pkg/hooks"
	"github.com/lerenn/jsprune/pkg/logger"
	"github.com/lerenn/jsprune/pkg/prompt"
	"github.com/lerenn/jsprune/pkg/report"
	"github.com/lerenn/jsprune/pkg/runner"
)

var (
	// Quiet suppresses all output except warnings and errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// RootDir is the project root, the working directory when empty.
	RootDir string
	// Yes answers every confirmation with yes.
	Yes bool
	// DryRun answers every confirmation with no.
	DryRun bool
	// NoColor disables colored output.
	NoColor bool
)

// ProjectRoot returns the absolute project root.
func ProjectRoot() (string, error) {
	if RootDir != "" {
		return filepath.Abs(RootDir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWorkingDirectory, err)
	}
	return wd, nil
}

// GetConfigPath returns the config file path used for the project at root.
func GetConfigPath(root string) string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return filepath.Join(root, config.DefaultFileName)
}

// NewLogger returns the logger matching the verbosity flags.
func NewLogger() logger.Logger {
	if Verbose {
		return logger.NewVerboseLogger()
	}
	return logger.NewNoopLogger()
}

// NewPrinter returns the printer matching the output flags.
func NewPrinter(out io.Writer) *report.Printer {
	return report.NewPrinter(report.NewPrinterParams{Out: out, Quiet: Quiet, NoColor: NoColor})
}

// NewPrompter returns the prompter matching the confirmation flags.
func NewPrompter(in io.Reader, out io.Writer) (prompt.Prompter, error) {
	switch {
	case Yes && DryRun:
		return nil, ErrConflictingFlags
	case Yes:
		return prompt.NewAutoPrompt(true, out), nil
	case DryRun:
		return prompt.NewAutoPrompt(false, out), nil
	default:
		return prompt.NewPromptWithIO(in, out), nil
	}
}

// NewDependencies wires the dependencies of the project at root from the flags.
func NewDependencies(root string, in io.Reader, out io.Writer) (*dependencies.Dependencies, error) {
	p, err := NewPrompter(in, out)
	if err != nil {
		return nil, err
	}

	l := NewLogger()
	hm := hooks.NewHookManager()
	if Verbose {
		loggingHook := hooks.NewLoggingHook(l)
		for _, operation := range consts.All {
			if err := hm.Register(operation, loggingHook); err != nil {
				return nil, err
			}
		}
	}

	return dependencies.New().
		WithLogger(l).
		WithRunner(runner.NewRunner(l)).
		WithConfig(config.NewManager(GetConfigPath(root))).
		WithPrompt(p).
		WithPrinter(NewPrinter(out)).
		WithHookManager(hm), nil
}

// NewCleaner creates the Cleaner of the project selected by the flags.
func NewCleaner(in io.Reader, out io.Writer) (cleanup.Cleaner, error) {
	root, err := ProjectRoot()
	if err != nil {
		return nil, err
	}

	deps, err := NewDependencies(root, in, out)
	if err != nil {
		return nil, err
	}

	return cleanup.NewCleaner(cleanup.NewCleanerParams{
		Dependencies: deps,
		RootDir:      root,
	})
}
