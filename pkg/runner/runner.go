// Package runner executes external commands and captures their output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/lerenn/jsprune/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=runner.go -destination=mocks/runner.gen.go -package=mocks

// Command describes an external process invocation.
type Command struct {
	Dir  string
	Name string
	Args []string
}

// String renders the command line as typed in a shell.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Output returns stdout with leading and trailing whitespace trimmed.
func (r Result) Output() string {
	return strings.TrimSpace(r.Stdout)
}

// Success reports whether the command exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner interface runs external commands to completion.
type Runner interface {
	// Run executes the command and returns its captured output whatever the exit code.
	// The error is only set when the command could not be executed at all.
	Run(ctx context.Context, cmd Command) (Result, error)
}

type realRunner struct {
	logger logger.Logger
}

// NewRunner creates a new Runner echoing diagnostics to the given logger.
func NewRunner(l logger.Logger) Runner {
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realRunner{logger: l}
}

// Run executes the command and returns its captured output whatever the exit code.
func (r *realRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	r.logger.Logf("Running command: %s", cmd)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		result.ExitCode = exitErr.ExitCode()
	default:
		r.logger.Logf("Command could not be executed: %v", err)
		return result, fmt.Errorf("%w: %s: %w", ErrCommandExecution, cmd.Name, err)
	}

	r.logger.Logf("Return code: %d", result.ExitCode)
	if result.Stdout != "" {
		r.logger.Logf("Stdout: %s", result.Stdout)
	}
	if result.Stderr != "" {
		r.logger.Logf("Stderr: %s", result.Stderr)
	}

	return result, nil
}
