// Package tools makes sure the analysis tools can run in the project.
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/lerenn/jsprune/pkg/logger"
	"github.com/lerenn/jsprune/pkg/packagemanager"
	"github.com/lerenn/jsprune/pkg/prompt"
	"github.com/lerenn/jsprune/pkg/report"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=tools.go -destination=mocks/tools.gen.go -package=mocks

// Checker interface verifies that a tool is runnable, offering to install it otherwise.
type Checker interface {
	// Ensure returns nil once the tool runs. A declined or failed install is returned as an error.
	Ensure(ctx context.Context, tool string) error
}

// NewCheckerParams contains parameters for creating a new Checker.
type NewCheckerParams struct {
	PackageManager packagemanager.PackageManager
	Prompt         prompt.Prompter
	Logger         logger.Logger
	Printer        *report.Printer
	// MinVersions maps a tool to the oldest version accepted without warning.
	MinVersions map[string]string
}

type realChecker struct {
	pm          packagemanager.PackageManager
	prompt      prompt.Prompter
	logger      logger.Logger
	printer     *report.Printer
	minVersions map[string]string
}

// NewChecker creates a new Checker.
func NewChecker(params NewCheckerParams) Checker {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realChecker{
		pm:          params.PackageManager,
		prompt:      params.Prompt,
		logger:      l,
		printer:     params.Printer,
		minVersions: params.MinVersions,
	}
}

// Ensure runs the tool's version query and offers to install the tool when it fails.
func (c *realChecker) Ensure(ctx context.Context, tool string) error {
	result, err := c.pm.Exec(ctx, tool, "--version")
	if err == nil && result.Success() {
		c.checkVersion(tool, result.Output())
		return nil
	}

	if err != nil {
		c.printer.Warnf("%s is not available through %s: %v", tool, c.pm.Name(), err)
	} else {
		c.printer.Warnf("%s is not available through %s.", tool, c.pm.Name())
	}

	install, perr := c.prompt.PromptForConfirmation(fmt.Sprintf("Install %s as a dev dependency?", tool))
	if perr != nil {
		return fmt.Errorf("%w: %s: %w", ErrInstallDeclined, tool, perr)
	}
	if !install {
		return fmt.Errorf("%w: %s", ErrInstallDeclined, tool)
	}

	c.printer.Infof("Installing %s...", tool)
	if err := c.pm.AddDev(ctx, tool); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInstallFailed, tool, err)
	}
	c.printer.Successf("%s installed successfully.", tool)

	return nil
}

// checkVersion warns when the reported version is older than the configured minimum.
func (c *realChecker) checkVersion(tool, output string) {
	minimum, ok := c.minVersions[tool]
	if !ok {
		return
	}

	raw := ParseVersionOutput(output)
	version, err := semver.NewVersion(raw)
	if err != nil {
		c.printer.Warnf("Could not parse %s version %q, skipping the version check.", tool, raw)
		c.logger.Logf("%v", err)
		return
	}

	constraint, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		c.printer.Warnf("Invalid minimum version %q for %s: %v", minimum, tool, err)
		return
	}

	if !constraint.Check(version) {
		c.printer.Warnf("%s %s is older than the expected %s, results may differ.", tool, version, minimum)
	}
}

// ParseVersionOutput extracts the version token from a `--version` output,
// which is the last field of the first non-empty line.
func ParseVersionOutput(output string) string {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			return fields[len(fields)-1]
		}
	}
	return ""
}
