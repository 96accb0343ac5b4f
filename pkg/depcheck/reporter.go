package depcheck

import (
	"context"
	"fmt"

	"github.com/lerenn/jsprune/pkg/logger"
	"github.com/lerenn/jsprune/pkg/packagemanager"
	"github.com/lerenn/jsprune/pkg/prompt"
	"github.com/lerenn/jsprune/pkg/report"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=reporter.go -destination=mocks/reporter.gen.go -package=mocks

// Reporter interface finds unused packages and removes the confirmed ones.
type Reporter interface {
	// Find runs the dependency-analysis tool and returns the unused package names.
	Find(ctx context.Context) ([]string, error)
	// Remove asks for each package whether to uninstall it and does so on confirmation.
	Remove(ctx context.Context, pkgs []string) report.Tally
}

// NewReporterParams contains parameters for creating a new Reporter.
type NewReporterParams struct {
	PackageManager packagemanager.PackageManager
	Prompt         prompt.Prompter
	Logger         logger.Logger
	Printer        *report.Printer
	Tool           string
}

type realReporter struct {
	pm      packagemanager.PackageManager
	prompt  prompt.Prompter
	logger  logger.Logger
	printer *report.Printer
	tool    string
}

// NewReporter creates a new Reporter.
func NewReporter(params NewReporterParams) Reporter {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realReporter{
		pm:      params.PackageManager,
		prompt:  params.Prompt,
		logger:  l,
		printer: params.Printer,
		tool:    params.Tool,
	}
}

// Find runs the dependency-analysis tool in JSON mode.
// The tool exits non-zero when it finds something, so only the output is looked at.
// Output that is not a JSON report is printed and treated as nothing found.
func (r *realReporter) Find(ctx context.Context) ([]string, error) {
	r.printer.Infof("Running %s to find unused packages...", r.tool)

	result, err := r.pm.Exec(ctx, r.tool, "--json")
	if err != nil {
		return nil, err
	}

	rep, err := ParseReport([]byte(result.Output()))
	if err != nil {
		r.printer.Errorf("Error: unable to parse JSON output from %s. Raw output:", r.tool)
		r.printer.Errorf("%s", result.Output())
		r.logger.Logf("%v", err)
		return nil, nil
	}

	return rep.Unused(), nil
}

// Remove asks for each package individually. A failed removal is reported and the
// remaining packages are still processed.
func (r *realReporter) Remove(ctx context.Context, pkgs []string) report.Tally {
	var tally report.Tally
	if len(pkgs) == 0 {
		r.printer.Infof("No unused packages found.")
		return tally
	}

	r.printer.Infof("Unused packages detected:")
	r.printer.Items(pkgs)

	for _, pkg := range pkgs {
		confirm, err := r.prompt.PromptForConfirmation(fmt.Sprintf("Uninstall %s?", pkg))
		if err != nil {
			r.printer.Warnf("Could not read the answer for %s, assuming no: %v", pkg, err)
		}
		if !confirm {
			r.printer.Infof("Keeping %s.", pkg)
			tally.Skipped = append(tally.Skipped, pkg)
			continue
		}

		r.printer.Infof("Uninstalling %s...", pkg)
		if err := r.pm.Remove(ctx, pkg); err != nil {
			r.printer.Errorf("Error uninstalling %s: %v", pkg, err)
			tally.Failed = append(tally.Failed, pkg)
			continue
		}
		r.printer.Successf("%s uninstalled successfully.", pkg)
		tally.Done = append(tally.Done, pkg)
	}

	return tally
}
