package cleanup

import (
	"context"
	"fmt"

	"github.com/lerenn/jsprune/pkg/cleanup/consts"
	"github.com/lerenn/jsprune/pkg/hooks"
	"github.com/lerenn/jsprune/pkg/report"
)

// Run executes the whole pipeline. Only a missing analysis tool stops it; every
// other failure is reported and the next step still runs.
func (c *realCleaner) Run(ctx context.Context) (report.Summary, error) {
	var summary report.Summary

	params := map[string]interface{}{
		"rootDir":  c.rootDir,
		"scanDirs": c.config.ScanDirs,
	}
	err := c.executeWithHooks(consts.Run, params, func(hctx *hooks.HookContext) error {
		if err := c.EnsureTools(ctx, c.config.DependencyTool, c.config.ModuleGraphTool); err != nil {
			return err
		}

		deps, err := c.RemoveUnusedDependencies(ctx)
		if err != nil {
			c.deps.Printer.Errorf("Error checking unused packages: %v", err)
		}
		summary.Add(deps)

		for _, dir := range c.config.ScanDirs {
			files, err := c.DeleteOrphans(ctx, dir)
			if err != nil {
				c.deps.Printer.Errorf("Error checking orphan files in %s: %v", dir, err)
			}
			summary.Add(files)
		}

		hctx.Results["packagesRemoved"] = len(summary.Packages.Done)
		hctx.Results["filesDeleted"] = len(summary.Files.Done)
		hctx.Results["reclaimedBytes"] = summary.ReclaimedBytes
		return nil
	})
	if err != nil {
		return summary, err
	}

	c.deps.Printer.Summary(summary)
	return summary, nil
}

// EnsureTools checks every tool in order and stops at the first unavailable one.
func (c *realCleaner) EnsureTools(ctx context.Context, tools ...string) error {
	params := map[string]interface{}{"tools": tools}
	return c.executeWithHooks(consts.EnsureTools, params, func(_ *hooks.HookContext) error {
		if err := c.prepareTools(); err != nil {
			return err
		}
		for _, tool := range tools {
			if err := c.checker.Ensure(ctx, tool); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrToolUnavailable, tool, err)
			}
		}
		return nil
	})
}
