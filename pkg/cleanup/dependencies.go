package cleanup

import (
	"context"

	"github.com/lerenn/jsprune/pkg/cleanup/consts"
	"github.com/lerenn/jsprune/pkg/hooks"
	"github.com/lerenn/jsprune/pkg/report"
)

// RemoveUnusedDependencies asks the dependency tool for unused packages and offers to
// uninstall each of them.
func (c *realCleaner) RemoveUnusedDependencies(ctx context.Context) (report.Summary, error) {
	var summary report.Summary

	params := map[string]interface{}{"tool": c.config.DependencyTool}
	err := c.executeWithHooks(consts.RemoveUnusedDependencies, params, func(hctx *hooks.HookContext) error {
		if err := c.prepareTools(); err != nil {
			return err
		}

		pkgs, err := c.reporter.Find(ctx)
		if err != nil {
			return err
		}

		summary.Packages = c.reporter.Remove(ctx, pkgs)
		hctx.Results["unused"] = pkgs
		hctx.Results["removed"] = summary.Packages.Done
		return nil
	})

	return summary, err
}
