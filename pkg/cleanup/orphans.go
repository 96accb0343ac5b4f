package cleanup

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/lerenn/jsprune/pkg/cleanup/consts"
	"github.com/lerenn/jsprune/pkg/hooks"
	"github.com/lerenn/jsprune/pkg/report"
)

// DeleteOrphans asks the module-graph tool for the orphan files of dir, then checks
// each of them for textual references before offering to delete it.
// A relative dir is taken from the project root.
func (c *realCleaner) DeleteOrphans(ctx context.Context, dir string) (report.Summary, error) {
	var summary report.Summary
	dir = c.resolve(dir)

	params := map[string]interface{}{"dir": dir, "tool": c.config.ModuleGraphTool}
	err := c.executeWithHooks(consts.DeleteOrphans, params, func(hctx *hooks.HookContext) error {
		if err := c.prepareTools(); err != nil {
			return err
		}

		files, err := c.scanner.Scan(ctx, dir)
		if err != nil {
			return err
		}

		if len(files) == 0 {
			c.deps.Printer.Infof("No orphan files found in %s.", c.display(dir))
			return nil
		}

		c.deps.Printer.Infof("Orphan files detected in %s:", c.display(dir))
		c.deps.Printer.Items(files)

		for _, file := range files {
			c.deleteOrphan(filepath.Join(dir, file), &summary)
		}

		hctx.Results["orphans"] = files
		hctx.Results["deleted"] = summary.Files.Done
		return nil
	})

	return summary, err
}

// deleteOrphan runs the confirmation steps for one file and records the outcome.
// When references exist, a "no" to the override skips the file without asking again.
func (c *realCleaner) deleteOrphan(path string, summary *report.Summary) {
	name := c.display(path)

	isFile, err := c.deps.FS.IsRegularFile(path)
	if err != nil {
		c.deps.Printer.Warnf("Could not check %s: %v", name, err)
	}
	if !isFile {
		c.deps.Printer.Warnf("%s does not exist or is not a file.", name)
		summary.Files.Skipped = append(summary.Files.Skipped, name)
		return
	}

	refs, err := c.verifier.FindReferences(path)
	if err != nil {
		c.deps.Printer.Errorf("Error checking references to %s: %v", name, err)
		summary.Files.Failed = append(summary.Files.Failed, name)
		return
	}

	if len(refs) > 0 {
		c.deps.Printer.Warnf("%s appears to be imported by:", name)
		displayed := make([]string, 0, len(refs))
		for _, ref := range refs {
			displayed = append(displayed, c.display(ref))
		}
		c.deps.Printer.Items(displayed)

		if !c.confirm(fmt.Sprintf("%s is still referenced. Delete it anyway?", name)) {
			c.deps.Printer.Infof("Keeping %s.", name)
			summary.Files.Skipped = append(summary.Files.Skipped, name)
			return
		}
	}

	if !c.confirm(fmt.Sprintf("Delete %s?", name)) {
		c.deps.Printer.Infof("Keeping %s.", name)
		summary.Files.Skipped = append(summary.Files.Skipped, name)
		return
	}

	var size uint64
	if info, err := c.deps.FS.Stat(path); err == nil && info.Size() > 0 {
		size = uint64(info.Size())
	}

	if err := c.deps.FS.Remove(path); err != nil {
		c.deps.Printer.Errorf("Error deleting %s: %v", name, err)
		summary.Files.Failed = append(summary.Files.Failed, name)
		return
	}

	c.deps.Printer.Successf("Deleted %s (%s).", name, humanize.Bytes(size))
	summary.Files.Done = append(summary.Files.Done, name)
	summary.ReclaimedBytes += size
}

// confirm asks a yes/no question. A failing prompt counts as "no".
func (c *realCleaner) confirm(message string) bool {
	ok, err := c.deps.Prompt.PromptForConfirmation(message)
	if err != nil {
		c.deps.Printer.Warnf("Could not read the answer, assuming no: %v", err)
		return false
	}
	return ok
}
