package main

import (
	"github.com/lerenn/jsprune/cmd/jsprune/internal/cli"
	"github.com/lerenn/jsprune/pkg/report"
	"github.com/spf13/cobra"
)

func createOrphansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orphans [dir...]",
		Short: "Delete orphan files of the given directories, or of every scan directory",
		Long: `Ask the module-graph tool for files nothing imports, search the whole project
for textual imports of each of them, and offer to delete them one by one.
Directories are relative to the project root.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleaner, err := cli.NewCleaner(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := cleaner.EnsureTools(ctx, cleaner.Config().ModuleGraphTool); err != nil {
				return err
			}

			dirs := args
			if len(dirs) == 0 {
				dirs = cleaner.Config().ScanDirs
			}

			printer := cli.NewPrinter(cmd.OutOrStdout())
			var summary report.Summary
			for _, dir := range dirs {
				files, err := cleaner.DeleteOrphans(ctx, dir)
				if err != nil {
					printer.Errorf("Error checking orphan files in %s: %v", dir, err)
				}
				summary.Add(files)
			}

			printer.Summary(summary)
			return nil
		},
	}
}
