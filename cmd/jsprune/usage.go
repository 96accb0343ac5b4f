package main

import (
	"path/filepath"

	"github.com/lerenn/jsprune/cmd/jsprune/internal/cli"
	"github.com/spf13/cobra"
)

func createUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage <file>",
		Short: "List the files that appear to import a file, changing nothing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleaner, err := cli.NewCleaner(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			refs, err := cleaner.FindReferences(args[0])
			if err != nil {
				return err
			}

			printer := cli.NewPrinter(cmd.OutOrStdout())
			if len(refs) == 0 {
				printer.Infof("No references to %s found.", args[0])
				return nil
			}

			root, err := cli.ProjectRoot()
			if err != nil {
				return err
			}
			displayed := make([]string, 0, len(refs))
			for _, ref := range refs {
				if rel, err := filepath.Rel(root, ref); err == nil {
					ref = rel
				}
				displayed = append(displayed, ref)
			}

			printer.Infof("%s appears to be imported by:", args[0])
			printer.Items(displayed)
			return nil
		},
	}
}
