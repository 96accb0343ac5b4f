package main

import (
	"github.com/lerenn/jsprune/cmd/jsprune/internal/cli"
	"github.com/spf13/cobra"
)

func createDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Remove unused dependencies only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleaner, err := cli.NewCleaner(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := cleaner.EnsureTools(ctx, cleaner.Config().DependencyTool); err != nil {
				return err
			}

			_, err = cleaner.RemoveUnusedDependencies(ctx)
			return err
		},
	}
}
