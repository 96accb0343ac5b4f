package main

import (
	"github.com/lerenn/jsprune/cmd/jsprune/internal/cli"
	"github.com/spf13/cobra"
)

func createRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Remove unused dependencies, then orphan files of every scan directory",
		Long: `Check that the analysis tools run, offer to uninstall each unused package,
then look for orphan files in every configured scan directory and offer to delete them.
Files still imported somewhere need an extra confirmation.`,
		Args: cobra.NoArgs,
		RunE: runCleanup,
	}
}

func runCleanup(cmd *cobra.Command, _ []string) error {
	cleaner, err := cli.NewCleaner(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	_, err = cleaner.Run(cmd.Context())
	return err
}
