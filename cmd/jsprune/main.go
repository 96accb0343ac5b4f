// Package main provides the command-line interface for jsprune.
package main

import (
	"log"

	"github.com/lerenn/jsprune/cmd/jsprune/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jsprune",
		Short: "Prune unused dependencies and orphan files from a JavaScript project",
		Long: `jsprune finds unused npm packages and source files nothing imports, ` +
			`double-checks every candidate and removes what you confirm.

Without a subcommand it runs the whole cleanup, like "jsprune run".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCleanup,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except warnings and errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "",
		"Specify a custom config file path (default <root>/.jsprune.yaml)")
	rootCmd.PersistentFlags().StringVarP(&cli.RootDir, "root", "r", "", "Project root (default current directory)")
	rootCmd.PersistentFlags().BoolVarP(&cli.Yes, "yes", "y", false, "Answer yes to every confirmation")
	rootCmd.PersistentFlags().BoolVar(&cli.DryRun, "dry-run", false, "Answer no to every confirmation, changing nothing")
	rootCmd.PersistentFlags().BoolVar(&cli.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		createRunCmd(),
		createDepsCmd(),
		createOrphansCmd(),
		createUsageCmd(),
		createInitCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
