package main

import (
	"fmt"

	"github.com/lerenn/jsprune/cmd/jsprune/internal/cli"
	"github.com/lerenn/jsprune/configs"
	"github.com/lerenn/jsprune/pkg/fs"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Write the default configuration file",
		Long: `Write the default configuration, with every key documented, to <root>/.jsprune.yaml
or to the path given with --config.

Flags:
  --force   Overwrite an existing configuration file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := cli.ProjectRoot()
			if err != nil {
				return err
			}
			return writeDefaultConfig(fs.NewFS(), cli.GetConfigPath(root), force, cmd)
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return initCmd
}

func writeDefaultConfig(fsys fs.FS, path string, force bool, cmd *cobra.Command) error {
	exists, err := fsys.Exists(path)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", cli.ErrConfigExists, path)
	}

	if err := fsys.WriteFileAtomic(path, configs.DefaultConfigYAML, 0644); err != nil {
		return err
	}

	cli.NewPrinter(cmd.OutOrStdout()).Successf("Configuration written to %s", path)
	return nil
}
