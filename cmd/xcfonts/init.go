package main

import (
	"fmt"

	"github.com/lerenn/xcfonts/cmd/xcfonts/internal/cli"
	"github.com/lerenn/xcfonts/pkg/config"
	"github.com/lerenn/xcfonts/pkg/fs"
	"github.com/lerenn/xcfonts/pkg/manifest"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var (
		force bool
		opts  checkFlags
	)

	initCmd := &cobra.Command{
		Use:   "init [--force] [--fonts-dir <dir>] [--project <path>] [--ext <suffix>] [--match <mode>]",
		Short: "Write the configuration file",
		Long: `Write the xcfonts configuration to the config path
(.xcfonts.yaml in the current directory, or the path given with --config).

Without value flags the commented default configuration is written. Any value flag
writes the defaults with those values applied instead.

Flags:
  --force       Overwrite an existing configuration file
  --fonts-dir   Directory scanned for font files
  --project     Path to the project.pbxproj manifest
  --ext         Font file suffix, including the dot
  --match       How names are matched in the manifest: substring or token`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := cli.NewConfigManager()

			if opts == (checkFlags{}) {
				if err := manager.InitConfig(force); err != nil {
					return err
				}
			} else if err := saveCustomConfig(manager, opts, force); err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", manager.GetConfigPath())
			}
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	addCheckFlags(initCmd, &opts)

	return initCmd
}

// saveCustomConfig writes the defaults with the flag values applied.
func saveCustomConfig(manager config.Manager, opts checkFlags, force bool) error {
	if !force {
		exists, err := fs.NewFS().Exists(manager.GetConfigPath())
		if err != nil {
			return fmt.Errorf("failed to check configuration file: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", config.ErrConfigExists, manager.GetConfigPath())
		}
	}

	cfg := manager.DefaultConfig()
	if opts.fontsDir != "" {
		cfg.FontsDir = opts.fontsDir
	}
	if opts.project != "" {
		cfg.ProjectFile = opts.project
	}
	if opts.extension != "" {
		cfg.FontExtension = opts.extension
	}
	if opts.matchMode != "" {
		mode, err := manifest.ParseMatchMode(opts.matchMode)
		if err != nil {
			return err
		}
		cfg.MatchMode = mode
	}

	return manager.SaveConfig(cfg)
}
