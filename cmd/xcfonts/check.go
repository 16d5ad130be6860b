package main

import (
	"errors"

	"github.com/lerenn/xcfonts/cmd/xcfonts/internal/cli"
	"github.com/lerenn/xcfonts/pkg/manifest"
	"github.com/lerenn/xcfonts/pkg/xcfonts"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	fontsDir  string
	project   string
	extension string
	matchMode string
}

func addCheckFlags(cmd *cobra.Command, opts *checkFlags) {
	cmd.Flags().StringVar(&opts.fontsDir, "fonts-dir", "", "Directory scanned for font files (default from config)")
	cmd.Flags().StringVar(&opts.project, "project", "", "Path to the project.pbxproj manifest (default from config)")
	cmd.Flags().StringVar(&opts.extension, "ext", "", "Font file suffix, including the dot (default from config)")
	cmd.Flags().StringVar(&opts.matchMode, "match", "", "How names are matched in the manifest: substring or token")
}

func createCheckCmd() *cobra.Command {
	var opts checkFlags

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Report which fonts are referenced by the Xcode project",
		Long: `Scan the fonts directory and report, for each font, whether the project manifest
already references it. Fonts that are not referenced are listed so they can be added
through Xcode.

Only regular files whose name ends with the font suffix are candidates; a directory
named like a font (for example Legacy.ttf/) is skipped.

Examples:
  xcfonts check
  xcfonts check --fonts-dir Resources/Fonts --project App.xcodeproj/project.pbxproj
  xcfonts check --ext .otf --match token`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	addCheckFlags(checkCmd, &opts)

	return checkCmd
}

func runCheck(cmd *cobra.Command, opts checkFlags) error {
	var matchMode manifest.MatchMode
	if opts.matchMode != "" {
		mode, err := manifest.ParseMatchMode(opts.matchMode)
		if err != nil {
			return err
		}
		matchMode = mode
	}

	xc, err := cli.NewXCFonts(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	_, err = xc.Check(xcfonts.CheckOpts{
		FontsDir:      opts.fontsDir,
		ProjectFile:   opts.project,
		FontExtension: opts.extension,
		MatchMode:     matchMode,
	})
	if errors.Is(err, xcfonts.ErrNoFontsFound) {
		// Already reported to the user
		return nil
	}
	return err
}
