// Package main provides the command-line interface for the xcfonts application.
package main

import (
	"log"

	"github.com/lerenn/xcfonts/cmd/xcfonts/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var opts checkFlags

	rootCmd := &cobra.Command{
		Use:   "xcfonts",
		Short: "xcfonts - Xcode font registration checker",
		Long: `Find font files in a project directory and report which of them are ` +
			`referenced by the Xcode project manifest. The manifest is never modified.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	// Running without a subcommand is the same as check
	addCheckFlags(rootCmd, &opts)

	rootCmd.AddCommand(createCheckCmd(), createIDCmd(), createInitCmd())

	return rootCmd
}

func main() {
	err := newRootCmd().Execute()
	cli.Sync()
	if err != nil {
		log.Fatal(err)
	}
}
