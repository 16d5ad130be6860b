package main

import (
	"fmt"

	"github.com/lerenn/xcfonts/cmd/xcfonts/internal/cli"
	"github.com/spf13/cobra"
)

func createIDCmd() *cobra.Command {
	var count int

	idCmd := &cobra.Command{
		Use:   "id [--count <n>]",
		Short: "Generate Xcode-style object identifiers",
		Long: `Print 24-character uppercase hexadecimal identifiers in the format used for
object keys in project.pbxproj files. Uniqueness is statistical only.

Examples:
  xcfonts id
  xcfonts id -n 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			xc, err := cli.NewXCFonts(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			ids, err := xc.GenerateIDs(count)
			if err != nil {
				return err
			}

			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	idCmd.Flags().IntVarP(&count, "count", "n", 1, "Number of identifiers to generate")

	return idCmd
}
