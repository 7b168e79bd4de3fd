package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbmrq/catsays/internal/version"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for catsays.

Displays the current version, commit hash, build date,
and Go/platform information.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
	c.Flags().StringP("output", "o", outputText, "Output format: text, json or yaml")
	return c
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if err := checkOutput(output); err != nil {
		return err
	}

	info := version.Current()
	if output != outputText {
		return writeStructured(cmd.OutOrStdout(), output, info)
	}
	fmt.Fprintln(cmd.OutOrStdout(), info.FullString())
	return nil
}
