package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbmrq/catsays/internal/app"
)

func newFavoritesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "favorites",
		Short: "List saved favorites",
		Long: `List the images saved as favorites, oldest first.

Examples:
  catsays favorites            # One URL per line
  catsays favorites -o json    # JSON array`,
		Args: cobra.NoArgs,
		RunE: runFavorites,
	}
	c.Flags().StringP("output", "o", outputText, "Output format: text, json or yaml")
	return c
}

func runFavorites(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if err := checkOutput(output); err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	favorites := s.controller.Snapshot().Favorites
	if output != outputText {
		return writeStructured(cmd.OutOrStdout(), output, favorites)
	}

	if len(favorites) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), app.EmptyFavoritesMessage)
		return nil
	}
	for _, url := range favorites {
		fmt.Fprintln(cmd.OutOrStdout(), url)
	}
	return nil
}
