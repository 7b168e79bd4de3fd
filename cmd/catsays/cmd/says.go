package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// saysResult is the structured output of the says command.
type saysResult struct {
	Caption  string `json:"caption" yaml:"caption"`
	Image    string `json:"image" yaml:"image"`
	Counter  int    `json:"counter" yaml:"counter"`
	Favorite bool   `json:"favorite" yaml:"favorite"`
}

func newSaysCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "says <caption...>",
		Short: "Make one meme and print its image URL",
		Long: `Make one meme without the interactive screen.

The words are joined with spaces, upper-cased and sent to the image
service. On success the meme counter is incremented and the image URL
is printed.

Examples:
  catsays says hello world             # Print the image URL
  catsays says --favorite good morning # Also save it as a favorite
  catsays says -o json hi              # Print caption, image and counter as JSON`,
		RunE: runSays,
	}
	c.Flags().BoolP("favorite", "f", false, "Add the new image to favorites")
	c.Flags().StringP("output", "o", outputText, "Output format: text, json or yaml")
	return c
}

func runSays(cmd *cobra.Command, args []string) error {
	favorite, _ := cmd.Flags().GetBool("favorite")
	output, _ := cmd.Flags().GetString("output")
	if err := checkOutput(output); err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	normalized, err := s.controller.Submit(s.ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if favorite {
		if err := s.controller.ToggleFavorite(); err != nil {
			return err
		}
	}

	state := s.controller.Snapshot()
	if output == outputText {
		fmt.Fprintln(cmd.OutOrStdout(), state.CurrentImage)
		return nil
	}

	res := saysResult{
		Caption:  normalized,
		Image:    state.CurrentImage,
		Favorite: state.AlreadyFavorite(),
	}
	if state.Counter != nil {
		res.Counter = *state.Counter
	}
	return writeStructured(cmd.OutOrStdout(), output, res)
}
