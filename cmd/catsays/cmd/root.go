// Package cmd provides the CLI commands for catsays.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	apperrors "github.com/dbmrq/catsays/internal/errors"
	"github.com/dbmrq/catsays/internal/tui"
	"github.com/dbmrq/catsays/internal/version"
)

// SetVersionInfo records the build variables passed in by main.
func SetVersionInfo(v, commit, date string) {
	version.Version = v
	version.Commit = commit
	version.Date = date
}

// NewRootCmd builds the full command tree. Each call returns fresh commands
// so flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catsays",
		Short: "Make cat memes from your terminal",
		Long: `catsays puts your caption on a random cat picture.

Type a line in English and press Enter to get a new meme. Every meme
you make is counted, and the ones you like can be saved as favorites.
The counter and favorites persist between runs.

With no subcommand, catsays starts the interactive screen.`,
		RunE:          runRoot,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.Version = version.Current().String()
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().String("config", "", "Config file (default ~/.catsays/config.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newSaysCmd(),
		newFavoritesCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// runRoot starts the interactive screen.
func runRoot(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Info("starting tui", "alt_screen", s.cfg.UI.AltScreen)
	return tui.Run(s.ctx, s.controller, tui.Options{AltScreen: s.cfg.UI.AltScreen})
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprint(root.ErrOrStderr(), apperrors.FormatAny(err))
		stop()
		os.Exit(exitCode(err))
	}
}

// Exit codes.
const (
	exitFailure   = 1
	exitUserError = 2
)

// exitCode returns exitUserError for bad input or configuration, which
// retrying will not fix, and exitFailure for everything else.
func exitCode(err error) int {
	if apperrors.IsUserError(err) {
		return exitUserError
	}
	return exitFailure
}
