package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/catsays/internal/app"
	"github.com/dbmrq/catsays/internal/tui/styles"
)

// Options configures Run.
type Options struct {
	// AltScreen runs the program in the alternate screen buffer.
	AltScreen bool
}

// Run shows the meme screen until the user quits or ctx is cancelled.
// The controller is closed on return.
func Run(ctx context.Context, controller *app.Controller, opts Options) error {
	defer controller.Close()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(New(ctx, controller), progOpts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

func errorLine(msg string) string {
	return styles.ErrorTextStyle.Render(msg)
}
