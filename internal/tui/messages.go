package tui

import (
	"github.com/dbmrq/catsays/internal/app"
)

// Message types for TUI state updates.

// ImageFetchedMsg carries a completed image fetch back to the event loop,
// where it is applied to the controller.
type ImageFetchedMsg struct {
	Result app.Result
}

// QuitMsg signals the TUI should quit.
type QuitMsg struct {
	Reason string
}
