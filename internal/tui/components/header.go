// Package components provides the building blocks of the catsays TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/catsays/internal/tui/styles"
)

// Header displays "The cat {counter} says...".
type Header struct {
	counter string
	width   int
}

// NewHeader creates a new Header component with a blank counter.
func NewHeader() *Header {
	return &Header{}
}

// SetCounter sets the counter text. An empty string leaves the slot blank.
func (h *Header) SetCounter(counter string) {
	h.counter = counter
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// Title returns the unstyled heading.
func (h *Header) Title() string {
	if h.counter == "" {
		return "The cat says..."
	}
	return "The cat " + h.counter + " says..."
}

// View renders the header.
func (h *Header) View() string {
	content := "The cat says..."
	if h.counter != "" {
		content = "The cat " + styles.CounterStyle.Render(h.counter) + " says..."
	}

	style := styles.TitleStyle
	if h.width > 0 {
		style = style.Width(h.width).Align(lipgloss.Center)
	}
	return style.Render(content)
}
