package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/dbmrq/catsays/internal/tui/styles"
)

// Favorites lists saved images, newest last.
type Favorites struct {
	items       []string
	placeholder string
	maxVisible  int
	width       int
}

// NewFavorites creates a list that shows placeholder while empty.
func NewFavorites(placeholder string) *Favorites {
	return &Favorites{
		placeholder: placeholder,
		maxVisible:  8,
	}
}

// SetItems replaces the listed images.
func (f *Favorites) SetItems(items []string) {
	f.items = items
}

// SetMaxVisible caps how many rows are drawn. Older entries are elided.
func (f *Favorites) SetMaxVisible(n int) {
	if n < 1 {
		n = 1
	}
	f.maxVisible = n
}

// SetWidth sets the list width.
func (f *Favorites) SetWidth(width int) {
	f.width = width
}

// View renders the list or the placeholder.
func (f *Favorites) View() string {
	var sb strings.Builder
	sb.WriteString(styles.SectionTitleStyle.Render(fmt.Sprintf("Favorites (%d)", len(f.items))))
	sb.WriteString("\n")

	if len(f.items) == 0 {
		sb.WriteString(styles.MutedTextStyle.Render(f.placeholder))
		return sb.String()
	}

	start := 0
	if len(f.items) > f.maxVisible {
		start = len(f.items) - f.maxVisible
		sb.WriteString(styles.MutedTextStyle.Render(fmt.Sprintf("… %d older", start)))
		sb.WriteString("\n")
	}

	for i := start; i < len(f.items); i++ {
		line := fmt.Sprintf("%2d. %s", i+1, f.items[i])
		if f.width > 1 {
			line = ansi.Truncate(line, f.width, "…")
		}
		sb.WriteString(line)
		if i < len(f.items)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
