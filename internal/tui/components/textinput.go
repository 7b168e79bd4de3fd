package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/catsays/internal/tui/styles"
)

// CaptionPlaceholder is shown while the caption input is empty.
const CaptionPlaceholder = "Please input a line in English"

// CaptionInput wraps the bubbles textinput for caption entry.
type CaptionInput struct {
	model textinput.Model
	label string
}

// NewCaptionInput creates a focused caption input.
func NewCaptionInput() *CaptionInput {
	ti := textinput.New()
	ti.Placeholder = CaptionPlaceholder
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = ""
	ti.Focus()

	return &CaptionInput{
		model: ti,
		label: "Caption",
	}
}

// Focus focuses the input and returns the cursor blink command.
func (c *CaptionInput) Focus() tea.Cmd {
	return c.model.Focus()
}

// Placeholder returns the placeholder text.
func (c *CaptionInput) Placeholder() string {
	return c.model.Placeholder
}

// Value returns the current input text.
func (c *CaptionInput) Value() string {
	return c.model.Value()
}

// SetValue replaces the input text. The cursor stays in place when it
// still fits the new text.
func (c *CaptionInput) SetValue(value string) {
	if value != c.model.Value() {
		c.model.SetValue(value)
	}
}

// SetWidth sets the total width, label included.
func (c *CaptionInput) SetWidth(width int) {
	c.model.Width = width - len(c.label) - 5
	if c.model.Width < 10 {
		c.model.Width = 10
	}
}

// Update forwards key and blink messages to the text input.
func (c *CaptionInput) Update(msg tea.Msg) (*CaptionInput, tea.Cmd) {
	var cmd tea.Cmd
	c.model, cmd = c.model.Update(msg)
	return c, cmd
}

// View renders the label and the input.
func (c *CaptionInput) View() string {
	return styles.InputLabelStyle.Render(c.label+": ") + styles.InputStyle.Render(c.model.View())
}
