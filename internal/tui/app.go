// Package tui provides the terminal user interface for catsays.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/catsays/internal/app"
	"github.com/dbmrq/catsays/internal/caption"
	"github.com/dbmrq/catsays/internal/logging"
	"github.com/dbmrq/catsays/internal/tui/components"
)

// Model is the Bubble Tea model for the meme screen. It renders controller
// snapshots and turns key presses into controller calls.
type Model struct {
	ctx        context.Context
	controller *app.Controller
	logger     *logging.Logger

	// Components
	header    *components.Header
	input     *components.CaptionInput
	card      *components.Card
	favorites *components.Favorites
	spinner   *components.Spinner
	shortcuts *components.ShortcutBar

	// State
	field   caption.Field
	pending int
	notice  string

	// Window dimensions
	width  int
	height int

	quitting bool
}

// New creates a new TUI model driving controller. ctx bounds every fetch.
func New(ctx context.Context, controller *app.Controller) *Model {
	sp := components.NewSpinner()
	sp.SetStatusText("Fetching a cat...")

	m := &Model{
		ctx:        ctx,
		controller: controller,
		logger:     logging.Global().With("component", "tui"),
		header:     components.NewHeader(),
		input:      components.NewCaptionInput(),
		card:       components.NewCard(),
		favorites:  components.NewFavorites(app.EmptyFavoritesMessage),
		spinner:    sp,
		shortcuts:  components.NewShortcutBar(components.MemeShortcuts...),
	}
	m.refresh()
	return m
}

// Init issues the startup fetch and starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Focus(),
		m.startFetch(m.controller.StartupRequest()),
	)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.input.SetWidth(msg.Width)
		m.card.SetWidth(msg.Width)
		m.favorites.SetWidth(msg.Width)
		m.favorites.SetMaxVisible(msg.Height - 14)
		m.shortcuts.SetWidth(msg.Width)
		return m, nil

	case ImageFetchedMsg:
		return m.handleFetched(msg)

	case QuitMsg:
		return m.quit(msg.Reason)

	default:
		var cmds []tea.Cmd
		// Spinner ticks only keep going while a fetch is outstanding.
		if m.pending > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m.quit(msg.String())

	case "enter":
		return m.submit()

	case "ctrl+f":
		if err := m.controller.ToggleFavorite(); err != nil {
			m.notice = app.UserMessage(err)
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.field.Input(m.input.Value())
	m.input.SetValue(m.field.Value())
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	m.notice = ""
	normalized, err := m.field.Submit()
	m.input.SetValue(m.field.Value())
	if err != nil {
		m.logger.Debug("caption rejected", "error", err)
		return m, nil
	}
	return m, m.startFetch(m.controller.SubmitRequest(normalized))
}

// startFetch runs req off the event loop and starts the spinner if it was idle.
func (m *Model) startFetch(req app.Request) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	fetch := func() tea.Msg {
		return ImageFetchedMsg{Result: controller.Fetch(ctx, req)}
	}

	m.pending++
	if m.pending > 1 {
		return fetch
	}
	m.spinner.Start()
	return tea.Batch(fetch, m.spinner.Tick())
}

func (m *Model) handleFetched(msg ImageFetchedMsg) (tea.Model, tea.Cmd) {
	if m.pending > 0 {
		m.pending--
	}

	out, err := m.controller.Apply(msg.Result)
	if out.Discarded {
		return m, nil
	}
	if err != nil {
		m.notice = app.UserMessage(err)
	} else if out.ImageReplaced {
		m.notice = ""
	}
	m.refresh()
	return m, nil
}

func (m *Model) quit(reason string) (tea.Model, tea.Cmd) {
	m.logger.Debug("quitting", "reason", reason, "pending", m.pending)
	m.quitting = true
	m.controller.Close()
	return m, tea.Quit
}

// refresh copies the controller state into the components.
func (m *Model) refresh() {
	s := m.controller.Snapshot()
	m.header.SetCounter(s.CounterText())
	m.card.SetImage(s.CurrentImage, s.AlreadyFavorite())
	m.favorites.SetItems(s.Favorites)
}

// Pending returns the number of outstanding fetches.
func (m *Model) Pending() int {
	return m.pending
}

// Notice returns the inline message currently shown under the input.
func (m *Model) Notice() string {
	if msg := m.field.Message(); msg != "" {
		return msg
	}
	return m.notice
}

// View renders the meme screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.header.View(), "")
	sections = append(sections, m.input.View())
	if notice := m.Notice(); notice != "" {
		sections = append(sections, errorLine(notice))
	}
	sections = append(sections, "", m.card.View())
	if m.pending > 0 {
		sections = append(sections, m.spinner.View())
	}
	sections = append(sections, "", m.favorites.View(), "", m.shortcuts.View())

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(sections, "\n"))
}
