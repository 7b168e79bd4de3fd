package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/catsays/internal/app"
	"github.com/dbmrq/catsays/internal/caption"
	apperrors "github.com/dbmrq/catsays/internal/errors"
	"github.com/dbmrq/catsays/internal/logging"
	"github.com/dbmrq/catsays/internal/store"
	"github.com/dbmrq/catsays/internal/tui/components"
)

type stubFetcher struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *stubFetcher) FetchImage(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, text)
	if f.err != nil {
		return "", f.err
	}
	return "https://cats.test/" + text, nil
}

func newTestModel(t *testing.T, f *stubFetcher) (*Model, *app.Controller) {
	t.Helper()
	backend, err := store.OpenFile(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	st := store.New(backend, logging.NewNoop())
	ctrl := app.New(st, f, app.Options{Logger: logging.NewNoop()})
	return New(context.Background(), ctrl), ctrl
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// fetched runs cmd and returns every ImageFetchedMsg it produces.
func fetched(cmd tea.Cmd) []ImageFetchedMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case ImageFetchedMsg:
		return []ImageFetchedMsg{msg}
	case tea.BatchMsg:
		var out []ImageFetchedMsg
		for _, c := range msg {
			out = append(out, fetched(c)...)
		}
		return out
	}
	return nil
}

func TestNew_InitialView(t *testing.T) {
	m, _ := newTestModel(t, &stubFetcher{})
	view := m.View()

	for _, want := range []string{"The cat says...", app.DefaultImage, components.GlyphNotFavorite, app.EmptyFavoritesMessage} {
		if !strings.Contains(view, want) {
			t.Errorf("initial view missing %q", want)
		}
	}
	if m.input.Placeholder() != "Please input a line in English" {
		t.Errorf("unexpected placeholder %q", m.input.Placeholder())
	}
}

func TestInit_IssuesStartupFetch(t *testing.T) {
	m, ctrl := newTestModel(t, &stubFetcher{})

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should return a command")
	}
	if m.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", m.Pending())
	}

	req := app.Request{ID: 1, Kind: app.KindStartup, Caption: app.DefaultCaption}
	m.Update(ImageFetchedMsg{Result: ctrl.Fetch(context.Background(), req)})

	if m.Pending() != 0 {
		t.Errorf("Pending() = %d after completion", m.Pending())
	}
	if !strings.Contains(m.View(), "https://cats.test/First cat") {
		t.Error("startup image should replace the default")
	}
	if !strings.Contains(m.View(), "The cat says...") {
		t.Error("startup fetch must not set the counter")
	}
}

func TestTyping_UppercasesInput(t *testing.T) {
	m, _ := newTestModel(t, &stubFetcher{})
	typeText(m, "hello")

	if m.input.Value() != "HELLO" {
		t.Errorf("input value = %q, want HELLO", m.input.Value())
	}
	if m.Notice() != "" {
		t.Errorf("unexpected notice %q", m.Notice())
	}
}

func TestTyping_KoreanShowsErrorUntilErased(t *testing.T) {
	m, _ := newTestModel(t, &stubFetcher{})
	typeText(m, "안녕")

	if m.Notice() != caption.MessageDisallowedScript {
		t.Fatalf("Notice() = %q", m.Notice())
	}
	if !strings.Contains(m.View(), caption.MessageDisallowedScript) {
		t.Error("view should show the inline error")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Notice() != "" {
		t.Errorf("error should clear once Korean is erased, got %q", m.Notice())
	}
}

func TestSubmit_Empty(t *testing.T) {
	f := &stubFetcher{}
	m, _ := newTestModel(t, f)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty submit should not issue a fetch")
	}
	if m.Notice() != caption.MessageEmpty {
		t.Errorf("Notice() = %q", m.Notice())
	}
	if len(f.calls) != 0 {
		t.Error("fetcher should not be called")
	}
}

func TestSubmit_FetchesAndCounts(t *testing.T) {
	m, _ := newTestModel(t, &stubFetcher{})
	typeText(m, "hello")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", m.Pending())
	}
	if !strings.Contains(m.View(), "Fetching a cat...") {
		t.Error("spinner should show while fetching")
	}

	msgs := fetched(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one fetch result, got %d", len(msgs))
	}
	m.Update(msgs[0])

	view := m.View()
	if !strings.Contains(view, "The cat 1 says...") {
		t.Errorf("counter should be 1:\n%s", view)
	}
	if !strings.Contains(view, "https://cats.test/HELLO") {
		t.Error("new image should be shown")
	}
	if strings.Contains(view, "Fetching a cat...") {
		t.Error("spinner should stop once nothing is pending")
	}
	if m.input.Value() != "HELLO" {
		t.Errorf("input should keep the caption, got %q", m.input.Value())
	}
}

func TestSubmit_OutOfOrderCompletion(t *testing.T) {
	m, _ := newTestModel(t, &stubFetcher{})

	typeText(m, "a")
	_, first := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(m, "b")
	_, second := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	firstMsgs, secondMsgs := fetched(first), fetched(second)
	m.Update(secondMsgs[0])
	m.Update(firstMsgs[0])

	view := m.View()
	if !strings.Contains(view, "https://cats.test/AB") {
		t.Errorf("latest submission should win:\n%s", view)
	}
	if !strings.Contains(view, "The cat 2 says...") {
		t.Errorf("both submissions should count:\n%s", view)
	}
}

func TestSubmit_FetchFailureShowsMessage(t *testing.T) {
	f := &stubFetcher{err: apperrors.NetworkUnavailable("cats.test", errors.New("refused"))}
	m, _ := newTestModel(t, f)
	typeText(m, "hello")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(fetched(cmd)[0])

	if m.Notice() != app.FetchFailedMessage {
		t.Errorf("Notice() = %q", m.Notice())
	}
	view := m.View()
	if !strings.Contains(view, app.DefaultImage) || !strings.Contains(view, "The cat says...") {
		t.Error("state should be unchanged after a failed fetch")
	}
}

func TestToggleFavorite(t *testing.T) {
	m, ctrl := newTestModel(t, &stubFetcher{})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	view := m.View()
	if !strings.Contains(view, components.GlyphFavorite) {
		t.Error("card should show the favorite glyph")
	}
	if !strings.Contains(view, "Favorites (1)") {
		t.Errorf("favorites count should be 1:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	if got := len(ctrl.Snapshot().Favorites); got != 2 {
		t.Errorf("favorites = %d, want 2", got)
	}
}

func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, ctrl := newTestModel(t, &stubFetcher{})
		typeText(m, "late")
		_, submit := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatal("quit should return a command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
		if m.View() != "" {
			t.Error("view should be empty once quitting")
		}

		// completions after teardown are ignored
		m.Update(fetched(submit)[0])
		if ctrl.Snapshot().CurrentImage != app.DefaultImage {
			t.Error("late result must not change state")
		}
	}
}

func TestWindowSize(t *testing.T) {
	m, _ := newTestModel(t, &stubFetcher{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.width != 100 || m.height != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.width, m.height)
	}
}
