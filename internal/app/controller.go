// Package app owns the meme maker's in-memory state and coordinates the
// caption validator, the image client and the persistent store.
package app

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/dbmrq/catsays/internal/caption"
	apperrors "github.com/dbmrq/catsays/internal/errors"
	"github.com/dbmrq/catsays/internal/logging"
)

// Persistent store keys.
const (
	KeyCounter   = "counter"
	KeyFavorites = "favorites"
)

// Defaults used before any configuration is applied.
const (
	DefaultCaption = "First cat"
	DefaultImage   = "https://cataas.com/cat/60b73094e04e18001194a309/says/react"
)

// User-facing messages shared by the terminal UI and the headless commands.
const (
	FetchFailedMessage    = "Couldn't fetch a cat right now. Try again."
	StoreFailedMessage    = "Couldn't save your changes. They will be lost on exit."
	ServiceFailedMessage  = "The cat service sent an unexpected reply. Check api.base_url in your config."
	EmptyFavoritesMessage = "Save your own meme by clicking 🤍"
)

// SeedImages are fixed sample images. The first is DefaultImage.
var SeedImages = []string{
	DefaultImage,
	"https://cataas.com/cat/5e9970351b7a400011744233/says/inflearn",
	"https://cataas.com/cat/595f280b557291a9750ebf65/says/JavaScript",
}

// Fetcher renders a caption into an image URL.
type Fetcher interface {
	FetchImage(ctx context.Context, caption string) (string, error)
}

// KeyValueStore persists structured values. Get reports false for absent
// or unreadable values.
type KeyValueStore interface {
	Get(key string, dst any) bool
	Set(key string, value any) error
}

// State is a snapshot of the application state.
type State struct {
	// CurrentImage is the image on display.
	CurrentImage string
	// Counter is the number of successful submissions, nil until the first one.
	Counter *int
	// Favorites is the ordered favorites list. Duplicates are allowed.
	Favorites []string
}

// AlreadyFavorite reports whether the current image is in the favorites list.
func (s State) AlreadyFavorite() bool {
	return slices.Contains(s.Favorites, s.CurrentImage)
}

// CounterText renders the counter, or "" when it has never been set.
func (s State) CounterText() string {
	if s.Counter == nil {
		return ""
	}
	return strconv.Itoa(*s.Counter)
}

// Options configures a Controller.
type Options struct {
	// DefaultImage is shown until the startup fetch completes.
	DefaultImage string
	// DefaultCaption is rendered by the startup fetch.
	DefaultCaption string
	// Logger defaults to the global logger.
	Logger *logging.Logger
}

// Controller is the single owner of State.
type Controller struct {
	mu      sync.Mutex
	store   KeyValueStore
	fetcher Fetcher
	logger  *logging.Logger

	state          State
	defaultCaption string
	lastIssued     uint64
	lastApplied    uint64
	closed         bool
}

// New creates a controller, reading the persisted counter and favorites
// from store and showing the default image.
func New(store KeyValueStore, fetcher Fetcher, opts Options) *Controller {
	if opts.DefaultImage == "" {
		opts.DefaultImage = DefaultImage
	}
	if opts.DefaultCaption == "" {
		opts.DefaultCaption = DefaultCaption
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Global()
	}

	c := &Controller{
		store:          store,
		fetcher:        fetcher,
		logger:         logger.With("component", "app"),
		defaultCaption: opts.DefaultCaption,
		state: State{
			CurrentImage: opts.DefaultImage,
			Favorites:    []string{},
		},
	}

	var counter int
	if store.Get(KeyCounter, &counter) && counter >= 0 {
		c.state.Counter = &counter
	}
	var favorites []string
	if store.Get(KeyFavorites, &favorites) && favorites != nil {
		c.state.Favorites = favorites
	}

	c.logger.Debug("state loaded",
		"counter", c.state.CounterText(),
		"favorites", len(c.state.Favorites),
	)
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	s := State{
		CurrentImage: c.state.CurrentImage,
		Favorites:    slices.Clone(c.state.Favorites),
	}
	if c.state.Counter != nil {
		n := *c.state.Counter
		s.Counter = &n
	}
	return s
}

// AlreadyFavorite reports whether the current image is already a favorite.
func (c *Controller) AlreadyFavorite() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.AlreadyFavorite()
}

// ToggleFavorite appends the current image to the favorites list and
// persists the whole list. It never removes and never deduplicates.
func (c *Controller) ToggleFavorite() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := append(slices.Clone(c.state.Favorites), c.state.CurrentImage)
	c.state.Favorites = next

	if err := c.store.Set(KeyFavorites, next); err != nil {
		c.logger.Error("failed to persist favorites", "error", err)
		return err
	}
	c.logger.Info("image added to favorites", "url", c.state.CurrentImage, "favorites", len(next))
	return nil
}

// Close tears the controller down. Results applied afterwards are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Submit validates raw, fetches the captioned image and applies the result.
// It returns the normalized caption alongside any error.
func (c *Controller) Submit(ctx context.Context, raw string) (string, error) {
	normalized, err := caption.Validate(raw)
	if err != nil {
		return "", err
	}

	req := c.SubmitRequest(normalized)
	if _, err := c.Apply(c.Fetch(ctx, req)); err != nil {
		return normalized, err
	}
	return normalized, nil
}

// Startup fetches an image for the default caption and displays it.
func (c *Controller) Startup(ctx context.Context) error {
	_, err := c.Apply(c.Fetch(ctx, c.StartupRequest()))
	return err
}

// UserMessage maps an error from Submit, Startup, Apply or ToggleFavorite
// to the one-line message shown next to the input. nil maps to "".
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case apperrors.Is(err, apperrors.ErrValidation):
		return caption.Message(err)
	case apperrors.Is(err, apperrors.ErrStore):
		return StoreFailedMessage
	case apperrors.IsRetryable(err):
		return FetchFailedMessage
	case apperrors.Is(err, apperrors.ErrMalformedResponse):
		// Retrying will not help; usually the base URL points elsewhere.
		return ServiceFailedMessage
	default:
		return FetchFailedMessage
	}
}
