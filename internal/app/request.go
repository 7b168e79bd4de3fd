package app

import (
	"context"
	"fmt"

	"github.com/dbmrq/catsays/internal/logging"
)

// RequestKind tells Apply what a completed fetch should change.
type RequestKind int

const (
	// KindStartup replaces the default image once at startup.
	KindStartup RequestKind = iota
	// KindSubmit replaces the image and counts a successful submission.
	KindSubmit
)

// String returns the string representation of the kind.
func (k RequestKind) String() string {
	switch k {
	case KindStartup:
		return "startup"
	case KindSubmit:
		return "submit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Request is one issued image fetch. IDs increase monotonically per controller.
type Request struct {
	ID      uint64
	Kind    RequestKind
	Caption string
}

// Result is the completion of a Request.
type Result struct {
	Request Request
	Image   string
	Err     error
}

// Outcome describes what Apply changed.
type Outcome struct {
	// ImageReplaced is true when the result became the current image.
	ImageReplaced bool
	// Counted is true when the counter was incremented.
	Counted bool
	// Stale is true when a newer request had already replaced the image.
	Stale bool
	// Discarded is true when the controller was closed.
	Discarded bool
}

// StartupRequest issues the fetch for the default caption.
func (c *Controller) StartupRequest() Request {
	return c.issue(KindStartup, c.defaultCaption)
}

// SubmitRequest issues the fetch for an already validated caption.
func (c *Controller) SubmitRequest(normalized string) Request {
	return c.issue(KindSubmit, normalized)
}

func (c *Controller) issue(kind RequestKind, text string) Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastIssued++
	return Request{ID: c.lastIssued, Kind: kind, Caption: text}
}

// Fetch performs the network call for req. It does not touch state and is
// safe to run on any goroutine.
func (c *Controller) Fetch(ctx context.Context, req Request) Result {
	ctx = logging.WithRequestID(ctx, req.ID)
	c.logger.WithContext(ctx).Debug("fetching image", "kind", req.Kind.String(), "caption", req.Caption)

	image, err := c.fetcher.FetchImage(ctx, req.Caption)
	return Result{Request: req, Image: image, Err: err}
}

// Apply folds a completed fetch into the state.
//
// A failed fetch changes nothing and its error is returned. A successful
// submission always increments and persists the counter. A successful result
// replaces the current image unless a newer request already did, so a failed
// newer request never hides an older success. After Close every result is
// discarded.
func (c *Controller) Apply(res Result) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger := c.logger.With("request_id", res.Request.ID, "kind", res.Request.Kind.String())

	if c.closed {
		logger.Debug("result discarded after close")
		return Outcome{Discarded: true}, nil
	}

	if res.Err != nil {
		logger.Warn("image fetch failed", "caption", res.Request.Caption, "error", res.Err)
		return Outcome{}, res.Err
	}

	var out Outcome
	if res.Request.ID > c.lastApplied {
		c.state.CurrentImage = res.Image
		c.lastApplied = res.Request.ID
		out.ImageReplaced = true
	} else {
		out.Stale = true
		logger.Debug("stale image ignored", "applied", c.lastApplied, "url", res.Image)
	}

	if res.Request.Kind == KindSubmit {
		next := 1
		if c.state.Counter != nil {
			next = *c.state.Counter + 1
		}
		c.state.Counter = &next
		out.Counted = true

		if err := c.store.Set(KeyCounter, next); err != nil {
			logger.Error("failed to persist counter", "counter", next, "error", err)
			return out, err
		}
	}

	logger.Info("image fetched", "url", res.Image, "counter", c.state.CounterText())
	return out, nil
}
