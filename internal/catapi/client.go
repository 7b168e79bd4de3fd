// Package catapi fetches captioned cat images from a cataas-compatible service.
package catapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/dbmrq/catsays/internal/errors"
	"github.com/dbmrq/catsays/internal/logging"
)

const (
	// DefaultBaseURL is the public Cat as a Service endpoint.
	DefaultBaseURL = "https://cataas.com"

	// DefaultTimeout bounds a single image request.
	DefaultTimeout = 10 * time.Second

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 1 << 20
)

// catResponse is the JSON document returned by /cat/says/{text}?json=true.
// Only URL is required; the rest is logged when present.
type catResponse struct {
	ID       string   `json:"_id"`
	AltID    string   `json:"id"`
	URL      string   `json:"url"`
	Mimetype string   `json:"mimetype"`
	Tags     []string `json:"tags"`
}

// Client requests captioned images.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
}

// NewClient creates a client for baseURL. An empty baseURL uses
// DefaultBaseURL and a non-positive timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		UserAgent:  "catsays",
	}
}

// RequestURL returns the URL requested for caption. The caption is
// percent-encoded as a single path segment.
func (c *Client) RequestURL(caption string) string {
	return c.BaseURL + "/cat/says/" + url.PathEscape(caption) + "?json=true"
}

// FetchImage asks the service to render caption and returns the image URL.
func (c *Client) FetchImage(ctx context.Context, caption string) (string, error) {
	logger := logging.Global().WithContext(ctx).With("component", "catapi")
	host := c.host()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RequestURL(caption), nil)
	if err != nil {
		return "", apperrors.NetworkUnavailable(host, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", apperrors.ContextCancelled("image fetch", err)
		}
		return "", apperrors.NetworkUnavailable(host, err)
	}
	defer resp.Body.Close()

	logger.Debug("image service responded",
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return "", apperrors.BadStatus(host, resp.StatusCode)
	}

	var body catResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return "", apperrors.MalformedResponse("body is not JSON", err)
	}
	if strings.TrimSpace(body.URL) == "" {
		return "", apperrors.MalformedResponse("missing url field", nil)
	}

	image := c.resolve(body.URL)
	logger.Debug("image resolved", "id", firstNonEmpty(body.ID, body.AltID), "mimetype", body.Mimetype, "url", image)
	return image, nil
}

// resolve joins a relative image path onto the base URL with exactly one
// slash. Absolute URLs are returned unchanged.
func (c *Client) resolve(ref string) string {
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	return c.BaseURL + "/" + strings.TrimPrefix(ref, "/")
}

func (c *Client) host() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" {
		return c.BaseURL
	}
	return u.Host
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
