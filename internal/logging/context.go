package logging

import (
	"context"

	"github.com/google/uuid"
)

// Context keys for logging.
type contextKey string

const (
	// ContextKeySessionID is the context key for the session ID.
	ContextKeySessionID contextKey = "session_id"
	// ContextKeyRequestID is the context key for the image fetch request ID.
	ContextKeyRequestID contextKey = "request_id"
)

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSessionID adds session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, sessionID)
}

// SessionID returns the session ID stored in ctx, or "".
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeySessionID).(string)
	return id
}

// WithRequestID adds a fetch request ID to the context.
func WithRequestID(ctx context.Context, requestID uint64) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}
