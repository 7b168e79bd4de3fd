// Package store persists small structured values under string keys.
//
// A Store serializes values to JSON text and hands the text to a Backend,
// which only ever sees strings. Reads never fail: a missing key and a value
// that no longer parses are both reported as absent.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	apperrors "github.com/dbmrq/catsays/internal/errors"
	"github.com/dbmrq/catsays/internal/logging"
)

// Backend stores serialized text under keys.
// Implementations must keep keys they were not asked to change.
type Backend interface {
	// GetItem returns the text stored under key and whether the key exists.
	GetItem(key string) (string, bool, error)
	// SetItem stores text under key, replacing any previous value.
	SetItem(key, value string) error
	// Close releases any resources held by the backend.
	Close() error
}

// Store is the JSON adapter over a Backend.
type Store struct {
	backend Backend
	logger  *logging.Logger
}

// New creates a Store over the given backend.
// If logger is nil the global logger is used.
func New(backend Backend, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Global()
	}
	return &Store{
		backend: backend,
		logger:  logger.With("component", "store"),
	}
}

// Set serializes value to JSON and writes it under key.
func (s *Store) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperrors.StoreWriteFailed(key, fmt.Errorf("encoding value: %w", err))
	}
	if err := s.backend.SetItem(key, string(data)); err != nil {
		return apperrors.StoreWriteFailed(key, err)
	}
	s.logger.Debug("stored value", "key", key, "bytes", len(data))
	return nil
}

// Get reads the value under key into dst, which must be a non-nil pointer.
// It returns false, leaving dst untouched, when the key was never set, holds
// JSON null, or holds text that does not decode into dst.
func (s *Store) Get(key string, dst any) bool {
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		s.logger.Error("Get needs a non-nil pointer", "key", key, "type", fmt.Sprintf("%T", dst))
		return false
	}

	raw, ok, err := s.backend.GetItem(key)
	if err != nil {
		s.logger.Warn("failed to read value, treating as absent", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}

	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false
	}

	// Decode into a fresh value; json.Unmarshal fills dst partially on a type mismatch.
	decoded := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(trimmed, decoded.Interface()); err != nil {
		s.logger.Warn("stored value does not parse, treating as absent", "key", key, "error", err)
		return false
	}
	target.Elem().Set(decoded.Elem())
	return true
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
