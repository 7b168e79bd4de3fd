package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dbmrq/catsays/internal/logging"
)

// DefaultFileName is the default filename for the JSON file backend.
const DefaultFileName = "store.json"

// FileBackend keeps every key in one JSON object on disk.
// The whole object is rewritten on each SetItem.
type FileBackend struct {
	path  string
	mu    sync.RWMutex
	items map[string]string
}

// OpenFile loads the JSON file at path. A missing file starts an empty
// backend; a corrupt file is logged and also starts empty.
func OpenFile(path string) (*FileBackend, error) {
	b := &FileBackend{
		path:  path,
		items: map[string]string{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	var items map[string]string
	if err := json.Unmarshal(data, &items); err != nil {
		logging.Warn("store file does not parse, starting empty", "path", path, "error", err)
		return b, nil
	}
	if items != nil {
		b.items = items
	}
	return b, nil
}

// Path returns the file path of the backend.
func (b *FileBackend) Path() string {
	return b.path
}

// GetItem implements Backend.
func (b *FileBackend) GetItem(key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.items[key]
	return v, ok, nil
}

// SetItem implements Backend.
func (b *FileBackend) SetItem(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev, had := b.items[key]
	b.items[key] = value

	if err := b.save(); err != nil {
		if had {
			b.items[key] = prev
		} else {
			delete(b.items, key)
		}
		return err
	}
	return nil
}

// Close implements Backend. The file is written on every change, so there
// is nothing to flush.
func (b *FileBackend) Close() error {
	return nil
}

// save writes the items to a temp file next to the target and renames it
// into place. Callers must hold b.mu.
func (b *FileBackend) save() error {
	data, err := json.MarshalIndent(b.items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmpPath, b.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}
