package errors

import (
	"fmt"
)

// Configuration and storage error constructors.

// InvalidConfig creates an error for a configuration file that could not be used.
func InvalidConfig(configPath string, cause error) *Error {
	return &Error{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", configPath),
		Cause:   cause,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for mistakes, or regenerate it:

    catsays config init --force`,
	}
}

// StoreUnavailable creates an error for a store that could not be opened.
func StoreUnavailable(path string, cause error) *Error {
	return &Error{
		Kind:    ErrStore,
		Message: "failed to open store",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Make sure the directory is writable, or set storage.path to another location.",
	}
}

// StoreWriteFailed creates an error for a value that could not be persisted.
func StoreWriteFailed(key string, cause error) *Error {
	return &Error{
		Kind:    ErrStore,
		Message: fmt.Sprintf("failed to persist %q", key),
		Cause:   cause,
		Details: map[string]string{
			"key": key,
		},
	}
}
