// Package config provides configuration data structures for catsays.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dbmrq/catsays/internal/logging"
	"github.com/dbmrq/catsays/internal/store"
)

// Config represents the complete catsays configuration loaded from ~/.catsays/config.yaml.
type Config struct {
	API     APIConfig     `yaml:"api"     json:"api"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Log     LogConfig     `yaml:"log"     json:"log"`
	UI      UIConfig      `yaml:"ui"      json:"ui"`
}

// APIConfig configures the cat image service.
type APIConfig struct {
	// BaseURL is the service domain (default: https://cataas.com).
	BaseURL string `yaml:"base_url" json:"base_url"`
	// Timeout bounds a single image request (default: 10s).
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
	// DefaultCaption is rendered once at startup (default: "First cat").
	DefaultCaption string `yaml:"default_caption" json:"default_caption"`
	// DefaultImage is shown until the startup image arrives.
	DefaultImage string `yaml:"default_image" json:"default_image"`
}

// StorageBackend selects where the counter and favorites are persisted.
type StorageBackend string

const (
	// StorageBackendFile keeps every key in one JSON file.
	StorageBackendFile StorageBackend = "file"
	// StorageBackendSQLite keeps keys in a SQLite database.
	StorageBackendSQLite StorageBackend = "sqlite"
)

// StorageConfig configures persistence.
type StorageConfig struct {
	// Backend is "file" or "sqlite" (default: file).
	Backend StorageBackend `yaml:"backend" json:"backend"`
	// Path is the store location. Empty means a backend-specific file under ~/.catsays.
	Path string `yaml:"path" json:"path"`
}

// LogConfig configures the file logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info).
	Level string `yaml:"level" json:"level"`
	// Dir is the log directory (default: ~/.catsays/logs).
	Dir string `yaml:"dir" json:"dir"`
	// JSON switches records to JSON lines.
	JSON bool `yaml:"json" json:"json"`
	// MaxFiles is the number of log files kept (default: 10).
	MaxFiles int `yaml:"max_files" json:"max_files"`
	// MaxAge removes log files older than this (default: 168h).
	MaxAge time.Duration `yaml:"max_age" json:"max_age"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	// AltScreen runs the TUI in the alternate screen buffer (default: true).
	AltScreen bool `yaml:"alt_screen" json:"alt_screen"`
}

// Default values.
const (
	DefaultDirName        = ".catsays"
	DefaultBaseURL        = "https://cataas.com"
	DefaultTimeout        = 10 * time.Second
	DefaultCaption        = "First cat"
	DefaultImage          = "https://cataas.com/cat/60b73094e04e18001194a309/says/react"
	DefaultLogLevel       = "info"
	DefaultLogMaxFiles    = 10
	DefaultLogMaxAge      = 7 * 24 * time.Hour
	DefaultStorageBackend = StorageBackendFile
)

// DefaultDir returns ~/.catsays, or .catsays when the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultDirName
	}
	return filepath.Join(home, DefaultDirName)
}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	dir := DefaultDir()
	return &Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			Timeout:        DefaultTimeout,
			DefaultCaption: DefaultCaption,
			DefaultImage:   DefaultImage,
		},
		Storage: StorageConfig{
			Backend: DefaultStorageBackend,
			Path:    "",
		},
		Log: LogConfig{
			Level:    DefaultLogLevel,
			Dir:      filepath.Join(dir, "logs"),
			JSON:     false,
			MaxFiles: DefaultLogMaxFiles,
			MaxAge:   DefaultLogMaxAge,
		},
		UI: UIConfig{
			AltScreen: true,
		},
	}
}

// ApplyDefaults fills unset fields and expands a leading ~ in paths.
// It is used after loading config from file.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	if c.API.DefaultCaption == "" {
		c.API.DefaultCaption = defaults.API.DefaultCaption
	}
	if c.API.DefaultImage == "" {
		c.API.DefaultImage = defaults.API.DefaultImage
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.Path == "" {
		c.Storage.Path = defaultStorePath(c.Storage.Backend)
	}
	c.Storage.Path = expandHome(c.Storage.Path)

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
	c.Log.Dir = expandHome(c.Log.Dir)
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = defaults.Log.MaxAge
	}
}

func defaultStorePath(backend StorageBackend) string {
	name := store.DefaultFileName
	if backend == StorageBackendSQLite {
		name = store.DefaultDBName
	}
	return filepath.Join(DefaultDir(), name)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Logging converts the log section into a logger configuration.
// The level must already be valid.
func (c *Config) Logging() *logging.Config {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	return &logging.Config{
		Level:       level,
		LogDir:      c.Log.Dir,
		MaxLogFiles: c.Log.MaxFiles,
		MaxLogAge:   c.Log.MaxAge,
		JSONFormat:  c.Log.JSON,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, &ValidationError{Field: "api.base_url", Message: "must be an http or https URL"})
		}
	}
	if c.API.Timeout < 0 {
		errs = append(errs, &ValidationError{Field: "api.timeout", Message: "must be non-negative"})
	}
	if strings.TrimSpace(c.API.DefaultCaption) == "" && c.API.DefaultCaption != "" {
		errs = append(errs, &ValidationError{Field: "api.default_caption", Message: "must not be blank"})
	}

	if c.Storage.Backend != "" {
		switch c.Storage.Backend {
		case StorageBackendFile, StorageBackendSQLite:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "storage.backend",
				Message: "must be 'file' or 'sqlite'",
			})
		}
	}

	if c.Log.Level != "" {
		if _, err := logging.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, &ValidationError{
				Field:   "log.level",
				Message: "must be 'debug', 'info', 'warn', or 'error'",
			})
		}
	}
	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}
	if c.Log.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_age", Message: fmt.Sprintf("must be non-negative, got %v", c.Log.MaxAge)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
