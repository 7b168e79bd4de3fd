package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the name of the config file inside the catsays directory.
	ConfigFileName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "CATSAYS"
)

// DefaultPath returns ~/.catsays/config.yaml.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), ConfigFileName)
}

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	defaults := NewConfig()
	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.timeout", defaults.API.Timeout)
	v.SetDefault("api.default_caption", defaults.API.DefaultCaption)
	v.SetDefault("api.default_image", defaults.API.DefaultImage)
	v.SetDefault("storage.backend", string(defaults.Storage.Backend))
	v.SetDefault("storage.path", defaults.Storage.Path)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.dir", defaults.Log.Dir)
	v.SetDefault("log.json", defaults.Log.JSON)
	v.SetDefault("log.max_files", defaults.Log.MaxFiles)
	v.SetDefault("log.max_age", defaults.Log.MaxAge)
	v.SetDefault("ui.alt_screen", defaults.UI.AltScreen)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result. The file must exist.
// If path is empty, it uses DefaultPath.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	return l.load(path, true)
}

// LoadConfigOrDefault behaves like LoadConfig but treats a missing file as
// an empty one, so defaults and environment overrides still apply.
func (l *Loader) LoadConfigOrDefault(path string) (*Config, error) {
	return l.load(path, false)
}

func (l *Loader) load(path string, required bool) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	_, statErr := os.Stat(path)
	missing := os.IsNotExist(statErr)
	if missing && required {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     statErr,
		}
	}

	if !missing {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to read config file",
				Err:     err,
			}
		}
	}

	cfg := NewConfig()
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// viperDecodeHook binds keys through the yaml tags and composes the
// standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(StorageBackend("")):
			return StorageBackend(strings.ToLower(strings.TrimSpace(data.(string)))), nil
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadOrDefault is a convenience function for Loader.LoadConfigOrDefault.
func LoadOrDefault(path string) (*Config, error) {
	return NewLoader().LoadConfigOrDefault(path)
}

// document mirrors Config with durations spelled as strings.
type document struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		Timeout        string `yaml:"timeout"`
		DefaultCaption string `yaml:"default_caption"`
		DefaultImage   string `yaml:"default_image"`
	} `yaml:"api"`
	Storage struct {
		Backend string `yaml:"backend"`
		Path    string `yaml:"path,omitempty"`
	} `yaml:"storage"`
	Log struct {
		Level    string `yaml:"level"`
		Dir      string `yaml:"dir"`
		JSON     bool   `yaml:"json"`
		MaxFiles int    `yaml:"max_files"`
		MaxAge   string `yaml:"max_age"`
	} `yaml:"log"`
	UI struct {
		AltScreen bool `yaml:"alt_screen"`
	} `yaml:"ui"`
}

func newDocument(cfg *Config) document {
	var d document
	d.API.BaseURL = cfg.API.BaseURL
	d.API.Timeout = cfg.API.Timeout.String()
	d.API.DefaultCaption = cfg.API.DefaultCaption
	d.API.DefaultImage = cfg.API.DefaultImage
	d.Storage.Backend = string(cfg.Storage.Backend)
	d.Storage.Path = cfg.Storage.Path
	d.Log.Level = cfg.Log.Level
	d.Log.Dir = cfg.Log.Dir
	d.Log.JSON = cfg.Log.JSON
	d.Log.MaxFiles = cfg.Log.MaxFiles
	d.Log.MaxAge = cfg.Log.MaxAge.String()
	d.UI.AltScreen = cfg.UI.AltScreen
	return d
}

// Marshal renders cfg as YAML in the same shape Load reads.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(newDocument(cfg))
}

// Save writes cfg to path, creating parent directories as needed.
// If path is empty, it uses DefaultPath.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := append([]byte("# catsays configuration\n"), data...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
