// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/tsplit/internal/clock"
	"github.com/javiermolinar/tsplit/internal/period"
)

// Config holds the application configuration.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Output   OutputConfig   `toml:"output"`
	UI       UIConfig       `toml:"ui"`
}

// DefaultsConfig holds the values the form starts with.
type DefaultsConfig struct {
	Start string `toml:"start" validate:"required"` // e.g., "10:00"
	End   string `toml:"end" validate:"required"`   // e.g., "13:00"
	Count int    `toml:"count" validate:"gte=2,lte=9999"`
}

// OutputConfig controls how results are shown.
type OutputConfig struct {
	Mode string `toml:"mode" validate:"oneof=interval boundary"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme" validate:"required"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Start: "10:00",
			End:   "13:00",
			Count: 3,
		},
		Output: OutputConfig{
			Mode: string(period.ModeInterval),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "tsplit", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Output.Mode = strings.ToLower(cfg.Output.Mode)
	cfg.UI.Theme = strings.ToLower(cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TSPLIT_START"); v != "" {
		cfg.Defaults.Start = v
	}
	if v := os.Getenv("TSPLIT_END"); v != "" {
		cfg.Defaults.End = v
	}
	if v := os.Getenv("TSPLIT_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TSPLIT_COUNT must be an integer, got %q", v)
		}
		cfg.Defaults.Count = n
	}
	if v := os.Getenv("TSPLIT_MODE"); v != "" {
		cfg.Output.Mode = v
	}
	if v := os.Getenv("TSPLIT_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return err
	}
	if err := validateTime(c.Defaults.Start, "start"); err != nil {
		return err
	}
	return validateTime(c.Defaults.End, "end")
}

// fieldError turns a validator failure into a message naming the TOML key.
func fieldError(fe validator.FieldError) error {
	switch fe.StructField() {
	case "Count":
		return fmt.Errorf("count must be from %d to %d, got %v", period.MinCount, period.MaxCount, fe.Value())
	case "Mode":
		return fmt.Errorf("mode must be %q or %q, got %q", period.ModeInterval, period.ModeBoundary, fe.Value())
	case "Theme":
		return errors.New("theme must be set")
	default:
		return fmt.Errorf("%s must be set", strings.ToLower(fe.StructField()))
	}
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if _, err := clock.Parse(t); err != nil {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

// Mode returns the configured output mode.
func (c *Config) Mode() period.Mode {
	m, err := period.ParseMode(c.Output.Mode)
	if err != nil {
		return period.ModeInterval
	}
	return m
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
