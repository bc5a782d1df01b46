package config

import "fmt"

// ColorMode selects when tables are drawn with ANSI colours.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Valid reports whether m is a known colour mode.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// Default values.
const (
	DefaultColor     = ColorAuto
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultLogPrefix = "tasklist"
)

// Config holds the full configuration for tasklist.
type Config struct {
	// Table colours
	Color ColorMode `toml:"color"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
	LogPrefix     string `toml:"log_prefix"`

	// Files that contributed to this config, in load order (computed)
	Files []string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogPrefix = DefaultLogPrefix
}

// ValidationError describes a rejected configuration value.
type ValidationError struct {
	Path string // dotted key path, empty for the document root
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
