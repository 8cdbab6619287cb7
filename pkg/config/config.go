// Package config provides TOML-based configuration for deskcalc, with a
// YAML alternative accepted at the same search paths.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Theme   ThemeConfig   `toml:"theme" yaml:"theme"`
}

// GeneralConfig holds logging settings.
type GeneralConfig struct {
	LogFile  string `toml:"log_file" yaml:"log_file"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// DisplayConfig holds display and timing settings.
type DisplayConfig struct {
	// ErrorFlash is how long "Err" stays on the display before the
	// current value reverts to "0".
	ErrorFlash Duration `toml:"error_flash" yaml:"error_flash"`

	// SuccessPulse is how long the display pulses after an evaluation.
	SuccessPulse Duration `toml:"success_pulse" yaml:"success_pulse"`

	// TapeLines is the maximum number of past evaluations kept on the
	// in-session tape.
	TapeLines int `toml:"tape_lines" yaml:"tape_lines"`

	// ShowTape controls whether the tape is visible at startup.
	ShowTape bool `toml:"show_tape" yaml:"show_tape"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	// Name is the theme to use. Empty means autodetect from the
	// terminal background.
	Name string `toml:"name" yaml:"name"`
}

// Validate checks the configuration for values the program cannot run with.
func (c *Config) Validate() error {
	if c.Display.ErrorFlash.Duration <= 0 {
		return fmt.Errorf("config: display.error_flash must be positive, got %s", c.Display.ErrorFlash.Duration)
	}
	if c.Display.SuccessPulse.Duration <= 0 {
		return fmt.Errorf("config: display.success_pulse must be positive, got %s", c.Display.SuccessPulse.Duration)
	}
	if c.Display.TapeLines < 0 {
		return fmt.Errorf("config: display.tape_lines must not be negative, got %d", c.Display.TapeLines)
	}
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.General.LogLevel)
	}
	return nil
}

// Duration wraps time.Duration with config-friendly string parsing.
// Supports standard Go duration strings: "700ms", "1s", "2m", etc.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler; yaml.v3 does not consult
// TextUnmarshaler on its own.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
