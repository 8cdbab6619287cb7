package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/deskcalc/config.toml
//  2. $XDG_CONFIG_HOME/deskcalc/config.yaml
//  3. The same pair under ~/.config when XDG_CONFIG_HOME points elsewhere.
//
// If no file exists, returns Default() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := Default()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. The decoder
// is chosen by extension: .yaml/.yml use YAML, anything else TOML.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadFromYAML(f)
	default:
		return LoadFromTOML(f)
	}
}

// LoadFromTOML reads TOML configuration from an io.Reader.
func LoadFromTOML(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: parse TOML: %w", err)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromYAML reads YAML configuration from an io.Reader.
func LoadFromYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: parse YAML: %w", err)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		General: GeneralConfig{
			LogFile:  filepath.Join(xdgStateHome(home), "deskcalc", "deskcalc.log"),
			LogLevel: "info",
		},
		Display: DisplayConfig{
			ErrorFlash:   Duration{700 * time.Millisecond},
			SuccessPulse: Duration{300 * time.Millisecond},
			TapeLines:    8,
			ShowTape:     true,
		},
		Theme: ThemeConfig{
			Name: "",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DESKCALC_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("DESKCALC_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths,
		filepath.Join(xdg, "deskcalc", "config.toml"),
		filepath.Join(xdg, "deskcalc", "config.yaml"),
	)

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths,
			filepath.Join(defaultXDG, "deskcalc", "config.toml"),
			filepath.Join(defaultXDG, "deskcalc", "config.yaml"),
		)
	}

	return paths
}

// ThemesDir returns the directory scanned for user TOML theme files.
func ThemesDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(xdgConfigHome(home), "deskcalc", "themes")
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgStateHome returns XDG_STATE_HOME or ~/.local/state as fallback.
func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}
