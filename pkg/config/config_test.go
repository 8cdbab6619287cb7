package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
}

func TestLoadFromTOML(t *testing.T) {
	src := `
[general]
log_level = "debug"

[display]
error_flash = "1s"
tape_lines = 20
show_tape = false

[theme]
name = "nord"
`
	cfg, err := LoadFromTOML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadFromTOML failed: %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.General.LogLevel, "debug")
	}
	if cfg.Display.ErrorFlash.Duration != time.Second {
		t.Errorf("ErrorFlash = %s, want 1s", cfg.Display.ErrorFlash.Duration)
	}
	if cfg.Display.TapeLines != 20 {
		t.Errorf("TapeLines = %d, want 20", cfg.Display.TapeLines)
	}
	if cfg.Display.ShowTape {
		t.Error("ShowTape = true, want false")
	}
	if cfg.Theme.Name != "nord" {
		t.Errorf("Theme.Name = %q, want %q", cfg.Theme.Name, "nord")
	}
	// Unset fields keep defaults.
	if cfg.Display.SuccessPulse.Duration != 300*time.Millisecond {
		t.Errorf("SuccessPulse = %s, want default 300ms", cfg.Display.SuccessPulse.Duration)
	}
}

func TestLoadFromYAML(t *testing.T) {
	src := `
display:
  error_flash: 250ms
theme:
  name: gruvbox
`
	cfg, err := LoadFromYAML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if cfg.Display.ErrorFlash.Duration != 250*time.Millisecond {
		t.Errorf("ErrorFlash = %s, want 250ms", cfg.Display.ErrorFlash.Duration)
	}
	if cfg.Theme.Name != "gruvbox" {
		t.Errorf("Theme.Name = %q, want %q", cfg.Theme.Name, "gruvbox")
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	if _, err := LoadFromTOML(strings.NewReader("[display]\nerror_flash = \"soon\"\n")); err == nil {
		t.Error("expected error for unparseable duration")
	}
	if _, err := LoadFromTOML(strings.NewReader("[display]\nerror_flash = \"-1s\"\n")); err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Display.ErrorFlash = Duration{0} },
		func(c *Config) { c.Display.SuccessPulse = Duration{-time.Second} },
		func(c *Config) { c.Display.TapeLines = -1 },
		func(c *Config) { c.General.LogLevel = "loud" },
	}
	for i, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestEnvOverrideTheme(t *testing.T) {
	t.Setenv("DESKCALC_THEME", "gruvbox")
	cfg, err := LoadFromTOML(strings.NewReader("[theme]\nname = \"nord\"\n"))
	if err != nil {
		t.Fatalf("LoadFromTOML failed: %v", err)
	}
	if cfg.Theme.Name != "gruvbox" {
		t.Errorf("Theme.Name = %q, want env override %q", cfg.Theme.Name, "gruvbox")
	}
}
