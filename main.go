// deskcalc is an on-screen calculator for the terminal.
//
// It shows a clickable keypad, a two-line display with the committed
// expression and the value being typed, and an in-session tape of past
// results. Input works from the keyboard and the mouse alike.
//
// Usage:
//
//	deskcalc [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: XDG search path)
//	-theme string   Color theme (overrides config and autodetection)
//	-list-themes    Print available theme names and exit
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/deskcalc/pkg/app"
	"gitlab.com/tinyland/lab/deskcalc/pkg/config"
	"gitlab.com/tinyland/lab/deskcalc/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		themeName   = flag.String("theme", "", "Color theme (overrides config and autodetection)")
		listThemes  = flag.Bool("list-themes", false, "Print available theme names and exit")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("deskcalc %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// User themes sit next to the config file and can shadow builtins.
	for _, loadErr := range theme.LoadDir(config.ThemesDir()) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", loadErr)
	}

	if *listThemes {
		for _, name := range theme.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	// Theme precedence: flag, then config, then terminal autodetection.
	name := *themeName
	if name == "" {
		name = cfg.Theme.Name
	}
	if name == "" {
		name = theme.Autodetect()
	}
	if name != "" && !theme.Has(name) {
		fmt.Fprintf(os.Stderr, "unknown theme %q (try -list-themes)\n", name)
		os.Exit(1)
	}
	theme.SetCurrent(name)

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "deskcalc requires an interactive terminal")
		os.Exit(1)
	}

	// Setup log file directory
	if err := ensureLogDir(cfg.General.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// The alternate screen owns stdout, so logs go to the file only.
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: logLevel(cfg.General.LogLevel, *verbose),
	}))

	logger.Info("starting deskcalc",
		"version", version,
		"theme", theme.Current.Name,
	)

	zone.NewGlobal()
	defer zone.Close()

	p := tea.NewProgram(app.New(*cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("UI error", "error", err)
		fmt.Fprintf(os.Stderr, "deskcalc: %v\n", err)
		os.Exit(1)
	}
}

// logLevel maps the configured level name to slog, with -verbose forcing
// debug.
func logLevel(name string, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ensureLogDir(logFile string) error {
	dir := filepath.Dir(logFile)
	return os.MkdirAll(dir, 0755)
}
