package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

// loadConfig loads the configuration and applies the global overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyTickRate(&cfg, flagFPS)
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the CLI logger. Without --log-file it writes to fallback,
// which is io.Discard when the alternate screen owns the terminal.
// The returned close function must be called when done.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if cfg.Log.Level != "" {
		var err error
		if level, err = log.ParseLevel(cfg.Log.Level); err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
		}
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig reads the terminal size, falling back to the core defaults.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc
}

func theme() tui.Theme {
	if flagMono {
		return tui.MonochromeTheme()
	}
	return tui.DefaultTheme()
}
