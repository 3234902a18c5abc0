package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level, or the configured default.

Click or drag in the on-screen zones, or use the keyboard:
  Left/A, Right/D  - Walk
  Space/Up/W       - Jump (hold to climb higher)
  F/X/Enter        - Fire
  P/Esc            - Pause
  R                - Restart the level
  Q/Ctrl+C         - Quit

Examples:
  platformer play
  platformer play pipes
  platformer play flat --fps 60 --log-file play.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.World.Level = args[0]
	}

	if !registry.Exists(cfg.World.Level) {
		return fmt.Errorf("unknown level %q (run 'platformer list' to see available levels)", cfg.World.Level)
	}

	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	return playLevel(cfg, logger, runtimeConfig())
}

// playLevel runs one level in the TUI until the player quits.
func playLevel(cfg config.Config, logger *log.Logger, rc core.RuntimeConfig) error {
	game, err := platformer.New(cfg)
	if err != nil {
		return err
	}

	logger.Info("playing", "level", game.ID(), "tick", cfg.Loop.TickInterval, "size", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH))

	err = tui.Run(game, tui.PlayOptions{
		Config: cfg,
		Logger: logger,
		Theme:  theme(),
		Width:  rc.ScreenW,
		Height: rc.ScreenH,
	})
	if err != nil {
		logger.Error("session ended", "level", game.ID(), "err", err)
		return fmt.Errorf("running level %s: %w", game.ID(), err)
	}

	state := game.State()
	logger.Info("session ended", "level", game.ID(), "ticks", state.Tick, "defeated", state.Defeated)
	return nil
}
