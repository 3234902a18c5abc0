package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After quitting a level, you return to the menu to pick another.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Q            - Quit

Examples:
  platformer menu
  platformer menu --fps 60 --mono`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	current := cfg.World.Level

	// Menu loop
	for {
		rc := runtimeConfig()

		res, err := tui.RunMenu(current, theme(), rc.ScreenW, rc.ScreenH)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}

		current = res.LevelID
		levelCfg := cfg
		levelCfg.World.Level = current

		// A failed level returns to the menu
		if err := playLevel(levelCfg, logger, runtimeConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
