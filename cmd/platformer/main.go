// platformer is a side-scrolling platformer played in the terminal.
//
// Usage:
//
//	platformer list                 - List available levels
//	platformer play [level]         - Play a level
//	platformer menu                 - Pick levels interactively
//	platformer simulate [level]     - Run a level headless and print its final state
//	platformer config               - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.platformer/configs, ./configs)
//	--fps <rate>        - Override the tick rate (default: from config, 100)
//	--log-level <lvl>   - debug, info, warn, error (default: from config)
//	--log-file <path>   - Write logs to a file while the TUI owns the terminal
//	--mono              - Use the monochrome theme
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
	flagMono     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Terminal platformer - run, jump and shoot in your terminal",
	Long: `A side-scrolling platformer simulated at a fixed timestep and drawn
in the terminal. Click the on-screen zones or use the keyboard.

Available commands:
  list      - Show all levels
  play      - Play a level directly
  menu      - Interactive level picker
  simulate  - Headless deterministic run
  config    - Print the effective configuration

Examples:
  platformer list
  platformer play classic
  platformer menu --fps 60
  platformer simulate pipes --script right:40,jump:6,idle:20
  platformer config > configs/platformer.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Monochrome colors")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
