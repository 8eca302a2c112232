// arcade runs the tiny OLED games in the terminal.
//
// Usage:
//
//	arcade list                 - List available games
//	arcade play <game>          - Play a game
//	arcade menu                 - Start menu to pick games interactively
//	arcade snapshot <game>      - Run a game headless and print the panel
//	arcade assets               - Report compressed asset sizes
//
// Global flags:
//
//	--seed <value>       - Seed for the enemy shift register (0 = game default)
//	--speed <factor>     - Frame delay multiplier (default: 1)
//	--config <path>      - Custom game config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Where the interactive commands log to
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiny-arcade/internal/config"
	"github.com/vovakirdan/tiny-arcade/internal/core"
	"github.com/vovakirdan/tiny-arcade/internal/games/beatem"
	"github.com/vovakirdan/tiny-arcade/internal/games/platformer"
	"github.com/vovakirdan/tiny-arcade/internal/games/racing"
)

var (
	// Global flags
	flagSeed     int64
	flagSpeed    float64
	flagConfig   string
	flagPanel    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Tiny Arcade - 128x64 OLED games in your terminal",
	Long: `Tiny Arcade emulates a 128x64 monochrome OLED panel and the small
one-to-three button games written for it.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  snapshot  - Headless deterministic run, prints the panel
  assets    - Compressed tile report

Examples:
  arcade list
  arcade play racing
  arcade play platformer --config ./my-platformer.yaml
  arcade snapshot beatem --frames 200 --press 3:action,20-60:action
  arcade assets --yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Enemy shift register seed (0 = game default)")
	rootCmd.PersistentFlags().Float64Var(&flagSpeed, "speed", 1, "Frame delay multiplier (0 = no waiting)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPanel, "panel", "", "Path to custom panel config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play and menu (default: no logging)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(assetsCmd)
}

// runtimeConfig builds the per-game runtime settings from the flags.
func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:  flagSeed,
		Speed: flagSpeed,
	}
}

// newLogger writes to w at the --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "arcade",
	}), nil
}

// fileLogger is used while the alternate screen is up, where stderr output
// would corrupt the panel. Without --log-file nothing is logged.
func fileLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		l, err := newLogger(io.Discard)
		return l, func() {}, err
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, func() { f.Close() }, nil
}

// configLoaders validate a custom config for each game before it runs;
// games fall back to defaults silently.
var configLoaders = map[string]func(string) error{
	"beatem": func(p string) error {
		_, err := config.LoadBeatem(p)
		return err
	},
	"platformer": func(p string) error {
		_, err := config.LoadPlatformer(p)
		return err
	},
	"racing": func(p string) error {
		_, err := config.LoadRacing(p)
		return err
	},
}

// applyConfig points the game at --config after checking that it loads.
func applyConfig(gameID string) error {
	if flagConfig == "" {
		return nil
	}
	if load, ok := configLoaders[gameID]; ok {
		if err := load(flagConfig); err != nil {
			return err
		}
	}

	switch gameID {
	case "beatem":
		beatem.SetConfigPath(flagConfig)
	case "platformer":
		platformer.SetConfigPath(flagConfig)
	case "racing":
		racing.SetConfigPath(flagConfig)
	}
	return nil
}

// panelConfig loads --panel, or the default search path.
func panelConfig() (config.PanelConfig, error) {
	return config.LoadPanel(flagPanel)
}
