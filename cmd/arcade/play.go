package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiny-arcade/internal/platform/tui"
	"github.com/vovakirdan/tiny-arcade/internal/registry"
	"github.com/vovakirdan/tiny-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game on the emulated panel.

Controls:
  Left/A     - Left button
  Right/D    - Right button
  Space/Up   - Action button
  ?          - Toggle help
  Q/Esc      - Quit

A key press holds its button for a few frames (latch_ticks in the panel
config), since terminals do not report key releases.

Examples:
  arcade play racing
  arcade play beatem --speed 0.5
  arcade play platformer --config ./my-platformer.yaml --log-file arcade.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := playOptions(logger)
	if err != nil {
		return err
	}
	if err := applyConfig(gameID); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openSession(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, opts); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

func playOptions(logger *log.Logger) (tui.Options, error) {
	panel, err := panelConfig()
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Runtime: runtimeConfig(),
		Panel:   panel,
		Logger:  logger,
	}, nil
}

// openSession opens the session scoreboard. Games still run without it.
func openSession(logger *log.Logger) *storage.Store {
	store, err := storage.OpenSession(logger)
	if err != nil {
		logger.Warn("scoreboard unavailable", "err", err)
		return nil
	}
	return store
}
