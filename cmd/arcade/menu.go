package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tiny-arcade/internal/platform/tui"
	"github.com/vovakirdan/tiny-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, Tab for the
scores of this session. After a game you return to the menu.

Scores are kept in memory and are gone when the arcade exits.

Examples:
  arcade menu
  arcade menu --speed 2 --log-file arcade.log`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := playOptions(logger)
	if err != nil {
		return err
	}

	store := openSession(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	for {
		res, err := tui.RunMenu(store, width, height)
		if err != nil {
			return err
		}
		width, height = res.Width, res.Height

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, width, height)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if err := applyConfig(res.GameID); err != nil {
			logger.Error("bad game config", "game", res.GameID, "err", err)
			continue
		}
		game, err := registry.Create(res.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", res.GameID, "err", err)
			continue
		}

		if err := tui.Run(game, store, opts); err != nil {
			return err
		}
	}
}
