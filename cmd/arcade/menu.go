package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-arcade/internal/platform/tui"
	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leaving a game (B/Esc) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty easy --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(io.Discard)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if err := applyGameOptions(result.GameID); err != nil {
			return err
		}
		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "error", err)
			continue
		}

		// Fresh seed per game unless pinned with --seed
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, runCfg, logger.WithPrefix(result.GameID)); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
