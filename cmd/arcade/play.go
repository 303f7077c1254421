package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/games/fighter"
	"github.com/vovakirdan/tilt-arcade/internal/games/marble"
	"github.com/vovakirdan/tilt-arcade/internal/platform/tui"
	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagLevelsDir  string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Enter  - Tap to play / fire
  Arrows/WASD  - Tilt the maze / move the crosshair
  P            - Pause
  B/Esc        - Leave (from the title screen, game over or pause)
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower energy drain, more lives, gentler pace
  normal - Default tuning, difficulty grows with score
  hard   - Faster drain, fewer lives, quicker spawns
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play marble
  arcade play marble --level causeway
  arcade play marble --levels-dir ./my-levels
  arcade play fighter --difficulty hard
  arcade play fighter --config ./my-fighter.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the per-game tuning flags on cmd.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevel, "level", "", "Marble maze level ID")
	cmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of marble maze level YAML files")
}

// applyGameOptions hands the tuning flags to the game package before creation.
func applyGameOptions(gameID string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	switch gameID {
	case "marble":
		marble.SetConfigPath(flagConfig)
		marble.SetDifficultyPreset(flagDifficulty)
		marble.SetLevelsDir(flagLevelsDir)
		marble.SetLevel(flagLevel)
	case "fighter":
		fighter.SetConfigPath(flagConfig)
		fighter.SetDifficultyPreset(flagDifficulty)
	}
	return nil
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	if err := applyGameOptions(gameID); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without scores
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "game", gameID, "fps", flagFPS, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, terminalConfig(), logger.WithPrefix(gameID)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
