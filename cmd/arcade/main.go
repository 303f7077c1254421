// arcade is a terminal arcade of tap-to-play games sharing one session flow:
// tap to start, play until lives or energy run out, then back to the title.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
//
// Every global flag can also come from an ARCADE_* environment variable,
// optionally loaded from a .env file in the working directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	// Import games to register them
	_ "github.com/vovakirdan/tilt-arcade/internal/games/fighter"
	_ "github.com/vovakirdan/tilt-arcade/internal/games/marble"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Tilt Arcade - tap-to-play games in your terminal",
	Long: `Tilt Arcade is a terminal arcade with two games that share one
session flow: tap to play, keep your lives or energy up, and return to
the title screen a few seconds after the game is over.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play marble
  arcade play fighter --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores marble`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadEnv reads an optional .env file and fills every flag the user did not
// set on the command line from ARCADE_<FLAG_NAME>.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var setErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || setErr != nil {
			return
		}
		if v, ok := os.LookupEnv(envName(f.Name)); ok {
			if err := cmd.Flags().Set(f.Name, v); err != nil {
				setErr = fmt.Errorf("%s: %w", envName(f.Name), err)
			}
		}
	})
	if setErr != nil {
		return setErr
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

// envName maps a flag name to its environment variable, e.g. log-level to ARCADE_LOG_LEVEL.
func envName(flag string) string {
	return "ARCADE_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// newLogger builds the process logger from --log-level and --log-file.
// Without a log file, fallback receives the output; interactive commands
// pass io.Discard so the alternate screen stays clean.
func newLogger(fallback io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	out := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	}

	return log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "arcade",
	}), nil
}
