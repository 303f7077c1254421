package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the best runs and play statistics for the specified game.
Without a game, prints a summary of every game that has been played.

Examples:
  arcade scores
  arcade scores marble
  arcade scores fighter --limit 25
  arcade scores fighter --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored runs for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return printSummary(out)
	}
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-16s  %s\n", "Rank", "Score", "Time", "End", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-16s  %s\n", "----", "-----", "----", "---", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-8s  %-16s  %s\n",
			i+1, e.Score, fmt.Sprintf("%.1fs", e.Duration), dash(e.EndReason), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d   Runs: %d   Average: %.1f   Played: %.0fs   Longest run: %.1fs\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.PlaySeconds, stats.LongestRun)
	if len(stats.EndReasons) > 0 {
		parts := make([]string, 0, len(stats.EndReasons))
		for _, reason := range slices.Sorted(maps.Keys(stats.EndReasons)) {
			parts = append(parts, fmt.Sprintf("%s %d", reason, stats.EndReasons[reason]))
		}
		fmt.Fprintf(out, "Endings: %s\n", strings.Join(parts, ", "))
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// printSummary lists aggregate stats for every game with stored runs.
func printSummary(out io.Writer) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-10s  %-6s  %-6s  %-8s  %s\n", "Game", "Best", "Runs", "Played", "Last played")
	fmt.Fprintf(out, "  %-10s  %-6s  %-6s  %-8s  %s\n", "----", "----", "----", "------", "-----------")
	for _, id := range slices.Sorted(maps.Keys(all)) {
		st := all[id]
		fmt.Fprintf(out, "  %-10s  %-6d  %-6d  %-8s  %s\n",
			id, st.HighScore, st.GamesCount, fmt.Sprintf("%.0fs", st.PlaySeconds), st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
