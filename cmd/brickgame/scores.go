package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tranquil-fella/brick-game/internal/platform/tui"
	"github.com/Tranquil-fella/brick-game/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded games",
	Long: `Display the best recorded games from the scores database.

Examples:
  brickgame scores
  brickgame scores --limit 20
  brickgame scores --tui
  brickgame scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded games")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoresClear:
		if err := store.ClearScores(storage.GameTetris); err != nil {
			return err
		}
		fmt.Fprintln(out, "Score history cleared.")
		return nil
	case flagScoresTUI:
		return tui.RunScoreboard(store, 80, 24)
	}
	return printScores(out, store, flagScoresLimit)
}

// printScores writes the top games and summary statistics as plain text.
func printScores(out io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(storage.GameTetris, limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Tetris")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'brickgame play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	stats, err := store.Stats(storage.GameTetris)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	return nil
}
