// brickgame is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	brickgame play            - Play a game
//	brickgame scores          - Show recorded games
//	brickgame best            - Show the best score
//	brickgame best reset      - Forget the best score
//	brickgame config          - Print the default configuration
//
// Global flags:
//
//	--db <path>          - Scores database (default: ~/.brickgame/scores.db)
//	--score-file <path>  - Best score file (default: ~/.brickgame/tetris.score)
//	--highscore <kind>   - Where the best score lives: file or db
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath    string
	flagScoreFile string
	flagHighScore string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "Brick Game - Tetris in your terminal",
	Long: `Brick Game is a terminal falling-block puzzle game.

Available commands:
  play     - Start the game
  scores   - View recorded games
  best     - Show or reset the best score
  config   - Print the default configuration

Examples:
  brickgame play
  brickgame play --difficulty hard
  brickgame scores --limit 5
  brickgame best reset`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickgame/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagScoreFile, "score-file", "", "Path to best score file (default ~/.brickgame/tetris.score)")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", keeperFile, "Best score storage: file or db")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(configCmd)
}
