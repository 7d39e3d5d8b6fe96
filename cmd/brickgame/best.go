package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tranquil-fella/brick-game/internal/storage"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best score",
	Long: `Print the best score the game reads at start.

The score comes from the storage selected by --highscore: a plain file
(default) or the scores database.

Examples:
  brickgame best
  brickgame best --highscore db
  brickgame best reset`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withKeeper(cmd, func(k bestKeeper) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Best: %d\n", k.ReadBest())
			return nil
		})
	},
}

var bestResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the best score",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withKeeper(cmd, func(k bestKeeper) error {
			if err := k.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Best score reset.")
			return nil
		})
	},
}

func init() {
	bestCmd.AddCommand(bestResetCmd)
}

// withKeeper opens the selected best score storage and runs fn with it.
func withKeeper(cmd *cobra.Command, fn func(bestKeeper) error) error {
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	var store *storage.Store
	if flagHighScore == keeperDB {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	keeper, err := newKeeper(flagHighScore, flagScoreFile, store, logger)
	if err != nil {
		return err
	}
	return fn(keeper)
}
