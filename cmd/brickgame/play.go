package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Tranquil-fella/brick-game/internal/config"
	"github.com/Tranquil-fella/brick-game/internal/core"
	"github.com/Tranquil-fella/brick-game/internal/platform/tui"
	"github.com/Tranquil-fella/brick-game/internal/storage"
	"github.com/Tranquil-fella/brick-game/internal/tetris"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagFPS        int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Enter        - Start
  Left/Right   - Move (A/D)
  Down         - Soft drop, hold for hard drop (S)
  X            - Hard drop
  Space        - Rotate
  P            - Pause
  Q/Esc        - End the game, quit when no game is running
  Ctrl+C       - Quit

Difficulty options:
  easy   - Speed grows half as fast
  normal - Speed grows with every level threshold
  hard   - Starts three speed steps higher
  fixed  - No progression

Examples:
  brickgame play
  brickgame play --difficulty easy
  brickgame play --config ./my-tetris.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value or time based)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 30, "Screen refresh rate")
}

// loadGameConfig loads the config file and applies command line overrides.
func loadGameConfig(path, difficulty string, seed int64) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	if difficulty != "" {
		preset, err := config.ParseDifficultyPreset(difficulty)
		if err != nil {
			return config.TetrisConfig{}, err
		}
		cfg.Difficulty.Preset = preset
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal")
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	if width < tui.LayoutWidth || height < tui.LayoutHeight+1 {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d",
			width, height, tui.LayoutWidth, tui.LayoutHeight+1)
	}

	// The TUI owns stdout, so logs only go to a file.
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(flagConfig, flagDifficulty, flagSeed)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	keeper, err := newKeeper(flagHighScore, flagScoreFile, store, logger)
	if err != nil {
		return err
	}

	engine := tetris.New(
		tetris.WithConfig(cfg),
		tetris.WithScoreKeeper(keeper),
		tetris.WithLogger(logger),
	)

	rc := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		RefreshFPS: core.Clamp(flagFPS, 1, 120),
		Seed:       cfg.Seed,
	}

	var recorder tui.ScoreRecorder
	if store != nil {
		recorder = store
	}
	logger.Info("starting", "difficulty", cfg.Difficulty.Preset, "highscore", flagHighScore)
	if err := tui.Run(engine, recorder, logger, rc); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
