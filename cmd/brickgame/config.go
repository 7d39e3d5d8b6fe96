package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Tranquil-fella/brick-game/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the built-in default configuration as YAML.

Save it to ~/.brickgame/configs/tetris.yaml or ./configs/tetris.yaml to
customize the game. With --resolved the configuration that play would
use is printed instead, after the search order and --config,
--difficulty and --seed are applied.

Examples:
  brickgame config > ~/.brickgame/configs/tetris.yaml
  brickgame config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective configuration")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagConfigResolved {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig(flagConfig, flagDifficulty, flagSeed)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
