package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappyball/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The output is a complete config file and can be edited and passed back with
--config or placed at ~/.flappyball/flappyball.yaml.

Examples:
  flappyball config > my-flappyball.yaml
  flappyball config --config ./my-flappyball.yaml --fps 30
  flappyball config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with their comments")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
