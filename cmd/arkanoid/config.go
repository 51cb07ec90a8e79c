package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective playfield config",
	Long: `Print the playfield config as YAML after applying --config or the
search path (~/.arkanoid/arkanoid.yaml, configs/arkanoid.yaml).

Use the output as a starting point for a custom config:
  arkanoid config --defaults > ~/.arkanoid/arkanoid.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
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
