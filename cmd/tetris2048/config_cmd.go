package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tetris2048/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the built-in default configuration, ready to be saved as
~/.tetris2048/config.yaml and edited. With --effective, print the settings
after loading --config and the search path.

Examples:
  tetris2048 config > ~/.tetris2048/config.yaml
  tetris2048 config --effective --config ./my.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the loaded configuration instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigEffective {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
