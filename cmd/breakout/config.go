package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check configuration",
	Long: `Print the effective configuration as YAML, after the search path,
--config, --difficulty, --autopilot and --fps have been applied.

With --check FILE, validate FILE and report every problem found.

Examples:
  breakout config > ~/.breakout/configs/breakout.yaml
  breakout config --difficulty hard
  breakout config --check ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file and exit")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagCheck != "" {
		data, err := os.ReadFile(flagCheck)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", flagCheck, err)
		}
		if _, err := config.Parse(data); err != nil {
			return fmt.Errorf("config %s: %w", flagCheck, err)
		}
		fmt.Printf("%s: ok\n", flagCheck)
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
	_, err = os.Stdout.Write(data)
	return err
}
