package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyclist-collector/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The config is loaded from --config, ~/.cyclist/cyclist.yaml,
./configs/cyclist.yaml or the built-in defaults, in that order, then
CYCLIST_BREAK_INTERVAL and CYCLIST_START_LIVES from the environment or
the .env file are applied.

Examples:
  cyclist config
  cyclist config --defaults > configs/cyclist.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// parseInterval parses a positive break interval.
func parseInterval(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --break-interval %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid --break-interval %q: must be positive", s)
	}
	return d, nil
}
