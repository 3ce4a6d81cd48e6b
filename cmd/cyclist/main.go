// cyclist is a terminal endless runner: jump obstacles, collect coins and
// hearts, and take a short quiz break every minute.
//
// Usage:
//
//	cyclist                  - Play (same as "cyclist play")
//	cyclist play             - Play the game
//	cyclist config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Custom config YAML
//	--env <path>     - .env file with CYCLIST_* overrides (default: .env)
//	--log <path>     - Write logs to a file
//	--debug          - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagEnvFile string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cyclist",
	Short: "Cyclist Collector - an endless runner in your terminal",
	Long: `Cyclist Collector is a terminal endless runner. Jump over obstacles,
collect coins and hearts, unlock skills and climb the leagues. Every minute
a short quiz reminds you to take a break.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration

Examples:
  cyclist
  cyclist play --seed 42
  cyclist play --break-interval 2m
  cyclist config --config ./my-cyclist.yaml`,
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env", "", "Path to .env file with CYCLIST_* overrides (default .env)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
