// quadpong is a four-sided Pong for the terminal.
//
// Usage:
//
//	quadpong play        - Play in the terminal
//	quadpong simulate    - Run the simulation headless and print the result
//	quadpong players     - Show the configured players and their keys
//
// Global flags:
//
//	--fps <rate>      - Host refresh rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Config file (default: search ~/.quadpong, ./configs, embedded)
//	--log <path>      - Write logs to a file
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
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quadpong",
	Short: "Quadpong - four-sided Pong in your terminal",
	Long: `Quadpong puts up to four players on the four sides of a square arena.
Every player has a paddle and a ball; a goal against a side rewards
everyone except the player defending it.

Available commands:
  play      - Play in the terminal
  simulate  - Run the simulation headless
  players   - Show the configured players

Examples:
  quadpong play
  quadpong play --config ./party.yaml
  quadpong simulate --frames 6000 --seed 42
  quadpong players`,
	SilenceUsage:      true,
	PersistentPreRunE: validateGlobalFlags,
}

// validateGlobalFlags rejects flag values no subcommand can run with.
func validateGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host refresh rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(playersCmd)
}
