// twinlane is a terminal twin-lane dodger: two vehicles, four lanes,
// falling hazards and collectibles.
//
// Usage:
//
//	twinlane play            - Play with keyboard or mouse
//	twinlane train           - Train the autonomous agent
//	twinlane scores          - Show high scores and training history
//	twinlane serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.twinlane/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twinlane",
	Short: "Twin Lanes - dodge hazards with two vehicles at once",
	Long: `Twin Lanes is a terminal dodger where you steer two vehicles at the
same time. Each vehicle sits on one of two lanes on its side of the road;
switch lanes to dodge falling hazards and catch collectibles.

Available commands:
  play     - Play with keyboard or mouse
  train    - Train the built-in reinforcement-learning agent
  scores   - View high scores and training run history
  serve    - Start SSH server for remote play

Examples:
  twinlane play
  twinlane play --difficulty hard
  twinlane train --episodes 500
  twinlane train --watch
  twinlane serve --ssh :2222
  twinlane scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twinlane/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
