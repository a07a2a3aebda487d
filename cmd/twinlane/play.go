package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avolkov/twinlane/internal/config"
	"github.com/avolkov/twinlane/internal/core"
	"github.com/avolkov/twinlane/internal/game"
	"github.com/avolkov/twinlane/internal/platform/tui"
	"github.com/avolkov/twinlane/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Twin Lanes",
	Long: `Start a game session in the terminal.

Controls:
  S          - Switch the left vehicle's lane
  K          - Switch the right vehicle's lane
  Mouse      - Click left/right half of the screen
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Fewer obstacles, slower speed ramp
  normal - Default balance
  hard   - Denser obstacles, faster speed ramp
  fixed  - No progression, speed stays at its base value

Examples:
  twinlane play
  twinlane play --difficulty easy
  twinlane play --config ./my-game.yaml
  twinlane play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	gameCfg, err := config.LoadGame(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset, presetErr := config.ParseDifficultyPreset(flagDifficulty)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		config.ApplyGamePreset(&gameCfg, preset)
	}

	g := game.New(gameCfg)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		if best, bestErr := store.BestScore(); bestErr == nil {
			g.SetBestScore(best)
		}
	}

	runErr := tui.Run(tui.NewModel(g, store, rt))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
