package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avolkov/twinlane/internal/agent"
	"github.com/avolkov/twinlane/internal/config"
	"github.com/avolkov/twinlane/internal/core"
	"github.com/avolkov/twinlane/internal/game"
	"github.com/avolkov/twinlane/internal/platform/tui"
	"github.com/avolkov/twinlane/internal/storage"
)

var (
	flagEpisodes    int
	flagWatch       bool
	flagAgentConfig string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the autonomous agent",
	Long: `Train the built-in reinforcement-learning agent.

By default training runs headless on a virtual clock and logs one line
per finished episode. With --watch the agent plays in the terminal at
normal speed so you can see what it has learned; pause and quit keys
still work, lane controls belong to the agent.

Results of headless runs are recorded in the database and shown by
'twinlane scores' (press Tab there to switch to training history).

Examples:
  twinlane train
  twinlane train --episodes 1000
  twinlane train --watch
  twinlane train --seed 42 --episodes 200`,
	Args: cobra.NoArgs,
	Run:  runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&flagEpisodes, "episodes", 200, "Number of episodes to train")
	trainCmd.Flags().BoolVar(&flagWatch, "watch", false, "Render the agent playing instead of training headless")
	trainCmd.Flags().StringVar(&flagAgentConfig, "agent-config", "", "Path to custom agent config YAML")
}

func runTrain(cmd *cobra.Command, args []string) {
	gameCfg, err := config.LoadGame(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game config: %v\n", err)
		os.Exit(1)
	}
	agentCfg, err := config.LoadAgent(flagAgentConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading agent config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := game.New(gameCfg)
	a := agent.New(agentCfg, seed)

	if flagWatch {
		runWatch(g, a, agentCfg, seed)
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "twinlane-train",
	})

	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	trainer := agent.NewTrainer(g, a, agentCfg, logger)

	logger.Info("training started", "episodes", flagEpisodes, "seed", seed)
	summary := trainer.Run(flagEpisodes)
	logger.Info("training finished",
		"episodes", summary.Episodes,
		"best", summary.BestScore,
		"total_reward", summary.TotalReward,
		"epsilon", summary.FinalEpsilon,
	)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, run not recorded", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveTrainingRun(storage.TrainingRun{
		Episodes:     summary.Episodes,
		TotalReward:  summary.TotalReward,
		BestScore:    summary.BestScore,
		FinalEpsilon: summary.FinalEpsilon,
	}); err != nil {
		logger.Warn("could not record training run", "error", err)
	}
}

// runWatch runs an agent-controlled session in the TUI.
func runWatch(g *game.Game, a *agent.Agent, agentCfg config.AgentConfig, seed int64) {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
		if best, bestErr := store.BestScore(); bestErr == nil {
			g.SetBestScore(best)
		}
	}

	trainer := agent.NewTrainer(g, a, agentCfg, nil)
	if runErr := tui.Run(tui.NewWatchModel(g, trainer, store, rt)); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running watch mode: %v\n", runErr)
		os.Exit(1)
	}
}
