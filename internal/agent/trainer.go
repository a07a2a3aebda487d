package agent

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/avolkov/twinlane/internal/config"
	"github.com/avolkov/twinlane/internal/game"
)

// Trainer drives the game and the agent together, one tick at a time. The
// same Advance method serves headless training (virtual clock) and watch
// mode (real frame timestamps from the TUI).
type Trainer struct {
	game   *game.Game
	agent  *Agent
	cfg    config.AgentConfig
	logger *log.Logger

	waiting   bool
	restartAt time.Time

	episodeReward float64
	bestScore     int
}

// Summary reports the aggregate outcome of a training run.
type Summary struct {
	Episodes     int
	TotalReward  float64
	BestScore    int
	FinalEpsilon float64
}

// NewTrainer creates a trainer. logger may be nil for silent operation.
func NewTrainer(g *game.Game, a *Agent, cfg config.AgentConfig, logger *log.Logger) *Trainer {
	return &Trainer{
		game:   g,
		agent:  a,
		cfg:    cfg,
		logger: logger,
	}
}

// BestScore returns the best episode score seen by this trainer.
func (t *Trainer) BestScore() int {
	return t.bestScore
}

// Advance runs one agent-controlled simulation tick at the given timestamp.
// After a terminal tick it waits out the restart delay, then starts the next
// episode so training continues unattended.
func (t *Trainer) Advance(now time.Time) {
	snap := t.game.Snapshot()

	if snap.GameOver {
		if !t.waiting {
			t.waiting = true
			t.restartAt = now.Add(time.Duration(t.cfg.RestartDelayMS) * time.Millisecond)
		}
		if !now.Before(t.restartAt) {
			t.game.Restart()
			t.waiting = false
		}
		return
	}

	if snap.Paused {
		// The controller only runs while the game runs. A paused frame must
		// not select actions, store transitions, or decay epsilon.
		return
	}

	state := Observe(snap)
	action := t.agent.SelectAction(state)
	left, right := LanesForAction(action)
	t.game.SetLanes(left, right)

	res := t.game.Step(now)
	reward := t.agent.ShapeReward(snap, action, res)
	t.agent.TotalReward += reward
	t.episodeReward += reward

	t.agent.Remember(Experience{
		State:    state,
		Action:   action,
		Reward:   reward,
		Next:     Observe(t.game.Snapshot()),
		Terminal: res.Terminal,
	})
	t.agent.Learn()

	if res.Terminal {
		t.agent.Episodes++
		if res.State.Score > t.bestScore {
			t.bestScore = res.State.Score
		}
		if t.logger != nil {
			t.logger.Info("episode finished",
				"episode", t.agent.Episodes,
				"score", res.State.Score,
				"best", t.bestScore,
				"reward", t.episodeReward,
				"total_reward", t.agent.TotalReward,
				"epsilon", t.agent.Epsilon(),
				"buffer", t.agent.BufferLen(),
			)
		}
		t.episodeReward = 0
	}
}

// Run trains for the given number of episodes on a virtual 60 Hz clock and
// returns a summary. Headless: no rendering, no real-time pacing.
func (t *Trainer) Run(episodes int) Summary {
	target := t.agent.Episodes + episodes
	clock := time.Unix(0, 0)

	for t.agent.Episodes < target {
		t.Advance(clock)
		clock = clock.Add(time.Second / 60)
	}

	return Summary{
		Episodes:     t.agent.Episodes,
		TotalReward:  t.agent.TotalReward,
		BestScore:    t.bestScore,
		FinalEpsilon: t.agent.Epsilon(),
	}
}
