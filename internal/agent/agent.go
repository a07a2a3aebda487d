package agent

import (
	"math/rand"

	"github.com/avolkov/twinlane/internal/config"
	"github.com/avolkov/twinlane/internal/core"
	"github.com/avolkov/twinlane/internal/game"
)

// ActionCount is the size of the action space: every full assignment of
// both vehicles' lanes.
const ActionCount = 4

// LanesForAction decodes a discrete action into a lane assignment.
func LanesForAction(action int) (left, right game.Lane) {
	return game.Lane(action / 2), game.Lane(action % 2)
}

// ActionForLanes encodes a lane assignment into a discrete action.
func ActionForLanes(left, right game.Lane) int {
	return int(left)*2 + int(right)
}

// Agent is an epsilon-greedy controller over a learned value network, with
// experience replay and one-step bootstrapped targets.
type Agent struct {
	cfg     config.AgentConfig
	net     *Network
	buffer  *ReplayBuffer
	rng     *rand.Rand
	epsilon float64

	// Training observability, accumulated across episodes.
	TotalReward float64
	Episodes    int
}

// New creates an agent with the given configuration and RNG seed.
func New(cfg config.AgentConfig, seed int64) *Agent {
	rng := rand.New(rand.NewSource(seed))
	return &Agent{
		cfg:     cfg,
		net:     NewNetwork(FeatureSize, cfg.Learning.Hidden, ActionCount, cfg.Learning.Rate, rng),
		buffer:  NewReplayBuffer(cfg.Learning.BufferSize),
		rng:     rng,
		epsilon: cfg.Epsilon.Start,
	}
}

// Epsilon returns the current exploration rate.
func (a *Agent) Epsilon() float64 {
	return a.epsilon
}

// Network exposes the value approximator for inspection in tests.
func (a *Agent) Network() *Network {
	return a.net
}

// BufferLen returns the number of stored experiences.
func (a *Agent) BufferLen() int {
	return a.buffer.Len()
}

// SelectAction picks an action epsilon-greedily for the given state.
func (a *Agent) SelectAction(state []float64) int {
	if a.rng.Float64() < a.epsilon {
		return a.rng.Intn(ActionCount)
	}
	return argmax(a.net.Predict(state))
}

// Remember stores a transition in the replay buffer.
func (a *Agent) Remember(e Experience) {
	a.buffer.Add(e)
}

// Learn performs one replay step: sample a batch, compute one-step
// bootstrapped targets, and update the network. It is a no-op while the
// buffer holds fewer experiences than a batch. Epsilon decays exactly once
// per completed learning step and never below the floor.
func (a *Agent) Learn() bool {
	if a.buffer.Len() < a.cfg.Learning.BatchSize {
		return false
	}

	batch := a.buffer.Sample(a.rng, a.cfg.Learning.BatchSize)
	for _, e := range batch {
		target := e.Reward
		if !e.Terminal {
			target += a.cfg.Learning.Discount * maxOf(a.net.Predict(e.Next))
		}
		a.net.Update(e.State, e.Action, target)
	}

	a.epsilon *= a.cfg.Epsilon.Decay
	if a.epsilon < a.cfg.Epsilon.Floor {
		a.epsilon = a.cfg.Epsilon.Floor
	}
	return true
}

// ShapeReward converts one tick's outcome into a scalar reward. prev is the
// snapshot taken before the action was applied, so lane changes and the
// obstacle layout used to judge them reflect the state the agent acted on.
func (a *Agent) ShapeReward(prev game.Snapshot, action int, res core.StepResult) float64 {
	r := a.cfg.Rewards.Survival
	if res.Terminal {
		r = a.cfg.Rewards.Death
	}
	r += float64(res.Collected) * a.cfg.Rewards.Pickup

	newLeft, newRight := LanesForAction(action)
	cost := 0.0
	if prevLane := prev.Vehicles[game.SideLeft].Lane; prevLane != newLeft {
		cost = a.switchCost(prev, game.SideLeft, prevLane, newLeft)
	}
	if prevLane := prev.Vehicles[game.SideRight].Lane; prevLane != newRight {
		if c := a.switchCost(prev, game.SideRight, prevLane, newRight); c < cost {
			cost = c
		}
	}
	return r + cost
}

// switchCost judges a single vehicle's lane switch by the nearest obstacle
// above it within the lookback window: vacating a hazard's lane or entering
// a collectible's lane is a cheap switch, anything else is expensive.
func (a *Agent) switchCost(prev game.Snapshot, side game.Side, oldLane, newLane game.Lane) float64 {
	vehicleY := prev.Vehicles[side].Y

	var nearest *game.ObstacleView
	nearestDist := a.cfg.Rewards.Lookback
	for i, o := range prev.Obstacles {
		if o.Side != side {
			continue
		}
		dist := vehicleY - o.Y
		if dist <= 0 || dist > nearestDist {
			continue
		}
		nearestDist = dist
		nearest = &prev.Obstacles[i]
	}

	if nearest == nil {
		return a.cfg.Rewards.BadSwitch
	}
	if nearest.Kind == game.KindHazard && nearest.Lane == oldLane {
		return a.cfg.Rewards.GoodSwitch
	}
	if nearest.Kind == game.KindCollectible && nearest.Lane == newLane {
		return a.cfg.Rewards.GoodSwitch
	}
	return a.cfg.Rewards.BadSwitch
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func maxOf(values []float64) float64 {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}
