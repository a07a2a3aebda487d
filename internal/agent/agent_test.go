package agent

import (
	"math"
	"testing"

	"github.com/avolkov/twinlane/internal/config"
	"github.com/avolkov/twinlane/internal/core"
	"github.com/avolkov/twinlane/internal/game"
)

func testAgentConfig() config.AgentConfig {
	cfg := config.DefaultAgentConfig()
	cfg.Learning.BatchSize = 4
	cfg.Learning.BufferSize = 32
	return cfg
}

func dummyExperience(action int) Experience {
	return Experience{
		State:  make([]float64, FeatureSize),
		Action: action,
		Reward: 1,
		Next:   make([]float64, FeatureSize),
	}
}

func TestActionCodec(t *testing.T) {
	for action := 0; action < ActionCount; action++ {
		left, right := LanesForAction(action)
		if got := ActionForLanes(left, right); got != action {
			t.Errorf("Action %d round-tripped to %d via lanes %v/%v", action, got, left, right)
		}
	}

	// Spot-check the encoding
	if l, r := LanesForAction(0); l != game.LaneNear || r != game.LaneNear {
		t.Errorf("Action 0 = %v/%v, expected near/near", l, r)
	}
	if l, r := LanesForAction(3); l != game.LaneFar || r != game.LaneFar {
		t.Errorf("Action 3 = %v/%v, expected far/far", l, r)
	}
}

func TestLearnRequiresFullBatch(t *testing.T) {
	a := New(testAgentConfig(), 1)

	for i := 0; i < a.cfg.Learning.BatchSize-1; i++ {
		a.Remember(dummyExperience(i % ActionCount))
	}

	before := a.Network().Params()
	epsilonBefore := a.Epsilon()

	if a.Learn() {
		t.Fatal("Learn should be a no-op below a full batch")
	}

	after := a.Network().Params()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("Learn must not touch the network below a full batch")
		}
	}
	if a.Epsilon() != epsilonBefore {
		t.Error("Learn must not decay epsilon below a full batch")
	}
}

func TestLearnDecaysEpsilonOncePerStep(t *testing.T) {
	cfg := testAgentConfig()
	a := New(cfg, 1)

	for i := 0; i < cfg.Learning.BatchSize; i++ {
		a.Remember(dummyExperience(i % ActionCount))
	}

	if !a.Learn() {
		t.Fatal("Learn should run with a full batch")
	}
	want := cfg.Epsilon.Start * cfg.Epsilon.Decay
	if math.Abs(a.Epsilon()-want) > 1e-12 {
		t.Errorf("Epsilon after one step = %f, expected %f", a.Epsilon(), want)
	}

	a.Learn()
	want *= cfg.Epsilon.Decay
	if math.Abs(a.Epsilon()-want) > 1e-12 {
		t.Errorf("Epsilon after two steps = %f, expected %f", a.Epsilon(), want)
	}
}

func TestEpsilonFloor(t *testing.T) {
	cfg := testAgentConfig()
	cfg.Epsilon.Start = 0.06
	cfg.Epsilon.Decay = 0.5
	cfg.Epsilon.Floor = 0.05
	a := New(cfg, 1)

	for i := 0; i < cfg.Learning.BatchSize; i++ {
		a.Remember(dummyExperience(i % ActionCount))
	}

	a.Learn()
	if a.Epsilon() != cfg.Epsilon.Floor {
		t.Errorf("Epsilon should clamp at the floor, got %f", a.Epsilon())
	}
	a.Learn()
	if a.Epsilon() != cfg.Epsilon.Floor {
		t.Errorf("Epsilon should stay at the floor, got %f", a.Epsilon())
	}
}

func TestSelectActionGreedyWithoutExploration(t *testing.T) {
	cfg := testAgentConfig()
	cfg.Epsilon.Start = 0
	a := New(cfg, 1)

	state := make([]float64, FeatureSize)
	state[0] = 1

	want := argmax(a.Network().Predict(state))
	for i := 0; i < 20; i++ {
		if got := a.SelectAction(state); got != want {
			t.Fatalf("Greedy selection returned %d, expected argmax %d", got, want)
		}
	}
}

func TestSelectActionStaysInRange(t *testing.T) {
	a := New(testAgentConfig(), 1) // epsilon 1.0: fully random

	state := make([]float64, FeatureSize)
	for i := 0; i < 100; i++ {
		action := a.SelectAction(state)
		if action < 0 || action >= ActionCount {
			t.Fatalf("Action %d out of range", action)
		}
	}
}

func TestShapeRewardBasics(t *testing.T) {
	cfg := testAgentConfig()
	a := New(cfg, 1)
	snap := testSnapshot()
	stay := ActionForLanes(game.LaneNear, game.LaneNear)

	r := a.ShapeReward(snap, stay, core.StepResult{})
	if r != cfg.Rewards.Survival {
		t.Errorf("Plain survival reward = %f, expected %f", r, cfg.Rewards.Survival)
	}

	r = a.ShapeReward(snap, stay, core.StepResult{Terminal: true})
	if r != cfg.Rewards.Death {
		t.Errorf("Death reward = %f, expected %f", r, cfg.Rewards.Death)
	}

	r = a.ShapeReward(snap, stay, core.StepResult{Collected: 2})
	want := cfg.Rewards.Survival + 2*cfg.Rewards.Pickup
	if r != want {
		t.Errorf("Pickup reward = %f, expected %f", r, want)
	}
}

func TestShapeRewardGoodSwitch(t *testing.T) {
	cfg := testAgentConfig()
	a := New(cfg, 1)

	// Hazard bearing down on the left vehicle's current lane: vacating it
	// is the cheap switch.
	snap := testSnapshot()
	snap.Obstacles = []game.ObstacleView{
		{X: 60, Y: 450, Kind: game.KindHazard, Side: game.SideLeft, Lane: game.LaneNear},
	}

	action := ActionForLanes(game.LaneFar, game.LaneNear)
	r := a.ShapeReward(snap, action, core.StepResult{})
	want := cfg.Rewards.Survival + cfg.Rewards.GoodSwitch
	if r != want {
		t.Errorf("Dodging switch reward = %f, expected %f", r, want)
	}
}

func TestShapeRewardCollectibleSwitch(t *testing.T) {
	cfg := testAgentConfig()
	a := New(cfg, 1)

	// Collectible in the lane the vehicle is moving into.
	snap := testSnapshot()
	snap.Obstacles = []game.ObstacleView{
		{X: 180, Y: 450, Kind: game.KindCollectible, Side: game.SideLeft, Lane: game.LaneFar},
	}

	action := ActionForLanes(game.LaneFar, game.LaneNear)
	r := a.ShapeReward(snap, action, core.StepResult{})
	want := cfg.Rewards.Survival + cfg.Rewards.GoodSwitch
	if r != want {
		t.Errorf("Collecting switch reward = %f, expected %f", r, want)
	}
}

func TestShapeRewardBadSwitch(t *testing.T) {
	cfg := testAgentConfig()
	a := New(cfg, 1)

	// No obstacle in the lookback window: switching is wasted movement.
	snap := testSnapshot()
	action := ActionForLanes(game.LaneFar, game.LaneNear)
	r := a.ShapeReward(snap, action, core.StepResult{})
	want := cfg.Rewards.Survival + cfg.Rewards.BadSwitch
	if r != want {
		t.Errorf("Pointless switch reward = %f, expected %f", r, want)
	}

	// An obstacle beyond the lookback window does not justify the switch.
	snap.Obstacles = []game.ObstacleView{
		{X: 60, Y: 500 - cfg.Rewards.Lookback - 1, Kind: game.KindHazard, Side: game.SideLeft, Lane: game.LaneNear},
	}
	r = a.ShapeReward(snap, action, core.StepResult{})
	if r != want {
		t.Errorf("Out-of-window switch reward = %f, expected %f", r, want)
	}
}

func TestShapeRewardDoubleSwitchCostsWorstOnce(t *testing.T) {
	cfg := testAgentConfig()
	a := New(cfg, 1)

	// Left switch is justified (hazard in its lane), right switch is not.
	// Only the worse cost applies, and only once.
	snap := testSnapshot()
	snap.Obstacles = []game.ObstacleView{
		{X: 60, Y: 450, Kind: game.KindHazard, Side: game.SideLeft, Lane: game.LaneNear},
	}

	action := ActionForLanes(game.LaneFar, game.LaneFar)
	r := a.ShapeReward(snap, action, core.StepResult{})
	want := cfg.Rewards.Survival + cfg.Rewards.BadSwitch
	if r != want {
		t.Errorf("Double switch reward = %f, expected %f", r, want)
	}
}
