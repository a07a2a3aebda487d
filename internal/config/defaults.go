package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

//go:embed defaults/agent.yaml
var defaultAgentYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Width:               480,
			Height:              640,
			MaxWidth:            480,
			VehicleBottomOffset: 140,
		},
		Lanes: LaneConfig{
			LeftNear:  0.12,
			LeftFar:   0.38,
			RightNear: 0.625,
			RightFar:  0.88,
		},
		Spawn: SpawnConfig{
			BaseChance:       0.02,
			ChanceSpeedScale: 0.005,
			TopSpacing:       100,
			SideSpacing:      150,
			CrossSpacing:     80,
			StartY:           -40,
		},
		Speed: SpeedConfig{
			Base:        3.0,
			ScoreFactor: 0.05,
			TimeFactor:  0.0001,
			Max:         8.0,
			MaxDeltaMS:  250,
		},
		Collision: CollisionConfig{
			Radius: 30,
		},
	}
}

// DefaultAgentConfig returns the default agent configuration.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		Epsilon: EpsilonConfig{
			Start: 1.0,
			Decay: 0.995,
			Floor: 0.05,
		},
		Learning: LearningConfig{
			Discount:   0.95,
			Rate:       0.001,
			Hidden:     24,
			BatchSize:  32,
			BufferSize: 5000,
		},
		Rewards: RewardConfig{
			Survival:   0.01,
			Pickup:     2.0,
			Death:      -10.0,
			GoodSwitch: -0.1,
			BadSwitch:  -1.0,
			Lookback:   100,
		},
		RestartDelayMS: 500,
	}
}
