// Package config provides YAML-based configuration loading and difficulty
// presets for the twinlane game and its learning agent.
package config

import "fmt"

// GameConfig contains all tunable parameters for the game simulation.
// Every numeric policy in the simulation reads from here so tests can
// override individual values.
type GameConfig struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Lanes     LaneConfig      `yaml:"lanes"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Speed     SpeedConfig     `yaml:"speed"`
	Collision CollisionConfig `yaml:"collision"`
}

// ArenaConfig defines the playfield dimensions in simulation units.
type ArenaConfig struct {
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	MaxWidth            float64 `yaml:"max_width"`
	VehicleBottomOffset float64 `yaml:"vehicle_bottom_offset"` // Vehicle y = height - offset
}

// LaneConfig defines lane x positions as fractions of the arena width.
type LaneConfig struct {
	LeftNear  float64 `yaml:"left_near"`
	LeftFar   float64 `yaml:"left_far"`
	RightNear float64 `yaml:"right_near"`
	RightFar  float64 `yaml:"right_far"`
}

// SpawnConfig defines the obstacle spawning policy.
type SpawnConfig struct {
	BaseChance       float64 `yaml:"base_chance"`        // Spawn probability per tick at base speed
	ChanceSpeedScale float64 `yaml:"chance_speed_scale"` // Added chance per unit of speed above base
	TopSpacing       float64 `yaml:"top_spacing"`        // Suppress spawning while any obstacle y < this
	SideSpacing      float64 `yaml:"side_spacing"`       // Min |y| gap to same-side near-top obstacles
	CrossSpacing     float64 `yaml:"cross_spacing"`      // Min |y| gap to opposite-side near-top obstacles
	StartY           float64 `yaml:"start_y"`            // Spawn y, just above the visible top edge
}

// SpeedConfig defines the fall-speed progression curve.
type SpeedConfig struct {
	Base        float64 `yaml:"base"`         // Units per nominal frame at episode start
	ScoreFactor float64 `yaml:"score_factor"` // Added per point of score
	TimeFactor  float64 `yaml:"time_factor"`  // Added per elapsed millisecond
	Max         float64 `yaml:"max"`          // Hard speed cap
	MaxDeltaMS  float64 `yaml:"max_delta_ms"` // Clamp for frame deltas after suspensions
}

// CollisionConfig defines hit detection parameters.
type CollisionConfig struct {
	Radius float64 `yaml:"radius"` // Collision triggers strictly below this distance
}

// AgentConfig contains all tunable parameters for the learning agent.
type AgentConfig struct {
	Epsilon        EpsilonConfig  `yaml:"epsilon"`
	Learning       LearningConfig `yaml:"learning"`
	Rewards        RewardConfig   `yaml:"rewards"`
	RestartDelayMS float64        `yaml:"restart_delay_ms"` // Pause before auto-restart on terminal
}

// EpsilonConfig defines the exploration schedule.
type EpsilonConfig struct {
	Start float64 `yaml:"start"`
	Decay float64 `yaml:"decay"` // Multiplied in after every learning step
	Floor float64 `yaml:"floor"`
}

// LearningConfig defines the value approximator and replay parameters.
type LearningConfig struct {
	Discount   float64 `yaml:"discount"`
	Rate       float64 `yaml:"rate"`
	Hidden     int     `yaml:"hidden"`
	BatchSize  int     `yaml:"batch_size"`
	BufferSize int     `yaml:"buffer_size"`
}

// RewardConfig defines the per-tick reward shaping.
type RewardConfig struct {
	Survival   float64 `yaml:"survival"`    // Bonus for surviving a tick
	Pickup     float64 `yaml:"pickup"`      // Per collectible picked up
	Death      float64 `yaml:"death"`       // On fatal collision or missed collectible
	GoodSwitch float64 `yaml:"good_switch"` // Lane switch that collected or dodged something
	BadSwitch  float64 `yaml:"bad_switch"`  // Lane switch with nothing to show for it
	Lookback   float64 `yaml:"lookback"`    // Vertical window used to judge a switch
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name from user input.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	}
	return "", fmt.Errorf("unknown difficulty preset %q (want easy, normal, hard or fixed)", name)
}

// ApplyGamePreset scales the speed curve based on a difficulty preset.
// The fixed preset freezes progression at the base speed.
func ApplyGamePreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.ScoreFactor *= 0.5
		cfg.Speed.TimeFactor *= 0.5
	case DifficultyHard:
		cfg.Speed.ScoreFactor *= 1.5
		cfg.Speed.TimeFactor *= 1.5
		cfg.Speed.Max *= 1.25
	case DifficultyFixed:
		cfg.Speed.ScoreFactor = 0
		cfg.Speed.TimeFactor = 0
	}
}
