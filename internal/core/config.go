package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to terminal size and for deterministic
// simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible state of the game.
type GameState struct {
	Score     int  // Current episode score
	BestScore int  // Best score seen this process (persisted by the platform)
	GameOver  bool // Whether the current episode has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned after each simulation tick. Besides the updated
// state it reports what the tick did, which the learning agent turns into
// reward signals.
type StepResult struct {
	State     GameState
	Collected int  // Collectibles picked up this tick
	Terminal  bool // Episode ended this tick (hazard hit or missed collectible)
}
