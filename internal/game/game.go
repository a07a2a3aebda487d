package game

import (
	"time"

	"github.com/avolkov/twinlane/internal/config"
	"github.com/avolkov/twinlane/internal/core"
)

// nominalFrameMS is the reference frame interval the fall speed is expressed
// in. A tick with a different real delta scales movement proportionally.
const nominalFrameMS = 1000.0 / 60.0

// Phase is the loop driver state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "game_over"
	}
}

// Game is the twin-lane dodger simulation. It owns all mutable state and is
// advanced by timestamped calls to Step; the platform layer delivers input
// events and renders snapshots.
type Game struct {
	cfg   config.GameConfig
	lanes LaneTable

	vehicles  [2]Vehicle
	obstacles []Obstacle
	spawner   *Spawner

	phase          Phase
	score          int
	bestScore      int
	elapsedMS      float64
	speed          float64
	roadDashOffset float64

	arenaW float64
	arenaH float64
	sized  bool

	lastFrame time.Time
	haveFrame bool

	seed int64
}

// New creates a game with the given configuration. The game is not sized
// until Reset (or Resize) supplies arena dimensions; position-dependent
// updates are suppressed until then.
func New(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "twinlane"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Twin Lanes"
}

// Reset initializes or restarts the game for a new session. Best score is
// preserved; everything else returns to initial state.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.seed = rt.Seed
	g.Resize(g.cfg.Arena.Width, g.cfg.Arena.Height)

	if g.spawner == nil {
		g.spawner = NewSpawner(g.seed, &g.cfg, g.lanes)
	} else {
		g.spawner.Reset(g.seed)
		g.spawner.SetLanes(g.lanes)
	}

	g.resetEpisode()
}

// resetEpisode returns all per-episode state to initial values.
func (g *Game) resetEpisode() {
	g.vehicles[SideLeft] = Vehicle{Side: SideLeft, Lane: LaneNear}
	g.vehicles[SideRight] = Vehicle{Side: SideRight, Lane: LaneNear}
	g.placeVehicles()

	g.obstacles = g.obstacles[:0]
	g.score = 0
	g.elapsedMS = 0
	g.speed = g.cfg.Speed.Base
	g.roadDashOffset = 0
	g.phase = PhaseRunning
	g.haveFrame = false
}

// Resize supplies new arena dimensions and recomputes lane coordinates.
// Vehicle positions are only derived once the height is known.
func (g *Game) Resize(w, h float64) {
	g.arenaW = w
	g.arenaH = h
	g.sized = w > 0 && h > 0
	if !g.sized {
		return
	}
	g.lanes = ComputeLanes(&g.cfg, w)
	if g.spawner != nil {
		g.spawner.SetLanes(g.lanes)
	}
	g.placeVehicles()
}

// placeVehicles recomputes vehicle coordinates from lane and arena size.
func (g *Game) placeVehicles() {
	if !g.sized {
		return
	}
	for i := range g.vehicles {
		v := &g.vehicles[i]
		v.X = g.lanes.X(v.Side, v.Lane)
		v.Y = g.arenaH - g.cfg.Arena.VehicleBottomOffset
	}
}

// SetBestScore seeds the best score from external persistence at startup.
func (g *Game) SetBestScore(n int) {
	if n > g.bestScore {
		g.bestScore = n
	}
}

// HandleAction applies an input event immediately. Unknown actions and
// actions not valid in the current phase are ignored.
func (g *Game) HandleAction(a core.Action) {
	switch a {
	case core.ActionToggleLeft:
		g.ToggleLane(SideLeft)
	case core.ActionToggleRight:
		g.ToggleLane(SideRight)
	case core.ActionPause:
		g.TogglePause()
	case core.ActionRestart:
		g.Restart()
	}
}

// ToggleLane switches the given side's vehicle to its other lane.
// Accepted only while running.
func (g *Game) ToggleLane(s Side) {
	if g.phase != PhaseRunning || !g.sized {
		return
	}
	v := &g.vehicles[s]
	v.Lane = v.Lane.Other()
	v.X = g.lanes.X(v.Side, v.Lane)
}

// SetLanes assigns both vehicles' lanes at once. This is the agent's action
// interface; like toggles, it is accepted only while running.
func (g *Game) SetLanes(left, right Lane) {
	if g.phase != PhaseRunning || !g.sized {
		return
	}
	g.vehicles[SideLeft].Lane = left
	g.vehicles[SideRight].Lane = right
	g.placeVehicles()
}

// TogglePause flips between running and paused. No effect after game over.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseRunning
		// Drop the frame anchor so the first post-resume tick re-anchors
		// instead of applying the whole paused interval as one delta.
		g.haveFrame = false
	}
}

// Restart begins a new episode after game over.
func (g *Game) Restart() {
	if g.phase != PhaseGameOver {
		return
	}
	g.resetEpisode()
}

// Phase returns the current loop driver state.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		BestScore: g.bestScore,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.phase == PhasePaused,
	}
}

// Step advances the simulation to the given timestamp. The first call after
// a reset or resume only anchors the frame clock. Calls while paused, after
// game over, or before the arena is sized are no-ops.
func (g *Game) Step(now time.Time) core.StepResult {
	if g.phase != PhaseRunning || !g.sized {
		return core.StepResult{State: g.State()}
	}

	if !g.haveFrame {
		g.lastFrame = now
		g.haveFrame = true
		return core.StepResult{State: g.State()}
	}

	deltaMS := float64(now.Sub(g.lastFrame)) / float64(time.Millisecond)
	g.lastFrame = now
	// Clamp so a dropped frame or suspended session cannot teleport
	// obstacles through the vehicles.
	deltaMS = core.ClampF(deltaMS, 0, g.cfg.Speed.MaxDeltaMS)
	deltaScale := deltaMS / nominalFrameMS

	g.elapsedMS += deltaMS
	g.speed = speedFor(&g.cfg, g.score, g.elapsedMS)
	g.roadDashOffset -= g.speed * deltaScale

	outcome := ResolveFrame(&g.cfg, g.vehicles, g.obstacles, g.speed, deltaScale, g.arenaH)
	g.score += outcome.Collected
	g.obstacles = outcome.Obstacles

	if outcome.Terminal() {
		if g.score > g.bestScore {
			g.bestScore = g.score
		}
		g.phase = PhaseGameOver
	} else {
		g.obstacles = g.spawner.MaybeSpawn(g.obstacles, g.speed)
	}

	return core.StepResult{
		State:     g.State(),
		Collected: outcome.Collected,
		Terminal:  outcome.Terminal(),
	}
}
