package game

// VehicleView is the read-only vehicle state exposed for rendering and for
// the agent's feature extraction.
type VehicleView struct {
	Side Side
	Lane Lane
	X, Y float64
}

// ObstacleView is the read-only obstacle state exposed per tick.
type ObstacleView struct {
	X, Y float64
	Kind Kind
	Side Side
	Lane Lane
}

// Snapshot is the per-tick read-only view consumed by the presentation
// collaborator and the learning agent. Nothing in the simulation reads back
// from it.
type Snapshot struct {
	Vehicles       [2]VehicleView
	Obstacles      []ObstacleView
	Score          int
	BestScore      int
	Speed          float64
	RoadDashOffset float64
	ElapsedMS      float64
	GameOver       bool
	Paused         bool
	ArenaW         float64
	ArenaH         float64
}

// Snapshot captures the current state for rendering and observation.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, len(g.obstacles))
	for i, o := range g.obstacles {
		obstacles[i] = ObstacleView{X: o.X, Y: o.Y, Kind: o.Kind, Side: o.Side, Lane: o.Lane}
	}

	var vehicles [2]VehicleView
	for i, v := range g.vehicles {
		vehicles[i] = VehicleView{Side: v.Side, Lane: v.Lane, X: v.X, Y: v.Y}
	}

	return Snapshot{
		Vehicles:       vehicles,
		Obstacles:      obstacles,
		Score:          g.score,
		BestScore:      g.bestScore,
		Speed:          g.speed,
		RoadDashOffset: g.roadDashOffset,
		ElapsedMS:      g.elapsedMS,
		GameOver:       g.phase == PhaseGameOver,
		Paused:         g.phase == PhasePaused,
		ArenaW:         g.arenaW,
		ArenaH:         g.arenaH,
	}
}
