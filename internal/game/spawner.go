package game

import (
	"math/rand"

	"github.com/avolkov/twinlane/internal/config"
)

// Spawner generates falling obstacles with spacing constraints. It owns its
// RNG so that a fixed seed reproduces the same obstacle stream.
type Spawner struct {
	rng   *rand.Rand
	cfg   *config.GameConfig
	lanes LaneTable
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg *config.GameConfig, lanes LaneTable) *Spawner {
	return &Spawner{
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg,
		lanes: lanes,
	}
}

// Reset reseeds the RNG.
func (sp *Spawner) Reset(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
}

// SetLanes updates the lane table after an arena width change.
func (sp *Spawner) SetLanes(lanes LaneTable) {
	sp.lanes = lanes
}

// MaybeSpawn makes at most one spawn attempt and returns the resulting
// obstacle collection. The input slice is returned unchanged when spawning
// is suppressed; otherwise a new obstacle is appended.
//
// Suppression rules, checked in order:
//  1. Any obstacle still within TopSpacing of the top edge.
//  2. A uniform draw above the speed-scaled spawn chance.
//  3. A near-top obstacle on the chosen side within SideSpacing, or on the
//     opposite side within CrossSpacing.
func (sp *Spawner) MaybeSpawn(obstacles []Obstacle, speed float64) []Obstacle {
	for _, o := range obstacles {
		if o.Y < sp.cfg.Spawn.TopSpacing {
			return obstacles
		}
	}

	chance := sp.cfg.Spawn.BaseChance + (speed-sp.cfg.Speed.Base)*sp.cfg.Spawn.ChanceSpeedScale
	if sp.rng.Float64() > chance {
		return obstacles
	}

	side := Side(sp.rng.Intn(2))
	for _, o := range obstacles {
		limit := sp.cfg.Spawn.CrossSpacing
		if o.Side == side {
			limit = sp.cfg.Spawn.SideSpacing
		}
		if abs(o.Y) < limit {
			return obstacles
		}
	}

	kind := Kind(sp.rng.Intn(2))
	lane := Lane(sp.rng.Intn(2))

	return append(obstacles, Obstacle{
		X:    sp.lanes.X(side, lane),
		Y:    sp.cfg.Spawn.StartY,
		Kind: kind,
		Side: side,
		Lane: lane,
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
