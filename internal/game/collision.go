package game

import (
	"github.com/avolkov/twinlane/internal/config"
	"github.com/avolkov/twinlane/internal/core"
)

// FrameOutcome is the result of advancing and resolving all obstacles for
// one tick. Obstacles holds the next tick's collection, built fresh rather
// than mutated in place.
type FrameOutcome struct {
	Obstacles []Obstacle
	Collected int  // Collectibles picked up this tick
	FatalHit  bool // A hazard collided with a vehicle
	Missed    bool // A collectible passed the bottom edge uncollected
}

// Terminal reports whether this frame ended the episode.
func (o FrameOutcome) Terminal() bool {
	return o.FatalHit || o.Missed
}

// ResolveFrame advances every obstacle by speed*deltaScale, tests each
// against the vehicle on its side, and returns the filtered collection plus
// scoring results.
//
// Collision uses a single circular hit radius: the Euclidean distance between
// centers must be strictly below the configured radius. Contact at exactly
// the radius is a miss.
func ResolveFrame(cfg *config.GameConfig, vehicles [2]Vehicle, obstacles []Obstacle, speed, deltaScale, arenaH float64) FrameOutcome {
	out := FrameOutcome{
		Obstacles: make([]Obstacle, 0, len(obstacles)),
	}

	for _, o := range obstacles {
		o.Y += speed * deltaScale

		v := vehicles[o.Side]
		if core.Dist(v.X, v.Y, o.X, o.Y) < cfg.Collision.Radius {
			if o.Kind == KindHazard {
				out.FatalHit = true
			} else {
				out.Collected++
			}
			continue
		}

		if o.Y > arenaH {
			// A collectible slipping past the bottom ends the run; a hazard
			// passing is a successful dodge.
			if o.Kind == KindCollectible {
				out.Missed = true
			}
			continue
		}

		out.Obstacles = append(out.Obstacles, o)
	}

	return out
}
