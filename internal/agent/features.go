// Package agent implements an online-learning controller that plays the
// twin-lane dodger autonomously: it observes a fixed feature vector each
// tick, picks a lane assignment for both vehicles, and learns from shaped
// rewards with a small value network and an experience replay buffer.
package agent

import (
	"sort"

	"github.com/avolkov/twinlane/internal/game"
)

// ObstacleSlots is how many nearest obstacles per (side, lane) column are
// encoded into the observation.
const ObstacleSlots = 2

// FeatureSize is the observation dimensionality: both vehicle lanes plus
// (distance, kind) pairs for ObstacleSlots obstacles in each of the four
// (side, lane) columns.
const FeatureSize = 2 + 4*ObstacleSlots*2

// Sentinel values for empty obstacle slots.
const (
	emptyDistance = -100
	emptyKind     = -1
)

// Observe encodes a game snapshot into the fixed-length feature vector.
// For each (side, lane) column the nearest obstacles strictly above the
// vehicle are listed nearest-first as (vertical distance, kind flag); absent
// slots hold sentinel values.
func Observe(snap game.Snapshot) []float64 {
	features := make([]float64, 0, FeatureSize)
	features = append(features,
		float64(snap.Vehicles[game.SideLeft].Lane),
		float64(snap.Vehicles[game.SideRight].Lane),
	)

	for _, side := range []game.Side{game.SideLeft, game.SideRight} {
		vehicleY := snap.Vehicles[side].Y
		for _, lane := range []game.Lane{game.LaneNear, game.LaneFar} {
			features = append(features, columnFeatures(snap.Obstacles, side, lane, vehicleY)...)
		}
	}

	return features
}

// columnFeatures returns the (distance, kind) pairs for one (side, lane)
// column, padded with sentinels.
func columnFeatures(obstacles []game.ObstacleView, side game.Side, lane game.Lane, vehicleY float64) []float64 {
	type entry struct {
		dist float64
		kind game.Kind
	}

	var above []entry
	for _, o := range obstacles {
		if o.Side != side || o.Lane != lane {
			continue
		}
		dist := vehicleY - o.Y
		if dist <= 0 {
			continue
		}
		above = append(above, entry{dist: dist, kind: o.Kind})
	}

	sort.Slice(above, func(i, j int) bool {
		return above[i].dist < above[j].dist
	})

	out := make([]float64, 0, ObstacleSlots*2)
	for i := 0; i < ObstacleSlots; i++ {
		if i < len(above) {
			kindFlag := 0.0
			if above[i].kind == game.KindHazard {
				kindFlag = 1.0
			}
			out = append(out, above[i].dist, kindFlag)
		} else {
			out = append(out, emptyDistance, emptyKind)
		}
	}
	return out
}
