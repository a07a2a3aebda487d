package game

import "github.com/avolkov/twinlane/internal/config"

// LaneTable holds the resolved x coordinate for every (side, lane) slot.
// It is recomputed whenever the arena width changes; everything else derives
// vehicle and obstacle x positions from it.
type LaneTable struct {
	xs [2][2]float64 // [side][lane]
}

// ComputeLanes derives lane x coordinates from the arena width using the
// configured width fractions.
func ComputeLanes(cfg *config.GameConfig, width float64) LaneTable {
	if cfg.Arena.MaxWidth > 0 && width > cfg.Arena.MaxWidth {
		width = cfg.Arena.MaxWidth
	}

	var t LaneTable
	t.xs[SideLeft][LaneNear] = cfg.Lanes.LeftNear * width
	t.xs[SideLeft][LaneFar] = cfg.Lanes.LeftFar * width
	t.xs[SideRight][LaneNear] = cfg.Lanes.RightNear * width
	t.xs[SideRight][LaneFar] = cfg.Lanes.RightFar * width
	return t
}

// X returns the x coordinate for the given side and lane.
func (t LaneTable) X(s Side, l Lane) float64 {
	return t.xs[s][l]
}

// speedFor computes the current fall speed from score and elapsed time,
// capped at the configured maximum. Monotonic non-decreasing within an
// episode.
func speedFor(cfg *config.GameConfig, score int, elapsedMS float64) float64 {
	speed := cfg.Speed.Base + float64(score)*cfg.Speed.ScoreFactor + elapsedMS*cfg.Speed.TimeFactor
	if speed > cfg.Speed.Max {
		speed = cfg.Speed.Max
	}
	return speed
}
