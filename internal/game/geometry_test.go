package game

import (
	"math"
	"testing"

	"github.com/avolkov/twinlane/internal/config"
)

func TestComputeLanes(t *testing.T) {
	cfg := config.DefaultGameConfig()
	lanes := ComputeLanes(&cfg, 400)

	checks := []struct {
		side Side
		lane Lane
		frac float64
	}{
		{SideLeft, LaneNear, cfg.Lanes.LeftNear},
		{SideLeft, LaneFar, cfg.Lanes.LeftFar},
		{SideRight, LaneNear, cfg.Lanes.RightNear},
		{SideRight, LaneFar, cfg.Lanes.RightFar},
	}
	for _, c := range checks {
		want := c.frac * 400
		if got := lanes.X(c.side, c.lane); math.Abs(got-want) > 1e-9 {
			t.Errorf("X(%v, %v) = %f, expected %f", c.side, c.lane, got, want)
		}
	}
}

func TestComputeLanesCapsWidth(t *testing.T) {
	cfg := config.DefaultGameConfig()

	capped := ComputeLanes(&cfg, cfg.Arena.MaxWidth*2)
	atMax := ComputeLanes(&cfg, cfg.Arena.MaxWidth)

	if capped.X(SideLeft, LaneNear) != atMax.X(SideLeft, LaneNear) {
		t.Error("Widths beyond the maximum should be capped")
	}
}

func TestSpeedFor(t *testing.T) {
	cfg := config.DefaultGameConfig()

	if got := speedFor(&cfg, 0, 0); got != cfg.Speed.Base {
		t.Errorf("speedFor(0, 0) = %f, expected base %f", got, cfg.Speed.Base)
	}

	withScore := speedFor(&cfg, 10, 0)
	if withScore <= cfg.Speed.Base {
		t.Error("Score should raise the speed")
	}

	withTime := speedFor(&cfg, 0, 60000)
	if withTime <= cfg.Speed.Base {
		t.Error("Elapsed time should raise the speed")
	}

	if got := speedFor(&cfg, 1000000, 0); got != cfg.Speed.Max {
		t.Errorf("Speed should cap at %f, got %f", cfg.Speed.Max, got)
	}
}
