package game

import (
	"testing"

	"github.com/avolkov/twinlane/internal/config"
)

func testVehicles(cfg *config.GameConfig) [2]Vehicle {
	lanes := ComputeLanes(cfg, cfg.Arena.Width)
	y := cfg.Arena.Height - cfg.Arena.VehicleBottomOffset
	return [2]Vehicle{
		{Side: SideLeft, Lane: LaneNear, X: lanes.X(SideLeft, LaneNear), Y: y},
		{Side: SideRight, Lane: LaneNear, X: lanes.X(SideRight, LaneNear), Y: y},
	}
}

func TestResolveFrameAdvancesObstacles(t *testing.T) {
	cfg := config.DefaultGameConfig()
	vehicles := testVehicles(&cfg)

	obstacles := []Obstacle{{X: 5, Y: 100, Kind: KindHazard, Side: SideLeft, Lane: LaneNear}}
	out := ResolveFrame(&cfg, vehicles, obstacles, 4.0, 2.0, cfg.Arena.Height)

	if len(out.Obstacles) != 1 {
		t.Fatalf("Expected obstacle to survive, got %d", len(out.Obstacles))
	}
	if out.Obstacles[0].Y != 108 {
		t.Errorf("Obstacle should move by speed*deltaScale, Y = %f, expected 108", out.Obstacles[0].Y)
	}
	if out.Terminal() {
		t.Error("No collision expected")
	}
}

func TestResolveFrameHitBoundary(t *testing.T) {
	cfg := config.DefaultGameConfig()
	vehicles := testVehicles(&cfg)
	v := vehicles[SideLeft]

	// Distance exactly equal to the radius is a miss; strictly inside hits.
	// deltaScale 0 keeps the crafted distances exact.
	at := func(dx float64, kind Kind) FrameOutcome {
		obstacles := []Obstacle{{X: v.X + dx, Y: v.Y, Kind: kind, Side: SideLeft, Lane: LaneNear}}
		return ResolveFrame(&cfg, vehicles, obstacles, 0, 0, cfg.Arena.Height)
	}

	if out := at(cfg.Collision.Radius, KindHazard); out.FatalHit {
		t.Error("Contact at exactly the radius should not register")
	}
	if out := at(cfg.Collision.Radius-0.001, KindHazard); !out.FatalHit {
		t.Error("Distance strictly below the radius should register")
	}
	if out := at(cfg.Collision.Radius-0.001, KindCollectible); out.Collected != 1 {
		t.Error("A collectible inside the radius should be picked up")
	}
}

func TestResolveFrameIgnoresOtherSide(t *testing.T) {
	cfg := config.DefaultGameConfig()
	vehicles := testVehicles(&cfg)
	v := vehicles[SideLeft]

	// Obstacle overlapping the left vehicle but tagged for the right side
	// is resolved against the right vehicle only.
	obstacles := []Obstacle{{X: v.X, Y: v.Y, Kind: KindHazard, Side: SideRight, Lane: LaneNear}}
	out := ResolveFrame(&cfg, vehicles, obstacles, 0, 0, cfg.Arena.Height)

	if out.FatalHit {
		t.Error("Obstacles only collide with the vehicle on their own side")
	}
}

func TestResolveFrameBottomEdge(t *testing.T) {
	cfg := config.DefaultGameConfig()
	vehicles := testVehicles(&cfg)
	farX := cfg.Arena.Width / 2 // Between lanes, away from both vehicles

	hazard := []Obstacle{{X: farX, Y: cfg.Arena.Height + 1, Kind: KindHazard, Side: SideLeft, Lane: LaneFar}}
	out := ResolveFrame(&cfg, vehicles, hazard, 0, 0, cfg.Arena.Height)
	if out.Terminal() {
		t.Error("A hazard leaving the arena is a dodge")
	}
	if len(out.Obstacles) != 0 {
		t.Error("Off-screen hazard should be dropped")
	}

	collectible := []Obstacle{{X: farX, Y: cfg.Arena.Height + 1, Kind: KindCollectible, Side: SideLeft, Lane: LaneFar}}
	out = ResolveFrame(&cfg, vehicles, collectible, 0, 0, cfg.Arena.Height)
	if !out.Missed || !out.Terminal() {
		t.Error("A collectible leaving the arena ends the episode")
	}
}

func TestFrameOutcomeTerminal(t *testing.T) {
	if (FrameOutcome{}).Terminal() {
		t.Error("Empty outcome should not be terminal")
	}
	if !(FrameOutcome{FatalHit: true}).Terminal() {
		t.Error("Fatal hit should be terminal")
	}
	if !(FrameOutcome{Missed: true}).Terminal() {
		t.Error("Missed collectible should be terminal")
	}
}
