package tui

import (
	"strings"
	"testing"

	"github.com/avolkov/twinlane/internal/core"
	"github.com/avolkov/twinlane/internal/game"
)

func renderSnapshot() game.Snapshot {
	return game.Snapshot{
		Vehicles: [2]game.VehicleView{
			{Side: game.SideLeft, Lane: game.LaneNear, X: 60, Y: 500},
			{Side: game.SideRight, Lane: game.LaneNear, X: 300, Y: 500},
		},
		Obstacles: []game.ObstacleView{
			{X: 180, Y: 100, Kind: game.KindCollectible, Side: game.SideLeft, Lane: game.LaneFar},
			{X: 420, Y: 200, Kind: game.KindHazard, Side: game.SideRight, Lane: game.LaneFar},
		},
		Score:     3,
		BestScore: 9,
		Speed:     3.5,
		ArenaW:    480,
		ArenaH:    640,
	}
}

func TestDrawSnapshot(t *testing.T) {
	screen := core.NewScreen(80, 24)
	DrawSnapshot(screen, renderSnapshot())

	str := screen.String()
	if !strings.Contains(str, "Score: 3") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(str, "Best: 9") {
		t.Error("HUD should show the best score")
	}
	if !strings.ContainsRune(str, VehicleChar) {
		t.Error("Vehicles should be drawn")
	}
	if !strings.ContainsRune(str, CollectibleChar) {
		t.Error("Collectibles should be drawn")
	}
	if !strings.ContainsRune(str, HazardChar) {
		t.Error("Hazards should be drawn")
	}
}

func TestDrawSnapshotPausedOverlay(t *testing.T) {
	screen := core.NewScreen(80, 24)
	snap := renderSnapshot()
	snap.Paused = true
	DrawSnapshot(screen, snap)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Paused overlay should be drawn")
	}
}

func TestDrawSnapshotGameOverOverlay(t *testing.T) {
	screen := core.NewScreen(80, 24)
	snap := renderSnapshot()
	snap.GameOver = true
	DrawSnapshot(screen, snap)

	str := screen.String()
	if !strings.Contains(str, "GAME OVER") {
		t.Error("Game over overlay should be drawn")
	}
	if !strings.Contains(str, "Score: 3") {
		t.Error("Game over overlay should include the final score")
	}
}

func TestDrawSnapshotUnsizedArena(t *testing.T) {
	screen := core.NewScreen(80, 24)
	DrawSnapshot(screen, game.Snapshot{}) // Must not panic or divide by zero

	if strings.TrimSpace(screen.String()) != "" {
		t.Error("Unsized snapshot should render an empty screen")
	}
}
