package game

import (
	"testing"
	"time"

	"github.com/avolkov/twinlane/internal/config"
	"github.com/avolkov/twinlane/internal/core"
)

// frame is the nominal 60 Hz tick interval.
const frame = time.Second / 60

func newTestGame(seed int64) *Game {
	g := New(config.DefaultGameConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// anchor performs the first Step, which only latches the frame clock.
func anchor(g *Game, now time.Time) {
	g.Step(now)
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(42)

	if g.phase != PhaseRunning {
		t.Errorf("Reset should leave the game running, got %v", g.phase)
	}
	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.speed != g.cfg.Speed.Base {
		t.Errorf("Reset should set base speed, got %f", g.speed)
	}
	if len(g.obstacles) != 0 {
		t.Errorf("Reset should clear obstacles, got %d", len(g.obstacles))
	}

	for _, v := range g.vehicles {
		if v.Lane != LaneNear {
			t.Errorf("Vehicle %v should start on the near lane, got %v", v.Side, v.Lane)
		}
		wantY := g.arenaH - g.cfg.Arena.VehicleBottomOffset
		if v.Y != wantY {
			t.Errorf("Vehicle %v Y = %f, expected %f", v.Side, v.Y, wantY)
		}
		if v.X != g.lanes.X(v.Side, v.Lane) {
			t.Errorf("Vehicle %v X = %f, expected lane position %f", v.Side, v.X, g.lanes.X(v.Side, v.Lane))
		}
	}
}

func TestFirstStepOnlyAnchors(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(0, 0)

	g.obstacles = append(g.obstacles, Obstacle{X: 10, Y: 200, Kind: KindHazard, Side: SideLeft, Lane: LaneNear})
	g.Step(t0)

	if g.elapsedMS != 0 {
		t.Errorf("First step should not advance time, elapsed = %f", g.elapsedMS)
	}
	if g.obstacles[0].Y != 200 {
		t.Errorf("First step should not move obstacles, Y = %f", g.obstacles[0].Y)
	}
}

func TestHazardCollisionEndsGame(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(0, 0)
	anchor(g, t0)

	// Hazard directly on the left vehicle: one frame of movement keeps it
	// well inside the hit radius.
	v := g.vehicles[SideLeft]
	g.obstacles = append(g.obstacles, Obstacle{X: v.X, Y: v.Y, Kind: KindHazard, Side: SideLeft, Lane: v.Lane})

	result := g.Step(t0.Add(frame))

	if !result.Terminal {
		t.Error("Hazard collision should end the episode")
	}
	if !result.State.GameOver {
		t.Error("State should report game over")
	}
	if g.phase != PhaseGameOver {
		t.Errorf("Phase should be game over, got %v", g.phase)
	}
}

func TestCollectiblePickupScores(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(0, 0)
	anchor(g, t0)

	v := g.vehicles[SideRight]
	g.obstacles = append(g.obstacles, Obstacle{X: v.X, Y: v.Y, Kind: KindCollectible, Side: SideRight, Lane: v.Lane})

	result := g.Step(t0.Add(frame))

	if result.Terminal {
		t.Error("Collecting should not end the episode")
	}
	if result.Collected != 1 {
		t.Errorf("Collected = %d, expected 1", result.Collected)
	}
	if g.score != 1 {
		t.Errorf("Score = %d, expected 1", g.score)
	}
	if len(g.obstacles) != 0 {
		t.Errorf("Collected obstacle should be removed, %d remain", len(g.obstacles))
	}
}

func TestCollectibleMissEndsGame(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(0, 0)
	anchor(g, t0)

	// Collectible about to cross the bottom edge, far from both vehicles.
	g.obstacles = append(g.obstacles, Obstacle{
		X:    g.lanes.X(SideLeft, LaneFar),
		Y:    g.arenaH - 1,
		Kind: KindCollectible,
		Side: SideLeft,
		Lane: LaneFar,
	})

	result := g.Step(t0.Add(frame))

	if !result.Terminal {
		t.Error("A missed collectible should end the episode")
	}
	if g.phase != PhaseGameOver {
		t.Errorf("Phase should be game over, got %v", g.phase)
	}
}

func TestHazardPassingBottomIsDodged(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(0, 0)
	anchor(g, t0)

	g.obstacles = append(g.obstacles, Obstacle{
		X:    g.lanes.X(SideLeft, LaneFar),
		Y:    g.arenaH - 1,
		Kind: KindHazard,
		Side: SideLeft,
		Lane: LaneFar,
	})

	result := g.Step(t0.Add(frame))

	if result.Terminal {
		t.Error("A hazard passing the bottom is a successful dodge, not a loss")
	}
	if len(g.obstacles) != 0 {
		t.Errorf("Dodged hazard should be removed, %d remain", len(g.obstacles))
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(0, 0)
	anchor(g, t0)

	g.obstacles = append(g.obstacles, Obstacle{X: 10, Y: 200, Kind: KindHazard, Side: SideLeft, Lane: LaneNear})
	g.Step(t0.Add(frame))
	yAfterStep := g.obstacles[0].Y

	g.HandleAction(core.ActionPause)
	if g.phase != PhasePaused {
		t.Fatalf("Phase should be paused, got %v", g.phase)
	}

	g.Step(t0.Add(10 * time.Second))

	if g.obstacles[0].Y != yAfterStep {
		t.Errorf("Obstacles should not move while paused, Y went %f -> %f", yAfterStep, g.obstacles[0].Y)
	}
}

func TestResumeReanchorsClock(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(0, 0)
	anchor(g, t0)
	g.Step(t0.Add(frame))

	g.TogglePause()
	resumeAt := t0.Add(time.Minute)
	g.TogglePause()

	elapsedBefore := g.elapsedMS
	g.Step(resumeAt)

	// The first post-resume step only re-anchors; the minute spent paused
	// must not be applied as a delta.
	if g.elapsedMS != elapsedBefore {
		t.Errorf("Resume step should not advance time, elapsed went %f -> %f", elapsedBefore, g.elapsedMS)
	}

	g.Step(resumeAt.Add(frame))
	advanced := g.elapsedMS - elapsedBefore
	if advanced < 16 || advanced > 17 {
		t.Errorf("Post-resume step should advance one frame (~16.7ms), got %f", advanced)
	}
}

func TestLargeDeltaIsClamped(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(0, 0)
	anchor(g, t0)

	g.Step(t0.Add(10 * time.Second))

	if g.elapsedMS != g.cfg.Speed.MaxDeltaMS {
		t.Errorf("Delta should be clamped to %f ms, elapsed = %f", g.cfg.Speed.MaxDeltaMS, g.elapsedMS)
	}
}

func TestSpeedProgressionAndCap(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(0, 0)
	anchor(g, t0)

	base := g.speed
	g.score = 10
	g.Step(t0.Add(frame))

	if g.speed <= base {
		t.Errorf("Speed should grow with score, %f -> %f", base, g.speed)
	}

	g.score = 100000
	g.Step(t0.Add(2 * frame))
	if g.speed != g.cfg.Speed.Max {
		t.Errorf("Speed should cap at %f, got %f", g.cfg.Speed.Max, g.speed)
	}
}

func TestToggleLane(t *testing.T) {
	g := newTestGame(1)

	g.HandleAction(core.ActionToggleLeft)
	if g.vehicles[SideLeft].Lane != LaneFar {
		t.Errorf("Left vehicle should be on the far lane, got %v", g.vehicles[SideLeft].Lane)
	}
	if g.vehicles[SideLeft].X != g.lanes.X(SideLeft, LaneFar) {
		t.Error("Toggle should move the vehicle to the new lane's x position")
	}
	if g.vehicles[SideRight].Lane != LaneNear {
		t.Error("Toggling left should not affect the right vehicle")
	}

	g.HandleAction(core.ActionToggleLeft)
	if g.vehicles[SideLeft].Lane != LaneNear {
		t.Error("Second toggle should return to the near lane")
	}

	// Ignored while paused
	g.TogglePause()
	g.HandleAction(core.ActionToggleRight)
	if g.vehicles[SideRight].Lane != LaneNear {
		t.Error("Toggles should be ignored while paused")
	}
	g.TogglePause()

	// Ignored after game over
	g.phase = PhaseGameOver
	g.HandleAction(core.ActionToggleRight)
	if g.vehicles[SideRight].Lane != LaneNear {
		t.Error("Toggles should be ignored after game over")
	}
}

func TestSetLanes(t *testing.T) {
	g := newTestGame(1)

	g.SetLanes(LaneFar, LaneNear)
	if g.vehicles[SideLeft].Lane != LaneFar || g.vehicles[SideRight].Lane != LaneNear {
		t.Errorf("SetLanes(far, near) gave %v/%v", g.vehicles[SideLeft].Lane, g.vehicles[SideRight].Lane)
	}
	if g.vehicles[SideLeft].X != g.lanes.X(SideLeft, LaneFar) {
		t.Error("SetLanes should reposition vehicles")
	}

	g.phase = PhaseGameOver
	g.SetLanes(LaneNear, LaneFar)
	if g.vehicles[SideLeft].Lane != LaneFar {
		t.Error("SetLanes should be ignored after game over")
	}
}

func TestRestartPreservesBestScore(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(0, 0)
	anchor(g, t0)

	g.score = 7
	v := g.vehicles[SideLeft]
	g.obstacles = append(g.obstacles, Obstacle{X: v.X, Y: v.Y, Kind: KindHazard, Side: SideLeft, Lane: v.Lane})
	g.Step(t0.Add(frame))

	if g.phase != PhaseGameOver {
		t.Fatal("Expected game over")
	}
	if g.bestScore != 7 {
		t.Errorf("Best score should update on game over, got %d", g.bestScore)
	}

	g.Restart()

	if g.phase != PhaseRunning {
		t.Error("Restart should resume running")
	}
	if g.score != 0 {
		t.Errorf("Restart should clear score, got %d", g.score)
	}
	if g.bestScore != 7 {
		t.Errorf("Restart should keep best score, got %d", g.bestScore)
	}
	if len(g.obstacles) != 0 {
		t.Errorf("Restart should clear obstacles, %d remain", len(g.obstacles))
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := newTestGame(1)
	t0 := time.Unix(0, 0)
	anchor(g, t0)

	g.score = 3
	g.Restart()
	if g.score != 3 {
		t.Error("Restart should be a no-op while running")
	}
}

func TestSetBestScore(t *testing.T) {
	g := newTestGame(1)

	g.SetBestScore(10)
	if g.bestScore != 10 {
		t.Errorf("SetBestScore(10) gave %d", g.bestScore)
	}

	// A lower value never overwrites
	g.SetBestScore(5)
	if g.bestScore != 10 {
		t.Errorf("SetBestScore should never lower the best, got %d", g.bestScore)
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and tick schedule must produce identical runs.
	run := func() (int, []Obstacle, float64) {
		g := newTestGame(12345)
		now := time.Unix(0, 0)
		for i := 0; i < 600; i++ {
			g.Step(now)
			now = now.Add(frame)
			if g.phase == PhaseGameOver {
				break
			}
		}
		return g.score, g.obstacles, g.elapsedMS
	}

	score1, obstacles1, elapsed1 := run()
	score2, obstacles2, elapsed2 := run()

	if score1 != score2 {
		t.Errorf("Determinism failed: scores differ, %d vs %d", score1, score2)
	}
	if elapsed1 != elapsed2 {
		t.Errorf("Determinism failed: elapsed differs, %f vs %f", elapsed1, elapsed2)
	}
	if len(obstacles1) != len(obstacles2) {
		t.Fatalf("Determinism failed: obstacle counts differ, %d vs %d", len(obstacles1), len(obstacles2))
	}
	for i := range obstacles1 {
		if obstacles1[i] != obstacles2[i] {
			t.Errorf("Determinism failed: obstacle %d differs, %+v vs %+v", i, obstacles1[i], obstacles2[i])
		}
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	g := newTestGame(1)
	g.score = 4
	g.bestScore = 9
	g.obstacles = append(g.obstacles, Obstacle{X: 50, Y: 60, Kind: KindHazard, Side: SideRight, Lane: LaneFar})

	snap := g.Snapshot()

	if snap.Score != 4 || snap.BestScore != 9 {
		t.Errorf("Snapshot score/best = %d/%d, expected 4/9", snap.Score, snap.BestScore)
	}
	if snap.ArenaW != g.arenaW || snap.ArenaH != g.arenaH {
		t.Error("Snapshot should carry arena dimensions")
	}
	if len(snap.Obstacles) != 1 {
		t.Fatalf("Snapshot obstacles = %d, expected 1", len(snap.Obstacles))
	}
	o := snap.Obstacles[0]
	if o.X != 50 || o.Y != 60 || o.Kind != KindHazard || o.Side != SideRight || o.Lane != LaneFar {
		t.Errorf("Snapshot obstacle = %+v", o)
	}

	// Mutating the snapshot must not touch the simulation.
	snap.Obstacles[0].Y = -1
	if g.obstacles[0].Y != 60 {
		t.Error("Snapshot should be a copy, not a view into live state")
	}
}

func TestStepBeforeSizingIsNoOp(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Arena.Width = 0
	cfg.Arena.Height = 0
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1})

	result := g.Step(time.Unix(0, 0))
	if result.Terminal {
		t.Error("Unsized game should not terminate")
	}
	if g.elapsedMS != 0 {
		t.Error("Unsized game should not advance")
	}
}
