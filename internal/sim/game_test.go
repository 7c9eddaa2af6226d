package sim

import (
	"testing"

	"github.com/vmatyush/brickstorm/internal/core"
	"github.com/vmatyush/brickstorm/internal/level"
)

// scriptedFrame builds a deterministic input pattern for replay tests.
func scriptedFrame(tick int) core.InputFrame {
	f := core.NewInputFrame()
	switch {
	case tick == 70:
		f.Set(core.ActionLaunch)
	case tick > 100 && tick < 220:
		f.Set(core.ActionLeft)
	case tick == 230:
		f.Set(core.ActionDashRight)
	case tick > 240 && tick < 400:
		f.Set(core.ActionRight)
	case tick > 420 && tick < 520:
		f.Set(core.ActionLeft)
	}
	return f
}

func TestDeterministicReplay(t *testing.T) {
	run := func() []uint64 {
		g := NewGame(false)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
		var hashes []uint64
		for tick := 0; tick < 900; tick++ {
			g.Step(scriptedFrame(tick))
			if tick%150 == 0 {
				hashes = append(hashes, g.Snapshot().Hash())
			}
		}
		return hashes
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("hash %d diverged: %x vs %x", i, a[i], b[i])
		}
	}
}

func TestSeedChangesOutcome(t *testing.T) {
	run := func(seed int64) uint64 {
		g := NewGame(false)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
		for tick := 0; tick < 900; tick++ {
			g.Step(scriptedFrame(tick))
		}
		return g.Snapshot().Hash()
	}
	if run(1) == run(2) {
		t.Error("different seeds should diverge over a long replay")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, false, 1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Fatal("pause action must pause")
	}
	before := g.clock.Now()
	tickBefore := g.tick
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.clock.Now() != before || g.tick != tickBefore {
		t.Error("clock and tick counter must freeze while paused")
	}

	g.Step(pause)
	g.Step(core.NewInputFrame())
	if g.clock.Now() <= before {
		t.Error("clock must resume on unpause")
	}
}

func TestServeDelayBlocksLaunch(t *testing.T) {
	g := newTestGame(t, false, 1)
	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)

	g.Step(launch)
	if g.world.ActiveBalls() != 0 {
		t.Fatal("launch must be ignored during the serve delay")
	}

	for i := 0; i < serveDelayTicks; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Step(launch)
	if g.world.ActiveBalls() != 1 {
		t.Error("launch must work once the serve delay elapses")
	}
}

func TestLaunchAimSteersServe(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.serveDelay = 0
	g.world.Paddle.AimOffset = -1

	b := g.world.Balls[0]
	g.launchBall(b)
	if b.DX >= 0 {
		t.Errorf("DX = %v, full-left aim must serve leftward", b.DX)
	}
	if b.DY >= 0 {
		t.Errorf("DY = %v, serves always travel up", b.DY)
	}
}

func TestPaddleStaysInsideField(t *testing.T) {
	g := newTestGame(t, false, 1)
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 600; i++ {
		g.Step(right)
	}
	p := &g.world.Paddle
	if p.X+p.Width/2 > WorldW+1e-9 {
		t.Errorf("paddle right edge %v past the wall", p.X+p.Width/2)
	}
}

func TestDashCooldown(t *testing.T) {
	g := newTestGame(t, false, 1)
	dash := core.NewInputFrame()
	dash.Set(core.ActionDashRight)

	g.Step(dash)
	p := &g.world.Paddle
	if !p.Dashing(g.clock.Now()) {
		t.Fatal("dash action must start a dash")
	}
	firstCooldown := p.DashCooldown

	// A second dash during the cooldown is ignored.
	for i := 0; i < 10; i++ {
		g.Step(dash)
	}
	if p.DashCooldown != firstCooldown {
		t.Error("dash must not restart during its cooldown")
	}
}

func TestStunLocksMovement(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.world.Paddle.StunnedUntil = g.clock.Now() + 5
	x := g.world.Paddle.X

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		g.Step(right)
	}
	if g.world.Paddle.X != x {
		t.Error("stunned paddle must not move")
	}
}

func killAllBricks(g *Game) {
	for _, br := range g.world.AliveBricks() {
		br.Alive = false
	}
}

func TestLevelClearAdvances(t *testing.T) {
	g := newTestGame(t, false, 1)
	killAllBricks(g)
	g.Step(core.NewInputFrame())

	if g.levelIdx != 1 {
		t.Errorf("level = %d, want 1 after clearing", g.levelIdx)
	}
	if g.world.AliveCount() == 0 {
		t.Error("next level should bring new bricks")
	}
	if g.world.ActiveBalls() != 0 {
		t.Error("level transition should re-rack a resting ball")
	}
}

func TestCampaignWinOnLastLevel(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.levelIdx = level.Count() - 1
	g.loadLevel()
	killAllBricks(g)
	g.Step(core.NewInputFrame())

	if !g.won {
		t.Fatal("clearing the final level must win the campaign")
	}
	if !g.State().GameOver {
		t.Error("a won game reports GameOver to the platform")
	}
}

func TestEndlessWrapsAndSpeedsUp(t *testing.T) {
	g := newTestGame(t, true, 1)
	g.levelIdx = level.Count() - 1
	g.loadLevel()
	killAllBricks(g)
	g.Step(core.NewInputFrame())

	if g.won {
		t.Fatal("endless mode never wins")
	}
	if g.cycle != 1 {
		t.Errorf("cycle = %d, want 1 after wrapping", g.cycle)
	}
	if g.world.AliveCount() == 0 {
		t.Error("wrapped level should repopulate")
	}
	base := g.cfg.Physics.BallSpeed
	if got := g.diff.BallSpeed(base, g.score, g.tick, g.cycle); got <= g.diff.BallSpeed(base, g.score, g.tick, 0) {
		t.Error("each endless cycle should raise the base ball speed")
	}
}

func TestGameOverAtZeroLives(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.lives = 1
	g.world.Balls = nil
	g.onAllBallsLost()

	if !g.over {
		t.Fatal("losing the last ball on the last life ends the game")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.over || g.score != 0 || g.lives != g.cfg.Gameplay.Lives {
		t.Error("restart must start a fresh game")
	}
}

func TestPityHeartDefersWin(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.lives = 1
	g.armPity()
	killAllBricks(g)

	g.Step(core.NewInputFrame())

	if g.levelIdx != 0 {
		t.Fatal("level must not complete while the mercy heart is pending")
	}
	if !g.pityWait {
		t.Fatal("clearing while armed must enter the mercy wait")
	}
	heart := false
	for _, pw := range g.world.PowerUps {
		if pw.Type == PowerHeart {
			heart = true
		}
	}
	if !heart {
		t.Fatal("the mercy heart must spawn over the cleared field")
	}

	// Let the heart fall off the floor: the level then completes.
	for i := 0; i < 300 && g.levelIdx == 0; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.levelIdx != 1 {
		t.Error("a lost mercy heart must still complete the level")
	}
	if g.pityWait {
		t.Error("mercy wait must resolve")
	}
}

func TestPityHeartCollectedGrantsLife(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.lives = 1
	g.armPity()
	killAllBricks(g)
	g.Step(core.NewInputFrame())

	// Catch the heart directly instead of steering the paddle under it.
	g.activatePowerUp(PowerHeart)
	g.world.PowerUps = nil
	g.Step(core.NewInputFrame())

	if g.lives != 2 {
		t.Errorf("lives = %d, want 2 after catching the mercy heart", g.lives)
	}
	if g.levelIdx != 1 {
		t.Errorf("level = %d, collecting the heart must complete the level", g.levelIdx)
	}
}

func TestPityHeartOnFinalBrickDefersWin(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.lives = 1
	g.armPity()
	killAllBricks(g)
	br := g.world.SpawnBrick(3, 3, BrickStandard)
	// The counter lands exactly on the level's last brick.
	g.pityHits = g.pityTarget - 1
	g.destroyBrick(br, false)

	if !g.mercyHeartOnField() {
		t.Fatal("the final hit at the counter target must drop the mercy heart")
	}

	g.Step(core.NewInputFrame())

	if g.levelIdx != 0 {
		t.Fatal("level must not complete while the mercy heart is falling")
	}
	if !g.pityWait {
		t.Fatal("a falling mercy heart must hold the win")
	}
	if g.lives != 1 {
		t.Fatalf("lives = %d, want 1 before the heart lands", g.lives)
	}

	g.activatePowerUp(PowerHeart)
	g.world.PowerUps = nil
	g.Step(core.NewInputFrame())

	if g.lives != 2 {
		t.Errorf("lives = %d, want 2 after catching the heart", g.lives)
	}
	if g.levelIdx != 1 {
		t.Errorf("level = %d, the level must complete once the heart resolves", g.levelIdx)
	}
}

func TestResetClearsEverything(t *testing.T) {
	g := newTestGame(t, false, 5)
	g.score = 500
	g.streak = 4
	g.lives = 1
	g.armPity()
	g.effects.Extend(EffectBarrier, g.clock.Now(), 10)

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})

	if g.score != 0 || g.streak != 0 || g.lives != g.cfg.Gameplay.Lives {
		t.Error("reset must restore score, streak and lives")
	}
	if g.pity != pityInactive {
		t.Error("reset must disarm pity")
	}
	if g.effects.Active(EffectBarrier, g.clock.Now()) {
		t.Error("reset must clear timed effects")
	}
	if g.world.AliveCount() == 0 || len(g.world.Balls) != 1 {
		t.Error("reset must rebuild the field with one resting ball")
	}
}

func TestRenderDoesNotPanicAcrossStates(t *testing.T) {
	g := newTestGame(t, false, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	g.paused = true
	g.Render(screen)
	g.paused = false

	g.over = true
	g.Render(screen)
	g.over = false

	g.won = true
	g.Render(screen)
	g.won = false

	// Tiny screens simply render nothing.
	tiny := core.NewScreen(10, 3)
	g.Render(tiny)
}
