package sim

import (
	"math"
	"testing"
)

func TestMultiballRespectsCap(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.world.Balls = []*Ball{{X: 80, Y: 60, DX: 2, DY: -3, Radius: 1.5, Active: true}}

	for i := 0; i < 4; i++ {
		g.splitBalls()
	}
	if n := len(g.world.Balls); n > g.cfg.Gameplay.MaxBalls {
		t.Errorf("balls = %d, cap is %d", n, g.cfg.Gameplay.MaxBalls)
	}
}

func TestMultiballPreservesSpeed(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.world.Balls = []*Ball{{X: 80, Y: 60, DX: 3, DY: -4, Radius: 1.5, Active: true}}

	g.splitBalls()
	if len(g.world.Balls) != 2 {
		t.Fatalf("balls = %d, want 2", len(g.world.Balls))
	}
	for i, b := range g.world.Balls {
		if math.Abs(b.Speed()-5) > 1e-9 {
			t.Errorf("ball %d speed = %v, split must only rotate velocity", i, b.Speed())
		}
	}
}

func TestMultiballSplitsRestingBalls(t *testing.T) {
	g := newTestGame(t, false, 1)
	// Reset leaves exactly one resting ball.
	g.splitBalls()
	if len(g.world.Balls) != 2 {
		t.Fatalf("balls = %d, want 2", len(g.world.Balls))
	}
	if g.world.Balls[0].StuckOff == g.world.Balls[1].StuckOff {
		t.Error("resting split should separate the stuck offsets")
	}
}

func TestEffectDurationsStack(t *testing.T) {
	g := newTestGame(t, false, 1)
	now := g.clock.Now()
	g.effects.Extend(EffectSticky, now, 10)
	g.effects.Extend(EffectSticky, now, 10)
	if rem := g.effects.Remaining(EffectSticky, now); math.Abs(rem-20) > 1e-9 {
		t.Errorf("remaining = %v, want stacked 20", rem)
	}
}

func TestEffectExtendAfterExpiryStartsFresh(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.effects.Extend(EffectSticky, 0, 5)
	g.effects.Extend(EffectSticky, 100, 5)
	if rem := g.effects.Remaining(EffectSticky, 100); math.Abs(rem-5) > 1e-9 {
		t.Errorf("remaining = %v, want fresh 5", rem)
	}
}

func TestTierFallbackAtUnlockZero(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.levelIdx = 0
	for i := 0; i < 300; i++ {
		if tier := g.rollPowerUpType().Tier(); tier != 0 {
			t.Fatalf("rolled tier %d on level 0, want everything to fall back to tier 0", tier)
		}
	}
}

func TestHigherTiersUnlockWithLevels(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.levelIdx = 2
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		seen[g.rollPowerUpType().Tier()] = true
	}
	for tier := 0; tier <= 2; tier++ {
		if !seen[tier] {
			t.Errorf("tier %d never rolled on level 2", tier)
		}
	}
}

func TestHeartAddsLife(t *testing.T) {
	g := newTestGame(t, false, 1)
	before := g.lives
	g.activatePowerUp(PowerHeart)
	if g.lives != before+1 {
		t.Errorf("lives = %d, want %d", g.lives, before+1)
	}
}

func TestEnlargeWidensAndReverts(t *testing.T) {
	g := newTestGame(t, false, 1)
	base := g.world.Paddle.Width
	g.activatePowerUp(PowerEnlarge)
	if g.world.Paddle.Width != g.cfg.Paddle.EnlargedWidth {
		t.Fatalf("width = %v, want %v", g.world.Paddle.Width, g.cfg.Paddle.EnlargedWidth)
	}
	g.clock.Advance(g.cfg.PowerUps.EnlargeDuration + 0.01)
	g.expireEffects()
	if g.world.Paddle.Width != base {
		t.Errorf("width = %v, want reverted to %v", g.world.Paddle.Width, base)
	}
}

func TestArmorAbsorbsOneStun(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.activatePowerUp(PowerArmor)

	g.stunPaddle()
	if g.world.Paddle.Stunned(g.clock.Now()) {
		t.Fatal("armor must absorb the first stun")
	}
	if g.world.Paddle.Armor {
		t.Fatal("armor must be consumed by the absorbed hit")
	}

	g.stunPaddle()
	if !g.world.Paddle.Stunned(g.clock.Now()) {
		t.Error("second hit must stun")
	}
}

func TestLaserFiresAtPaddlePositionAtFireTime(t *testing.T) {
	g := newTestGame(t, false, 1)
	clearField(g)
	left := g.world.SpawnBrick(0, 2, BrickStandard)  // Centered near x=20
	right := g.world.SpawnBrick(0, 17, BrickStandard) // Centered near x=140

	g.world.Paddle.X = 80
	g.activatePowerUp(PowerLaser)
	if !g.sched.pending(schedLaser) {
		t.Fatal("laser pickup must schedule a delayed beam")
	}
	if !g.effects.Active(EffectLaserCharge, g.clock.Now()) {
		t.Error("laser charge indicator should run until the beam fires")
	}

	// The paddle moves before the beam goes off: the beam follows.
	g.world.Paddle.X = 20
	g.clock.Advance(g.cfg.PowerUps.LaserDelay + 0.01)
	for _, ev := range g.sched.due(g.clock.Now()) {
		if ev.kind == schedLaser {
			g.fireLaser()
		}
	}

	if left.Alive {
		t.Error("brick under the beam must be destroyed")
	}
	if !right.Alive {
		t.Error("brick outside the beam must survive")
	}
	if g.effects.Active(EffectLaserCharge, g.clock.Now()) {
		t.Error("laser charge indicator must clear when the beam fires")
	}
}

func TestLightningChainsNearestBricks(t *testing.T) {
	g := newTestGame(t, false, 1)
	clearField(g)
	near1 := g.world.SpawnBrick(0, 4, BrickStandard)
	near2 := g.world.SpawnBrick(0, 5, BrickStandard)
	near3 := g.world.SpawnBrick(1, 4, BrickStandard)
	far := g.world.SpawnBrick(0, 19, BrickStandard)

	g.chainLightning(35, 12) // Just off the center of cell (0, 4)

	for i, br := range []*Brick{near1, near2, near3} {
		if br.Alive {
			t.Errorf("near brick %d should be chained", i)
		}
	}
	if !far.Alive {
		t.Error("brick beyond the chain radius must survive")
	}
}

func TestClusterSpraysPlayerShrapnel(t *testing.T) {
	g := newTestGame(t, false, 1)
	g.burstCluster(80, 40)
	n := len(g.world.Projectiles)
	if n < g.cfg.PowerUps.ClusterMin || n > g.cfg.PowerUps.ClusterMax {
		t.Fatalf("shrapnel = %d, want within [%d, %d]", n, g.cfg.PowerUps.ClusterMin, g.cfg.PowerUps.ClusterMax)
	}
	for _, pr := range g.world.Projectiles {
		if pr.Owner != OwnerPlayer {
			t.Error("shrapnel must be player-owned")
		}
		if pr.DY >= 0 {
			t.Errorf("DY = %v, shrapnel must spray upward", pr.DY)
		}
	}
}

func TestPlayerShotsDamageBricks(t *testing.T) {
	g := newTestGame(t, false, 1)
	clearField(g)
	br := g.world.SpawnBrick(0, 4, BrickDurable)
	cx, cy := br.Rect.Center()
	g.world.Projectiles = []*Projectile{{X: cx, Y: cy + 2, DY: -2.4, Owner: OwnerPlayer}}

	g.stepProjectiles()

	if br.Health != br.MaxHealth-1 {
		t.Errorf("health = %d, want %d", br.Health, br.MaxHealth-1)
	}
	if len(g.world.Projectiles) != 0 {
		t.Error("shot must be consumed by the hit")
	}
}

func TestEnemyShotStunsPaddle(t *testing.T) {
	g := newTestGame(t, false, 1)
	p := &g.world.Paddle
	g.world.Projectiles = []*Projectile{{X: p.X, Y: p.Y - 1, DY: 1.2, Owner: OwnerEnemy}}

	g.stepProjectiles()

	if !p.Stunned(g.clock.Now()) {
		t.Error("enemy shot on the paddle must stun")
	}
	if len(g.world.Projectiles) != 0 {
		t.Error("shot must be consumed by the hit")
	}
}

func TestPowerUpCollection(t *testing.T) {
	g := newTestGame(t, false, 1)
	p := &g.world.Paddle
	before := g.lives
	g.world.PowerUps = []*PowerUp{{X: p.X, Y: p.Y - 1, Type: PowerHeart}}

	g.stepPowerUps()

	if g.lives != before+1 {
		t.Error("pickup touching the paddle must activate")
	}
	if len(g.world.PowerUps) != 0 {
		t.Error("collected pickup must disappear")
	}
}
