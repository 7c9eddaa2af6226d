package sim

import (
	"math"
	"sort"

	"github.com/vmatyush/brickstorm/internal/core"
)

// rollDrop decides whether a destroyed brick leaves a pickup and spawns it.
// A pending mercy claim overrides the odds and the type.
func (g *Game) rollDrop(x, y float64) {
	if g.pityClaim {
		g.spawnPowerUp(x, y, PowerHeart).Mercy = true
		g.fulfillPity(x, y)
		return
	}
	if !g.rng.Chance(g.cfg.PowerUps.Chance) {
		return
	}
	g.spawnPowerUp(x, y, g.rollPowerUpType())
}

// rollPowerUpType picks a pickup by rarity tier. Tiers above the current
// level's unlock fall through to the next tier down, bottoming out at a
// heart.
func (g *Game) rollPowerUpType() PowerUpType {
	pu := &g.cfg.PowerUps
	total := pu.TierCommon + pu.TierUncommon + pu.TierRare
	if total <= 0 {
		return PowerHeart
	}
	roll := g.rng.Intn(total)
	tier := 0
	switch {
	case roll >= pu.TierCommon+pu.TierUncommon:
		tier = 2
	case roll >= pu.TierCommon:
		tier = 1
	}
	for tier > g.levelIdx {
		tier--
	}
	pool := powerUpPool(tier)
	return pool[g.rng.Intn(len(pool))]
}

func powerUpPool(tier int) []PowerUpType {
	switch tier {
	case 2:
		return []PowerUpType{PowerLightning, PowerCluster, PowerLaser}
	case 1:
		return []PowerUpType{PowerMultiball, PowerArmor, PowerTurretBurst}
	default:
		return []PowerUpType{PowerHeart, PowerEnlarge, PowerBarrier, PowerSticky}
	}
}

func (g *Game) spawnPowerUp(x, y float64, t PowerUpType) *PowerUp {
	pw := &PowerUp{X: x, Y: y, Type: t}
	g.world.PowerUps = append(g.world.PowerUps, pw)
	g.sink.Emit(PowerUpSpawned{X: x, Y: y, Type: t})
	return pw
}

// mercyHeartOnField reports whether a guaranteed pity heart is still falling.
func (g *Game) mercyHeartOnField() bool {
	for _, pw := range g.world.PowerUps {
		if pw.Mercy {
			return true
		}
	}
	return false
}

// stepPowerUps lets pickups fall and hands caught ones to the paddle.
// Pickups that reach the floor vanish; a vanished mercy heart still resolves
// the mercy wait.
func (g *Game) stepPowerUps() {
	p := &g.world.Paddle
	kept := g.world.PowerUps[:0]
	for _, pw := range g.world.PowerUps {
		pw.Y += g.cfg.PowerUps.FallSpeed
		r := core.RectF{X: pw.X - 1.5, Y: pw.Y - 1.5, W: 3, H: 3}
		if r.Intersects(p.Rect()) {
			g.activatePowerUp(pw.Type)
			continue
		}
		if pw.Y > WorldH {
			if pw.Mercy {
				g.resolvePityWait()
			}
			continue
		}
		kept = append(kept, pw)
	}
	g.world.PowerUps = kept
}

func (g *Game) activatePowerUp(t PowerUpType) {
	now := g.clock.Now()
	pu := &g.cfg.PowerUps
	switch t {
	case PowerHeart:
		g.lives++
		if g.pityWait {
			g.resolvePityWait()
		}
	case PowerEnlarge:
		g.effects.Extend(EffectEnlarge, now, pu.EnlargeDuration)
		g.world.Paddle.Width = g.cfg.Paddle.EnlargedWidth
		g.world.ClampPaddle()
	case PowerBarrier:
		g.effects.Extend(EffectBarrier, now, pu.BarrierDuration)
	case PowerSticky:
		g.effects.Extend(EffectSticky, now, pu.StickyDuration)
	case PowerMultiball:
		g.splitBalls()
	case PowerArmor:
		g.world.Paddle.Armor = true
	case PowerTurretBurst:
		g.effects.Extend(EffectTurretBurst, now, pu.TurretBurstDuration)
	case PowerLightning:
		g.effects.Extend(EffectLightning, now, pu.LightningDuration)
	case PowerCluster:
		g.effects.Extend(EffectCluster, now, pu.ClusterDuration)
	case PowerLaser:
		// The beam aims at wherever the paddle is when it fires, not
		// where it was on pickup.
		g.effects.Extend(EffectLaserCharge, now, pu.LaserDelay)
		g.sched.push(now+pu.LaserDelay, schedLaser)
	}
	g.sink.Emit(PowerUpActivated{Type: t})
}

// splitBalls duplicates every ball up to the cap. Flying balls diverge at a
// fixed angle; resting balls split into side-by-side offsets.
func (g *Game) splitBalls() {
	existing := make([]*Ball, len(g.world.Balls))
	copy(existing, g.world.Balls)
	for _, b := range existing {
		clone := *b
		clone.ClearTrail()
		if b.Active {
			sin, cos := math.Sin(0.35), math.Cos(0.35)
			b.DX, b.DY = b.DX*cos-b.DY*sin, b.DX*sin+b.DY*cos
			clone.DX, clone.DY = clone.DX*cos+clone.DY*sin, -clone.DX*sin+clone.DY*cos
		} else {
			b.StuckOff -= 3
			clone.StuckOff += 3
		}
		if !g.world.AddBall(&clone) {
			return
		}
	}
}

// chainLightning zaps the closest live bricks around a strike point. Bricks
// destroyed by the chain roll drops but never chain further.
func (g *Game) chainLightning(x, y float64) {
	pu := &g.cfg.PowerUps
	type cand struct {
		br   *Brick
		dist float64
	}
	var cands []cand
	for _, br := range g.world.AliveBricks() {
		cx, cy := br.Rect.Center()
		d := math.Hypot(cx-x, cy-y)
		if d > 0 && d <= pu.LightningRadius {
			cands = append(cands, cand{br, d})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	for i := 0; i < len(cands) && i < pu.LightningChains; i++ {
		g.damageBrick(cands[i].br, 1, false)
	}
}

// burstCluster sprays player shrapnel upward from a destroyed brick.
func (g *Game) burstCluster(x, y float64) {
	pu := &g.cfg.PowerUps
	n := g.rng.IntRange(pu.ClusterMin, pu.ClusterMax)
	for i := 0; i < n; i++ {
		angle := g.rng.FloatRange(-math.Pi*0.75, -math.Pi*0.25)
		g.world.Projectiles = append(g.world.Projectiles, &Projectile{
			X:     x,
			Y:     y,
			DX:    math.Cos(angle) * pu.ShotSpeed,
			DY:    math.Sin(angle) * pu.ShotSpeed,
			Owner: OwnerPlayer,
		})
	}
}

// fireLaser carves a vertical band centered on the paddle, destroying every
// brick it clips outright.
func (g *Game) fireLaser() {
	pu := &g.cfg.PowerUps
	cx := g.world.Paddle.X
	half := pu.LaserBandWidth / 2
	destroyed := 0
	for _, br := range g.world.AliveBricks() {
		if br.Rect.X+br.Rect.W < cx-half || br.Rect.X > cx+half {
			continue
		}
		g.destroyBrick(br, false)
		destroyed++
	}
	g.effects.Clear(EffectLaserCharge)
	g.laserFlash = 4
	g.sink.Emit(LaserFired{CenterX: cx, Destroyed: destroyed})
}

// stepTurretBurst shoots pellets from the paddle while the effect runs.
func (g *Game) stepTurretBurst() {
	now := g.clock.Now()
	if !g.effects.Active(EffectTurretBurst, now) {
		return
	}
	if now < g.nextBurstShot {
		return
	}
	g.nextBurstShot = now + g.cfg.PowerUps.BurstInterval
	p := &g.world.Paddle
	for _, off := range [2]float64{-p.Width / 2, p.Width / 2} {
		g.world.Projectiles = append(g.world.Projectiles, &Projectile{
			X:     p.X + off,
			Y:     p.Y - p.Height,
			DY:    -g.cfg.PowerUps.ShotSpeed,
			Owner: OwnerPlayer,
		})
	}
}

// stepProjectiles moves every shot one tick. Player shots damage the first
// brick they touch; enemy shots stun the paddle unless armor eats the hit.
// Brick kills can spawn shrapnel mid-loop, so the live slice is swapped out
// before iterating.
func (g *Game) stepProjectiles() {
	p := &g.world.Paddle
	current := g.world.Projectiles
	g.world.Projectiles = nil
	kept := make([]*Projectile, 0, len(current))
	for _, pr := range current {
		pr.X += pr.DX
		pr.Y += pr.DY
		if pr.Y < -2 || pr.Y > WorldH+2 || pr.X < -2 || pr.X > WorldW+2 {
			continue
		}
		if pr.Owner == OwnerPlayer {
			if br := g.brickAtPoint(pr.X, pr.Y); br != nil {
				g.damageBrick(br, 1, false)
				continue
			}
		} else if pointInRect(pr.X, pr.Y, p.Rect()) {
			g.stunPaddle()
			continue
		}
		kept = append(kept, pr)
	}
	g.world.Projectiles = append(kept, g.world.Projectiles...)
}

func (g *Game) brickAtPoint(x, y float64) *Brick {
	if y < brickAreaTop || y >= brickAreaTop+float64(g.world.Rows)*brickH {
		return nil
	}
	row := int((y - brickAreaTop) / brickH)
	col := int(x / g.world.CellW)
	return g.world.BrickAt(row, col)
}

func pointInRect(x, y float64, r core.RectF) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (g *Game) stunPaddle() {
	p := &g.world.Paddle
	if p.Armor {
		p.Armor = false
		return
	}
	p.StunnedUntil = g.clock.Now() + g.cfg.Paddle.StunDuration
	g.sink.Emit(StunApplied{Duration: g.cfg.Paddle.StunDuration})
}

// expireEffects reverts state tied to effects that just ran out.
func (g *Game) expireEffects() {
	now := g.clock.Now()
	if !g.effects.Active(EffectEnlarge, now) && g.world.Paddle.Width > g.basePaddleWidth() {
		g.world.Paddle.Width = g.basePaddleWidth()
	}
	// Balls caught by a lapsed sticky paddle simply stay resting until the
	// player serves them again.
}
