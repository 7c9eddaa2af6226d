package sim

import (
	"math"

	"github.com/vmatyush/brickstorm/internal/core"
)

// stepBalls advances every ball by one tick: resting balls ride the paddle,
// active balls integrate velocity, then resolve walls, paddle and bricks.
// All velocities are world units per tick.
func (g *Game) stepBalls() {
	for _, b := range g.world.Balls {
		if !b.Active {
			g.followPaddle(b)
			continue
		}
		b.PushTrail()

		// Spin curves the flight path and decays toward zero.
		b.DX += b.Spin * g.cfg.Physics.SpinCoeff
		b.Spin *= g.cfg.Physics.SpinDecay

		b.X += b.DX
		b.Y += b.DY

		g.bounceWalls(b)
		g.bouncePaddle(b)
		g.collideBricks(b)
		g.clampBallSpeed(b)
	}
	g.reapFallenBalls()
}

func (g *Game) followPaddle(b *Ball) {
	p := &g.world.Paddle
	b.X = core.ClampF(p.X+b.StuckOff, b.Radius, WorldW-b.Radius)
	b.Y = p.Y - p.Height/2 - b.Radius
}

func (g *Game) bounceWalls(b *Ball) {
	if b.X < b.Radius {
		b.X = b.Radius
		b.DX = math.Abs(b.DX)
	} else if b.X > WorldW-b.Radius {
		b.X = WorldW - b.Radius
		b.DX = -math.Abs(b.DX)
	}
	if b.Y < b.Radius {
		b.Y = b.Radius
		b.DY = math.Abs(b.DY)
	}
	// The floor is only solid while a barrier is up.
	if g.effects.Active(EffectBarrier, g.clock.Now()) && b.Y > WorldH-b.Radius {
		b.Y = WorldH - b.Radius
		b.DY = -math.Abs(b.DY)
	}
}

// bouncePaddle reflects a descending ball off the bat. The exit angle is
// steered by where the ball lands on the paddle, biased by the paddle's own
// motion at contact; the ball speeds up a notch and paddle motion also
// transfers into spin. Near-center exits get a sideways nudge so a ball can
// never settle into a vertical column. A sticky paddle catches instead.
func (g *Game) bouncePaddle(b *Ball) {
	p := &g.world.Paddle
	if b.DY <= 0 {
		return
	}
	hit := CircleRectHit(b.X, b.Y, b.Radius, p.Rect())
	if !hit.Hit {
		return
	}
	now := g.clock.Now()

	if g.effects.Active(EffectSticky, now) {
		b.Active = false
		b.DX, b.DY = 0, 0
		b.Spin = 0
		b.StuckOff = core.ClampF(b.X-p.X, -p.Width/2, p.Width/2)
		b.ClearTrail()
		return
	}

	phys := &g.cfg.Physics
	speed := core.ClampF(b.Speed()*phys.SpeedUpFactor, phys.MinBallSpeed, phys.MaxBallSpeed)
	offset := core.ClampF((b.X-p.X)/(p.Width/2)+g.paddleVX*phys.OffsetInfluence, -1, 1)
	angle := offset * phys.MaxBounceDeg * math.Pi / 180

	b.DX = speed * math.Sin(angle)
	if math.Abs(b.DX) < phys.MicroDriftSpeed {
		b.DX += g.rng.Sign() * phys.MicroDriftSpeed
	}
	b.DY = -math.Sqrt(speed*speed - b.DX*b.DX)
	b.Y = p.Y - p.Height/2 - b.Radius
	b.Spin = b.Spin*0.5 + g.paddleVX*phys.SpinTransfer

	g.streak = 0
	g.sink.Emit(PaddleHit{Offset: offset, Speed: speed})
}

// collideBricks resolves ball-brick contact. Fast balls pierce: they damage
// and keep going, shedding speed once per brick. Portals consume themselves
// and relocate the ball without a bounce.
func (g *Game) collideBricks(b *Ball) {
	phys := &g.cfg.Physics
	piercing := b.Speed() > g.ballSpeedBase*phys.PierceThreshold

	touched := false
	for _, br := range g.world.AliveBricks() {
		hit := CircleRectHit(b.X, b.Y, b.Radius, br.Rect)
		if !hit.Hit {
			continue
		}
		touched = true
		key := g.world.GridKey(br.Row, br.Col)

		if br.Type == BrickPortal {
			g.destroyBrick(br, true)
			g.teleportBall(b)
			return
		}

		if piercing {
			if key == b.LastBrick {
				continue
			}
			b.LastBrick = key
			g.damageBrick(br, 1, true)
			b.DX *= phys.PierceDrag
			b.DY *= phys.PierceDrag
			g.shake = 2.0
			g.sink.Emit(ScreenShake{Magnitude: g.shake})
			piercing = b.Speed() > g.ballSpeedBase*phys.PierceThreshold
			continue
		}

		switch hit.Axis {
		case AxisX:
			b.DX = -b.DX
			b.X += math.Copysign(hit.OverlapX, b.DX)
		case AxisY:
			b.DY = -b.DY
			b.Y += math.Copysign(hit.OverlapY, b.DY)
		}
		g.damageBrick(br, 1, true)
		return
	}
	if !touched {
		b.LastBrick = -1
	}
}

// teleportBall drops the ball into the clear band between the brick field
// and the paddle, keeping its velocity.
func (g *Game) teleportBall(b *Ball) {
	bandTop := brickAreaTop + float64(g.world.Rows)*brickH + 6
	bandBot := paddleYPos - 20
	if bandBot <= bandTop {
		bandBot = bandTop + 1
	}
	b.X = g.rng.FloatRange(b.Radius, WorldW-b.Radius)
	b.Y = g.rng.FloatRange(bandTop, bandBot)
	b.LastBrick = -1
	b.ClearTrail()
	g.sink.Emit(BallTeleported{X: b.X, Y: b.Y})
}

func (g *Game) clampBallSpeed(b *Ball) {
	phys := &g.cfg.Physics
	speed := b.Speed()
	if speed == 0 {
		return
	}
	target := core.ClampF(speed, phys.MinBallSpeed, phys.MaxBallSpeed)
	if target != speed {
		scale := target / speed
		b.DX *= scale
		b.DY *= scale
	}
}

// reapFallenBalls removes active balls past the floor. Losing the last ball
// costs a life, or resolves a pending mercy wait.
func (g *Game) reapFallenBalls() {
	kept := g.world.Balls[:0]
	for _, b := range g.world.Balls {
		if b.Active && b.Y-b.Radius > WorldH {
			continue
		}
		kept = append(kept, b)
	}
	g.world.Balls = kept
	if len(g.world.Balls) == 0 {
		g.onAllBallsLost()
	}
}
