package sim

import "math"

// pityState tracks the hidden mercy-heart lifecycle. It arms once per game
// when the player drops to their last life and fulfills exactly once.
type pityState int

const (
	pityInactive pityState = iota
	pityArmed
	pityFulfilled
)

// damageBrick is the single damage funnel: every hit feeds the streak and
// the mercy counter, destruction scores and triggers drops and on-kill
// effects. byBall guards the effects that only ball contact may chain.
func (g *Game) damageBrick(br *Brick, dmg int, byBall bool) {
	if !br.Alive || dmg <= 0 {
		return
	}
	// The multiplier uses the streak as it stood before this hit.
	prevStreak := g.streak
	g.streak++
	g.countPityHit()

	if !br.Damage(dmg) {
		cx, cy := br.Rect.Center()
		g.sink.Emit(BrickDamaged{X: cx, Y: cy, Type: br.Type, Health: br.Health})
		return
	}

	cx, cy := br.Rect.Center()
	points := int(math.Floor(float64(br.Value) * (1 + 0.1*float64(prevStreak))))
	g.score += points
	g.sink.Emit(BrickDestroyed{X: cx, Y: cy, Type: br.Type, Points: points})

	g.rollDrop(cx, cy)

	if byBall {
		now := g.clock.Now()
		if g.effects.Active(EffectLightning, now) {
			g.chainLightning(cx, cy)
		}
		if g.effects.Active(EffectCluster, now) {
			g.burstCluster(cx, cy)
		}
	}
}

// destroyBrick kills a brick outright through the damage funnel.
func (g *Game) destroyBrick(br *Brick, byBall bool) {
	g.damageBrick(br, br.Health, byBall)
}

// armPity starts the mercy counter the first time the player reaches their
// last life. It never re-arms.
func (g *Game) armPity() {
	if g.pity != pityInactive || g.lives != 1 {
		return
	}
	g.pity = pityArmed
	g.pityHits = 0
	g.pityTarget = g.rng.IntRange(g.cfg.Pity.MinHits, g.cfg.Pity.MaxHits)
	g.sink.Emit(PityArmed{Target: g.pityTarget})
}

// countPityHit ticks the armed counter. Reaching the target claims the next
// brick drop for a guaranteed heart.
func (g *Game) countPityHit() {
	if g.pity != pityArmed || g.pityClaim {
		return
	}
	g.pityHits++
	if g.pityHits >= g.pityTarget {
		g.pityClaim = true
	}
}

// fulfillPity marks the mercy heart as delivered.
func (g *Game) fulfillPity(x, y float64) {
	g.pity = pityFulfilled
	g.pityClaim = false
	g.sink.Emit(PityFulfilled{X: x, Y: y})
}
