package sim

import "math"

// initBrickTimers schedules the first behavior trigger for every living
// brick so nothing fires on the very first tick of a level.
func (g *Game) initBrickTimers() {
	now := g.clock.Now()
	for _, br := range g.world.AliveBricks() {
		switch br.Type {
		case BrickHealer:
			br.NextAction = now + g.cfg.Bricks.HealerInterval
		case BrickSpore:
			br.NextAction = now + g.cfg.Bricks.SporeInterval
		case BrickTurret:
			br.NextAction = now + g.cfg.Bricks.TurretInterval
		}
	}
}

// stepBricks runs autonomous brick behavior. Timed behaviors fire against
// the pausable clock; the mimic's dodge is proximity-triggered instead.
func (g *Game) stepBricks() {
	now := g.clock.Now()
	for _, br := range g.world.AliveBricks() {
		switch br.Type {
		case BrickMimic:
			g.mimicDodge(br)
		case BrickHealer:
			if now >= br.NextAction {
				g.healerPulse(br)
				br.NextAction = now + g.cfg.Bricks.HealerInterval
			}
		case BrickSpore:
			if now >= br.NextAction {
				g.sporeSpawn(br)
				br.NextAction = now + g.cfg.Bricks.SporeInterval
			}
		case BrickTurret:
			if now >= br.NextAction {
				g.turretFire(br)
				br.NextAction = now + g.cfg.Bricks.TurretInterval
			}
		}
	}
}

// mimicDodge sidesteps an approaching ball exactly once per brick: right if
// that cell is free, else left, else it stays put but is still spent.
func (g *Game) mimicDodge(br *Brick) {
	if br.Revealed {
		return
	}
	cx, cy := br.Rect.Center()
	radius := g.cfg.Bricks.MimicRadius
	for _, b := range g.world.Balls {
		if !b.Active {
			continue
		}
		// Only balls heading toward the brick trigger the dodge.
		toward := (b.X-cx)*b.DX+(b.Y-cy)*b.DY < 0
		if !toward {
			continue
		}
		dx, dy := b.X-cx, b.Y-cy
		if math.Sqrt(dx*dx+dy*dy) > radius {
			continue
		}
		br.Revealed = true
		if !g.world.MoveBrick(br, br.Row, br.Col+1) {
			g.world.MoveBrick(br, br.Row, br.Col-1)
		}
		return
	}
}

// healerPulse restores one damaged durable neighbor, preferring repair over
// growth: only when no durable neighbor is hurt does it sprout a new brick.
func (g *Game) healerPulse(br *Brick) {
	for _, nb := range g.world.AdjacentBricks(br.Row, br.Col) {
		if nb.Type == BrickDurable && nb.Health < nb.MaxHealth {
			nb.Heal(nb.MaxHealth - nb.Health)
			return
		}
	}
	g.sproutBrick(br)
}

// sporeSpawn grows a standard brick into a random empty adjacent cell.
func (g *Game) sporeSpawn(br *Brick) {
	g.sproutBrick(br)
}

func (g *Game) sproutBrick(br *Brick) {
	empty := g.world.EmptyAdjacent(br.Row, br.Col)
	if len(empty) == 0 {
		return
	}
	cell := empty[g.rng.Intn(len(empty))]
	g.world.SpawnBrick(cell[0], cell[1], BrickStandard)
}

// turretFire drops a shot straight down from the brick's underside.
func (g *Game) turretFire(br *Brick) {
	cx, _ := br.Rect.Center()
	g.world.Projectiles = append(g.world.Projectiles, &Projectile{
		X:     cx,
		Y:     br.Rect.Y + br.Rect.H + 1,
		DY:    g.cfg.Bricks.TurretShotSpeed,
		Owner: OwnerEnemy,
	})
}
