package sim

import (
	"fmt"

	"github.com/vmatyush/brickstorm/internal/core"
)

// Render implements registry.Game. World coordinates project onto whatever
// cell grid the platform hands us; a brief screen shake jitters the whole
// field after a pierce.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	fieldTop := 1 // Row 0 is the HUD
	fieldH := h - fieldTop
	if fieldH < 4 || w < 20 {
		return
	}

	shakeX, shakeY := 0, 0
	if g.shake >= 0.5 {
		if g.tick%2 == 0 {
			shakeX = 1
		} else {
			shakeY = 1
		}
	}
	px := func(x float64) int { return int(x/WorldW*float64(w)) + shakeX }
	py := func(y float64) int { return int(y/WorldH*float64(fieldH)) + fieldTop + shakeY }

	g.renderBricks(dst, px, py)
	g.renderLaser(dst, px, fieldTop, h)
	g.renderProjectiles(dst, px, py)
	g.renderPowerUps(dst, px, py)
	g.renderBalls(dst, px, py)
	g.renderPaddle(dst, px, py)
	if g.effects.Active(EffectBarrier, g.clock.Now()) {
		dst.DrawHLine(0, h-1, w, '─')
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderBricks(dst *core.Screen, px, py func(float64) int) {
	for _, br := range g.world.AliveBricks() {
		x0 := px(br.Rect.X)
		x1 := px(br.Rect.X + br.Rect.W)
		y := py(br.Rect.Y + br.Rect.H/2)
		r, color := brickGlyph(br)
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, r, color)
		}
	}
}

// brickGlyph picks the look of a brick. Mimics are indistinguishable from
// standard bricks until their dodge gives them away.
func brickGlyph(br *Brick) (rune, core.Color) {
	switch br.Type {
	case BrickDurable:
		switch br.Health {
		case 1:
			return '▒', core.ColorGray
		case 2:
			return '▓', core.ColorWhite
		default:
			return '█', core.ColorWhite
		}
	case BrickMimic:
		if br.Revealed {
			return '▞', core.ColorMagenta
		}
		return '█', core.ColorRed
	case BrickHealer:
		return '✚', core.ColorGreen
	case BrickSpore:
		return '▚', core.ColorYellow
	case BrickPortal:
		return '◎', core.ColorCyan
	case BrickTurret:
		switch br.Health {
		case 1:
			return '╥', core.ColorRed
		case 2:
			return '╥', core.ColorYellow
		default:
			return '╥', core.ColorOrange
		}
	default:
		return '█', core.ColorRed
	}
}

func (g *Game) renderLaser(dst *core.Screen, px func(float64) int, fieldTop, h int) {
	if g.laserFlash <= 0 {
		return
	}
	x0 := px(g.world.Paddle.X - g.cfg.PowerUps.LaserBandWidth/2)
	x1 := px(g.world.Paddle.X + g.cfg.PowerUps.LaserBandWidth/2)
	for y := fieldTop; y < h-1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, '░', core.ColorMagenta)
		}
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, px, py func(float64) int) {
	for _, pr := range g.world.Projectiles {
		r, c := '•', core.ColorYellow
		if pr.Owner == OwnerEnemy {
			r, c = '↓', core.ColorOrange
		}
		dst.SetColored(px(pr.X), py(pr.Y), r, c)
	}
}

func powerUpGlyph(t PowerUpType) (rune, core.Color) {
	switch t {
	case PowerHeart:
		return '♥', core.ColorRed
	case PowerEnlarge:
		return 'E', core.ColorGreen
	case PowerBarrier:
		return 'B', core.ColorCyan
	case PowerSticky:
		return 'S', core.ColorGreen
	case PowerMultiball:
		return 'M', core.ColorYellow
	case PowerArmor:
		return 'A', core.ColorBlue
	case PowerTurretBurst:
		return 'T', core.ColorYellow
	case PowerLightning:
		return 'Z', core.ColorMagenta
	case PowerCluster:
		return 'C', core.ColorMagenta
	case PowerLaser:
		return 'L', core.ColorMagenta
	default:
		return '?', core.ColorWhite
	}
}

func (g *Game) renderPowerUps(dst *core.Screen, px, py func(float64) int) {
	for _, pw := range g.world.PowerUps {
		r, c := powerUpGlyph(pw.Type)
		dst.SetColored(px(pw.X), py(pw.Y), r, c)
	}
}

func (g *Game) renderBalls(dst *core.Screen, px, py func(float64) int) {
	for _, b := range g.world.Balls {
		for i, pos := range b.Trail() {
			if i < 2 {
				continue // Skip positions still under the ball glyph
			}
			dst.SetColored(px(pos[0]), py(pos[1]), '·', core.ColorGray)
		}
		r := '●'
		c := core.ColorWhite
		if b.Speed() > g.ballSpeedBase*g.cfg.Physics.PierceThreshold {
			c = core.ColorOrange // Piercing
		}
		dst.SetColored(px(b.X), py(b.Y), r, c)
	}
}

func (g *Game) renderPaddle(dst *core.Screen, px, py func(float64) int) {
	p := &g.world.Paddle
	now := g.clock.Now()

	r := '═'
	c := core.ColorWhite
	switch {
	case p.Stunned(now):
		r, c = '≈', core.ColorGray
	case g.effects.Active(EffectSticky, now):
		r, c = '▀', core.ColorGreen
	case g.effects.Active(EffectLightning, now):
		r, c = '═', core.ColorMagenta
	case g.effects.Active(EffectCluster, now):
		r, c = '═', core.ColorYellow
	}

	x0 := px(p.X - p.Width/2)
	x1 := px(p.X + p.Width/2)
	y := py(p.Y)
	for x := x0; x <= x1; x++ {
		dst.SetColored(x, y, r, c)
	}
	if p.Armor {
		dst.SetColored(px(p.X), y, '◘', core.ColorBlue)
	}

	// Serve aim marker
	if g.anyRestingBall() {
		ax := px(p.X + p.AimOffset*p.Width/2)
		dst.SetColored(ax, y-1, '^', core.ColorCyan)
	}
}

func (g *Game) anyRestingBall() bool {
	for _, b := range g.world.Balls {
		if !b.Active {
			return true
		}
	}
	return false
}

func (g *Game) renderHUD(dst *core.Screen) {
	now := g.clock.Now()
	left := fmt.Sprintf(" SCORE %d  LIVES %d  LV %d", g.score, g.lives, g.levelIdx+1)
	if g.endless && g.cycle > 0 {
		left += fmt.Sprintf("  CYCLE %d", g.cycle+1)
	}
	if g.streak > 1 {
		left += fmt.Sprintf("  x%d", g.streak)
	}
	dst.DrawTextColored(0, 0, left, core.ColorWhite)

	badges := ""
	for _, k := range []EffectKind{EffectEnlarge, EffectBarrier, EffectSticky,
		EffectLightning, EffectCluster, EffectTurretBurst, EffectLaserCharge} {
		if rem := g.effects.Remaining(k, now); rem > 0 {
			badges += fmt.Sprintf(" %s:%.0fs", k.String(), rem)
		}
	}
	if badges != "" {
		dst.DrawTextColored(dst.Width()-len(badges)-1, 0, badges, core.ColorCyan)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	h := dst.Height()
	switch {
	case g.won:
		dst.DrawTextCenteredColored(h/2-1, "YOU WIN", core.ColorGreen)
		dst.DrawTextCenteredColored(h/2+1, fmt.Sprintf("Final score: %d", g.score), core.ColorWhite)
		dst.DrawTextCenteredColored(h/2+2, "Press R to play again", core.ColorGray)
	case g.over:
		dst.DrawTextCenteredColored(h/2-1, "GAME OVER", core.ColorRed)
		dst.DrawTextCenteredColored(h/2+1, fmt.Sprintf("Final score: %d", g.score), core.ColorWhite)
		dst.DrawTextCenteredColored(h/2+2, "Press R to restart", core.ColorGray)
	case g.paused:
		dst.DrawTextCenteredColored(h/2, "PAUSED", core.ColorYellow)
	case g.anyRestingBall() && g.serveDelay == 0:
		dst.DrawTextCenteredColored(h-3, "SPACE to launch, , . to aim", core.ColorGray)
	}
}
