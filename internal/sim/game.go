// Package sim implements the brickstorm simulation: a fixed-tick brick
// breaker with autonomous brick behaviors, stacking timed power-ups and
// momentum-driven ball physics. The package is pure game logic; platforms
// drive it through the registry.Game interface.
package sim

import (
	"math"

	"github.com/vmatyush/brickstorm/internal/config"
	"github.com/vmatyush/brickstorm/internal/core"
	"github.com/vmatyush/brickstorm/internal/level"
	"github.com/vmatyush/brickstorm/internal/registry"
)

func init() {
	registry.Register("brickstorm", func() registry.Game { return NewGame(false) })
	registry.Register("brickstorm_endless", func() registry.Game { return NewGame(true) })
}

// Package-level knobs the CLI sets before instantiating a game through the
// registry, which only knows zero-argument factories.
var (
	configPath string
	preset     config.DifficultyPreset = config.DifficultyNormal
	startLevel int
)

// SetConfigPath points game creation at a custom YAML config.
func SetConfigPath(path string) { configPath = path }

// SetDifficultyPreset selects the difficulty applied to new games.
func SetDifficultyPreset(p config.DifficultyPreset) { preset = p }

// SetStartLevel selects the campaign level new games begin on.
func SetStartLevel(idx int) { startLevel = idx }

// World grid capacity. Levels smaller than this are anchored top-left.
const (
	gridRows = 10
	gridCols = 20

	serveDelayTicks = 60
	aimStep         = 0.08
	shakeDecay      = 0.85
)

// Game is one brickstorm session: campaign or endless.
type Game struct {
	cfg  config.BrickstormConfig
	rt   core.RuntimeConfig
	diff *config.DifficultyManager

	rng   *RNG
	clock *core.Clock
	world *World

	effects EffectSet
	sched   schedule
	sink    Sink

	endless  bool
	levelIdx int
	cycle    int

	score  int
	lives  int
	streak int

	pity       pityState
	pityTarget int
	pityHits   int
	pityClaim  bool
	pityWait   bool
	pityDone   bool // Mercy wait resolved this tick; level completes after the sweep

	serveDelay    int
	ballSpeedBase float64
	paddleVX      float64
	nextBurstShot float64

	shake      float64
	laserFlash int

	tick   int
	paused bool
	over   bool
	won    bool
}

// NewGame creates an unstarted game. Reset must be called before Step.
func NewGame(endless bool) *Game {
	cfg, err := config.LoadBrickstorm(configPath)
	if err != nil {
		cfg = config.DefaultBrickstormConfig()
	}
	config.ApplyBrickstormPreset(&cfg, preset)
	return &Game{
		cfg:     cfg,
		diff:    config.NewDifficultyManager(cfg.Difficulty),
		clock:   core.NewClock(),
		sink:    NopSink{},
		endless: endless,
	}
}

// SetSink attaches an event consumer. Pass nil to silence events.
func (g *Game) SetSink(s Sink) {
	if s == nil {
		s = NopSink{}
	}
	g.sink = s
}

// ID implements registry.Game.
func (g *Game) ID() string {
	if g.endless {
		return "brickstorm_endless"
	}
	return "brickstorm"
}

// Title implements registry.Game.
func (g *Game) Title() string {
	if g.endless {
		return "Brickstorm Endless"
	}
	return "Brickstorm"
}

// Reset starts a fresh game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = NewRNG(rt.Seed)
	g.clock.Reset()

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.streak = 0
	g.tick = 0
	g.cycle = 0
	g.levelIdx = startLevel
	g.paused = false
	g.over = false
	g.won = false

	g.pity = pityInactive
	g.pityTarget = 0
	g.pityHits = 0
	g.pityClaim = false
	g.pityWait = false
	g.pityDone = false

	g.effects.ClearAll()
	g.sched.clear()
	g.shake = 0
	g.laserFlash = 0
	g.nextBurstShot = 0
	g.ballSpeedBase = g.cfg.Physics.BallSpeed

	g.world = NewWorld(gridRows, gridCols, g.cfg.Gameplay.MaxBalls)
	g.world.ResetPaddle(&g.cfg.Paddle, g.basePaddleWidth())
	g.loadLevel()
}

// loadLevel populates the brick grid for the current level index and sets up
// a serve. Score, lives, effects and pity state carry across levels.
func (g *Game) loadLevel() {
	var lvl *level.Level
	if g.endless {
		lvl = level.GetWrapped(g.levelIdx)
	} else {
		lvl = level.Get(g.levelIdx)
	}
	g.world.Populate(lvl)
	g.initBrickTimers()
	g.prepareServe()
}

// prepareServe clears transient entities and places exactly one resting ball.
func (g *Game) prepareServe() {
	g.world.PowerUps = nil
	g.world.Projectiles = nil
	g.world.Balls = nil
	g.sched.clear()
	g.effects.Clear(EffectLaserCharge)
	g.streak = 0
	g.shake = 0
	g.laserFlash = 0
	g.serveDelay = serveDelayTicks

	p := &g.world.Paddle
	p.X = WorldW / 2
	p.StunnedUntil = 0
	p.AimOffset = 0

	b := &Ball{
		Radius:    g.cfg.Physics.BallRadius,
		LastBrick: -1,
	}
	g.world.AddBall(b)
	g.followPaddle(b)
}

// Step implements registry.Game. The tick order is fixed: input, brick
// behavior, ball physics, delayed and continuous power-up effects,
// lifecycle, then ephemeral decay and the dead-brick sweep.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.over || g.won {
		if in.Has(core.ActionRestart) {
			g.Reset(g.rt)
		}
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.clock.Advance(1.0 / float64(max(g.rt.TickRate, 1)))
	g.ballSpeedBase = g.diff.BallSpeed(g.cfg.Physics.BallSpeed, g.score, g.tick, g.cycle)

	g.handleInput(in)
	g.stepBricks()
	g.stepBalls()

	for _, ev := range g.sched.due(g.clock.Now()) {
		if ev.kind == schedLaser {
			g.fireLaser()
		}
	}
	g.stepTurretBurst()
	g.stepProjectiles()
	g.stepPowerUps()
	g.expireEffects()

	g.armPity()
	if g.pityDone {
		g.pityDone = false
		g.completeLevel()
	}
	g.checkLevelClear()

	g.shake *= shakeDecay
	if g.shake < 0.1 {
		g.shake = 0
	}
	if g.laserFlash > 0 {
		g.laserFlash--
	}
	if g.serveDelay > 0 {
		g.serveDelay--
	}
	g.world.RemoveDead()

	return core.StepResult{State: g.State()}
}

// handleInput moves the paddle, starts dashes, adjusts serve aim and
// launches resting balls. A stunned paddle ignores everything but aim.
func (g *Game) handleInput(in core.InputFrame) {
	p := &g.world.Paddle
	now := g.clock.Now()
	pc := &g.cfg.Paddle

	if in.Has(core.ActionAimLeft) {
		p.AimOffset = core.ClampF(p.AimOffset-aimStep, -1, 1)
	}
	if in.Has(core.ActionAimRight) {
		p.AimOffset = core.ClampF(p.AimOffset+aimStep, -1, 1)
	}

	if p.Stunned(now) {
		g.paddleVX = 0
		return
	}

	if now >= p.DashCooldown {
		if in.Has(core.ActionDashLeft) {
			p.DashDir = -1
			p.DashUntil = now + pc.DashDuration
			p.DashCooldown = p.DashUntil + pc.DashCooldown
		} else if in.Has(core.ActionDashRight) {
			p.DashDir = 1
			p.DashUntil = now + pc.DashDuration
			p.DashCooldown = p.DashUntil + pc.DashCooldown
		}
	}

	vx := 0.0
	if p.Dashing(now) {
		vx = p.DashDir * pc.DashSpeed
	} else if in.Has(core.ActionLeft) {
		vx = -p.Speed
	} else if in.Has(core.ActionRight) {
		vx = p.Speed
	}
	p.X += vx
	g.world.ClampPaddle()
	g.paddleVX = vx

	if in.Has(core.ActionLaunch) && g.serveDelay == 0 {
		for _, b := range g.world.Balls {
			if !b.Active {
				g.launchBall(b)
			}
		}
	}
}

// launchBall serves a resting ball along the aimed direction.
func (g *Game) launchBall(b *Ball) {
	angle := g.world.Paddle.AimOffset * g.cfg.Physics.MaxBounceDeg * math.Pi / 180
	speed := g.ballSpeedBase
	b.DX = speed * math.Sin(angle)
	b.DY = -speed * math.Cos(angle)
	b.Spin = 0
	b.Active = true
	b.LastBrick = -1
}

// basePaddleWidth is the difficulty-scaled width without the enlarge effect.
func (g *Game) basePaddleWidth() float64 {
	return g.diff.PaddleWidth(g.cfg.Paddle.Width, g.score, g.tick)
}

// onAllBallsLost handles the last ball leaving the field: a pending mercy
// wait resolves the level, otherwise a life is spent.
func (g *Game) onAllBallsLost() {
	if g.over || g.won {
		return
	}
	if g.pityWait {
		g.resolvePityWait()
		return
	}
	g.lives--
	g.sink.Emit(LifeLost{Remaining: g.lives})
	g.streak = 0
	if g.lives <= 0 {
		g.lives = 0
		g.over = true
		return
	}
	g.armPity()
	g.prepareServe()
}

// checkLevelClear fires when the last brick falls. With the mercy counter
// armed, the win is held back: a heart spawns over the field and the level
// only completes once the heart is collected, lost off the floor, or the
// last ball drops.
func (g *Game) checkLevelClear() {
	if g.over || g.won || g.pityWait {
		return
	}
	if g.world.AliveCount() > 0 {
		return
	}
	if g.pity == pityArmed {
		g.pityWait = true
		cx := WorldW / 2
		cy := brickAreaTop + float64(gridRows)*brickH/2
		g.spawnPowerUp(cx, cy, PowerHeart).Mercy = true
		g.fulfillPity(cx, cy)
		return
	}
	// The last brick's own destruction can deliver the guaranteed heart;
	// it is still airborne here, so the win waits for it too.
	if g.mercyHeartOnField() {
		g.pityWait = true
		return
	}
	g.completeLevel()
}

// resolvePityWait defers level completion to a safe point in Step, since it
// can fire while entity slices are being compacted.
func (g *Game) resolvePityWait() {
	if !g.pityWait {
		return
	}
	g.pityWait = false
	g.pityDone = true
}

func (g *Game) completeLevel() {
	g.sink.Emit(LevelCleared{Level: g.levelIdx, Score: g.score})
	g.levelIdx++
	if g.endless {
		g.cycle = g.levelIdx / level.Count()
	} else if g.levelIdx >= level.Count() {
		g.won = true
		return
	}
	g.loadLevel()
}

// State implements registry.Game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.over || g.won,
		Paused:   g.paused,
	}
}

// Won reports whether the session ended in victory.
func (g *Game) Won() bool { return g.won }

// Lives returns remaining lives.
func (g *Game) Lives() int { return g.lives }

// Level returns the current level index (cycling in endless mode).
func (g *Game) Level() int { return g.levelIdx }

// Ticks returns the number of simulation ticks elapsed since Reset.
func (g *Game) Ticks() int { return g.tick }
