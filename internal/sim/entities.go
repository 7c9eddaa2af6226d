package sim

import (
	"math"

	"github.com/vmatyush/brickstorm/internal/core"
)

// BrickType classifies brick behavior.
type BrickType int

const (
	BrickStandard BrickType = iota
	BrickDurable
	BrickMimic
	BrickHealer
	BrickSpore
	BrickPortal
	BrickTurret
)

func (t BrickType) String() string {
	switch t {
	case BrickStandard:
		return "standard"
	case BrickDurable:
		return "durable"
	case BrickMimic:
		return "mimic"
	case BrickHealer:
		return "healer"
	case BrickSpore:
		return "spore"
	case BrickPortal:
		return "portal"
	case BrickTurret:
		return "turret"
	default:
		return "unknown"
	}
}

// PowerUpType identifies a collectible pickup.
type PowerUpType int

const (
	PowerHeart PowerUpType = iota
	PowerEnlarge
	PowerBarrier
	PowerSticky
	PowerMultiball
	PowerArmor
	PowerTurretBurst
	PowerLightning
	PowerCluster
	PowerLaser
	powerUpCount
)

func (t PowerUpType) String() string {
	switch t {
	case PowerHeart:
		return "heart"
	case PowerEnlarge:
		return "enlarge"
	case PowerBarrier:
		return "barrier"
	case PowerSticky:
		return "sticky"
	case PowerMultiball:
		return "multiball"
	case PowerArmor:
		return "armor"
	case PowerTurretBurst:
		return "turret_burst"
	case PowerLightning:
		return "lightning"
	case PowerCluster:
		return "cluster"
	case PowerLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// Tier groups pickups by rarity. Higher tiers unlock with level progression.
func (t PowerUpType) Tier() int {
	switch t {
	case PowerMultiball, PowerArmor, PowerTurretBurst:
		return 1
	case PowerLightning, PowerCluster, PowerLaser:
		return 2
	default:
		return 0
	}
}

// EffectKind identifies a timed paddle/ball modifier.
type EffectKind int

const (
	EffectEnlarge EffectKind = iota
	EffectBarrier
	EffectSticky
	EffectLightning
	EffectCluster
	EffectTurretBurst
	EffectLaserCharge // display only, cleared when the beam fires
	effectKindCount
)

func (k EffectKind) String() string {
	switch k {
	case EffectEnlarge:
		return "enlarge"
	case EffectBarrier:
		return "barrier"
	case EffectSticky:
		return "sticky"
	case EffectLightning:
		return "lightning"
	case EffectCluster:
		return "cluster"
	case EffectTurretBurst:
		return "turret_burst"
	case EffectLaserCharge:
		return "laser_charge"
	default:
		return "unknown"
	}
}

const trailLen = 6

// Ball is a moving or resting ball. Resting balls ride the paddle at
// StuckOffset until launched.
type Ball struct {
	X, Y      float64
	DX, DY    float64 // Units per second
	Radius    float64
	Active    bool // In flight; resting balls follow the paddle
	Spin      float64
	StuckOff  float64 // Offset from paddle center while resting
	LastBrick int     // Grid key of the last brick pierced, -1 when none

	// Trail ring buffer of recent positions, newest at (trailHead-1).
	trailX, trailY [trailLen]float64
	trailHead      int
	trailCount     int
}

// Speed returns the ball's scalar velocity.
func (b *Ball) Speed() float64 {
	return hypot(b.DX, b.DY)
}

// PushTrail records the current position for after-image rendering.
func (b *Ball) PushTrail() {
	b.trailX[b.trailHead] = b.X
	b.trailY[b.trailHead] = b.Y
	b.trailHead = (b.trailHead + 1) % trailLen
	if b.trailCount < trailLen {
		b.trailCount++
	}
}

// Trail returns recorded positions, newest first.
func (b *Ball) Trail() [][2]float64 {
	out := make([][2]float64, 0, b.trailCount)
	for i := 1; i <= b.trailCount; i++ {
		idx := (b.trailHead - i + trailLen) % trailLen
		out = append(out, [2]float64{b.trailX[idx], b.trailY[idx]})
	}
	return out
}

// ClearTrail drops all recorded positions.
func (b *Ball) ClearTrail() {
	b.trailHead = 0
	b.trailCount = 0
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() core.RectF {
	return core.RectF{X: b.X - b.Radius, Y: b.Y - b.Radius, W: b.Radius * 2, H: b.Radius * 2}
}

// Paddle is the player-controlled bat.
type Paddle struct {
	X, Y   float64 // Center position
	Width  float64
	Height float64
	Speed  float64

	AimOffset float64 // Serve aim in [-1, 1]

	DashUntil    float64 // Clock time the current dash ends
	DashCooldown float64 // Clock time the next dash unlocks
	DashDir      float64

	StunnedUntil float64
	Armor        bool // Absorbs the next stun
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.RectF {
	return core.RectF{X: p.X - p.Width/2, Y: p.Y - p.Height/2, W: p.Width, H: p.Height}
}

// Dashing reports whether a dash is in progress at clock time now.
func (p *Paddle) Dashing(now float64) bool { return now < p.DashUntil }

// Stunned reports whether input is locked at clock time now.
func (p *Paddle) Stunned(now float64) bool { return now < p.StunnedUntil }

// Brick is a grid-anchored destructible. Row/Col index the brick grid;
// Rect is the world-space footprint.
type Brick struct {
	Row, Col  int
	Rect      core.RectF
	Type      BrickType
	Health    int
	MaxHealth int
	Value     int
	Alive     bool

	NextAction float64 // Clock time of the next behavior trigger
	Revealed   bool    // Mimic only: dodge already spent
}

// Damage applies dmg and reports whether the brick died. Health never
// drops below zero.
func (b *Brick) Damage(dmg int) bool {
	if !b.Alive {
		return false
	}
	b.Health -= dmg
	if b.Health <= 0 {
		b.Health = 0
		b.Alive = false
		return true
	}
	return false
}

// Heal restores hp capped at MaxHealth.
func (b *Brick) Heal(hp int) {
	b.Health += hp
	if b.Health > b.MaxHealth {
		b.Health = b.MaxHealth
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	X, Y  float64
	Type  PowerUpType
	Mercy bool // Guaranteed pity heart; holds the win while airborne
}

// ProjectileOwner distinguishes friendly from hostile shots.
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

// Projectile is a small moving shot: turret fire, shrapnel, burst rounds.
type Projectile struct {
	X, Y   float64
	DX, DY float64
	Owner  ProjectileOwner
}

func hypot(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}
