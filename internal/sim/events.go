package sim

// Sink consumes fire-and-forget simulation notifications. Implementations
// (renderers, audio, particle systems, loggers) are write-only consumers:
// nothing they do feeds back into simulation state, and the simulation never
// blocks on them.
type Sink interface {
	Emit(ev Event)
}

// Event is a simulation notification. Fields returns alternating key/value
// pairs suitable for structured logging.
type Event interface {
	Name() string
	Fields() []any
}

// NopSink discards all events.
type NopSink struct{}

// Emit implements Sink.
func (NopSink) Emit(Event) {}

// BrickDestroyed fires when a brick's health reaches zero.
type BrickDestroyed struct {
	X, Y   float64
	Type   BrickType
	Points int
}

func (e BrickDestroyed) Name() string { return "brick_destroyed" }
func (e BrickDestroyed) Fields() []any {
	return []any{"x", e.X, "y", e.Y, "type", e.Type.String(), "points", e.Points}
}

// BrickDamaged fires when a brick takes damage without being destroyed.
type BrickDamaged struct {
	X, Y   float64
	Type   BrickType
	Health int
}

func (e BrickDamaged) Name() string { return "brick_damaged" }
func (e BrickDamaged) Fields() []any {
	return []any{"x", e.X, "y", e.Y, "type", e.Type.String(), "health", e.Health}
}

// PowerUpSpawned fires when a pickup starts falling.
type PowerUpSpawned struct {
	X, Y float64
	Type PowerUpType
}

func (e PowerUpSpawned) Name() string { return "powerup_spawned" }
func (e PowerUpSpawned) Fields() []any {
	return []any{"x", e.X, "y", e.Y, "type", e.Type.String()}
}

// PowerUpActivated fires when the paddle collects a pickup.
type PowerUpActivated struct {
	Type PowerUpType
}

func (e PowerUpActivated) Name() string  { return "powerup_activated" }
func (e PowerUpActivated) Fields() []any { return []any{"type", e.Type.String()} }

// PaddleHit fires on every ball-paddle bounce.
type PaddleHit struct {
	Offset float64 // Normalized hit position in [-1, 1]
	Speed  float64
}

func (e PaddleHit) Name() string  { return "paddle_hit" }
func (e PaddleHit) Fields() []any { return []any{"offset", e.Offset, "speed", e.Speed} }

// StunApplied fires when an enemy projectile stuns the paddle.
type StunApplied struct {
	Duration float64
}

func (e StunApplied) Name() string  { return "stun_applied" }
func (e StunApplied) Fields() []any { return []any{"duration", e.Duration} }

// ScreenShake fires when a pierce sets a shake magnitude.
type ScreenShake struct {
	Magnitude float64
}

func (e ScreenShake) Name() string  { return "screen_shake" }
func (e ScreenShake) Fields() []any { return []any{"magnitude", e.Magnitude} }

// BallTeleported fires when a portal relocates a ball.
type BallTeleported struct {
	X, Y float64
}

func (e BallTeleported) Name() string  { return "ball_teleported" }
func (e BallTeleported) Fields() []any { return []any{"x", e.X, "y", e.Y} }

// LaserFired fires when the delayed destroy-beam goes off.
type LaserFired struct {
	CenterX   float64
	Destroyed int
}

func (e LaserFired) Name() string  { return "laser_fired" }
func (e LaserFired) Fields() []any { return []any{"center_x", e.CenterX, "destroyed", e.Destroyed} }

// LifeLost fires on a soft reset.
type LifeLost struct {
	Remaining int
}

func (e LifeLost) Name() string  { return "life_lost" }
func (e LifeLost) Fields() []any { return []any{"remaining", e.Remaining} }

// LevelCleared fires when the last brick falls.
type LevelCleared struct {
	Level int
	Score int
}

func (e LevelCleared) Name() string  { return "level_cleared" }
func (e LevelCleared) Fields() []any { return []any{"level", e.Level, "score", e.Score} }

// PityArmed fires when the mercy heart counter starts.
type PityArmed struct {
	Target int
}

func (e PityArmed) Name() string  { return "pity_armed" }
func (e PityArmed) Fields() []any { return []any{"target", e.Target} }

// PityFulfilled fires when the guaranteed heart spawns.
type PityFulfilled struct {
	X, Y float64
}

func (e PityFulfilled) Name() string  { return "pity_fulfilled" }
func (e PityFulfilled) Fields() []any { return []any{"x", e.X, "y", e.Y} }
