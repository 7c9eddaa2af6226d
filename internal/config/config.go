// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// BrickstormConfig contains all tunables for the simulation.
type BrickstormConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Bricks     BrickConfig      `yaml:"bricks"`
	Pity       PityConfig       `yaml:"pity"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines ball movement parameters.
// Speeds are world units per tick at 60 ticks per second.
type PhysicsConfig struct {
	BallSpeed       float64 `yaml:"ball_speed"`        // Base launch speed
	MinBallSpeed    float64 `yaml:"min_ball_speed"`    // Floor for paddle bounces
	MaxBallSpeed    float64 `yaml:"max_ball_speed"`    // Engine speed cap
	BallRadius      float64 `yaml:"ball_radius"`       // Collision radius
	SpeedUpFactor   float64 `yaml:"speed_up_factor"`   // Multiplier per paddle bounce
	SpinCoeff       float64 `yaml:"spin_coeff"`        // Magnus curve strength
	SpinDecay       float64 `yaml:"spin_decay"`        // Per-tick spin attenuation
	SpinTransfer    float64 `yaml:"spin_transfer"`     // Paddle velocity to spin
	OffsetInfluence float64 `yaml:"offset_influence"`  // Paddle velocity to bounce offset
	PierceThreshold float64 `yaml:"pierce_threshold"`  // Speed factor over base that pierces
	PierceDrag      float64 `yaml:"pierce_drag"`       // Velocity multiplier per pierce
	MaxBounceDeg    float64 `yaml:"max_bounce_deg"`    // Max paddle bounce angle from vertical
	MicroDriftSpeed float64 `yaml:"micro_drift_speed"` // Horizontal nudge for vertical loops
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width         float64 `yaml:"width"`
	EnlargedWidth float64 `yaml:"enlarged_width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`         // Units per tick
	DashSpeed     float64 `yaml:"dash_speed"`    // Units per tick while dashing
	DashDuration  float64 `yaml:"dash_duration"` // Seconds
	DashCooldown  float64 `yaml:"dash_cooldown"` // Seconds
	StunDuration  float64 `yaml:"stun_duration"` // Seconds
}

// GameplayConfig defines lives and entity caps.
type GameplayConfig struct {
	Lives    int `yaml:"lives"`
	MaxBalls int `yaml:"max_balls"`
}

// PowerUpConfig defines drop odds, effect durations (seconds) and effect
// geometry. Tier weights follow the 60/30/10 common/uncommon/rare split.
type PowerUpConfig struct {
	Chance       float64 `yaml:"chance"` // Drop probability per destroyed brick
	FallSpeed    float64 `yaml:"fall_speed"`
	TierCommon   int     `yaml:"tier_common"`
	TierUncommon int     `yaml:"tier_uncommon"`
	TierRare     int     `yaml:"tier_rare"`

	EnlargeDuration     float64 `yaml:"enlarge_duration"`
	BarrierDuration     float64 `yaml:"barrier_duration"`
	StickyDuration      float64 `yaml:"sticky_duration"`
	LightningDuration   float64 `yaml:"lightning_duration"`
	ClusterDuration     float64 `yaml:"cluster_duration"`
	TurretBurstDuration float64 `yaml:"turret_burst_duration"`

	LaserDelay      float64 `yaml:"laser_delay"`      // Seconds from pickup to beam
	LaserBandWidth  float64 `yaml:"laser_band_width"` // Beam width in world units
	LightningRadius float64 `yaml:"lightning_radius"` // Chain search radius
	LightningChains int     `yaml:"lightning_chains"` // Bricks chained per trigger
	ClusterMin      int     `yaml:"cluster_min"`      // Shrapnel per burst, lower bound
	ClusterMax      int     `yaml:"cluster_max"`      // Shrapnel per burst, upper bound
	BurstInterval   float64 `yaml:"burst_interval"`   // Seconds between paddle pellets
	ShotSpeed       float64 `yaml:"shot_speed"`       // Player projectile speed, units per tick
}

// BrickConfig defines living-brick behavior intervals (seconds) and ranges.
type BrickConfig struct {
	HealerInterval  float64 `yaml:"healer_interval"`
	SporeInterval   float64 `yaml:"spore_interval"`
	TurretInterval  float64 `yaml:"turret_interval"`
	TurretShotSpeed float64 `yaml:"turret_shot_speed"` // Units per tick, downward
	MimicRadius     float64 `yaml:"mimic_radius"`      // Proximity trigger distance
}

// PityConfig bounds the random hit-count target for the guaranteed heart.
type PityConfig struct {
	MinHits int `yaml:"min_hits"`
	MaxHits int `yaml:"max_hits"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Ball speed gain at max difficulty
	PaddleShrink    float64 `yaml:"paddle_shrink"`    // Paddle width loss at max difficulty
	EndlessSpeedUp  float64 `yaml:"endless_speed_up"` // Flat speed gain per endless cycle
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
