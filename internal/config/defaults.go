package config

import (
	_ "embed"
)

//go:embed defaults/brickstorm.yaml
var defaultBrickstormYAML []byte

// DefaultBrickstormConfig returns the hardcoded default configuration,
// used as a last resort when the embedded YAML cannot be parsed.
func DefaultBrickstormConfig() BrickstormConfig {
	return BrickstormConfig{
		Physics: PhysicsConfig{
			BallSpeed:       4.0,
			MinBallSpeed:    2.0,
			MaxBallSpeed:    14.0,
			BallRadius:      1.5,
			SpeedUpFactor:   1.05,
			SpinCoeff:       0.04,
			SpinDecay:       0.985,
			SpinTransfer:    0.35,
			OffsetInfluence: 0.08,
			PierceThreshold: 1.5,
			PierceDrag:      0.85,
			MaxBounceDeg:    60,
			MicroDriftSpeed: 0.35,
		},
		Paddle: PaddleConfig{
			Width:         24,
			EnlargedWidth: 36,
			Height:        3,
			Speed:         2.2,
			DashSpeed:     9.0,
			DashDuration:  0.12,
			DashCooldown:  1.5,
			StunDuration:  1.0,
		},
		Gameplay: GameplayConfig{
			Lives:    3,
			MaxBalls: 5,
		},
		PowerUps: PowerUpConfig{
			Chance:       0.18,
			FallSpeed:    0.9,
			TierCommon:   60,
			TierUncommon: 30,
			TierRare:     10,

			EnlargeDuration:     12,
			BarrierDuration:     10,
			StickyDuration:      10,
			LightningDuration:   8,
			ClusterDuration:     8,
			TurretBurstDuration: 6,

			LaserDelay:      1.5,
			LaserBandWidth:  20,
			LightningRadius: 30,
			LightningChains: 3,
			ClusterMin:      3,
			ClusterMax:      5,
			BurstInterval:   0.4,
			ShotSpeed:       2.4,
		},
		Bricks: BrickConfig{
			HealerInterval:  5,
			SporeInterval:   4,
			TurretInterval:  3,
			TurretShotSpeed: 1.2,
			MimicRadius:     18,
		},
		Pity: PityConfig{
			MinHits: 6,
			MaxHits: 12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
				PaddleShrink:    4,
				EndlessSpeedUp:  0.3,
			},
		},
	}
}
