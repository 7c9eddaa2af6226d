package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := LoadBrickstorm("")
	if err != nil {
		t.Fatalf("LoadBrickstorm(\"\") failed: %v", err)
	}
	if cfg.Physics.MaxBallSpeed != 14 {
		t.Errorf("MaxBallSpeed = %v, want 14", cfg.Physics.MaxBallSpeed)
	}
	if cfg.Gameplay.MaxBalls <= 0 {
		t.Error("MaxBalls should be positive")
	}
	if cfg.Pity.MinHits > cfg.Pity.MaxHits {
		t.Error("pity min_hits should not exceed max_hits")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	loaded, err := LoadBrickstorm("")
	if err != nil {
		t.Fatal(err)
	}
	hard := DefaultBrickstormConfig()

	if loaded.Physics != hard.Physics {
		t.Errorf("embedded physics %+v differs from hardcoded %+v", loaded.Physics, hard.Physics)
	}
	if loaded.PowerUps != hard.PowerUps {
		t.Errorf("embedded powerups differ from hardcoded")
	}
	if loaded.Pity != hard.Pity {
		t.Errorf("embedded pity differs from hardcoded")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\n  max_balls: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBrickstorm(path)
	if err != nil {
		t.Fatalf("LoadBrickstorm(custom) failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 || cfg.Gameplay.MaxBalls != 2 {
		t.Errorf("custom config not applied: %+v", cfg.Gameplay)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := LoadBrickstorm("/nonexistent/path.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultBrickstormConfig()

	ApplyBrickstormPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}

	ApplyBrickstormPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := mgr.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v, want 0", got)
	}
	if got := mgr.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50) = %v, want 0.5", got)
	}
	if got := mgr.Level(500, 0); got != 1.0 {
		t.Errorf("Level(500) = %v, want 1.0 (clamped)", got)
	}
}

func TestDifficultyManagerBallSpeed(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5, EndlessSpeedUp: 0.25},
	})

	// At max difficulty: 4 * 1.5 = 6, plus two endless cycles at 0.25 each
	if got := mgr.BallSpeed(4, 100, 0, 2); got != 6.5 {
		t.Errorf("BallSpeed = %v, want 6.5", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})
	if got := mgr.Level(1000, 1000); got != 0.4 {
		t.Errorf("disabled manager Level = %v, want initial 0.4", got)
	}
}
