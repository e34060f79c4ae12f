// Package config provides YAML-based game configuration loading, difficulty
// presets and environment overrides for the galaga platform.
package config

import (
	"errors"
	"fmt"
)

// GalagaConfig contains every tunable of the simulation.
type GalagaConfig struct {
	Player   PlayerConfig  `yaml:"player"`
	Enemies  EnemyConfig   `yaml:"enemies"`
	Boss     BossConfig    `yaml:"boss"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Scoring  ScoringConfig `yaml:"scoring"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed                float64 `yaml:"speed"`
	FireCooldown         int     `yaml:"fire_cooldown"`  // Ticks between shots
	RapidCooldown        int     `yaml:"rapid_cooldown"` // Ticks between shots under rapid-fire
	BulletSpeed          float64 `yaml:"bullet_speed"`
	HitboxInset          float64 `yaml:"hitbox_inset"`
	RespawnInvincibility int     `yaml:"respawn_invincibility"`
	ShieldInvincibility  int     `yaml:"shield_invincibility"`
}

// EnemyConfig defines formation and dive behavior.
type EnemyConfig struct {
	BaseSpeed          float64 `yaml:"base_speed"`
	SpeedStep          float64 `yaml:"speed_step"` // Added per level advance
	MaxSpeed           float64 `yaml:"max_speed"`
	StepDown           float64 `yaml:"step_down"` // Formation drop on wall bounce
	DiveBase           float64 `yaml:"dive_base"`
	DivePerLevel       float64 `yaml:"dive_per_level"`
	DiveSpeed          float64 `yaml:"dive_speed"`
	ShooterCooldown    int     `yaml:"shooter_cooldown"`
	ShooterBulletSpeed float64 `yaml:"shooter_bullet_speed"`
}

// BossConfig defines the final boss.
type BossConfig struct {
	HP           int     `yaml:"hp"`
	KillBonus    int     `yaml:"kill_bonus"`
	SettleTicks  int     `yaml:"settle_ticks"`  // Ticks the wreck stays visible
	VictoryDelay int     `yaml:"victory_delay"` // Ticks from death to VICTORY
	BulletSpeed  float64 `yaml:"bullet_speed"`
}

// PowerUpConfig defines drops and buff durations.
type PowerUpConfig struct {
	DropChance     float64 `yaml:"drop_chance"` // 0..1 per kill
	RapidFireTicks int     `yaml:"rapid_fire_ticks"`
	FreezeTicks    int     `yaml:"freeze_ticks"`
	FreezeFactor   float64 `yaml:"freeze_factor"` // Velocity multiplier while frozen
}

// ScoringConfig defines lives and extra-life rules.
type ScoringConfig struct {
	MaxLives       int `yaml:"max_lives"`
	ExtraLifeAt    int `yaml:"extra_life_at"`
	ExtraLifeStep  int `yaml:"extra_life_step"`
	ExtraLifeBonus int `yaml:"extra_life_bonus"` // Awarded instead of a life at the cap
}

// Validate rejects configurations the simulation cannot run with.
func (c GalagaConfig) Validate() error {
	var errs []error
	if c.Player.Speed <= 0 {
		errs = append(errs, errors.New("player.speed must be positive"))
	}
	if c.Player.FireCooldown <= 0 || c.Player.RapidCooldown <= 0 {
		errs = append(errs, errors.New("player cooldowns must be positive"))
	}
	if c.Player.BulletSpeed <= 0 {
		errs = append(errs, errors.New("player.bullet_speed must be positive"))
	}
	if c.Enemies.BaseSpeed <= 0 || c.Enemies.MaxSpeed < c.Enemies.BaseSpeed {
		errs = append(errs, errors.New("enemies.base_speed must be positive and not above max_speed"))
	}
	if c.Enemies.SpeedStep < 0 {
		errs = append(errs, errors.New("enemies.speed_step must not be negative"))
	}
	if c.Boss.HP <= 0 {
		errs = append(errs, errors.New("boss.hp must be positive"))
	}
	if c.Boss.VictoryDelay < c.Boss.SettleTicks {
		errs = append(errs, errors.New("boss.victory_delay must not be shorter than settle_ticks"))
	}
	if c.PowerUps.FreezeFactor <= 0 || c.PowerUps.FreezeFactor > 1 {
		errs = append(errs, errors.New("powerups.freeze_factor must be in (0, 1]"))
	}
	if c.PowerUps.DropChance < 0 || c.PowerUps.DropChance > 1 {
		errs = append(errs, errors.New("powerups.drop_chance must be in [0, 1]"))
	}
	if c.Scoring.MaxLives <= 0 || c.Scoring.ExtraLifeStep <= 0 {
		errs = append(errs, errors.New("scoring.max_lives and extra_life_step must be positive"))
	}
	if c.Scoring.ExtraLifeBonus < 0 || c.Scoring.ExtraLifeBonus >= c.Scoring.ExtraLifeStep {
		errs = append(errs, errors.New("scoring.extra_life_bonus must be below extra_life_step"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid galaga config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
