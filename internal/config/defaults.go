package config

import (
	_ "embed"
)

//go:embed defaults/galaga.yaml
var defaultGalagaYAML []byte

// DefaultGalagaConfig returns the hardcoded default configuration.
// It must match defaults/galaga.yaml.
func DefaultGalagaConfig() GalagaConfig {
	return GalagaConfig{
		Player: PlayerConfig{
			Speed:                5,
			FireCooldown:         12,
			RapidCooldown:        5,
			BulletSpeed:          10,
			HitboxInset:          8,
			RespawnInvincibility: 120,
			ShieldInvincibility:  60,
		},
		Enemies: EnemyConfig{
			BaseSpeed:          2,
			SpeedStep:          0.5,
			MaxSpeed:           5,
			StepDown:           10,
			DiveBase:           0.0002,
			DivePerLevel:       0.0001,
			DiveSpeed:          3,
			ShooterCooldown:    120,
			ShooterBulletSpeed: 4,
		},
		Boss: BossConfig{
			HP:           80,
			KillBonus:    5000,
			SettleTicks:  60,
			VictoryDelay: 120,
			BulletSpeed:  5,
		},
		PowerUps: PowerUpConfig{
			DropChance:     0.08,
			RapidFireTicks: 600,
			FreezeTicks:    300,
			FreezeFactor:   0.3,
		},
		Scoring: ScoringConfig{
			MaxLives:       3,
			ExtraLifeAt:    15000,
			ExtraLifeStep:  15000,
			ExtraLifeBonus: 5000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGalagaYAML
}
