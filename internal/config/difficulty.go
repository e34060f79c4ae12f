package config

// ApplyGalagaPreset modifies the config based on a difficulty preset.
// The normal preset and the empty preset leave the config untouched.
func ApplyGalagaPreset(cfg *GalagaConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.BaseSpeed = 1.5
		cfg.Enemies.DiveBase = 0.00012
		cfg.Enemies.ShooterCooldown = 160
		cfg.Player.FireCooldown = 10
		cfg.PowerUps.DropChance = 0.12
	case DifficultyHard:
		cfg.Enemies.BaseSpeed = 2.5
		cfg.Enemies.DiveBase = 0.0003
		cfg.Enemies.ShooterCooldown = 90
		cfg.Enemies.ShooterBulletSpeed = 5
		cfg.PowerUps.DropChance = 0.05
	case DifficultyFixed:
		// No speed progression between levels
		cfg.Enemies.SpeedStep = 0
		cfg.Enemies.DivePerLevel = 0
	}

	if cfg.Enemies.MaxSpeed < cfg.Enemies.BaseSpeed {
		cfg.Enemies.MaxSpeed = cfg.Enemies.BaseSpeed
	}
}
