package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadGalaga("")
	if err != nil {
		t.Fatalf("LoadGalaga() failed: %v", err)
	}
	if cfg != DefaultGalagaConfig() {
		t.Errorf("embedded defaults differ from DefaultGalagaConfig():\n%+v\n%+v", cfg, DefaultGalagaConfig())
	}
}

func TestLoadGalagaCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "boss:\n  hp: 120\nplayer:\n  speed: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGalaga(path)
	if err != nil {
		t.Fatalf("LoadGalaga() failed: %v", err)
	}
	if cfg.Boss.HP != 120 {
		t.Errorf("Boss.HP = %d, expected 120", cfg.Boss.HP)
	}
	if cfg.Player.Speed != 7 {
		t.Errorf("Player.Speed = %v, expected 7", cfg.Player.Speed)
	}
	// Untouched keys keep their defaults
	if cfg.Scoring.ExtraLifeAt != 15000 {
		t.Errorf("Scoring.ExtraLifeAt = %d, expected default 15000", cfg.Scoring.ExtraLifeAt)
	}
}

func TestLoadGalagaErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadGalaga(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGalaga(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("boss:\n  hp: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadGalaga(invalid)
	if err == nil || !strings.Contains(err.Error(), "boss.hp") {
		t.Errorf("expected validation error naming boss.hp, got %v", err)
	}
}

func TestLoadGalagaLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "galaga.yaml"), []byte("scoring:\n  extra_life_at: 20000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGalaga("")
	if err != nil {
		t.Fatalf("LoadGalaga() failed: %v", err)
	}
	if cfg.Scoring.ExtraLifeAt != 20000 {
		t.Errorf("ExtraLifeAt = %d, expected 20000 from ./configs", cfg.Scoring.ExtraLifeAt)
	}
}

func TestApplyGalagaPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		check  func(t *testing.T, cfg GalagaConfig)
	}{
		{DifficultyEasy, func(t *testing.T, cfg GalagaConfig) {
			if cfg.Enemies.BaseSpeed >= DefaultGalagaConfig().Enemies.BaseSpeed {
				t.Error("easy should slow the formation")
			}
		}},
		{DifficultyHard, func(t *testing.T, cfg GalagaConfig) {
			if cfg.Enemies.DiveBase <= DefaultGalagaConfig().Enemies.DiveBase {
				t.Error("hard should dive more often")
			}
		}},
		{DifficultyFixed, func(t *testing.T, cfg GalagaConfig) {
			if cfg.Enemies.SpeedStep != 0 || cfg.Enemies.DivePerLevel != 0 {
				t.Error("fixed should disable progression")
			}
		}},
		{DifficultyNormal, func(t *testing.T, cfg GalagaConfig) {
			if cfg != DefaultGalagaConfig() {
				t.Error("normal should keep defaults")
			}
		}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGalagaConfig()
			ApplyGalagaPreset(&cfg, tc.preset)
			if err := cfg.Validate(); err != nil {
				t.Fatalf("preset produced invalid config: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should map to DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("GALAGA_DB", "/tmp/scores.db")
	t.Setenv("GALAGA_FPS", "30")
	t.Setenv("GALAGA_MUTE", "true")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if e.DBPath != "/tmp/scores.db" || e.FPS != 30 || !e.Mute {
		t.Errorf("unexpected env: %+v", e)
	}
	if e.SSHAddr != ":23234" {
		t.Errorf("SSHAddr default = %q, expected :23234", e.SSHAddr)
	}
}

func TestParseEnvRejectsBadFPS(t *testing.T) {
	t.Setenv("GALAGA_FPS", "0")
	if _, err := ParseEnv(); err == nil {
		t.Error("expected error for zero FPS")
	}

	t.Setenv("GALAGA_FPS", "fast")
	if _, err := ParseEnv(); err == nil {
		t.Error("expected error for non-numeric FPS")
	}
}

func TestParseEnvFromDefaults(t *testing.T) {
	e, err := ParseEnvFrom(nil)
	if err != nil {
		t.Fatalf("ParseEnvFrom(nil) failed: %v", err)
	}
	if e.FPS != 60 || e.DBPath != "~/.galaga/scores.db" || e.IdleTimeout != 30 || e.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", e)
	}

	e, err = ParseEnvFrom(map[string]string{"GALAGA_SSH_ADDR": ":2222"})
	if err != nil {
		t.Fatalf("ParseEnvFrom failed: %v", err)
	}
	if e.SSHAddr != ":2222" {
		t.Errorf("SSHAddr = %q, expected :2222", e.SSHAddr)
	}
}
