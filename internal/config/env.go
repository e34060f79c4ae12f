package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that may come from the environment.
// CLI flags use these as their defaults, so an explicit flag still wins.
type Env struct {
	DBPath      string `env:"GALAGA_DB"           envDefault:"~/.galaga/scores.db"`
	FPS         int    `env:"GALAGA_FPS"          envDefault:"60"`
	SSHAddr     string `env:"GALAGA_SSH_ADDR"     envDefault:":23234"`
	HostKeyPath string `env:"GALAGA_HOST_KEY"`
	IdleTimeout int    `env:"GALAGA_IDLE_TIMEOUT" envDefault:"30"` // Minutes
	Mute        bool   `env:"GALAGA_MUTE"`
	LogLevel    string `env:"GALAGA_LOG_LEVEL"    envDefault:"info"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	return parseEnv(env.Options{})
}

// ParseEnvFrom loads Env from vars instead of the process environment.
// An empty map yields the defaults.
func ParseEnvFrom(vars map[string]string) (Env, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return parseEnv(env.Options{Environment: vars})
}

func parseEnv(opts env.Options) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	if e.FPS <= 0 {
		return e, fmt.Errorf("parse env: GALAGA_FPS must be positive, got %d", e.FPS)
	}
	return e, nil
}
