package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the UI-facing summary of a session.
type GameState struct {
	Phase        string // "start", "playing", "paused", "gameover", "victory"
	Score        int
	HighScore    int
	NewHighScore bool // Set once the session ended above the previous best
	Lives        int
	Level        int
	Wave         int
	Shield       bool
	RapidFire    bool
	Freeze       bool
	GameOver     bool // GAMEOVER or VICTORY
	Victory      bool
	Paused       bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Audio cues raised during this tick, in order
}
