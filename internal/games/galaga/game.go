// Package galaga implements the simulation core of a vertical arcade shooter:
// a player ship against descending enemy formations over nine levels and a
// final boss. The core is pure logic driven by fixed ticks; the platform
// supplies input frames, renders the snapshot and plays the emitted cues.
package galaga

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/registry"
)

// Mode selects where a session starts.
type Mode int

const (
	ModeCampaign Mode = iota // Levels 1 through the boss
	ModeBossRush             // Straight to the boss
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// World is every piece of per-session state. A session reset replaces it whole.
type World struct {
	player       *Player
	bullets      *Registry[*Projectile]
	enemyBullets *Registry[*Projectile] // Enemy and boss shots, tagged by owner
	enemies      *Registry[*Enemy]
	powerUps     *Registry[*PowerUp]
	particles    *Registry[*Particle]
	texts        *Registry[*FloatingText]
	boss         *Boss

	score        int
	lives        int
	level        int
	wave         int
	nextLife     int
	enemySpeed   float64
	enemyDir     float64
	bossDefeated bool
	victoryDue   bool
	tick         int

	banner      string
	bannerTimer int
	shake       int
}

// Game implements the galaga simulation.
type Game struct {
	World

	mode      Mode
	cfg       config.GalagaConfig
	fixedCfg  bool // cfg was supplied by the caller and is not reloaded
	runtime   core.RuntimeConfig
	rng       *SimpleRNG
	sched     *Scheduler
	logger    *log.Logger
	cues      []core.Cue
	state     State
	highScore int

	newHighScore  bool
	assetsReady   bool
	focused       bool
	pausedByFocus bool
	visualPhase   float64
}

// New creates a campaign game.
func New() *Game {
	return newGame(ModeCampaign)
}

// NewBossRush creates a game that starts at the boss.
func NewBossRush() *Game {
	return newGame(ModeBossRush)
}

// NewWithConfig creates a game with fixed tunables, bypassing the config search.
func NewWithConfig(mode Mode, cfg config.GalagaConfig) *Game {
	g := newGame(mode)
	g.cfg = cfg
	g.fixedCfg = true
	return g
}

func newGame(mode Mode) *Game {
	g := &Game{
		mode:        mode,
		cfg:         config.DefaultGalagaConfig(),
		rng:         NewSimpleRNG(1),
		sched:       NewScheduler(),
		logger:      log.New(io.Discard),
		assetsReady: true,
		focused:     true,
	}
	// Usable before the first Reset
	g.resetWorld()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeBossRush {
		return "galaga_boss"
	}
	return "galaga"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeBossRush {
		return "Galaga (Boss Rush)"
	}
	return "Galaga"
}

// SetLogger routes core diagnostics to l. A nil logger discards them.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// SetHighScore seeds the best score known to the platform.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(score, 0)
}

// SetAssetsReady gates the start screen until the platform has finished loading.
func (g *Game) SetAssetsReady(ready bool) {
	g.assetsReady = ready
}

// SetVisualPhase sets a cosmetic animation phase used only by Render.
func (g *Game) SetVisualPhase(phase float64) {
	g.visualPhase = phase
}

// Reset loads the tunables and returns to the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadGalaga(configPath)
		if err != nil {
			g.logger.Warn("using default config", "err", err)
			cfg = config.DefaultGalagaConfig()
		}
		if difficultyPreset != "" {
			config.ApplyGalagaPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.rng = NewSimpleRNG(runtime.Seed)
	g.resetWorld()
	g.state = StateStart
	g.pausedByFocus = false
	g.newHighScore = false
	g.cues = nil
}

// resetWorld discards every entity and counter. Calling it twice in a row is a no-op.
func (g *Game) resetWorld() {
	g.sched.Reset()
	g.World = World{
		player:       newPlayer(g.cfg.Player.Speed),
		bullets:      NewRegistry[*Projectile](0),
		enemyBullets: NewRegistry[*Projectile](0),
		enemies:      NewRegistry[*Enemy](0),
		powerUps:     NewRegistry[*PowerUp](0),
		particles:    NewRegistry[*Particle](particleLimit),
		texts:        NewRegistry[*FloatingText](0),
		score:        0,
		lives:        g.cfg.Scoring.MaxLives,
		level:        1,
		wave:         1,
		nextLife:     g.cfg.Scoring.ExtraLifeAt,
		enemySpeed:   EnemySpeed(1, g.cfg.Enemies),
		enemyDir:     1,
	}
}

// startSession begins a fresh run from the mode's first level.
func (g *Game) startSession() {
	g.resetWorld()
	g.newHighScore = false
	g.pausedByFocus = false
	g.state = StatePlaying

	if g.mode == ModeBossRush {
		g.level = BossLevel
		g.spawnBoss()
	} else {
		g.showBanner("LEVEL 1")
		g.spawnWave()
	}
	g.emit(core.CueSessionStart)
	g.logger.Info("session started", "mode", g.ID(), "level", g.level)
}

// emit records an audio cue for this tick.
func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = nil

	if g.handleStateInput(in.Has(core.ActionConfirm), in.Has(core.ActionPause)) {
		g.tickPlaying(in)
	} else if g.state.Terminal() {
		// Let explosions finish behind the end screen
		g.updateEffects()
		g.compact()
	}

	return core.StepResult{State: g.State(), Cues: g.cues}
}

// tickPlaying runs one simulation tick in a fixed order.
func (g *Game) tickPlaying(in core.InputFrame) {
	g.tick++
	g.runScheduled()
	g.updateTimers()
	g.updatePlayer(in)
	g.updateProjectiles()
	g.updatePowerUps()
	g.updateEnemies()
	g.updateBoss()
	g.resolveCollisions()
	g.checkExtraLife()
	g.directWaves()
	g.updateEffects()
	g.evaluateEnd()
	g.compact()
}

// runScheduled applies deferred transitions due this tick.
func (g *Game) runScheduled() {
	for _, ev := range g.sched.Drain(g.tick) {
		switch ev {
		case EventBossRemove:
			if g.boss != nil {
				g.boss.Deleted = true
			}
		case EventVictory:
			g.victoryDue = true
		}
		g.logger.Debug("scheduled event", "event", ev, "tick", g.tick)
	}
}

// evaluateEnd moves to GAMEOVER or VICTORY once their conditions hold.
func (g *Game) evaluateEnd() {
	switch {
	case g.lives <= 0:
		g.setState(StateGameOver)
	case g.victoryDue:
		g.setState(StateVictory)
	}
}

// compact drops everything marked for deletion this tick.
func (g *Game) compact() {
	g.bullets.Compact()
	g.enemyBullets.Compact()
	g.enemies.Compact()
	g.powerUps.Compact()
	g.particles.Compact()
	g.texts.Compact()
	if g.boss != nil && g.boss.Deleted {
		g.boss = nil
	}
}

// State returns the UI-facing session summary.
func (g *Game) State() core.GameState {
	p := g.player
	gs := core.GameState{
		Phase:        g.state.String(),
		Score:        g.score,
		HighScore:    max(g.highScore, g.score),
		NewHighScore: g.newHighScore,
		Lives:        g.lives,
		Level:        g.level,
		Wave:         g.wave,
		GameOver:     g.state.Terminal(),
		Victory:      g.state == StateVictory,
		Paused:       g.state == StatePaused,
	}
	if p != nil {
		gs.Shield = p.Shield
		gs.RapidFire = p.RapidFire > 0
		gs.Freeze = p.SlowMo > 0
	}
	return gs
}

// Phase returns the current state machine state.
func (g *Game) Phase() State {
	return g.state
}

// Ticks returns how many playing ticks this session has run.
func (g *Game) Ticks() int {
	return g.tick
}

func init() {
	registry.Register("galaga", func() registry.Game { return New() })
	registry.Register("galaga_boss", func() registry.Game { return NewBossRush() })
}
