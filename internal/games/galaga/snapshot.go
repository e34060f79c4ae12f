package galaga

import (
	"math"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// EntityView is a read-only copy of one entity's footprint.
type EntityView struct {
	X, Y, W, H float64
	Variant    int // EnemyKind, PowerUpKind or Owner depending on the list
	HP, MaxHP  int
	Flags      ViewFlags
	Color      core.Color // Projectiles only
}

// CenterX returns the horizontal center of the view.
func (v EntityView) CenterX() float64 { return v.X + v.W/2 }

// CenterY returns the vertical center of the view.
func (v EntityView) CenterY() float64 { return v.Y + v.H/2 }

// ParticleView is a read-only copy of one particle.
type ParticleView struct {
	X, Y  float64
	Alpha float64
	Color core.Color
}

// TextView is a read-only copy of one floating text.
type TextView struct {
	X, Y  float64
	Text  string
	Color core.Color
}

// ViewFlags carries per-entity render/audio hints.
type ViewFlags uint8

const (
	FlagDiving ViewFlags = 1 << iota
	FlagDying
	FlagFlash
	FlagShield
	FlagInvincible
	FlagDead
)

// Snapshot is a copy of the whole session, taken once per tick for rendering
// and audio. Live entities only; mutating it never affects the game.
type Snapshot struct {
	Tick         int
	Phase        State
	Score        int
	HighScore    int
	NewHighScore bool
	Lives        int
	Level        int
	Wave         int
	NextLife     int
	AssetsReady  bool

	Player       EntityView
	PlayerTilt   float64
	Boss         *EntityView
	BossPhase    int
	Enemies      []EntityView
	Bullets      []EntityView
	EnemyBullets []EntityView
	PowerUps     []EntityView
	Particles    []ParticleView
	Texts        []TextView

	Shield     bool
	Invincible int
	RapidFire  int
	SlowMo     int
	Banner     string
	Shake      int

	PendingEvents int
	RNGState      uint64
}

func viewOf(b *Body) EntityView {
	return EntityView{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	pv := viewOf(&p.Body)
	if p.Shield {
		pv.Flags |= FlagShield
	}
	if p.Invincible > 0 {
		pv.Flags |= FlagInvincible
	}

	snap := Snapshot{
		Tick:          g.tick,
		Phase:         g.state,
		Score:         g.score,
		HighScore:     max(g.highScore, g.score),
		NewHighScore:  g.newHighScore,
		Lives:         g.lives,
		Level:         g.level,
		Wave:          g.wave,
		NextLife:      g.nextLife,
		AssetsReady:   g.assetsReady,
		Player:        pv,
		PlayerTilt:    p.Tilt,
		Shield:        p.Shield,
		Invincible:    p.Invincible,
		RapidFire:     p.RapidFire,
		SlowMo:        p.SlowMo,
		Banner:        g.banner,
		Shake:         g.shake,
		PendingEvents: g.sched.Pending(),
	}
	if g.rng != nil {
		snap.RNGState = g.rng.state
	}

	if b := g.boss; b != nil && !b.Deleted {
		bv := viewOf(&b.Body)
		bv.HP, bv.MaxHP = b.HP, b.MaxHP
		if b.Dead {
			bv.Flags |= FlagDead
		}
		if b.Flash > 0 {
			bv.Flags |= FlagFlash
		}
		snap.Boss = &bv
		snap.BossPhase = int(b.Phase)
	}

	g.enemies.Each(func(e *Enemy) {
		v := viewOf(&e.Body)
		v.Variant = int(e.Kind)
		v.HP, v.MaxHP = e.HP, traitsOf(e.Kind).HP
		if e.Diving {
			v.Flags |= FlagDiving
		}
		if e.Dying {
			v.Flags |= FlagDying
		}
		if e.Flash > 0 {
			v.Flags |= FlagFlash
		}
		snap.Enemies = append(snap.Enemies, v)
	})
	g.bullets.Each(func(b *Projectile) {
		v := viewOf(&b.Body)
		v.Color = b.Color
		snap.Bullets = append(snap.Bullets, v)
	})
	g.enemyBullets.Each(func(b *Projectile) {
		v := viewOf(&b.Body)
		v.Variant = int(b.Owner)
		v.Color = b.Color
		snap.EnemyBullets = append(snap.EnemyBullets, v)
	})
	g.powerUps.Each(func(pu *PowerUp) {
		v := viewOf(&pu.Body)
		v.Variant = int(pu.Kind)
		snap.PowerUps = append(snap.PowerUps, v)
	})
	g.particles.Each(func(p *Particle) {
		snap.Particles = append(snap.Particles, ParticleView{X: p.X, Y: p.Y, Alpha: p.Alpha, Color: p.Color})
	})
	g.texts.Each(func(t *FloatingText) {
		snap.Texts = append(snap.Texts, TextView{X: t.X, Y: t.Y, Text: t.Text, Color: t.Color})
	})

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                 //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextLife)       //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Particles)) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingEvents)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)          //#nosec G115 -- hash computation

	mix := func(v EntityView) {
		h = h*31 + math.Float64bits(v.X)
		h = h*31 + math.Float64bits(v.Y)
		h = h*31 + uint64(v.Variant) //#nosec G115 -- hash computation
		h = h*31 + uint64(v.HP)      //#nosec G115 -- hash computation
		h = h*31 + uint64(v.Flags)
	}
	mix(snap.Player)
	if snap.Boss != nil {
		mix(*snap.Boss)
	}
	for _, list := range [][]EntityView{snap.Enemies, snap.Bullets, snap.EnemyBullets, snap.PowerUps} {
		h = h*31 + uint64(len(list))
		for _, v := range list {
			mix(v)
		}
	}

	h = h*31 + snap.RNGState
	return h
}
