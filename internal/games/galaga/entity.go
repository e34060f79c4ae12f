package galaga

import "github.com/vovakirdan/tui-galaga/internal/core"

// Playfield dimensions in world units.
const (
	FieldW = 480.0
	FieldH = 640.0
)

// Entity sizes in world units.
const (
	playerSize     = 40.0
	enemySize      = 32.0
	bossW          = 120.0
	bossH          = 100.0
	bulletW        = 4.0
	bulletH        = 12.0
	enemyBulletW   = 6.0
	enemyBulletH   = 10.0
	powerUpSize    = 20.0
	particleSize   = 4.0
	particleLimit  = 500
	hitFlashTicks  = 6
	returnSpeed    = 2.0 // Respawned divers fly back to their slot at this rate
	powerUpFall    = 1.5
	particleDrag   = 0.96
	particleFade   = 0.04
	textFade       = 0.02
	bannerDuration = 120
)

// Body is the rectangular footprint shared by every entity.
type Body struct {
	X, Y, W, H float64
	Deleted    bool
}

// Rect returns the body as a rectangle.
func (b *Body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Right returns the right edge.
func (b *Body) Right() float64 { return b.X + b.W }

// Bottom returns the bottom edge.
func (b *Body) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b *Body) CenterX() float64 { return b.X + b.W/2 }

// IsDeleted reports whether the entity is marked for removal.
func (b *Body) IsDeleted() bool { return b.Deleted }

// EnemyKind tags an enemy variant.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyTank
	EnemyShooter
)

// String returns the variant name.
func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyTank:
		return "tank"
	case EnemyShooter:
		return "shooter"
	default:
		return "unknown"
	}
}

// enemyTraits is the per-variant behavior table.
type enemyTraits struct {
	HP    int
	Score int
	Fires bool
	Color core.Color
}

var enemyTable = map[EnemyKind]enemyTraits{
	EnemyBasic:   {HP: 1, Score: 100, Color: core.ColorMagenta},
	EnemyTank:    {HP: 3, Score: 300, Color: core.ColorBlue},
	EnemyShooter: {HP: 2, Score: 250, Fires: true, Color: core.ColorBrightRed},
}

func traitsOf(k EnemyKind) enemyTraits {
	if t, ok := enemyTable[k]; ok {
		return t
	}
	return enemyTable[EnemyBasic]
}

// Enemy is a formation member.
type Enemy struct {
	Body
	Kind      EnemyKind
	HP        int
	HomeY     float64 // Formation row; moves with step-down
	Diving    bool
	Dying     bool // Destroyed this tick, removed on the next
	DivePhase int
	Cooldown  int // Shooter fire cooldown
	Flash     int
}

func newEnemy(kind EnemyKind, x, y float64) *Enemy {
	return &Enemy{
		Body:  Body{X: x, Y: y, W: enemySize, H: enemySize},
		Kind:  kind,
		HP:    traitsOf(kind).HP,
		HomeY: y,
	}
}

// alive reports whether the enemy still takes part in collisions.
func (e *Enemy) alive() bool {
	return !e.Deleted && !e.Dying
}

// BossPhase is derived from the boss's remaining health.
type BossPhase int

const (
	BossPhase1 BossPhase = iota + 1
	BossPhase2
	BossPhase3
)

// Boss is the final-level enemy.
type Boss struct {
	Body
	HP, MaxHP int
	Dir       float64
	BaseY     float64
	Cooldown  int
	Phase     BossPhase
	Dead      bool
	DeadTimer int
	Flash     int
	Age       int
}

func newBoss(hp int) *Boss {
	return &Boss{
		Body:     Body{X: FieldW/2 - bossW/2, Y: 80, W: bossW, H: bossH},
		HP:       hp,
		MaxHP:    hp,
		Dir:      1,
		BaseY:    80,
		Cooldown: 90,
		Phase:    BossPhase1,
	}
}

// Owner tags who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
	OwnerBoss
)

// Projectile is a bullet fired by the player, an enemy or the boss.
type Projectile struct {
	Body
	VX, VY float64
	Owner  Owner
	Color  core.Color
}

func newBullet(cx, y, vx, vy float64) *Projectile {
	return &Projectile{
		Body:  Body{X: cx - bulletW/2, Y: y, W: bulletW, H: bulletH},
		VX:    vx,
		VY:    vy,
		Owner: OwnerPlayer,
		Color: core.ColorBrightYellow,
	}
}

func newEnemyBullet(owner Owner, cx, cy, vx, vy float64) *Projectile {
	c := core.ColorRed
	if owner == OwnerBoss {
		c = core.ColorOrange
	}
	return &Projectile{
		Body:  Body{X: cx - enemyBulletW/2, Y: cy - enemyBulletH/2, W: enemyBulletW, H: enemyBulletH},
		VX:    vx,
		VY:    vy,
		Owner: owner,
		Color: c,
	}
}

// PowerUpKind tags a power-up variant.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpRapidFire
	PowerUpFreeze
	powerUpKinds
)

// String returns the label shown when the power-up is collected.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "SHIELD"
	case PowerUpRapidFire:
		return "RAPID FIRE"
	case PowerUpFreeze:
		return "FREEZE"
	default:
		return "?"
	}
}

var powerUpGlyphs = map[PowerUpKind]struct {
	Glyph rune
	Color core.Color
}{
	PowerUpShield:    {'S', core.ColorCyan},
	PowerUpRapidFire: {'R', core.ColorBrightYellow},
	PowerUpFreeze:    {'F', core.ColorBlue},
}

// PowerUp drifts down from a destroyed enemy.
type PowerUp struct {
	Body
	Kind PowerUpKind
	VY   float64
	Age  int
}

func newPowerUp(kind PowerUpKind, cx, cy float64) *PowerUp {
	return &PowerUp{
		Body: Body{X: cx - powerUpSize/2, Y: cy - powerUpSize/2, W: powerUpSize, H: powerUpSize},
		Kind: kind,
		VY:   powerUpFall,
	}
}

// Particle is a short-lived explosion fragment.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
	Color  core.Color
}

// IsDeleted reports whether the particle has faded out.
func (p *Particle) IsDeleted() bool { return p.Alpha <= 0 }

// FloatingText is a rising, fading label such as a kill score.
type FloatingText struct {
	X, Y  float64
	Text  string
	Alpha float64
	Color core.Color
}

// IsDeleted reports whether the text has faded out.
func (t *FloatingText) IsDeleted() bool { return t.Alpha <= 0 }
