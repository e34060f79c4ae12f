package galaga

import (
	"math"

	"github.com/vovakirdan/tui-galaga/internal/config"
)

// Formation layout.
const (
	FormationCols    = 8
	MaxFormationRows = 6
	BossLevel        = 10

	formationX      = 50.0
	formationY      = 50.0
	formationPitchX = 45.0
	formationPitchY = 35.0
)

// FormationRows returns how many rows a formation has at level.
func FormationRows(level int) int {
	return min(3+(level-1)/2, MaxFormationRows)
}

// VariantAt returns the enemy variant for a formation slot.
func VariantAt(level, row, col, rows int) EnemyKind {
	if level >= 2 && row == 0 {
		return EnemyTank
	}
	if level >= 3 && row == rows-1 && col%2 == 0 {
		return EnemyShooter
	}
	return EnemyBasic
}

// MaxWaves returns the number of waves in a level.
func MaxWaves(level int) int {
	if level >= 5 {
		return 3
	}
	return 2
}

// EnemySpeed returns the formation speed for level.
func EnemySpeed(level int, cfg config.EnemyConfig) float64 {
	return math.Min(cfg.BaseSpeed+cfg.SpeedStep*float64(level-1), cfg.MaxSpeed)
}

// DiveProbability returns the per-enemy, per-tick chance to start a dive.
// Sparse formations dive more often.
func DiveProbability(level, alive int, cfg config.EnemyConfig) float64 {
	if alive <= 0 {
		return 0
	}
	base := cfg.DiveBase + float64(level)*cfg.DivePerLevel
	return base * math.Max(1, 15/float64(alive))
}

// MaxDivers returns how many enemies may dive at once.
func MaxDivers(level int) int {
	return min(1+level/2, 5)
}

// DiveSpeed returns the vertical speed of a diving enemy.
func DiveSpeed(level int, cfg config.EnemyConfig) float64 {
	return cfg.DiveSpeed + 0.2*float64(level)
}

// Shot is one bullet of a volley, relative to the ship's center.
type Shot struct {
	OffsetX float64
	VX      float64
}

// PlayerShotPattern returns the volley fired at level.
func PlayerShotPattern(level int, rapid bool) []Shot {
	switch {
	case rapid:
		return []Shot{{OffsetX: 0}, {OffsetX: -6, VX: -2}, {OffsetX: 6, VX: 2}}
	case level >= 3:
		return []Shot{{OffsetX: -8}, {OffsetX: 8}}
	default:
		return []Shot{{OffsetX: 0}}
	}
}

// BossSpec is the movement and fire profile of a boss phase.
type BossSpec struct {
	Speed     float64
	Amplitude float64   // Vertical bob
	Cooldown  int       // Ticks between volleys
	Angles    []float64 // Radians from straight down
	Jitter    float64
}

// PhaseFor derives the boss phase from its health fraction.
func PhaseFor(hp, maxHP int) BossPhase {
	if maxHP <= 0 {
		return BossPhase3
	}
	f := float64(hp) / float64(maxHP)
	switch {
	case f > 0.66:
		return BossPhase1
	case f > 0.33:
		return BossPhase2
	default:
		return BossPhase3
	}
}

// BossPattern returns the profile for phase.
func BossPattern(phase BossPhase) BossSpec {
	switch phase {
	case BossPhase1:
		return BossSpec{Speed: 1.5, Cooldown: 60, Angles: []float64{0}}
	case BossPhase2:
		return BossSpec{Speed: 2.5, Amplitude: 12, Cooldown: 45, Angles: []float64{-0.25, 0, 0.25}}
	default:
		return BossSpec{
			Speed:     3.5,
			Amplitude: 24,
			Cooldown:  35,
			Angles:    []float64{-0.5, -0.25, 0, 0.25, 0.5},
			Jitter:    2,
		}
	}
}
