package core

// Cue is a named audio event raised by the simulation.
// The platform decides how (or whether) to make it audible.
type Cue int

const (
	CueShoot Cue = iota
	CueExplosion
	CueLevelUp
	CueBossHit
	CuePowerUp
	CueExtraLife
	CueSessionStart
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "Shoot"
	case CueExplosion:
		return "Explosion"
	case CueLevelUp:
		return "LevelUp"
	case CueBossHit:
		return "BossHit"
	case CuePowerUp:
		return "PowerUp"
	case CueExtraLife:
		return "ExtraLife"
	case CueSessionStart:
		return "SessionStart"
	default:
		return "Unknown"
	}
}
