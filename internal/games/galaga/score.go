package galaga

import (
	"fmt"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// addScore credits points. Extra lives are settled once per tick in checkExtraLife.
func (g *Game) addScore(points int) {
	g.score += points
}

// checkExtraLife grants a life for each threshold the score has crossed.
// At the lives cap a point bonus is awarded instead. A player who lost the
// last life this tick stays dead.
func (g *Game) checkExtraLife() {
	sc := g.cfg.Scoring
	for g.lives > 0 && g.score >= g.nextLife {
		if g.lives < sc.MaxLives {
			g.lives++
			g.addText(g.player.CenterX(), g.player.Y-10, "1UP", core.ColorBrightGreen)
			g.emit(core.CueExtraLife)
			g.logger.Info("extra life", "lives", g.lives, "score", g.score)
		} else {
			g.score += sc.ExtraLifeBonus
			g.addText(g.player.CenterX(), g.player.Y-10, fmt.Sprintf("+%d", sc.ExtraLifeBonus), core.ColorBrightYellow)
		}
		g.nextLife += sc.ExtraLifeStep
	}
}

// damagePlayer resolves a hit on the player and reports whether a life was lost.
// A shield absorbs the hit instead.
func (g *Game) damagePlayer() bool {
	p := g.player
	cx, cy := p.CenterX(), p.Y+p.H/2

	if p.Shield {
		p.Shield = false
		p.Invincible = g.cfg.Player.ShieldInvincibility
		g.spawnBurst(cx, cy, 12, core.ColorCyan)
		g.addText(cx, p.Y-10, "SHIELD DOWN", core.ColorCyan)
		g.logger.Debug("shield absorbed hit", "tick", g.tick)
		return false
	}

	g.lives--
	g.spawnBurst(cx, cy, 30, core.ColorBrightRed)
	g.shakeFor(15)
	g.emit(core.CueExplosion)
	g.logger.Info("player hit", "lives", g.lives, "tick", g.tick)

	if g.lives <= 0 {
		g.lives = 0
		return true
	}
	p.respawn()
	p.Invincible = g.cfg.Player.RespawnInvincibility
	return true
}

// hitEnemy applies one bullet hit and destroys the enemy at zero health.
func (g *Game) hitEnemy(e *Enemy) {
	e.HP--
	e.Flash = hitFlashTicks
	if e.HP > 0 {
		return
	}

	points := traitsOf(e.Kind).Score
	if e.Diving {
		points *= 2
	}
	g.addScore(points)
	g.destroyEnemy(e)
	g.addScoreText(e.CenterX(), e.Y, points)
	g.maybeDropPowerUp(e.CenterX(), e.Y+e.H/2)
}

// destroyEnemy starts the one-tick destruction window.
func (g *Game) destroyEnemy(e *Enemy) {
	e.HP = 0
	e.Dying = true
	g.spawnBurst(e.CenterX(), e.Y+e.H/2, 8, core.ColorOrange)
	g.emit(core.CueExplosion)
}
