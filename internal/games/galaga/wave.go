package galaga

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// spawnFormation builds the enemy grid for level. No formation exists at the boss level.
func spawnFormation(level int) []*Enemy {
	if level >= BossLevel {
		return nil
	}
	rows := FormationRows(level)
	enemies := make([]*Enemy, 0, rows*FormationCols)
	for r := range rows {
		for c := range FormationCols {
			kind := VariantAt(level, r, c, rows)
			x := formationX + float64(c)*formationPitchX
			y := formationY + float64(r)*formationPitchY
			enemies = append(enemies, newEnemy(kind, x, y))
		}
	}
	return enemies
}

// spawnWave places a fresh formation and arms its shooters.
func (g *Game) spawnWave() {
	for _, e := range spawnFormation(g.level) {
		if traitsOf(e.Kind).Fires {
			e.Cooldown = 60 + g.rng.Intn(g.cfg.Enemies.ShooterCooldown)
		}
		g.enemies.Add(e)
	}
	g.enemyDir = 1
	g.logger.Debug("wave spawned", "level", g.level, "wave", g.wave, "enemies", g.enemies.Count(nil))
}

// aliveEnemies counts enemies that are neither dying nor removed.
func (g *Game) aliveEnemies() int {
	return g.enemies.Count(func(e *Enemy) bool { return !e.Dying })
}

// updateEnemies moves the formation and divers, and fires shooters.
func (g *Game) updateEnemies() {
	scale := g.freezeScale()
	speed := g.enemySpeed * scale
	alive := g.aliveEnemies()
	divers := g.enemies.Count(func(e *Enemy) bool { return e.Diving && !e.Dying })
	maxDivers := MaxDivers(g.level)
	diveChance := DiveProbability(g.level, alive, g.cfg.Enemies)
	hitEdge := false

	g.enemies.Each(func(e *Enemy) {
		if e.Dying {
			e.Deleted = true
			return
		}
		if e.Flash > 0 {
			e.Flash--
		}

		if e.Diving {
			g.updateDiver(e, scale)
		} else {
			e.X += speed * g.enemyDir
			if e.Y < e.HomeY {
				e.Y = math.Min(e.Y+returnSpeed*scale, e.HomeY)
			} else if divers < maxDivers && g.rng.Float64() < diveChance {
				e.Diving = true
				e.DivePhase = 0
				divers++
			}
			if (g.enemyDir > 0 && e.Right() >= FieldW) || (g.enemyDir < 0 && e.X <= 0) {
				hitEdge = true
			}
		}

		if traitsOf(e.Kind).Fires {
			g.updateShooter(e)
		}
	})

	if hitEdge {
		g.enemyDir = -g.enemyDir
		g.enemies.Each(func(e *Enemy) {
			if e.Diving || e.Dying {
				return
			}
			e.HomeY += g.cfg.Enemies.StepDown
			e.Y += g.cfg.Enemies.StepDown
		})
	}

	g.checkInvasion()
}

// updateDiver moves a diving enemy along its weaving, homing path.
func (g *Game) updateDiver(e *Enemy, scale float64) {
	e.DivePhase++
	homing := core.ClampF((g.player.CenterX()-e.CenterX())*0.02, -1.5, 1.5)
	e.X += (math.Sin(float64(e.DivePhase)*0.1)*2 + homing) * scale
	e.X = core.ClampF(e.X, 0, FieldW-e.W)
	e.Y += DiveSpeed(g.level, g.cfg.Enemies) * scale

	// Divers that leave the bottom re-enter from the top and rejoin the formation
	if e.Y > FieldH {
		e.Y = -e.H
		e.Diving = false
		e.DivePhase = 0
	}
}

// updateShooter counts down and fires an aimed shot at the player.
func (g *Game) updateShooter(e *Enemy) {
	if e.Cooldown > 0 {
		e.Cooldown--
		return
	}
	if e.Y < 0 {
		return
	}
	cx, cy := e.CenterX(), e.Bottom()
	dx, dy := core.Normalize(g.player.CenterX()-cx, g.player.Y+g.player.H/2-cy)
	v := g.cfg.Enemies.ShooterBulletSpeed
	g.enemyBullets.Add(newEnemyBullet(OwnerEnemy, cx, cy, dx*v, dy*v))
	e.Cooldown = g.cfg.Enemies.ShooterCooldown + g.rng.Intn(60)
}

// checkInvasion costs a life when the formation reaches the player's line,
// then lifts the formation back to its spawn rows.
func (g *Game) checkInvasion() {
	line := g.player.Y
	invaded := false
	top := math.Inf(1)
	g.enemies.Each(func(e *Enemy) {
		if e.Diving || e.Dying {
			return
		}
		if e.Bottom() >= line {
			invaded = true
		}
		top = math.Min(top, e.HomeY)
	})
	if !invaded {
		return
	}

	g.logger.Info("formation reached player line", "tick", g.tick)
	if g.player.Invincible <= 0 {
		g.damagePlayer()
	}

	lift := top - formationY
	if lift <= 0 {
		return
	}
	g.enemies.Each(func(e *Enemy) {
		if e.Diving || e.Dying {
			return
		}
		e.HomeY -= lift
		e.Y -= lift
	})
}

// directWaves spawns the next wave or advances the level once the field is clear.
func (g *Game) directWaves() {
	if g.boss != nil || g.bossDefeated {
		return
	}
	if g.level >= BossLevel {
		g.spawnBoss()
		return
	}
	if g.aliveEnemies() > 0 {
		return
	}
	if g.wave < MaxWaves(g.level) {
		g.wave++
		g.showBanner(fmt.Sprintf("WAVE %d", g.wave))
		g.spawnWave()
		return
	}
	g.advanceLevel()
}

// advanceLevel moves to the next level, spawning the boss at the last one.
func (g *Game) advanceLevel() {
	g.level = min(g.level+1, BossLevel)
	g.wave = 1
	g.bullets.Clear()
	g.enemyBullets.Clear()
	g.emit(core.CueLevelUp)
	g.logger.Info("level up", "level", g.level, "score", g.score)

	if g.level >= BossLevel {
		g.spawnBoss()
		return
	}
	g.enemySpeed = EnemySpeed(g.level, g.cfg.Enemies)
	g.showBanner(fmt.Sprintf("LEVEL %d", g.level))
	g.spawnWave()
}
