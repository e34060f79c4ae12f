package galaga

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// spawnBoss places the boss and announces it.
func (g *Game) spawnBoss() {
	g.boss = newBoss(g.cfg.Boss.HP)
	g.showBanner("WARNING: BOSS")
	g.logger.Info("boss spawned", "hp", g.boss.HP, "tick", g.tick)
}

// updateBoss moves the boss according to its phase and fires its pattern.
func (g *Game) updateBoss() {
	b := g.boss
	if b == nil {
		return
	}
	b.Age++
	if b.Flash > 0 {
		b.Flash--
	}
	if b.Dead {
		b.DeadTimer++
		if b.DeadTimer%6 == 0 {
			g.spawnBurst(b.X+g.rng.Range(0, b.W), b.Y+g.rng.Range(0, b.H), 3, core.ColorGray)
		}
		return
	}

	if phase := PhaseFor(b.HP, b.MaxHP); phase != b.Phase {
		g.logger.Info("boss phase change", "from", b.Phase, "to", phase, "hp", b.HP)
		b.Phase = phase
	}
	spec := BossPattern(b.Phase)
	scale := g.freezeScale()

	b.X += spec.Speed * b.Dir * scale
	if spec.Jitter > 0 {
		b.X += g.rng.Range(-spec.Jitter, spec.Jitter) * scale
	}
	if b.X <= 0 {
		b.X = 0
		b.Dir = 1
	} else if b.Right() >= FieldW {
		b.X = FieldW - b.W
		b.Dir = -1
	}
	b.Y = b.BaseY + math.Sin(float64(b.Age)*0.03)*spec.Amplitude

	b.Cooldown--
	if b.Cooldown <= 0 {
		g.fireBoss(spec)
		b.Cooldown = spec.Cooldown
		if g.player.SlowMo > 0 {
			b.Cooldown *= 2
		}
	}
}

// fireBoss emits one volley, spread around straight down.
func (g *Game) fireBoss(spec BossSpec) {
	b := g.boss
	cx, cy := b.CenterX(), b.Bottom()
	v := g.cfg.Boss.BulletSpeed
	for _, a := range spec.Angles {
		g.enemyBullets.Add(newEnemyBullet(OwnerBoss, cx, cy, math.Sin(a)*v, math.Cos(a)*v))
	}
}

// hitBoss applies one bullet hit at (x, y).
func (g *Game) hitBoss(x, y float64) {
	b := g.boss
	b.HP = max(b.HP-1, 0)
	b.Flash = hitFlashTicks
	g.particles.Add(&Particle{X: x, Y: y, VX: g.rng.Range(-3, 3), VY: g.rng.Range(-3, 3), Alpha: 1, Color: core.ColorBrightGreen})
	g.emit(core.CueBossHit)
	if b.HP == 0 {
		g.killBoss()
	}
}

// killBoss runs the one-shot death transition and schedules its aftermath.
func (g *Game) killBoss() {
	b := g.boss
	if b.Dead {
		return
	}
	b.Dead = true
	g.bossDefeated = true

	bonus := g.cfg.Boss.KillBonus
	g.addScore(bonus)
	g.spawnBurst(b.CenterX(), b.Y+b.H/2, 50, core.ColorBrightGreen)
	g.shakeFor(30)
	g.emit(core.CueExplosion)
	g.addText(b.CenterX(), b.Y, fmt.Sprintf("+%d", bonus), core.ColorBrightYellow)
	g.enemyBullets.Each(func(p *Projectile) {
		if p.Owner == OwnerBoss {
			p.Deleted = true
		}
	})

	g.sched.After(g.tick, g.cfg.Boss.SettleTicks, EventBossRemove)
	g.sched.After(g.tick, g.cfg.Boss.VictoryDelay, EventVictory)
	g.logger.Info("boss destroyed", "score", g.score, "tick", g.tick)
}
