package galaga

import (
	"math"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// maybeDropPowerUp rolls for a drop at a destroyed enemy's position.
func (g *Game) maybeDropPowerUp(cx, cy float64) {
	if g.rng.Float64() >= g.cfg.PowerUps.DropChance {
		return
	}
	kind := PowerUpKind(g.rng.Intn(int(powerUpKinds)))
	g.powerUps.Add(newPowerUp(kind, cx, cy))
}

// updatePowerUps drifts power-ups down with a lateral sway.
func (g *Game) updatePowerUps() {
	g.powerUps.Each(func(pu *PowerUp) {
		pu.Age++
		pu.Y += pu.VY
		pu.X = core.ClampF(pu.X+math.Sin(float64(pu.Age)*0.1), 0, FieldW-pu.W)
		if pu.Y > FieldH {
			pu.Deleted = true
		}
	})
}

// applyPowerUp grants a collected power-up's effect.
func (g *Game) applyPowerUp(pu *PowerUp) {
	p := g.player
	switch pu.Kind {
	case PowerUpShield:
		p.Shield = true
	case PowerUpRapidFire:
		p.RapidFire = g.cfg.PowerUps.RapidFireTicks
	case PowerUpFreeze:
		p.SlowMo = g.cfg.PowerUps.FreezeTicks
	}
	g.addText(pu.CenterX(), pu.Y, pu.Kind.String(), powerUpGlyphs[pu.Kind].Color)
	g.emit(core.CuePowerUp)
	g.logger.Debug("power-up collected", "kind", pu.Kind, "tick", g.tick)
}
