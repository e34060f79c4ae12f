package galaga

import (
	"fmt"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// spawnBurst adds n particles at (x, y) flying in random directions.
func (g *Game) spawnBurst(x, y float64, n int, c core.Color) {
	for range n {
		g.particles.Add(&Particle{
			X:     x,
			Y:     y,
			VX:    g.rng.Range(-3, 3),
			VY:    g.rng.Range(-3, 3),
			Alpha: 1,
			Color: c,
		})
	}
}

// addText adds a floating label centered on (x, y).
func (g *Game) addText(x, y float64, text string, c core.Color) {
	g.texts.Add(&FloatingText{X: x, Y: y, Text: text, Alpha: 1, Color: c})
}

func (g *Game) addScoreText(x, y float64, points int) {
	g.addText(x, y, fmt.Sprintf("+%d", points), core.ColorBrightYellow)
}

// showBanner displays a centered message for a couple of seconds.
func (g *Game) showBanner(text string) {
	g.banner = text
	g.bannerTimer = bannerDuration
}

// shakeFor starts or extends the screen shake.
func (g *Game) shakeFor(ticks int) {
	g.shake = max(g.shake, ticks)
}

// updateEffects advances particles and floating texts.
func (g *Game) updateEffects() {
	g.particles.Each(func(p *Particle) {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= particleDrag
		p.VY *= particleDrag
		p.Alpha -= particleFade
	})
	g.texts.Each(func(t *FloatingText) {
		t.Y--
		t.Alpha -= textFade
	})
}
