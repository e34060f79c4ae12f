package galaga

import (
	"github.com/vovakirdan/tui-galaga/internal/core"
)

// Player is the ship under control.
type Player struct {
	Body
	Speed      float64
	Cooldown   int
	Invincible int
	Shield     bool
	RapidFire  int // Ticks left
	SlowMo     int // Ticks left of the freeze effect
	Tilt       float64
}

func newPlayer(speed float64) *Player {
	p := &Player{Speed: speed}
	p.W, p.H = playerSize, playerSize
	p.respawn()
	return p
}

// respawn moves the ship back to its spawn point.
func (p *Player) respawn() {
	p.X = FieldW/2 - p.W/2
	p.Y = FieldH - 60
	p.Tilt = 0
}

// Hitbox returns the collision box, smaller than the sprite.
func (p *Player) Hitbox(inset float64) core.Rect {
	return p.Rect().Inset(inset)
}

// updateTimers counts down every frame-based timer.
func (g *Game) updateTimers() {
	p := g.player
	if p.Cooldown > 0 {
		p.Cooldown--
	}
	if p.Invincible > 0 {
		p.Invincible--
	}
	if p.RapidFire > 0 {
		p.RapidFire--
	}
	if p.SlowMo > 0 {
		p.SlowMo--
	}
	if g.bannerTimer > 0 {
		g.bannerTimer--
		if g.bannerTimer == 0 {
			g.banner = ""
		}
	}
	if g.shake > 0 {
		g.shake--
	}
}

// updatePlayer applies movement and fire intent.
func (g *Game) updatePlayer(in core.InputFrame) {
	p := g.player

	target := 0.0
	if in.Has(core.ActionLeft) {
		p.X -= p.Speed
		target--
	}
	if in.Has(core.ActionRight) {
		p.X += p.Speed
		target++
	}
	p.X = core.ClampF(p.X, 0, FieldW-p.W)
	p.Tilt += (target - p.Tilt) * 0.2

	if in.Has(core.ActionFire) && p.Cooldown == 0 {
		g.firePlayer()
	}
}

// firePlayer launches a volley and restarts the cooldown.
func (g *Game) firePlayer() {
	p := g.player
	rapid := p.RapidFire > 0
	for _, s := range PlayerShotPattern(g.level, rapid) {
		g.bullets.Add(newBullet(p.CenterX()+s.OffsetX, p.Y, s.VX, -g.cfg.Player.BulletSpeed))
	}
	if rapid {
		p.Cooldown = g.cfg.Player.RapidCooldown
	} else {
		p.Cooldown = g.cfg.Player.FireCooldown
	}
	g.emit(core.CueShoot)
}

// freezeScale returns the velocity multiplier for frozen entities.
func (g *Game) freezeScale() float64 {
	if g.player.SlowMo > 0 {
		return g.cfg.PowerUps.FreezeFactor
	}
	return 1
}

// updateProjectiles moves every bullet and drops those that left the field.
func (g *Game) updateProjectiles() {
	g.bullets.Each(func(b *Projectile) {
		b.X += b.VX
		b.Y += b.VY
		if b.Rect().Outside(FieldW, FieldH) {
			b.Deleted = true
		}
	})

	scale := g.freezeScale()
	g.enemyBullets.Each(func(b *Projectile) {
		b.X += b.VX * scale
		b.Y += b.VY * scale
		if b.Rect().Outside(FieldW, FieldH) {
			b.Deleted = true
		}
	})
}
