package galaga

// resolveCollisions runs every collision pass in a fixed order.
// Each pass sees the marks left by the passes before it.
func (g *Game) resolveCollisions() {
	g.collideBulletsBoss()
	g.collideEnemyBulletsPlayer(OwnerBoss)
	g.collideBossPlayer()
	g.collideBulletsEnemies()
	g.collideEnemiesPlayer()
	g.collideEnemyBulletsPlayer(OwnerEnemy)
	g.collectPowerUps()
}

func (g *Game) bossAlive() bool {
	return g.boss != nil && !g.boss.Dead && !g.boss.Deleted
}

func (g *Game) playerVulnerable() bool {
	return g.player.Invincible <= 0 && g.lives > 0
}

func (g *Game) collideBulletsBoss() {
	if !g.bossAlive() {
		return
	}
	g.bullets.Each(func(b *Projectile) {
		if !g.bossAlive() || !b.Rect().Overlaps(g.boss.Rect()) {
			return
		}
		b.Deleted = true
		g.hitBoss(b.CenterX(), b.Y)
	})
}

// collideEnemyBulletsPlayer checks projectiles of one owner against the player's hitbox.
func (g *Game) collideEnemyBulletsPlayer(owner Owner) {
	g.enemyBullets.Each(func(b *Projectile) {
		if b.Owner != owner || !g.playerVulnerable() {
			return
		}
		if b.Rect().Overlaps(g.player.Hitbox(g.cfg.Player.HitboxInset)) {
			b.Deleted = true
			g.damagePlayer()
		}
	})
}

func (g *Game) collideBossPlayer() {
	if !g.bossAlive() || !g.playerVulnerable() {
		return
	}
	if g.boss.Rect().Overlaps(g.player.Hitbox(g.cfg.Player.HitboxInset)) {
		g.damagePlayer()
	}
}

func (g *Game) collideBulletsEnemies() {
	g.bullets.Each(func(b *Projectile) {
		r := b.Rect()
		for _, e := range g.enemies.Items() {
			if !e.alive() || !r.Overlaps(e.Rect()) {
				continue
			}
			b.Deleted = true
			g.hitEnemy(e)
			return
		}
	})
}

// collideEnemiesPlayer rams the player. A ram that costs a life also destroys the enemy.
func (g *Game) collideEnemiesPlayer() {
	for _, e := range g.enemies.Items() {
		if !g.playerVulnerable() {
			return
		}
		if !e.alive() || !e.Rect().Overlaps(g.player.Hitbox(g.cfg.Player.HitboxInset)) {
			continue
		}
		if g.damagePlayer() {
			g.destroyEnemy(e)
		}
	}
}

func (g *Game) collectPowerUps() {
	if g.lives <= 0 {
		return
	}
	pr := g.player.Rect()
	g.powerUps.Each(func(pu *PowerUp) {
		if pu.Rect().Overlaps(pr) {
			pu.Deleted = true
			g.applyPowerUp(pu)
		}
	})
}
