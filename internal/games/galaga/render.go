package galaga

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// Minimum terminal size.
const (
	minScreenW = 40
	minScreenH = 20
	hudRows    = 2
)

// viewport maps world coordinates onto the cell grid below the HUD.
type viewport struct {
	cols, rows int
	ox, oy     int // Shake offset
}

func (v viewport) cell(x, y float64) (int, int) {
	cx := int(x*float64(v.cols)/FieldW) + v.ox
	cy := int(y*float64(v.rows)/FieldH) + hudRows + v.oy
	return cx, cy
}

func (v viewport) width(w float64) int {
	return max(1, int(w*float64(v.cols)/FieldW+0.5))
}

func (v viewport) height(h float64) int {
	return max(1, int(h*float64(v.rows)/FieldH+0.5))
}

// Render draws the current game state into the provided screen buffer.
// Everything drawn comes from this tick's Snapshot.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	DrawSnapshot(dst, &snap, g.visualPhase)
}

// DrawSnapshot draws snap into dst. phase is a cosmetic animation clock.
func DrawSnapshot(dst *core.Screen, snap *Snapshot, phase float64) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDefault)
		return
	}

	vp := viewport{cols: dst.Width(), rows: dst.Height() - hudRows}
	if snap.Shake > 0 {
		vp.ox = (snap.Tick/2)%3 - 1
	}

	renderStars(dst, vp, phase)
	if snap.Phase != StateStart {
		renderEnemies(dst, vp, snap.Enemies)
		renderBoss(dst, vp, snap.Boss, BossPhase(snap.BossPhase))
		renderPowerUps(dst, vp, snap.PowerUps)
		renderProjectiles(dst, vp, snap)
		renderParticles(dst, vp, snap.Particles)
		renderPlayer(dst, vp, snap)
		renderTexts(dst, vp, snap.Texts)
	}
	renderHUD(dst, snap)
	renderOverlay(dst, snap)
}

// renderStars draws a fixed starfield that twinkles with the visual phase.
func renderStars(dst *core.Screen, vp viewport, phase float64) {
	step := int(phase * 4)
	for i := range 40 {
		x := (i * 37) % vp.cols
		y := hudRows + (i*53+i*i)%vp.rows
		r := '.'
		if (i+step)%7 == 0 {
			r = '*'
		}
		dst.SetColored(x, y, r, core.ColorGray)
	}
}

func renderHUD(dst *core.Screen, snap *Snapshot) {
	left := fmt.Sprintf("SCORE %d", snap.Score)
	mid := fmt.Sprintf("HI %d", snap.HighScore)
	right := fmt.Sprintf("LVL %d-%d %s", snap.Level, snap.Wave, strings.Repeat("♥", snap.Lives))
	dst.DrawTextColored(1, 0, left, core.ColorWhite)
	dst.DrawTextCentered(0, mid, core.ColorBrightCyan)
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightRed)

	var buffs []string
	if snap.Shield {
		buffs = append(buffs, "SHIELD")
	}
	if snap.RapidFire > 0 {
		buffs = append(buffs, fmt.Sprintf("RAPID(%d)", snap.RapidFire/60+1))
	}
	if snap.SlowMo > 0 {
		buffs = append(buffs, fmt.Sprintf("FREEZE(%d)", snap.SlowMo/60+1))
	}
	if len(buffs) > 0 {
		dst.DrawTextColored(1, 1, strings.Join(buffs, " "), core.ColorBrightYellow)
		return
	}
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

var enemySprites = map[EnemyKind]string{
	EnemyBasic:   "<V>",
	EnemyTank:    "[W]",
	EnemyShooter: "/Y\\",
}

func renderEnemies(dst *core.Screen, vp viewport, enemies []EntityView) {
	for _, e := range enemies {
		x, y := vp.cell(e.CenterX(), e.CenterY())
		if e.Flags&FlagDying != 0 {
			dst.SetColored(x, y, '*', core.ColorOrange)
			continue
		}
		kind := EnemyKind(e.Variant)
		sprite := enemySprites[kind]
		// Tank ring is gone once only one hit remains
		if kind == EnemyTank && e.HP == 1 {
			sprite = "(W)"
		}
		c := traitsOf(kind).Color
		if e.Flags&FlagFlash != 0 {
			c = core.ColorWhite
		}
		dst.DrawTextColored(x-1, y, sprite, c)
	}
}

func renderBoss(dst *core.Screen, vp viewport, b *EntityView, phase BossPhase) {
	if b == nil {
		return
	}
	x, y := vp.cell(b.X, b.Y)
	w, h := vp.width(b.W), vp.height(b.H)
	dead := b.Flags&FlagDead != 0

	c := core.ColorMagenta
	switch {
	case dead:
		c = core.ColorGray
	case b.Flags&FlagFlash != 0:
		c = core.ColorWhite
	case phase == BossPhase3:
		c = core.ColorBrightRed
	case phase == BossPhase2:
		c = core.ColorOrange
	}
	dst.DrawBox(x, y, w, h, c)
	for row := y + 1; row < y+h-1; row++ {
		for col := x + 1; col < x+w-1; col++ {
			dst.SetColored(col, row, '▓', c)
		}
	}

	if dead {
		return
	}
	// Health bar above the hull
	filled := 0
	if b.MaxHP > 0 {
		filled = w * b.HP / b.MaxHP
	}
	for i := range w {
		if i < filled {
			dst.SetColored(x+i, y-1, '█', core.ColorBrightGreen)
		} else {
			dst.SetColored(x+i, y-1, '░', core.ColorRed)
		}
	}
}

func renderPowerUps(dst *core.Screen, vp viewport, powerUps []EntityView) {
	for _, pu := range powerUps {
		x, y := vp.cell(pu.CenterX(), pu.CenterY())
		glyph := powerUpGlyphs[PowerUpKind(pu.Variant)]
		dst.SetColored(x, y, glyph.Glyph, glyph.Color)
	}
}

func renderProjectiles(dst *core.Screen, vp viewport, snap *Snapshot) {
	for _, b := range snap.Bullets {
		x, y := vp.cell(b.CenterX(), b.CenterY())
		dst.SetColored(x, y, '|', b.Color)
	}
	for _, b := range snap.EnemyBullets {
		x, y := vp.cell(b.CenterX(), b.CenterY())
		r := 'o'
		if Owner(b.Variant) == OwnerBoss {
			r = '•'
		}
		dst.SetColored(x, y, r, b.Color)
	}
}

func renderParticles(dst *core.Screen, vp viewport, particles []ParticleView) {
	for _, p := range particles {
		x, y := vp.cell(p.X, p.Y)
		r := '·'
		if p.Alpha > 0.6 {
			r = '*'
		}
		dst.SetColored(x, y, r, p.Color)
	}
}

func renderPlayer(dst *core.Screen, vp viewport, snap *Snapshot) {
	if snap.Lives <= 0 {
		return
	}
	// Blink while invincible
	if snap.Invincible > 0 && (snap.Invincible/4)%2 == 1 {
		return
	}
	p := snap.Player
	x, y := vp.cell(p.CenterX(), p.CenterY())
	sprite := "/^\\"
	switch {
	case snap.PlayerTilt < -0.3:
		sprite = "<^\\"
	case snap.PlayerTilt > 0.3:
		sprite = "/^>"
	}
	dst.DrawTextColored(x-1, y, sprite, core.ColorBrightGreen)
	if snap.Shield {
		dst.SetColored(x-2, y, '(', core.ColorCyan)
		dst.SetColored(x+2, y, ')', core.ColorCyan)
	}
}

func renderTexts(dst *core.Screen, vp viewport, texts []TextView) {
	for _, t := range texts {
		x, y := vp.cell(t.X, t.Y)
		dst.DrawTextColored(x-len([]rune(t.Text))/2, y, t.Text, t.Color)
	}
}

// renderOverlay draws the banner and the start/pause/end screens.
func renderOverlay(dst *core.Screen, snap *Snapshot) {
	cy := dst.Height() / 2

	if snap.Banner != "" && snap.Phase == StatePlaying {
		dst.DrawTextCentered(cy-4, snap.Banner, core.ColorBrightYellow)
	}

	switch snap.Phase {
	case StateStart:
		dst.DrawTextCentered(cy-3, "G A L A G A", core.ColorBrightCyan)
		if !snap.AssetsReady {
			dst.DrawTextCentered(cy, "LOADING...", core.ColorGray)
		} else {
			dst.DrawTextCentered(cy, "PRESS ENTER TO START", core.ColorWhite)
		}
		dst.DrawTextCentered(cy+2, "←/→ move  SPACE fire  P pause  Q quit", core.ColorGray)
	case StatePaused:
		drawPanel(dst, cy, "PAUSED", core.ColorYellow, "Press P to resume")
	case StateGameOver:
		lines := []string{fmt.Sprintf("FINAL SCORE: %d", snap.Score)}
		if snap.NewHighScore {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "PRESS ENTER TO RESTART")
		drawPanel(dst, cy, "GAME OVER", core.ColorBrightRed, lines...)
	case StateVictory:
		lines := []string{"GALAXY SAVED", fmt.Sprintf("FINAL SCORE: %d", snap.Score)}
		if snap.NewHighScore {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "PRESS ENTER TO PLAY AGAIN")
		drawPanel(dst, cy, "YOU WIN!", core.ColorBrightYellow, lines...)
	}
}

// drawPanel draws a boxed message centered around row cy.
func drawPanel(dst *core.Screen, cy int, title string, c core.Color, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 4
	x := (dst.Width() - w) / 2
	y := cy - h/2

	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			dst.Set(col, row, ' ')
		}
	}
	dst.DrawBox(x, y, w, h, c)
	dst.DrawTextCentered(y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(y+3+i, l, core.ColorWhite)
	}
}
