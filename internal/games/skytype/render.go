package skytype

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/skytype/internal/core"
	"github.com/vovakirdan/skytype/internal/games/skytype/sim"
)

// Visual characters for rendering
const (
	AircraftChar   = '<'
	BombChar       = '◉'
	ShieldChar     = '◊'
	HealthPackChar = '✚'
	MissileChar    = '-'
	FlameChar      = '~'
	CannonChar     = '●'
	GunChar        = 'o'
	HullChar       = '░'
	HullEdgeChar   = '█'
	BoundaryChar   = '┊'
	BarFull        = '#'
	BarEmpty       = '.'
	SeparatorChar  = '─'
	ArrowChar      = '▼'
)

const barWidth = 10

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	if g.world.Phase() == sim.PhaseSplash {
		g.renderSplash(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoundary(dst)
	g.renderWarship(dst)
	g.renderUnits(dst)
	g.renderPlayer(dst)
	g.renderShots(dst)
	g.renderMarkers(dst)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

// renderSplash draws the intro screen.
func (g *Game) renderSplash(dst *core.Screen) {
	mid := dst.Height() / 2
	p := g.world.Player()

	dst.DrawTextCenteredColor(mid-4, "S K Y T Y P E", core.ColorBrightCyan)
	dst.DrawTextCenteredColor(mid-3, strings.Repeat("~", 13), core.ColorCyan)
	if g.runtime.PlayerName != "" {
		dst.DrawTextCentered(mid-1, fmt.Sprintf("Pilot: %s   Level %d   Score %d", g.runtime.PlayerName, p.Level, p.Score))
	}
	dst.DrawTextCenteredColor(mid+1, "Type the letter on an aircraft to fire at it.", core.ColorGray)
	if g.mode == ModeDrill {
		dst.DrawTextCenteredColor(mid+2, "Drill: the aircraft never stop coming.", core.ColorGray)
	} else {
		dst.DrawTextCenteredColor(mid+2, "Shoot down the wave, then spell out the warship's sentence.", core.ColorGray)
	}
	dst.DrawTextCentered(mid+4, "Press ENTER to start")
}

// bar returns a fixed-width gauge for a 0..100 value.
func bar(value, width int) string {
	filled := 0
	if value > 0 {
		filled = min((value*width+99)/100, width)
	}
	return strings.Repeat(string(BarFull), filled) + strings.Repeat(string(BarEmpty), width-filled)
}

// formatClock renders seconds of play as HH:MM:SS.
func formatClock(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
}

// renderHUD draws health, score, level progress, clock and the enemy bar.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.world.Player()
	health := 0
	if p.MaxHealth > 0 {
		health = p.Health * 100 / p.MaxHealth
	}

	x := 1
	dst.DrawText(x, 0, "HP ")
	x += 3
	dst.DrawTextColor(x, 0, bar(health, barWidth), core.HealthColor(health))
	x += barWidth
	x += drawField(dst, x, 0, fmt.Sprintf(" %3d ", p.Health))
	x += drawField(dst, x, 0, fmt.Sprintf(" Score %d ", p.Score))
	x += drawField(dst, x, 0, fmt.Sprintf(" Lv %d (%d%%) ", p.Level, int(g.world.UpgradePercent())))
	drawField(dst, x, 0, " "+formatClock(g.world.Clock()))

	enemy := g.world.EnemyBar()
	label := fmt.Sprintf("Enemy %s %3d%%", bar(enemy, barWidth), enemy)
	ex := dst.Width() - utf8.RuneCountInString(label) - 1
	dst.DrawText(ex, 0, "Enemy ")
	dst.DrawTextColor(ex+6, 0, bar(enemy, barWidth), core.ColorRed)
	dst.DrawText(ex+6+barWidth, 0, fmt.Sprintf(" %3d%%", enemy))

	dst.DrawHLine(0, 1, dst.Width(), SeparatorChar, core.ColorGray)
	if p.Shielded {
		left := g.table.Player.ShieldSeconds - (g.world.Clock() - p.ShieldSince)
		dst.DrawTextColor(2, 1, fmt.Sprintf(" SHIELD %2.0fs ", max(left, 0)), core.ColorBrightCyan)
	}
}

// drawField writes text and returns its width.
func drawField(dst *core.Screen, x, y int, text string) int {
	dst.DrawText(x, y, text)
	return utf8.RuneCountInString(text)
}

// renderBoundary marks the column left of which units are lost.
func (g *Game) renderBoundary(dst *core.Screen) {
	x, _ := g.layout.cell(core.V(g.world.Boundary(), 0))
	for y := g.layout.top; y < g.layout.footer(); y++ {
		dst.SetColor(x, y, BoundaryChar, core.ColorGray)
	}
}

// setField draws a rune only inside the play field.
func (g *Game) setField(dst *core.Screen, x, y int, r rune, c core.Color) {
	if g.layout.inField(x, y) {
		dst.SetColor(x, y, r, c)
	}
}

// textField draws text clipped to the play field.
func (g *Game) textField(dst *core.Screen, x, y int, text string, c core.Color) {
	i := 0
	for _, r := range text {
		g.setField(dst, x+i, y, r, c)
		i++
	}
}

// unitGlyph returns the marker drawn before a unit's letter.
func unitGlyph(k sim.UnitKind) (rune, core.Color) {
	switch k {
	case sim.Bomb:
		return BombChar, core.ColorMagenta
	case sim.Shield:
		return ShieldChar, core.ColorCyan
	case sim.HealthPack:
		return HealthPackChar, core.ColorGreen
	default:
		return AircraftChar, core.ColorRed
	}
}

// renderUnits draws every flying unit as a glyph followed by its letter.
func (g *Game) renderUnits(dst *core.Screen) {
	for _, u := range g.world.Units() {
		if u.Kind == sim.Warship {
			continue
		}
		x, y := g.layout.cell(u.Pos)
		glyph, color := unitGlyph(u.Kind)
		g.setField(dst, x, y, glyph, color)
		g.setField(dst, x+1, y, u.Letter, core.ColorBrightWhite)
	}
}

// renderWarship draws the hull, its revealed guns and the target letter.
func (g *Game) renderWarship(dst *core.Screen) {
	ship, ok := g.world.Warship()
	if !ok {
		return
	}
	wc := g.table.Warship

	left, top := g.layout.cell(ship.Pos.Sub(core.V(wc.Width/2, wc.Height/2)))
	w := int(wc.Width / UnitsPerCol)
	h := int(wc.Height / UnitsPerRow)
	for dy := range h {
		for dx := range w {
			r := HullChar
			if dx == 0 || dy == 0 || dx == w-1 || dy == h-1 {
				r = HullEdgeChar
			}
			g.setField(dst, left+dx, top+dy, r, core.ColorGray)
		}
	}

	rig := g.world.GunRig()
	for i := 0; i < rig.GunCount && i < len(wc.Guns); i++ {
		off := wc.GunOffset(i)
		x, y := g.layout.cell(ship.Pos.Add(core.V(off.X, off.Y)))
		g.setField(dst, x, y, GunChar, core.ColorOrange)
	}
	if rig.CannonArmed {
		off := wc.CannonOffset()
		x, y := g.layout.cell(ship.Pos.Add(core.V(off.X, off.Y)))
		g.setField(dst, x, y, CannonChar, core.ColorRed)
	}

	cx, cy := g.layout.cell(ship.Pos)
	g.textField(dst, cx-1, cy, "["+string(ship.Letter)+"]", core.ColorBrightYellow)
}

// renderPlayer draws the jet, bracketed while shielded.
func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.world.Player()
	x, y := g.layout.cell(p.Pos)
	g.textField(dst, x-1, y, "=>", core.ColorBrightCyan)
	if p.Shielded {
		g.setField(dst, x-2, y, '(', core.ColorCyan)
		g.setField(dst, x+1, y, ')', core.ColorCyan)
	}
}

// renderShots draws missiles and enemy fire.
func (g *Game) renderShots(dst *core.Screen) {
	for _, s := range g.world.Projectiles() {
		x, y := g.layout.cell(s.Pos)
		switch s.Kind {
		case sim.Missile:
			g.setField(dst, x, y, MissileChar, core.ColorBrightCyan)
		case sim.Flame:
			g.setField(dst, x, y, FlameChar, core.ColorOrange)
		case sim.CannonShell:
			g.setField(dst, x, y, CannonChar, core.ColorBrightRed)
		}
	}
}

// renderMarkers draws miss, explosion and pickup notices.
func (g *Game) renderMarkers(dst *core.Screen) {
	for _, m := range g.markers {
		x, y := g.layout.cell(m.pos)
		g.textField(dst, x, y, m.text, m.color)
	}
}

// renderFooter draws the warship sentence with the target letter lit, and
// above it an arrow that follows the warship's column every frame. Outside
// encounters it shows a key hint.
func (g *Game) renderFooter(dst *core.Screen) {
	arrowRow, row := g.layout.footer(), g.layout.footer()+1
	enc, ok := g.world.Encounter()
	if !ok {
		hint := "type letters to fire   SPACE pause   ESC quit"
		if g.mode == ModeDrill {
			hint = "drill   " + hint
		}
		dst.DrawTextCenteredColor(row, hint, core.ColorGray)
		return
	}

	if ship, ok := g.world.Warship(); ok {
		x, _ := g.layout.cell(ship.Pos)
		dst.SetColor(min(max(x, 0), dst.Width()-1), arrowRow, ArrowChar, core.ColorBrightYellow)
	}

	span := max(dst.Width()-2, 1)
	start := 0
	if len(enc.Letters) > span {
		start = max(0, min(enc.Index-span/2, len(enc.Letters)-span))
	}
	x0 := 1
	if len(enc.Letters) <= span {
		x0 = (dst.Width() - len(enc.Letters)) / 2
	}

	for i, gl := range enc.Glyphs() {
		if i < start || i >= start+span {
			continue
		}
		color := core.ColorWhite
		switch gl.State {
		case sim.GlyphDestroyed:
			color = core.ColorGray
		case sim.GlyphTarget:
			color = core.ColorBrightYellow
		}
		dst.SetColor(x0+i-start, row, gl.Letter, color)
	}
}

// renderOverlay draws phase dialogs.
func (g *Game) renderOverlay(dst *core.Screen) {
	p := g.world.Player()
	switch g.world.Phase() {
	case sim.PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press SPACE to resume")

	case sim.PhaseExiting:
		g.drawCenteredBox(dst, "LEAVE THE GAME?", "ENTER leave  |  ESC keep playing")

	case sim.PhaseUpgrading:
		title := fmt.Sprintf("LEVEL %d", p.Level)
		g.drawCenteredBox(dst, title, "New letters unlocked  |  Press ENTER")

	case sim.PhaseCheckpoint:
		subtitle := fmt.Sprintf("Score: %d  |  R play again  |  Q menu", p.Score)
		g.drawCenteredBox(dst, "CHECKPOINT", subtitle)

	case sim.PhaseFailed:
		subtitle := fmt.Sprintf("Score: %d  |  R try again  |  Q menu", p.Score)
		g.drawCenteredBox(dst, "SHOT DOWN", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()
	titleW := utf8.RuneCountInString(title)
	subtitleW := utf8.RuneCountInString(subtitle)

	boxW := max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	dst.DrawTextColor(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
