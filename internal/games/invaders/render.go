package invaders

import (
	"github.com/vovakirdan/invaders/internal/core"
)

// Visual characters for rendering
const (
	ShipChar        = '▲'
	PlayerBoltChar  = '|'
	EnemyBoltChar   = '!'
	DefenseLineChar = '─'
)

// AlienGlyphs are indexed by formation style.
var AlienGlyphs = []rune{'▼', '◆', '■', '●'}

// DeathGlyphs animate the ship's death sequence frame by frame.
var DeathGlyphs = []rune{'▲', '✶', '✷', '✸', '✹', '*', '·', ' '}

// RenderDrawables projects world drawables onto dst.
func RenderDrawables(dst *core.Screen, vp core.Viewport, items []core.Drawable) {
	for _, d := range items {
		switch d.Kind {
		case core.DrawShip:
			r := vp.Project(d.Box)
			if d.Style < 0 {
				dst.DrawRect(r, ShipChar, core.ColorBrightGreen)
			} else {
				dst.DrawRect(r, DeathGlyphs[d.Style%len(DeathGlyphs)], core.ColorOrange)
			}

		case core.DrawAlien:
			glyph := AlienGlyphs[d.Style%len(AlienGlyphs)]
			dst.DrawRect(vp.Project(d.Box), glyph, core.StyleColor(d.Style))

		case core.DrawBolt:
			x, y := vp.ToCell(core.Point{X: d.Box.X, Y: d.Box.Y})
			if d.Style > 0 {
				dst.SetColored(x, y, PlayerBoltChar, core.ColorBrightYellow)
			} else {
				dst.SetColored(x, y, EnemyBoltChar, core.ColorBrightRed)
			}

		case core.DrawDefenseLine:
			_, y := vp.ToCell(core.Point{X: 0, Y: d.Box.Y})
			dst.DrawHLine(0, y, dst.Width(), DefenseLineChar, core.ColorGray)

		case core.DrawText:
			x, y := vp.ToCell(core.Point{X: d.Box.X, Y: d.Box.Y})
			if d.Align == core.AlignCenter {
				dst.DrawTextCentered(x, y, d.Text, core.ColorWhite)
			} else {
				dst.DrawTextColored(x, y, d.Text, core.ColorWhite)
			}
		}
	}
}
