package invaders

import (
	"fmt"

	"github.com/vovakirdan/invaders/internal/core"
)

// HUD texts.
const (
	TextLogo     = "War Against Humanity"
	TextStart    = "Press enter to start"
	TextContinue = "Press enter to continue"
	TextFire     = "Press space to fire"
	TextWin      = "Well done! You have completed the game."
	TextLose     = "You lost :("
	TextRestart  = "Press R to play again"
)

// Drawables lists everything the renderer should draw this frame.
func (s *Session) Drawables() []core.Drawable {
	wc := s.cfg.World
	out := make([]core.Drawable, 0, s.cfg.Formation.Rows*s.cfg.Formation.Cols+16)

	if s.wave != nil {
		out = s.wave.appendDrawables(out)
	}

	out = append(out,
		textAt(TextLogo, wc.Width/2, wc.Height*24/25, core.AlignCenter),
		textAt(fmt.Sprintf("Lives: %d", s.lives), wc.Width*0.02, wc.Height*0.9, core.AlignLeft),
		textAt(fmt.Sprintf("Player's score: %d", s.score), wc.Width*0.65, wc.Height*0.9, core.AlignLeft),
	)

	switch s.state {
	case StateInactive:
		out = append(out, textAt(TextStart, wc.Width/2, wc.Height/2, core.AlignCenter))
	case StateActive:
		out = append(out, textAt(TextFire, wc.Width/2, wc.DefenseLine/3, core.AlignCenter))
	case StatePaused:
		out = append(out, textAt(TextContinue, wc.Width/2, wc.Height/2, core.AlignCenter))
	case StateComplete:
		msg := TextLose
		if s.won {
			msg = TextWin
		}
		out = append(out,
			textAt(msg, wc.Width/2, wc.Height/2, core.AlignCenter),
			textAt(TextRestart, wc.Width/2, wc.Height*0.4, core.AlignCenter),
		)
	}
	return out
}

func textAt(text string, x, y float64, align core.TextAlign) core.Drawable {
	return core.Drawable{Kind: core.DrawText, Box: core.NewBox(x, y, 0, 0), Text: text, Align: align}
}

// appendDrawables adds the ship, alive aliens, defense line and bolts.
func (w *Wave) appendDrawables(out []core.Drawable) []core.Drawable {
	if w.ship != nil {
		out = append(out, core.Drawable{
			Kind:  core.DrawShip,
			Box:   w.ship.Box,
			Style: w.ship.DeathFrame(w.cfg.Ship.DeathDuration, w.cfg.Ship.DeathFrames),
		})
	}

	for _, a := range w.formation.Aliens() {
		if a.Alive {
			out = append(out, core.Drawable{Kind: core.DrawAlien, Box: a.Box, Style: a.Style})
		}
	}

	out = append(out, core.Drawable{
		Kind: core.DrawDefenseLine,
		Box:  core.NewBox(w.cfg.World.Width/2, w.cfg.World.DefenseLine, w.cfg.World.Width, 0),
	})

	for _, b := range w.bolts {
		style := -1
		if b.IsPlayerBolt() {
			style = 1
		}
		out = append(out, core.Drawable{Kind: core.DrawBolt, Box: b.Box, Style: style})
	}
	return out
}
