package invaders

import (
	"math"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

// ShipPhase is the death sub-state of the ship.
type ShipPhase int

const (
	ShipNormal ShipPhase = iota
	ShipDying
)

// Ship is the player-controlled cannon.
type Ship struct {
	core.Box
	Phase   ShipPhase
	Elapsed float64 // seconds spent in ShipDying
}

// newShip places a fresh ship at the horizontal center of the world.
func newShip(cfg config.InvadersConfig) *Ship {
	return &Ship{
		Box: core.NewBox(
			cfg.World.Width/2,
			cfg.Ship.Bottom+cfg.Ship.Height/2,
			cfg.Ship.Width,
			cfg.Ship.Height,
		),
	}
}

// Dying reports whether the death sequence is running.
func (s *Ship) Dying() bool {
	return s.Phase == ShipDying
}

// HitBy reports whether an enemy bolt strikes the ship.
// Only the bolt's bottom corners are sampled.
func (s *Ship) HitBy(b Bolt) bool {
	if b.IsPlayerBolt() {
		return false
	}
	return s.ContainsAny(b.BottomCorners())
}

func (s *Ship) startDying() {
	s.Phase = ShipDying
	s.Elapsed = 0
}

// advanceDeath moves the death sequence forward and reports whether it has
// run longer than duration.
func (s *Ship) advanceDeath(dt, duration float64) bool {
	s.Elapsed += dt
	return s.Elapsed > duration
}

// DeathFrame returns the animation frame for the death sequence, or -1 for
// an intact ship.
func (s *Ship) DeathFrame(duration float64, frames int) int {
	if s.Phase != ShipDying {
		return -1
	}
	if duration <= 0 || frames <= 1 {
		return 0
	}
	frame := int(math.Round(s.Elapsed / duration * float64(frames)))
	return core.Clamp(frame, 0, frames-1)
}

// Alien is one slot of the formation arena.
type Alien struct {
	core.Box
	Style int
	Alive bool
}

// HitBy reports whether a ship bolt strikes the alien.
// Only the bolt's top corners are sampled.
func (a *Alien) HitBy(b Bolt) bool {
	if !a.Alive || !b.IsPlayerBolt() {
		return false
	}
	return a.ContainsAny(b.TopCorners())
}

// Bolt is a projectile. The sign of Velocity identifies the owner:
// positive bolts were fired by the ship and travel up.
type Bolt struct {
	core.Box
	Velocity float64
}

func newBolt(x, y float64, cfg config.BoltConfig, up bool) Bolt {
	v := cfg.Speed
	if !up {
		v = -v
	}
	return Bolt{Box: core.NewBox(x, y, cfg.Width, cfg.Height), Velocity: v}
}

// IsPlayerBolt reports whether the ship fired this bolt.
func (b Bolt) IsPlayerBolt() bool {
	return b.Velocity > 0
}

// offscreen reports whether the bolt has left the world vertically.
func (b Bolt) offscreen(worldH float64) bool {
	if b.IsPlayerBolt() {
		return b.Bottom() >= worldH
	}
	return b.Top() <= 0
}
