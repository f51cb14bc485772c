package invaders

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

// Wave is the round engine. It owns the ship, the formation and every live
// bolt, and resolves movement, collisions and scoring once per frame.
type Wave struct {
	cfg       config.InvadersConfig
	ship      *Ship
	formation *Formation
	bolts     []Bolt
	ramp      *Ramp
	audio     core.Audio
	logger    *log.Logger

	lives  int
	score  int
	kills  int
	points int
	tick   uint64

	shipDies  bool
	playerWon bool
	breached  bool
}

// NewWave creates a round with a full formation and a fresh ship.
// score carries the running total of the game into the round.
func NewWave(cfg config.InvadersConfig, ramp *Ramp, rng *rand.Rand, audio core.Audio, lives, score int) *Wave {
	if audio == nil {
		audio = core.NopAudio{}
	}
	return &Wave{
		cfg:       cfg,
		ship:      newShip(cfg),
		formation: NewFormation(cfg, ramp, rng),
		bolts:     make([]Bolt, 0, 8),
		ramp:      ramp,
		audio:     audio,
		logger:    discardLogger,
		lives:     lives,
		score:     score,
		points:    cfg.Scoring.KillPoints,
	}
}

// SetLogger sets the logger that receives invariant violations of the round.
func (w *Wave) SetLogger(l *log.Logger) {
	if l != nil {
		w.logger = l
		w.formation.SetLogger(l)
	}
}

// Ship returns the ship, or nil once it has been destroyed.
func (w *Wave) Ship() *Ship { return w.ship }

// Formation returns the alien formation.
func (w *Wave) Formation() *Formation { return w.formation }

// Bolts returns the live bolts. Callers must not modify the slice.
func (w *Wave) Bolts() []Bolt { return w.bolts }

// Score returns the running score.
func (w *Wave) Score() int { return w.score }

// Kills returns the aliens destroyed this round.
func (w *Wave) Kills() int { return w.kills }

// KillPoints returns the points the next kill is worth before any ratchet.
func (w *Wave) KillPoints() int { return w.points }

// Lives returns the lives shown by the round.
func (w *Wave) Lives() int { return w.lives }

// SetLives updates the lives shown by the round.
func (w *Wave) SetLives(n int) { w.lives = n }

// ShipDies reports whether the death sequence has finished.
func (w *Wave) ShipDies() bool { return w.shipDies }

// PlayerWon reports whether the formation has been cleared.
func (w *Wave) PlayerWon() bool { return w.playerWon }

// Breached reports whether the formation reached the defense line.
func (w *Wave) Breached() bool { return w.breached }

// Dying reports whether the ship death sequence is running.
func (w *Wave) Dying() bool {
	return w.ship != nil && w.ship.Dying()
}

// PlayerBoltLive reports whether a ship-fired bolt is in flight.
func (w *Wave) PlayerBoltLive() bool {
	for _, b := range w.bolts {
		if b.IsPlayerBolt() {
			return true
		}
	}
	return false
}

// Update advances the round by dt seconds.
// A zero dt changes nothing.
func (w *Wave) Update(in core.Input, dt float64) {
	if !invariant(w.logger, dt >= 0, "negative frame delta", "dt", dt) || dt == 0 {
		return
	}
	w.tick++

	if w.Dying() {
		if w.ship.advanceDeath(dt, w.cfg.Ship.DeathDuration) {
			w.ship = nil
			w.shipDies = true
			w.bolts = w.bolts[:0]
		}
		return
	}

	w.moveShip(in)
	if b, fired := w.formation.Advance(dt); fired {
		w.bolts = append(w.bolts, b)
	}
	w.fireBolt(in)
	w.updateBolts()

	if w.formation.AliveCount() == 0 {
		w.playerWon = true
	}
	if w.formation.ReachedDefenseLine() {
		w.breached = true
	}
}

// Respawn places a new ship after a lost life, keeping formation and score.
func (w *Wave) Respawn() {
	w.ship = newShip(w.cfg)
	w.shipDies = false
	w.playerWon = false
}

func (w *Wave) moveShip(in core.Input) {
	if w.ship == nil {
		return
	}
	speed := w.cfg.Ship.Speed
	switch {
	case in.IsHeld(core.ActionLeft):
		w.ship.X -= speed
	case in.IsHeld(core.ActionRight):
		w.ship.X += speed
	default:
		return
	}
	half := w.ship.W / 2
	w.ship.X = core.ClampF(w.ship.X, half, w.cfg.World.Width-half)
}

// fireBolt launches a bolt from the ship's nose while fire is held.
// Only one ship bolt may be in flight; extra requests are dropped.
func (w *Wave) fireBolt(in core.Input) {
	if w.ship == nil || !in.IsHeld(core.ActionFire) || w.PlayerBoltLive() {
		return
	}
	w.bolts = append(w.bolts, newBolt(w.ship.X, w.ship.Top(), w.cfg.Bolt, true))
	w.audio.PlaySound(core.SoundShipShoot)
}

// updateBolts moves every bolt and resolves collisions. Removed bolts are
// compacted out after the scan.
func (w *Wave) updateBolts() {
	kept := w.bolts[:0]
	for _, b := range w.bolts {
		b.Y += b.Velocity
		if b.offscreen(w.cfg.World.Height) {
			continue
		}

		if b.IsPlayerBolt() {
			if row, col, ok := w.formation.HitTest(b); ok {
				w.killAlien(row, col)
				continue
			}
		} else if w.ship != nil && !w.ship.Dying() && w.ship.HitBy(b) {
			w.hitShip()
			continue
		}
		kept = append(kept, b)
	}
	w.bolts = kept
}

func (w *Wave) killAlien(row, col int) {
	w.formation.Kill(row, col)
	w.kills++
	if w.kills > w.cfg.KillsThreshold() {
		w.points += w.cfg.Scoring.PointsIncrement
	}
	w.score += w.points
	w.ramp.Accelerate()
	w.audio.PlaySound(core.SoundAlienBlast)
}

func (w *Wave) hitShip() {
	w.score -= w.cfg.Scoring.ShipHitPenalty
	w.ship.startDying()
	w.audio.PlaySound(core.SoundPlayerLose)
}
