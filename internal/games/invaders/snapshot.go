package invaders

import "math"

// Snapshot contains the complete simulation state in primitive form.
// Float positions are stored as their IEEE-754 bits so that equal states
// hash equally.
type Snapshot struct {
	State int
	Lives int
	Score int
	Won   bool

	Tick      uint64
	Kills     int
	Points    int
	Direction int
	Step      int
	NextFire  int
	Elapsed   uint64 // formation accumulator bits
	Interval  uint64 // ramp interval bits

	// Ship is present when ShipAlive; each value is float bits.
	ShipAlive   bool
	ShipX       uint64
	ShipY       uint64
	ShipPhase   int
	ShipElapsed uint64

	ShipDies  bool
	PlayerWon bool
	Breached  bool

	// Aliens: 3 values per slot in raster order (alive, x bits, y bits).
	AlienData []uint64

	// Bolts: 3 values per bolt (x bits, y bits, velocity bits).
	BoltData []uint64
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:    int(s.state),
		Lives:    s.lives,
		Score:    s.score,
		Won:      s.won,
		Interval: math.Float64bits(s.ramp.Interval()),
	}
	if s.wave != nil {
		s.wave.fillSnapshot(&snap)
	}
	return snap
}

// Snapshot returns the round state alone.
func (w *Wave) Snapshot() Snapshot {
	snap := Snapshot{
		Lives:    w.lives,
		Score:    w.score,
		Interval: math.Float64bits(w.ramp.Interval()),
	}
	w.fillSnapshot(&snap)
	return snap
}

func (w *Wave) fillSnapshot(snap *Snapshot) {
	f := w.formation
	snap.Tick = w.tick
	snap.Kills = w.kills
	snap.Points = w.points
	snap.Direction = f.dir
	snap.Step = f.step
	snap.NextFire = f.nextFire
	snap.Elapsed = math.Float64bits(f.elapsed)
	snap.ShipDies = w.shipDies
	snap.PlayerWon = w.playerWon
	snap.Breached = w.breached

	if w.ship != nil {
		snap.ShipAlive = true
		snap.ShipX = math.Float64bits(w.ship.X)
		snap.ShipY = math.Float64bits(w.ship.Y)
		snap.ShipPhase = int(w.ship.Phase)
		snap.ShipElapsed = math.Float64bits(w.ship.Elapsed)
	}

	snap.AlienData = make([]uint64, 0, len(f.aliens)*3)
	for _, a := range f.aliens {
		var alive uint64
		if a.Alive {
			alive = 1
		}
		snap.AlienData = append(snap.AlienData, alive, math.Float64bits(a.X), math.Float64bits(a.Y))
	}

	snap.BoltData = make([]uint64, 0, len(w.bolts)*3)
	for _, b := range w.bolts {
		snap.BoltData = append(snap.BoltData,
			math.Float64bits(b.X), math.Float64bits(b.Y), math.Float64bits(b.Velocity))
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Points)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Step)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextFire)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipPhase) //#nosec G115 -- hash computation
	h = h*31 + snap.Elapsed
	h = h*31 + snap.Interval
	h = h*31 + snap.ShipX
	h = h*31 + snap.ShipY
	h = h*31 + snap.ShipElapsed

	for _, flag := range []bool{snap.Won, snap.ShipAlive, snap.ShipDies, snap.PlayerWon, snap.Breached} {
		h *= 31
		if flag {
			h++
		}
	}

	for _, v := range snap.AlienData {
		h = h*31 + v
	}
	for _, v := range snap.BoltData {
		h = h*31 + v
	}

	return h
}
