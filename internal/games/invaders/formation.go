package invaders

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

// Formation is the grid of aliens marching in lock-step.
// Slots are stored in a fixed arena indexed row*cols+col, with row 0 at the
// bottom. The grid never changes shape; killed slots stay with Alive=false.
type Formation struct {
	cfg    config.InvadersConfig
	rows   int
	cols   int
	aliens []Alien

	dir      int     // +1 right, -1 left
	elapsed  float64 // seconds since the last lock-step
	step     int     // lock-steps since the last shot
	nextFire int     // lock-steps between shots, redrawn after every shot

	ramp   *Ramp
	rng    *rand.Rand
	logger *log.Logger
}

// NewFormation lays out a full formation at its starting position.
func NewFormation(cfg config.InvadersConfig, ramp *Ramp, rng *rand.Rand) *Formation {
	fc := cfg.Formation
	f := &Formation{
		cfg:    cfg,
		rows:   fc.Rows,
		cols:   fc.Cols,
		aliens: make([]Alien, fc.Rows*fc.Cols),
		dir:    1,
		ramp:   ramp,
		rng:    rng,
		logger: discardLogger,
	}

	for row := range fc.Rows {
		y := cfg.World.Height - fc.Ceiling -
			float64(fc.Rows-1-row)*(fc.AlienHeight+fc.VSep) - fc.AlienHeight/2
		for col := range fc.Cols {
			x := float64(col+1)*fc.HSep + float64(col)*fc.AlienWidth + fc.AlienWidth/2
			f.aliens[row*fc.Cols+col] = Alien{
				Box:   core.NewBox(x, y, fc.AlienWidth, fc.AlienHeight),
				Style: rowStyle(row, fc.Styles),
				Alive: true,
			}
		}
	}

	f.nextFire = f.drawFireGap()
	return f
}

// SetLogger sets the logger that receives invariant violations.
func (f *Formation) SetLogger(l *log.Logger) {
	if l != nil {
		f.logger = l
	}
}

// rowStyle pairs rows bottom-to-top and cycles through the styles.
func rowStyle(row, styles int) int {
	if styles <= 0 {
		return 0
	}
	return (row / 2) % styles
}

// Rows returns the number of formation rows.
func (f *Formation) Rows() int { return f.rows }

// Cols returns the number of formation columns.
func (f *Formation) Cols() int { return f.cols }

// Direction returns +1 while sweeping right and -1 while sweeping left.
func (f *Formation) Direction() int { return f.dir }

// Step returns the lock-steps taken since the last shot.
func (f *Formation) Step() int { return f.step }

// NextFire returns the lock-step count at which the next shot is taken.
func (f *Formation) NextFire() int { return f.nextFire }

// Alien returns the slot at (row, col). Out-of-range indices yield nil.
func (f *Formation) Alien(row, col int) *Alien {
	if !invariant(f.logger, f.inBounds(row, col), "formation index out of range", "row", row, "col", col) {
		return nil
	}
	return &f.aliens[row*f.cols+col]
}

func (f *Formation) inBounds(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}

// Aliens returns the arena in raster order. Callers must not modify it.
func (f *Formation) Aliens() []Alien {
	return f.aliens
}

// AliveCount returns the number of surviving aliens.
func (f *Formation) AliveCount() int {
	n := 0
	for i := range f.aliens {
		if f.aliens[i].Alive {
			n++
		}
	}
	return n
}

// ReachedDefenseLine reports whether any alive alien's lower edge is at or
// below the defense line.
func (f *Formation) ReachedDefenseLine() bool {
	for i := range f.aliens {
		if f.aliens[i].Alive && f.aliens[i].Bottom() <= f.cfg.World.DefenseLine {
			return true
		}
	}
	return false
}

// Extents returns the left and right edges of the alive aliens.
// ok is false when the formation is empty.
func (f *Formation) Extents() (left, right float64, ok bool) {
	for i := range f.aliens {
		a := &f.aliens[i]
		if !a.Alive {
			continue
		}
		if !ok {
			left, right, ok = a.Left(), a.Right(), true
			continue
		}
		left = min(left, a.Left())
		right = max(right, a.Right())
	}
	return left, right, ok
}

// HitTest finds the first alive alien, in raster order, struck by a ship bolt.
func (f *Formation) HitTest(b Bolt) (row, col int, ok bool) {
	for i := range f.aliens {
		if f.aliens[i].HitBy(b) {
			return i / f.cols, i % f.cols, true
		}
	}
	return 0, 0, false
}

// Kill empties the slot at (row, col).
func (f *Formation) Kill(row, col int) {
	a := f.Alien(row, col)
	if a == nil {
		return
	}
	if !invariant(f.logger, a.Alive, "kill of empty formation slot", "row", row, "col", col) {
		return
	}
	a.Alive = false
}

// Advance accumulates dt and takes at most one lock-step once the ramp
// interval is exceeded. It returns the bolt fired on that lock-step, if any.
func (f *Formation) Advance(dt float64) (Bolt, bool) {
	f.elapsed += dt
	if f.elapsed <= f.ramp.Interval() {
		return Bolt{}, false
	}
	f.elapsed = 0

	f.sweepStep()
	f.step++
	if f.step < f.nextFire || f.AliveCount() == 0 {
		return Bolt{}, false
	}
	f.step = 0
	return f.fire()
}

// sweepStep moves every alive alien one lock-step. Reaching a margin turns
// the formation around with a single diagonal step: down and back.
func (f *Formation) sweepStep() {
	left, right, ok := f.Extents()
	if !ok {
		return
	}

	walk, drop := f.cfg.Formation.HWalk, f.cfg.Formation.VWalk
	margin := f.cfg.Formation.HSep

	switch {
	case f.dir > 0 && right <= f.cfg.World.Width-margin:
		f.shift(walk, 0)
	case f.dir > 0:
		f.shift(-walk, -drop)
		f.dir = -1
	case left >= margin:
		f.shift(-walk, 0)
	default:
		f.shift(walk, -drop)
		f.dir = 1
	}
}

func (f *Formation) shift(dx, dy float64) {
	for i := range f.aliens {
		if f.aliens[i].Alive {
			f.aliens[i].X += dx
			f.aliens[i].Y += dy
		}
	}
}

// fire picks a random non-empty column and returns a downward bolt from the
// lowest survivor in it.
func (f *Formation) fire() (Bolt, bool) {
	f.nextFire = f.drawFireGap()

	if !invariant(f.logger, f.AliveCount() > 0, "formation fired with no survivors") {
		return Bolt{}, false
	}

	col := f.rng.Intn(f.cols)
	for f.columnEmpty(col) {
		col = f.rng.Intn(f.cols)
	}

	for row := range f.rows {
		a := &f.aliens[row*f.cols+col]
		if a.Alive {
			return newBolt(a.X, a.Bottom(), f.cfg.Bolt, false), true
		}
	}
	return Bolt{}, false
}

func (f *Formation) columnEmpty(col int) bool {
	for row := range f.rows {
		if f.aliens[row*f.cols+col].Alive {
			return false
		}
	}
	return true
}

// drawFireGap returns a uniform draw from [1, MaxFireGap].
func (f *Formation) drawFireGap() int {
	gap := f.cfg.Bolt.MaxFireGap
	if gap < 1 {
		gap = 1
	}
	return 1 + f.rng.Intn(gap)
}
