package invaders

import "github.com/vovakirdan/invaders/internal/config"

// Ramp is the formation speed ramp: the lock-step interval shrinks by a
// constant factor on every kill. A Session owns one Ramp and shares it with
// every round of a game, so the speed carries over between rounds until
// Reset is called for a new game.
type Ramp struct {
	base     float64
	interval float64
	factor   float64
	min      float64
	enabled  bool
}

// NewRamp creates a ramp at its base interval.
func NewRamp(cfg config.RampConfig) *Ramp {
	return &Ramp{
		base:     cfg.Interval,
		interval: cfg.Interval,
		factor:   cfg.Factor,
		min:      cfg.MinInterval,
		enabled:  cfg.Enabled,
	}
}

// Interval returns the current seconds per lock-step.
func (r *Ramp) Interval() float64 {
	return r.interval
}

// Accelerate applies one kill's worth of speed-up.
func (r *Ramp) Accelerate() {
	if !r.enabled {
		return
	}
	r.interval *= r.factor
	if r.min > 0 && r.interval < r.min {
		r.interval = r.min
	}
}

// Reset restores the base interval.
func (r *Ramp) Reset() {
	r.interval = r.base
}
