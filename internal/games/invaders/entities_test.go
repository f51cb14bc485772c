package invaders

import (
	"testing"

	"github.com/vovakirdan/invaders/internal/core"
)

func TestShipStartsCentered(t *testing.T) {
	cfg := testConfig()
	s := newShip(cfg)

	if s.X != 400 || s.Y != 54 {
		t.Errorf("ship at (%v, %v), expected (400, 54)", s.X, s.Y)
	}
	if s.Dying() {
		t.Error("new ship should not be dying")
	}
}

func TestShipHitSamplesBottomCorners(t *testing.T) {
	cfg := testConfig()
	s := newShip(cfg) // spans y in [32, 76]

	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"bottom corners inside", 83, true},      // bottom edge 75
		{"bottom edge on ship top", 84, true},    // bottom edge 76, inclusive
		{"just above the ship", 85, false},       // bottom edge 77
		{"bottom corners below ship", 20, false}, // bottom edge 12, top edge 28
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBolt(400, tt.y, cfg.Bolt, false)
			if got := s.HitBy(b); got != tt.want {
				t.Errorf("HitBy = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestAlienHitSamplesTopCorners(t *testing.T) {
	cfg := testConfig()
	a := Alien{Box: core.NewBox(100, 400, 33, 33), Alive: true} // y in [383.5, 416.5]

	inside := newBolt(100, 380, cfg.Bolt, true) // top edge 388
	if !a.HitBy(inside) {
		t.Error("bolt with top corners inside should hit")
	}

	// Bottom corners inside, top corners above: not a hit.
	tunnelled := newBolt(100, 420, cfg.Bolt, true) // top 428, bottom 412
	if a.HitBy(tunnelled) {
		t.Error("only top corners count for alien hits")
	}

	a.Alive = false
	if a.HitBy(inside) {
		t.Error("dead slot should never be hit")
	}
}

func TestOwnershipGatesCollisions(t *testing.T) {
	cfg := testConfig()
	s := newShip(cfg)
	a := Alien{Box: core.NewBox(400, 54, 33, 33), Alive: true}

	playerBolt := newBolt(400, 50, cfg.Bolt, true)
	enemyBolt := newBolt(400, 50, cfg.Bolt, false)

	if s.HitBy(playerBolt) {
		t.Error("a ship bolt must never hit the ship")
	}
	if a.HitBy(enemyBolt) {
		t.Error("an alien bolt must never hit an alien")
	}
	if !s.HitBy(enemyBolt) || !a.HitBy(playerBolt) {
		t.Error("overlapping bolts of the right owner should hit")
	}
}

func TestShipDeathFrame(t *testing.T) {
	s := newShip(testConfig())
	if f := s.DeathFrame(0.3, 8); f != -1 {
		t.Errorf("intact ship frame = %d, expected -1", f)
	}

	s.startDying()
	tests := []struct {
		elapsed float64
		want    int
	}{
		{0, 0},
		{0.15, 4},
		{0.3, 7},
		{1.0, 7},
	}
	for _, tt := range tests {
		s.Elapsed = tt.elapsed
		if got := s.DeathFrame(0.3, 8); got != tt.want {
			t.Errorf("DeathFrame at %v = %d, expected %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestShipAdvanceDeathIsStrict(t *testing.T) {
	s := newShip(testConfig())
	s.startDying()

	if s.advanceDeath(0.25, 0.25) {
		t.Error("death should not finish when elapsed equals the duration")
	}
	if !s.advanceDeath(0.125, 0.25) {
		t.Error("death should finish once elapsed exceeds the duration")
	}
}

func TestBoltOffscreen(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		name string
		bolt Bolt
		want bool
	}{
		{"player inside", newBolt(10, 600, cfg.Bolt, true), false},
		{"player bottom at top edge", newBolt(10, 708, cfg.Bolt, true), true},
		{"enemy inside", newBolt(10, 100, cfg.Bolt, false), false},
		{"enemy top at floor", newBolt(10, -8, cfg.Bolt, false), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bolt.offscreen(cfg.World.Height); got != tt.want {
				t.Errorf("offscreen = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRamp(t *testing.T) {
	cfg := testConfig().Difficulty
	r := NewRamp(cfg)

	r.Accelerate()
	r.Accelerate()
	if want := 1.0 * 0.97 * 0.97; r.Interval() != want {
		t.Errorf("Interval = %v, expected %v", r.Interval(), want)
	}

	r.Reset()
	if r.Interval() != 1.0 {
		t.Errorf("Reset should restore the base interval, got %v", r.Interval())
	}
}

func TestRampDisabledAndFloor(t *testing.T) {
	cfg := testConfig().Difficulty
	cfg.Enabled = false
	r := NewRamp(cfg)
	r.Accelerate()
	if r.Interval() != 1.0 {
		t.Error("disabled ramp should not accelerate")
	}

	cfg = testConfig().Difficulty
	cfg.Factor = 0.5
	cfg.MinInterval = 0.3
	r = NewRamp(cfg)
	r.Accelerate()
	r.Accelerate()
	if r.Interval() != 0.3 {
		t.Errorf("Interval = %v, expected the 0.3 floor", r.Interval())
	}
}
