package config

import (
	"errors"
	"fmt"
)

// ValidationError contains details about a rejected configuration value.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate reports every value the simulation cannot run with.
// The returned error joins one ValidationError per problem.
func (c InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, code, format string, args ...any) {
		if !ok {
			errs = append(errs, ValidationError{Code: code, Message: fmt.Sprintf(format, args...)})
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "WORLD_SIZE",
		"world must have positive size, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.DefenseLine >= 0 && c.World.DefenseLine < c.World.Height, "DEFENSE_LINE",
		"defense line %v must lie inside the world", c.World.DefenseLine)

	f := c.Formation
	check(f.Rows > 0 && f.Cols > 0, "FORMATION_GRID", "formation needs at least one row and column, got %dx%d", f.Rows, f.Cols)
	check(f.AlienWidth > 0 && f.AlienHeight > 0, "ALIEN_SIZE", "aliens must have positive size")
	check(f.HWalk > 0, "H_WALK", "h_walk must be positive, got %v", f.HWalk)
	check(f.VWalk >= 0, "V_WALK", "v_walk must not be negative, got %v", f.VWalk)
	check(f.Styles > 0, "STYLES", "styles must be positive, got %d", f.Styles)
	gridW := float64(f.Cols)*(f.AlienWidth+f.HSep) + f.HSep
	check(gridW <= c.World.Width, "FORMATION_WIDTH", "formation width %v exceeds world width %v", gridW, c.World.Width)

	s := c.Ship
	check(s.Width > 0 && s.Height > 0, "SHIP_SIZE", "ship must have positive size")
	check(s.Width <= c.World.Width, "SHIP_WIDTH", "ship is wider than the world")
	check(s.Speed >= 0, "SHIP_SPEED", "ship speed must not be negative")
	check(s.Lives > 0, "LIVES", "lives must be positive, got %d", s.Lives)
	check(s.DeathDuration >= 0, "DEATH_DURATION", "death duration must not be negative")
	check(s.DeathFrames > 0, "DEATH_FRAMES", "death frames must be positive")

	check(c.Bolt.Width > 0 && c.Bolt.Height > 0, "BOLT_SIZE", "bolts must have positive size")
	check(c.Bolt.Speed > 0, "BOLT_SPEED", "bolt speed must be positive, got %v", c.Bolt.Speed)
	check(c.Bolt.MaxFireGap >= 1, "FIRE_GAP", "max_fire_gap must be at least 1, got %d", c.Bolt.MaxFireGap)

	sc := c.Scoring
	check(sc.KillPoints >= 0, "KILL_POINTS", "kill_points must not be negative, got %d", sc.KillPoints)
	check(sc.PointsIncrement >= 0, "POINTS_INCREMENT", "points_increment must not be negative, got %d", sc.PointsIncrement)
	check(sc.ShipHitPenalty >= 0, "SHIP_HIT_PENALTY", "ship_hit_penalty must not be negative, got %d", sc.ShipHitPenalty)
	check(sc.KillsRequired >= 0, "KILLS_REQUIRED", "kills_required must not be negative")

	d := c.Difficulty
	check(d.Interval > 0, "RAMP_INTERVAL", "interval must be positive, got %v", d.Interval)
	check(d.Factor > 0 && d.Factor <= 1, "RAMP_FACTOR", "factor must be in (0, 1], got %v", d.Factor)
	check(d.MinInterval >= 0, "RAMP_MIN", "min_interval must not be negative")

	return errors.Join(errs...)
}
