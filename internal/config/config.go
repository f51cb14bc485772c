// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders engine.
package config

// InvadersConfig contains every tunable constant of the simulation.
// It is loaded once at startup and treated as immutable afterwards.
type InvadersConfig struct {
	World      WorldConfig     `yaml:"world"`
	Formation  FormationConfig `yaml:"formation"`
	Ship       ShipConfig      `yaml:"ship"`
	Bolt       BoltConfig      `yaml:"bolt"`
	Scoring    ScoringConfig   `yaml:"scoring"`
	Difficulty RampConfig      `yaml:"difficulty"`
}

// WorldConfig defines the play field in world units.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	DefenseLine float64 `yaml:"defense_line"` // y-coordinate the formation must not reach
}

// FormationConfig defines the alien grid and its lock-step walk.
type FormationConfig struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	AlienWidth  float64 `yaml:"alien_width"`
	AlienHeight float64 `yaml:"alien_height"`
	HSep        float64 `yaml:"h_sep"`   // horizontal gap, also the sweep margin
	VSep        float64 `yaml:"v_sep"`   // vertical gap between rows
	Ceiling     float64 `yaml:"ceiling"` // gap between the top row and the top of the world
	HWalk       float64 `yaml:"h_walk"`  // horizontal distance per lock-step
	VWalk       float64 `yaml:"v_walk"`  // descent per direction reversal
	Styles      int     `yaml:"styles"`  // number of cosmetic row styles
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Bottom        float64 `yaml:"bottom"` // gap between the ship and the bottom of the world
	Speed         float64 `yaml:"speed"`  // distance per frame while a move key is held
	Lives         int     `yaml:"lives"`
	DeathDuration float64 `yaml:"death_duration"` // seconds
	DeathFrames   int     `yaml:"death_frames"`
}

// BoltConfig defines projectiles.
type BoltConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`        // distance per frame
	MaxFireGap int     `yaml:"max_fire_gap"` // upper bound of lock-steps between alien shots
}

// ScoringConfig defines the points economy.
type ScoringConfig struct {
	KillPoints      int `yaml:"kill_points"`      // initial points per alien
	PointsIncrement int `yaml:"points_increment"` // added per kill once KillsRequired is exceeded
	KillsRequired   int `yaml:"kills_required"`   // 0 means Rows*Cols/5
	ShipHitPenalty  int `yaml:"ship_hit_penalty"`
}

// RampConfig defines the formation speed ramp.
type RampConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Interval    float64 `yaml:"interval"`     // seconds per lock-step at the start of a game
	Factor      float64 `yaml:"factor"`       // interval multiplier applied per kill
	MinInterval float64 `yaml:"min_interval"` // floor for the interval, 0 = none
}

// KillsThreshold returns the kill count after which points per kill ratchet up.
func (c InvadersConfig) KillsThreshold() int {
	if c.Scoring.KillsRequired > 0 {
		return c.Scoring.KillsRequired
	}
	return c.Formation.Rows * c.Formation.Cols / 5
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown or empty strings yield the empty preset, which changes nothing.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
