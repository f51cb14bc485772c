package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default configuration.
// It mirrors defaults/invaders.yaml and is used when the embedded file
// cannot be decoded.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		World: WorldConfig{
			Width:       800,
			Height:      700,
			DefenseLine: 100,
		},
		Formation: FormationConfig{
			Rows:        5,
			Cols:        11,
			AlienWidth:  33,
			AlienHeight: 33,
			HSep:        16,
			VSep:        16,
			Ceiling:     100,
			HWalk:       8,
			VWalk:       16,
			Styles:      3,
		},
		Ship: ShipConfig{
			Width:         44,
			Height:        44,
			Bottom:        32,
			Speed:         5,
			Lives:         3,
			DeathDuration: 0.3,
			DeathFrames:   8,
		},
		Bolt: BoltConfig{
			Width:      4,
			Height:     16,
			Speed:      10,
			MaxFireGap: 5,
		},
		Scoring: ScoringConfig{
			KillPoints:      30,
			PointsIncrement: 2,
			KillsRequired:   0,
			ShipHitPenalty:  50,
		},
		Difficulty: RampConfig{
			Enabled:     true,
			Interval:    1.0,
			Factor:      0.97,
			MinInterval: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
