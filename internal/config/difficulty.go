package config

// presetTuning holds the values a difficulty preset overrides.
type presetTuning struct {
	lives      int
	interval   float64
	factor     float64
	maxFireGap int
}

var presetTunings = map[DifficultyPreset]presetTuning{
	DifficultyEasy:   {lives: 5, interval: 1.2, factor: 0.98, maxFireGap: 7},
	DifficultyNormal: {lives: 3, interval: 1.0, factor: 0.97, maxFireGap: 5},
	DifficultyHard:   {lives: 2, interval: 0.7, factor: 0.95, maxFireGap: 3},
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the loaded values but turns the speed ramp off.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	tuning, ok := presetTunings[preset]
	if !ok {
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Ship.Lives = tuning.lives
	cfg.Difficulty.Interval = tuning.interval
	cfg.Difficulty.Factor = tuning.factor
	cfg.Bolt.MaxFireGap = tuning.maxFireGap
}
