// Package invaders implements the Alien Invaders round simulation: a
// formation of aliens marching in lock-step, a player ship, bolts, and the
// session state machine that sequences rounds across lives.
package invaders

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the configuration from the CLI path and applies the
// CLI difficulty preset.
func LoadConfig() (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		return config.InvadersConfig{}, err
	}
	config.ApplyInvadersPreset(&cfg, difficultyPreset)
	return cfg, nil
}

// Game adapts a Session to the fixed-tick core.Game contract.
type Game struct {
	cfg      config.InvadersConfig
	runtime  core.RuntimeConfig
	session  *Session
	audio    core.Audio
	logger   *log.Logger
	hasCfg   bool
	viewport core.Viewport
}

var _ core.Game = (*Game)(nil)

// GameOption configures a Game.
type GameOption func(*Game)

// WithGameAudio sets the audio collaborator handed to each session.
func WithGameAudio(a core.Audio) GameOption {
	return func(g *Game) { g.audio = a }
}

// WithGameLogger sets the logger handed to each session.
func WithGameLogger(l *log.Logger) GameOption {
	return func(g *Game) { g.logger = l }
}

// WithConfig uses cfg instead of loading configuration files.
func WithConfig(cfg config.InvadersConfig) GameOption {
	return func(g *Game) {
		g.cfg = cfg
		g.hasCfg = true
	}
}

// New creates a new game. Reset must be called before Step.
func New(opts ...GameOption) *Game {
	g := &Game{audio: core.NopAudio{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invaders"
}

// Reset builds a fresh session for the given runtime.
// Configuration errors fall back to the built-in defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.hasCfg {
		cfg, err := LoadConfig()
		if err != nil {
			if g.logger != nil {
				g.logger.Warn("using default config", "err", err)
			}
			cfg = config.DefaultInvadersConfig()
			config.ApplyInvadersPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	opts := []Option{WithSeed(runtime.Seed), WithAudio(g.audio)}
	if g.logger != nil {
		opts = append(opts, WithLogger(g.logger))
	}
	g.session = NewSession(g.cfg, opts...)
	g.viewport = core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, runtime.ScreenW, runtime.ScreenH)
}

// Step advances the simulation by one tick of 1/TickRate seconds.
// Restart starts a new game once the session has completed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.State() == StateComplete && in.IsPressed(core.ActionRestart) {
		g.session.NewGame()
	}
	g.session.Update(in, g.runtime.FrameDelta())
	return core.StepResult{State: g.State()}
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() != g.viewport.ScreenW || dst.Height() != g.viewport.ScreenH {
		g.viewport = core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height())
	}
	RenderDrawables(dst, g.viewport, g.session.Drawables())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Lives:    s.Lives(),
		Phase:    s.State().String(),
		GameOver: s.State() == StateComplete,
		Won:      s.Won(),
		Paused:   s.State() == StatePaused,
	}
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}
