package invaders

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

// State is the session state tag.
type State int

const (
	StateInactive State = iota // waiting for the first start press
	StateNewRound              // one tick: builds the round
	StateActive                // round in progress
	StatePaused                // life lost, waiting for start
	StateContinue              // one tick: respawns the ship
	StateComplete              // game over, won or lost
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateNewRound:
		return "newround"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateContinue:
		return "continue"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session sequences rounds across the player's lives.
type Session struct {
	cfg   config.InvadersConfig
	state State
	lives int
	score int
	won   bool
	wave  *Wave
	ramp  *Ramp

	audio  core.Audio
	logger *log.Logger
	rng    *rand.Rand
}

// Option configures a Session.
type Option func(*Session)

// WithAudio sets the sound collaborator.
func WithAudio(a core.Audio) Option {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the formation's fire randomness.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
	}
}

// WithRand sets the random source directly.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// NewSession creates an inactive session with full lives.
func NewSession(cfg config.InvadersConfig, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		state:  StateInactive,
		lives:  cfg.Ship.Lives,
		ramp:   NewRamp(cfg.Difficulty),
		audio:  core.NopAudio{},
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1)) //#nosec G404 -- gameplay randomness
	}
	return s
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Lives returns the lives remaining.
func (s *Session) Lives() int { return s.lives }

// Score returns the total score of the game.
func (s *Session) Score() int { return s.score }

// Won reports whether a completed game was won.
func (s *Session) Won() bool { return s.won }

// Wave returns the current round, or nil when none is running.
func (s *Session) Wave() *Wave { return s.wave }

// Ramp returns the difficulty ramp shared by the rounds of this game.
func (s *Session) Ramp() *Ramp { return s.ramp }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.InvadersConfig { return s.cfg }

// Update advances the session by one frame. A zero dt changes nothing.
func (s *Session) Update(in core.Input, dt float64) {
	if !invariant(s.logger, dt >= 0, "negative frame delta", "dt", dt) || dt == 0 {
		return
	}

	switch s.state {
	case StateInactive:
		if in.IsPressed(core.ActionStart) {
			s.setState(StateNewRound)
		}
	case StateNewRound:
		s.startRound()
	case StateActive:
		s.updateActive(in, dt)
	case StatePaused:
		if in.IsPressed(core.ActionStart) {
			s.setState(StateContinue)
		}
	case StateContinue:
		s.wave.Respawn()
		s.setState(StateActive)
	case StateComplete:
	}
}

// NewGame returns a completed (or running) session to Inactive with full
// lives, a zero score and the ramp at its base interval.
func (s *Session) NewGame() {
	if s.wave != nil {
		s.audio.StopTrack()
	}
	s.lives = s.cfg.Ship.Lives
	s.score = 0
	s.won = false
	s.wave = nil
	s.ramp.Reset()
	s.setState(StateInactive)
}

func (s *Session) startRound() {
	s.wave = NewWave(s.cfg, s.ramp, s.rng, s.audio, s.lives, s.score)
	s.wave.SetLogger(s.logger)
	s.audio.PlaySound(core.SoundTrack)
	s.logger.Info("round started", "lives", s.lives, "interval", s.ramp.Interval())
	s.setState(StateActive)
}

// updateActive runs the round and applies its outcome. The checks are
// ordered: a lost life with lives to spare always pauses, even on the frame
// the formation is cleared.
func (s *Session) updateActive(in core.Input, dt float64) {
	w := s.wave
	w.Update(in, dt)
	s.score = w.Score()

	switch {
	case w.ShipDies() && s.lives > 1:
		s.lives--
		w.SetLives(s.lives)
		s.logger.Info("life lost", "lives", s.lives, "score", s.score)
		s.setState(StatePaused)
	case w.PlayerWon():
		s.complete(true)
	case w.Breached():
		s.complete(false)
	case w.ShipDies():
		s.lives = 0
		s.complete(false)
	}
}

func (s *Session) complete(won bool) {
	s.won = won
	s.audio.StopTrack()
	if won {
		s.audio.PlaySound(core.SoundWin)
	}
	s.wave = nil
	s.logger.Info("game complete", "won", won, "score", s.score)
	s.setState(StateComplete)
}

func (s *Session) setState(next State) {
	if next == s.state {
		return
	}
	s.logger.Debug("state change", "from", s.state, "to", next)
	s.state = next
}
