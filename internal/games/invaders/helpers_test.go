package invaders

import (
	"math/rand"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

func testConfig() config.InvadersConfig {
	return config.DefaultInvadersConfig()
}

func newTestWave(cfg config.InvadersConfig) (*Wave, *recordingAudio) {
	audio := &recordingAudio{}
	w := NewWave(cfg, NewRamp(cfg.Difficulty), rand.New(rand.NewSource(42)), audio, cfg.Ship.Lives, 0)
	return w, audio
}

// held builds a frame with the given actions held but not newly pressed.
func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

// pressed builds a frame with the given actions held and newly pressed.
func pressed(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// smallDT is short enough that the formation never takes a lock-step in
// the handful of frames a test runs.
const smallDT = 0.001

type recordingAudio struct {
	sounds []core.Sound
	stops  int
}

func (a *recordingAudio) PlaySound(s core.Sound) { a.sounds = append(a.sounds, s) }
func (a *recordingAudio) StopTrack()             { a.stops++ }

func (a *recordingAudio) played(s core.Sound) int {
	n := 0
	for _, got := range a.sounds {
		if got == s {
			n++
		}
	}
	return n
}

// activeSession returns a session that has just entered StateActive.
func activeSession(cfg config.InvadersConfig) (*Session, *recordingAudio) {
	audio := &recordingAudio{}
	s := NewSession(cfg, WithSeed(7), WithAudio(audio))
	s.Update(pressed(core.ActionStart), smallDT)
	s.Update(held(), smallDT)
	return s, audio
}

// killAllBut empties every slot except (row, col).
func killAllBut(f *Formation, row, col int) {
	for r := range f.Rows() {
		for c := range f.Cols() {
			if (r != row || c != col) && f.Alien(r, c).Alive {
				f.Kill(r, c)
			}
		}
	}
}
