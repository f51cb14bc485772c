// Package audio provides a synthesized speaker backend for core.Audio.
// All cues are generated procedurally; no sound assets are loaded.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/invaders/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays the invaders cues through the system speaker.
// It is safe to use before Initialize or after a failed Initialize: every
// request is then dropped, so the game runs silently without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	track       *beep.Ctrl
	volume      float64
	initialized bool
}

var _ core.Audio = (*SoundManager)(nil)

// NewSoundManager creates a sound manager. volume is a linear gain in (0, 1];
// values outside the range are clamped.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: failed to open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every sound.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.releaseTrack()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// PlaySound implements core.Audio.
func (sm *SoundManager) PlaySound(s core.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if s == core.SoundTrack {
		sm.startTrack()
		return
	}

	streamer, ok := cue(s)
	if !ok {
		return
	}
	sm.add(streamer)
}

// StopTrack implements core.Audio.
func (sm *SoundManager) StopTrack() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.releaseTrack()
}

// releaseTrack detaches the looping track. A Ctrl without a streamer reports
// itself drained, so the mixer drops it on its next pass.
func (sm *SoundManager) releaseTrack() {
	if sm.track == nil {
		return
	}
	speaker.Lock()
	sm.track.Streamer = nil
	speaker.Unlock()
	sm.track = nil
}

// startTrack plays the endless march bass line. A running track is left alone.
func (sm *SoundManager) startTrack() {
	if sm.track != nil {
		return
	}
	ctrl := &beep.Ctrl{Streamer: NewMarchGenerator(sampleRate)}
	sm.track = ctrl
	sm.add(ctrl)
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// cue builds the one-shot streamer for a sound.
func cue(s core.Sound) (beep.Streamer, bool) {
	switch s {
	case core.SoundShipShoot:
		return beep.Take(sampleRate.N(time.Millisecond*120), NewSweepGenerator(sampleRate, 1400, 500)), true
	case core.SoundAlienBlast:
		return beep.Take(sampleRate.N(time.Millisecond*250), NewNoiseGenerator(sampleRate, 1, 12)), true
	case core.SoundPlayerLose:
		return beep.Take(sampleRate.N(time.Millisecond*700), NewNoiseGenerator(sampleRate, 7, 4)), true
	case core.SoundWin:
		return beep.Take(sampleRate.N(time.Millisecond*900), NewArpeggioGenerator(sampleRate, 523.25, 659.25, 783.99, 1046.5)), true
	default:
		return nil, false
	}
}

// withVolume wraps s in a base-2 volume effect for a linear gain.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}
