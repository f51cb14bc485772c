package tui

import (
	"time"

	"github.com/vovakirdan/invaders/internal/core"
)

// Terminals report presses and auto-repeats but never releases, so a key is
// considered down while its events keep arriving. The first event has to
// bridge the auto-repeat delay; later repeats arrive much faster.
const (
	// DefaultInitialHold covers the pause between a press and its first repeat.
	DefaultInitialHold = 500 * time.Millisecond
	// DefaultRepeatHold covers the gap between two auto-repeats.
	DefaultRepeatHold = 150 * time.Millisecond
)

type keyHold struct {
	last      time.Time
	repeating bool
}

// KeyState turns a stream of key events into per-tick level snapshots.
type KeyState struct {
	initial time.Duration
	repeat  time.Duration
	keys    map[core.Action]keyHold
	tracker *core.InputTracker
}

// NewKeyState creates a key state with the given hold windows.
// Non-positive windows use the defaults.
func NewKeyState(initial, repeat time.Duration) *KeyState {
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &KeyState{
		initial: initial,
		repeat:  repeat,
		keys:    make(map[core.Action]keyHold),
		tracker: core.NewInputTracker(),
	}
}

func (k *KeyState) window(h keyHold) time.Duration {
	if h.repeating {
		return k.repeat
	}
	return k.initial
}

// Observe records a key event for the action at the given time.
// An event while the key is still held counts as an auto-repeat.
func (k *KeyState) Observe(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	h, ok := k.keys[a]
	held := ok && now.Sub(h.last) <= k.window(h)
	k.keys[a] = keyHold{last: now, repeating: held}
}

// Frame builds the input frame for a tick at the given time.
// Actions whose last event is older than their window are released.
func (k *KeyState) Frame(now time.Time) core.InputFrame {
	held := make([]core.Action, 0, len(k.keys))
	for a, h := range k.keys {
		if now.Sub(h.last) > k.window(h) {
			delete(k.keys, a)
			continue
		}
		held = append(held, a)
	}
	return k.tracker.Next(held...)
}

// Reset releases every key.
func (k *KeyState) Reset() {
	clear(k.keys)
	k.tracker.Reset()
}
