package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders/internal/core"
)

func TestKeyStateTapIsOnePress(t *testing.T) {
	ks := NewKeyState(300*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	ks.Observe(core.ActionFire, t0)

	f := ks.Frame(t0.Add(16 * time.Millisecond))
	if !f.IsPressed(core.ActionFire) || !f.IsHeld(core.ActionFire) {
		t.Fatal("first frame after a tap should press and hold")
	}

	f = ks.Frame(t0.Add(32 * time.Millisecond))
	if f.IsPressed(core.ActionFire) {
		t.Error("second frame should not repeat the edge")
	}
	if !f.IsHeld(core.ActionFire) {
		t.Error("key should stay held inside the window")
	}

	f = ks.Frame(t0.Add(400 * time.Millisecond))
	if f.IsHeld(core.ActionFire) {
		t.Error("key should be released after the initial window")
	}
}

func TestKeyStateBridgesRepeatDelay(t *testing.T) {
	ks := NewKeyState(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	// Press, a 450ms auto-repeat delay, then repeats every 40ms.
	events := map[int]bool{0: true}
	for ms := 450; ms < 1000; ms += 40 {
		events[ms] = true
	}

	presses := 0
	for ms := 0; ms < 1000; ms += 10 {
		now := t0.Add(time.Duration(ms) * time.Millisecond)
		if events[ms] {
			ks.Observe(core.ActionStart, now)
		}
		f := ks.Frame(now)
		if !f.IsHeld(core.ActionStart) {
			t.Fatalf("%dms: key should be held across the repeat delay", ms)
		}
		if f.IsPressed(core.ActionStart) {
			presses++
		}
	}
	if presses != 1 {
		t.Errorf("presses = %d, expected exactly 1", presses)
	}
}

func TestKeyStateRepeatWindowAfterRepeats(t *testing.T) {
	ks := NewKeyState(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	ks.Observe(core.ActionLeft, t0)
	ks.Observe(core.ActionLeft, t0.Add(400*time.Millisecond)) // first repeat
	ks.Frame(t0.Add(400 * time.Millisecond))

	// Once repeating, silence longer than the repeat window is a release.
	if f := ks.Frame(t0.Add(550 * time.Millisecond)); f.IsHeld(core.ActionLeft) {
		t.Error("key should be released once repeats stop")
	}
}

func TestKeyStateReleaseThenPressAgain(t *testing.T) {
	ks := NewKeyState(50*time.Millisecond, 50*time.Millisecond)
	t0 := time.Unix(0, 0)

	ks.Observe(core.ActionStart, t0)
	ks.Frame(t0)
	ks.Frame(t0.Add(time.Second)) // released

	later := t0.Add(2 * time.Second)
	ks.Observe(core.ActionStart, later)
	if f := ks.Frame(later); !f.IsPressed(core.ActionStart) {
		t.Error("pressing again after release should create a new edge")
	}
}

func TestKeyStateIgnoresNone(t *testing.T) {
	ks := NewKeyState(0, 0)
	now := time.Unix(0, 0)
	ks.Observe(core.ActionNone, now)
	if f := ks.Frame(now); len(f.Held) != 0 {
		t.Error("ActionNone should not be tracked")
	}
	if ks.initial != DefaultInitialHold || ks.repeat != DefaultRepeatHold {
		t.Errorf("windows = %v/%v, expected defaults", ks.initial, ks.repeat)
	}
}

func TestKeyStateReset(t *testing.T) {
	ks := NewKeyState(time.Second, time.Second)
	now := time.Unix(0, 0)
	ks.Observe(core.ActionRight, now)
	ks.Frame(now)
	ks.Reset()

	if f := ks.Frame(now); f.IsHeld(core.ActionRight) {
		t.Error("Reset should release every key")
	}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
		{"c", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapClearStartsDisabled(t *testing.T) {
	km := DefaultKeyMap()
	c := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}

	if key.Matches(c, km.Clear) {
		t.Error("clear should be disabled until the leaderboard enables it")
	}
	km.Clear.SetEnabled(true)
	if !key.Matches(c, km.Clear) {
		t.Error("enabled clear binding should match c")
	}
}
