//go:build invadersdebug

package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/invaders/internal/core"
)

// mustPanic runs fn and fails unless it panics with a message containing want.
func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic containing %q", want)
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, want) {
			t.Errorf("panic %q, expected it to contain %q", msg, want)
		}
	}()
	fn()
}

func TestDebugDoubleKillPanics(t *testing.T) {
	f := newTestFormation()
	f.Kill(2, 5)
	mustPanic(t, "kill of empty formation slot", func() { f.Kill(2, 5) })
}

func TestDebugOutOfRangePanics(t *testing.T) {
	f := newTestFormation()
	mustPanic(t, "formation index out of range", func() { f.Alien(-1, 0) })
}

func TestDebugNegativeDeltaPanics(t *testing.T) {
	w, _ := newTestWave(testConfig())
	mustPanic(t, "negative frame delta", func() { w.Update(held(core.ActionLeft), -1) })

	s := NewSession(testConfig())
	mustPanic(t, "negative frame delta", func() { s.Update(held(), -1) })
}

func TestDebugValidUseDoesNotPanic(t *testing.T) {
	f := newTestFormation()
	f.Kill(0, 0)
	if f.Alien(0, 0).Alive {
		t.Error("kill should empty the slot")
	}
}
