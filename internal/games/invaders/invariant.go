package invaders

import (
	"io"

	"github.com/charmbracelet/log"
)

// discardLogger is used until a Session hands its logger down.
var discardLogger = log.New(io.Discard)

// invariant checks an internal consistency condition of the simulation.
// It returns cond, so callers skip the offending operation when it is false:
//
//	if !invariant(f.logger, ok, "kill of empty slot", "row", row) {
//		return
//	}
//
// Release builds report violations on l. Debug builds (-tags invadersdebug)
// panic instead of returning.
func invariant(l *log.Logger, cond bool, msg string, keyvals ...any) bool {
	if cond {
		return true
	}
	violation(l, msg, keyvals...)
	return false
}
