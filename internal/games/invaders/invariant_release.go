//go:build !invadersdebug

package invaders

import "github.com/charmbracelet/log"

func violation(l *log.Logger, msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.Warn("invariant violated: "+msg, keyvals...)
}
