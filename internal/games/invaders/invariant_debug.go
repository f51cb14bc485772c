//go:build invadersdebug

package invaders

import (
	"fmt"

	"github.com/charmbracelet/log"
)

func violation(_ *log.Logger, msg string, keyvals ...any) {
	panic(fmt.Sprintf("invaders: invariant violated: %s %v", msg, keyvals))
}
