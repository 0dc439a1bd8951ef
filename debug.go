package stamp

import (
	"fmt"
	"io"
	"os"
)

// logOutput receives all library diagnostics.
var logOutput io.Writer = os.Stderr

// logf prints a prefixed diagnostic line.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[stamp] "+format+"\n", args...)
}

// guard runs fn and logs a panic instead of propagating it. Callers rely on
// state written before the panic staying in place.
func guard(where string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logf("%s: %v", where, r)
		}
	}()
	fn()
}

// debugTransition logs a widget state change. Only called in debug mode.
func debugTransition(name string, from, to State) {
	logf("widget %q: %s -> %s", name, from, to)
}
