// ABOUTME: RestoreOnPanic recovers from panics, puts the terminal back in a usable state, and exits
// ABOUTME: Intended for use as a deferred call in the main goroutine

package termctl

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred at the top of main (or any goroutine
// that owns the terminal). On panic it makes the cursor visible, leaves
// replace mode, resets the scroll region, prints the panic value and stack
// trace, then exits with code 1.
func RestoreOnPanic(s *Session) {
	r := recover()
	if r == nil {
		return
	}

	restoreTerminal(s)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred in background goroutines that touch
// the terminal. Unlike RestoreOnPanic it does NOT call os.Exit, leaving
// shutdown to the main goroutine.
func RecoverGoroutine(s *Session) {
	r := recover()
	if r == nil {
		return
	}

	restoreTerminal(s)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}

// restoreTerminal issues best-effort cleanup commands.
func restoreTerminal(s *Session) {
	if s == nil {
		return
	}
	_ = s.ShowCursor()
	_ = s.DisableReplaceMode()
	_ = s.ResetScrollRegion()
}
