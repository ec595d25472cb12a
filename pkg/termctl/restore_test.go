// ABOUTME: Tests for panic recovery cleanup of terminal state
// ABOUTME: Verifies RecoverGoroutine restores cursor, mode, and scroll region

package termctl

import (
	"strings"
	"testing"
)

func TestRecoverGoroutine_RestoresTerminal(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTransport()
	s := NewSession(vt, DefaultOptions())
	_ = s.HideCursor()
	_ = s.EnableReplaceMode()
	vt.Reset()

	func() {
		defer RecoverGoroutine(s)
		panic("render loop exploded")
	}()

	out := vt.Output()
	for _, want := range []string{ShowCursorSeq, InsertModeSeq, ResetScrollRegionSeq} {
		if !strings.Contains(out, want) {
			t.Errorf("cleanup output %q missing %q", out, want)
		}
	}
	if !s.CursorVisible() {
		t.Error("cursor flag not restored")
	}
	if s.Replacing() {
		t.Error("replace flag not cleared")
	}
}

func TestRecoverGoroutine_NoPanicNoOutput(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTransport()
	s := NewSession(vt, DefaultOptions())

	func() {
		defer RecoverGoroutine(s)
	}()

	if vt.Output() != "" {
		t.Errorf("unexpected cleanup output without panic: %q", vt.Output())
	}
}

func TestRecoverGoroutine_NilSession(t *testing.T) {
	t.Parallel()

	// Must not itself panic on a nil session.
	func() {
		defer RecoverGoroutine(nil)
		panic("boom")
	}()
}
