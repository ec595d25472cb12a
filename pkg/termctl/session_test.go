// ABOUTME: Tests for Session command writes, mode flags, and save/restore selection
// ABOUTME: Uses VirtualTransport to capture emitted escape bytes

package termctl

import (
	"strings"
	"sync"
	"testing"
)

// compile-time check: both transports must satisfy Transport.
var (
	_ Transport = (*VirtualTransport)(nil)
	_ Transport = (*ProcessTransport)(nil)
)

func TestSession_CommandBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		do   func(s *Session) error
		want string
	}{
		{name: "move to", do: func(s *Session) error { return s.MoveTo(3, 9) }, want: "\x1b[3;9H"},
		{name: "up", do: func(s *Session) error { return s.Up(2) }, want: "\x1b[2A"},
		{name: "down", do: func(s *Session) error { return s.Down(2) }, want: "\x1b[2B"},
		{name: "forward", do: func(s *Session) error { return s.Forward(8) }, want: "\x1b[8C"},
		{name: "back", do: func(s *Session) error { return s.Back(8) }, want: "\x1b[8D"},
		{name: "next line", do: func(s *Session) error { return s.NextLine(1) }, want: "\x1b[1E"},
		{name: "prev line", do: func(s *Session) error { return s.PrevLine(1) }, want: "\x1b[1F"},
		{name: "column", do: func(s *Session) error { return s.Column(40) }, want: "\x1b[40G"},
		{name: "clear screen", do: (*Session).ClearScreen, want: "\x1b[2J"},
		{name: "clear line", do: (*Session).ClearLine, want: "\x1b[2K"},
		{name: "insert lines", do: func(s *Session) error { return s.InsertLines(3) }, want: "\x1b[3L"},
		{name: "delete lines", do: func(s *Session) error { return s.DeleteLines(3) }, want: "\x1b[3M"},
		{name: "delete chars", do: func(s *Session) error { return s.DeleteChars(1) }, want: "\x1b[1P"},
		{name: "scroll region", do: func(s *Session) error { return s.SetScrollRegion(2, 22) }, want: "\x1b[2;22r"},
		{name: "reset scroll region", do: (*Session).ResetScrollRegion, want: "\x1b[r"},
		{name: "cursor style", do: func(s *Session) error { return s.SetCursorStyle(CursorBar, false) }, want: "\x1b[6 q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTransport()
			s := NewSession(vt, DefaultOptions())

			if err := tt.do(s); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := vt.Output(); got != tt.want {
				t.Errorf("wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSession_ReplaceModeFlag(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTransport()
	s := NewSession(vt, DefaultOptions())

	if s.Replacing() {
		t.Fatal("replace mode should start off")
	}

	if err := s.EnableReplaceMode(); err != nil {
		t.Fatal(err)
	}
	if !s.Replacing() {
		t.Error("flag not set after EnableReplaceMode")
	}
	if got := vt.Output(); got != "\x1b[4l" {
		t.Errorf("wrote %q, want CSI 4l", got)
	}

	if err := s.DisableReplaceMode(); err != nil {
		t.Fatal(err)
	}
	if s.Replacing() {
		t.Error("flag not cleared after DisableReplaceMode")
	}

	// Last write wins regardless of order.
	_ = s.DisableReplaceMode()
	_ = s.EnableReplaceMode()
	if !s.Replacing() {
		t.Error("expected replacing after enable-last ordering")
	}
}

func TestSession_CursorVisibilityFlag(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTransport()
	s := NewSession(vt, DefaultOptions())

	if !s.CursorVisible() {
		t.Fatal("cursor should start visible")
	}

	if err := s.HideCursor(); err != nil {
		t.Fatal(err)
	}
	if s.CursorVisible() {
		t.Error("flag not cleared after HideCursor")
	}

	if err := s.ShowCursor(); err != nil {
		t.Fatal(err)
	}
	if !s.CursorVisible() {
		t.Error("flag not set after ShowCursor")
	}

	if got := vt.Output(); got != "\x1b[?25l\x1b[?25h" {
		t.Errorf("wrote %q, want hide then show", got)
	}
}

func TestSession_SaveRestoreForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        Options
		wantSave    string
		wantRestore string
	}{
		{name: "ansi form", opts: Options{SaveRestoreANSI: true}, wantSave: "\x1b[s", wantRestore: "\x1b[u"},
		{name: "dec form", opts: Options{SaveRestoreANSI: false}, wantSave: "\x1b7", wantRestore: "\x1b8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTransport()
			s := NewSession(vt, tt.opts)

			if err := s.SaveCursor(); err != nil {
				t.Fatal(err)
			}
			if got := vt.Output(); got != tt.wantSave {
				t.Errorf("SaveCursor wrote %q, want %q", got, tt.wantSave)
			}

			vt.Reset()
			if err := s.RestoreCursor(); err != nil {
				t.Fatal(err)
			}
			if got := vt.Output(); got != tt.wantRestore {
				t.Errorf("RestoreCursor wrote %q, want %q", got, tt.wantRestore)
			}
		})
	}
}

// Concurrent queries must serialize on the session lock: every recorded
// request is complete and the request count matches the caller count.
func TestSession_ConcurrentQueriesSerialize(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTransport()
	vt.Reply("\x1b[6n", "\x1b[1;1R")
	s := NewSession(vt, DefaultOptions())

	const n = 16
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			_, _, _ = s.CursorPosition()
		}()
	}
	wg.Wait()

	reqs := vt.Requests()
	if len(reqs) != n {
		t.Fatalf("got %d requests, want %d", len(reqs), n)
	}
	for i, r := range reqs {
		if r != "\x1b[6n" {
			t.Errorf("request %d = %q, want intact CSI 6n", i, r)
		}
	}
}

func TestSession_CommandsDoNotRequest(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTransport()
	s := NewSession(vt, DefaultOptions())

	_ = s.MoveTo(1, 1)
	_ = s.ClearScreen()
	_ = s.HideCursor()

	if len(vt.Requests()) != 0 {
		t.Errorf("commands must be one-way, got requests: %q", vt.Requests())
	}
	if !strings.HasPrefix(vt.Output(), "\x1b[1;1H") {
		t.Errorf("unexpected leading output: %q", vt.Output())
	}
}
