// ABOUTME: Session owns a Transport plus the two terminal mode flags and save/restore policy
// ABOUTME: Commands are one-way escape writes; queries run a locked request/reply round trip

package termctl

import "sync"

// Options configures a Session.
type Options struct {
	// SaveRestoreANSI selects CSI s / CSI u for save/restore cursor. When
	// false the DEC private forms ESC 7 / ESC 8 are used, which legacy
	// Windows consoles understand.
	SaveRestoreANSI bool
}

// DefaultOptions returns the platform-appropriate defaults, chosen once at
// session construction rather than per call.
func DefaultOptions() Options {
	return Options{SaveRestoreANSI: defaultSaveRestoreANSI}
}

// Session is a terminal control session over a single Transport. The mode
// flags mirror the last command issued through this session only; another
// writer on the same terminal can make them drift from ground truth.
//
// The mutex serializes each query's request/reply exchange and each command
// write; an interleaved exchange on the shared stream would let one query's
// partial reply be misread as another's.
type Session struct {
	mu            sync.Mutex
	tr            Transport
	opts          Options
	replacing     bool
	cursorVisible bool
}

// NewSession returns a Session over tr. The flags start from the terminal's
// conventional initial state: replace mode off, cursor visible.
func NewSession(tr Transport, opts Options) *Session {
	return &Session{tr: tr, opts: opts, cursorVisible: true}
}

// write emits one escape sequence under the session lock.
func (s *Session) write(seq string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.tr.Write([]byte(seq))
	return err
}

// CursorPosition asks the terminal where the cursor is via DSR 6n and
// blocks for the CPR reply. A silent terminal (non-interactive stream,
// unsupported report) yields (-1, -1) and a nil error; a garbled reply
// yields an error wrapping ErrMalformedReply.
func (s *Session) CursorPosition() (row, col int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, err := s.tr.Request([]byte(cursorPositionReq), cursorPositionTerm)
	if err != nil {
		return 0, 0, err
	}
	if len(reply) == 0 {
		return -1, -1, nil
	}
	return parsePositionReport(reply)
}

// ScreenSize asks the terminal for its text-area size in characters via
// CSI 18t. Most terminal emulators ignore this report, so the (-1, -1)
// no-reply sentinel is a common, expected result; real consoles answer.
// Reply policy matches CursorPosition.
func (s *Session) ScreenSize() (rows, cols int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, err := s.tr.Request([]byte(screenSizeReq), screenSizeTerm)
	if err != nil {
		return 0, 0, err
	}
	if len(reply) == 0 {
		return -1, -1, nil
	}
	return parseSizeReport(reply)
}

// MoveTo positions the cursor at the 1-based row and column.
func (s *Session) MoveTo(row, col int) error { return s.write(CursorTo(row, col)) }

// Up moves the cursor n rows up.
func (s *Session) Up(n int) error { return s.write(CursorUp(n)) }

// Down moves the cursor n rows down.
func (s *Session) Down(n int) error { return s.write(CursorDown(n)) }

// Forward moves the cursor n columns right.
func (s *Session) Forward(n int) error { return s.write(CursorForward(n)) }

// Back moves the cursor n columns left.
func (s *Session) Back(n int) error { return s.write(CursorBack(n)) }

// NextLine moves to the start of the line n rows down.
func (s *Session) NextLine(n int) error { return s.write(CursorNextLine(n)) }

// PrevLine moves to the start of the line n rows up.
func (s *Session) PrevLine(n int) error { return s.write(CursorPrevLine(n)) }

// Column moves the cursor to the absolute column in the current row.
func (s *Session) Column(col int) error { return s.write(CursorColumn(col)) }

// ClearToEnd erases from the cursor to the end of the screen.
func (s *Session) ClearToEnd() error { return s.write(ClearToEndSeq) }

// ClearToStart erases from the start of the screen to the cursor.
func (s *Session) ClearToStart() error { return s.write(ClearToStartSeq) }

// ClearScreen erases the entire screen.
func (s *Session) ClearScreen() error { return s.write(ClearScreenSeq) }

// ClearLineToEnd erases from the cursor to the end of the line.
func (s *Session) ClearLineToEnd() error { return s.write(ClearLineEndSeq) }

// ClearLineToStart erases from the start of the line to the cursor.
func (s *Session) ClearLineToStart() error { return s.write(ClearLineStartSeq) }

// ClearLine erases the entire current line.
func (s *Session) ClearLine() error { return s.write(ClearLineSeq) }

// InsertLines inserts n blank lines at the cursor row.
func (s *Session) InsertLines(n int) error { return s.write(InsertLines(n)) }

// DeleteLines deletes n lines starting at the cursor row.
func (s *Session) DeleteLines(n int) error { return s.write(DeleteLines(n)) }

// DeleteChars deletes n characters at the cursor position.
func (s *Session) DeleteChars(n int) error { return s.write(DeleteChars(n)) }

// SetCursorStyle selects the cursor shape and whether it blinks.
func (s *Session) SetCursorStyle(style CursorStyle, blink bool) error {
	return s.write(cursorStyle(style, blink))
}

// SetScrollRegion restricts scrolling to rows top through bottom.
func (s *Session) SetScrollRegion(top, bottom int) error {
	return s.write(ScrollRegion(top, bottom))
}

// ResetScrollRegion restores scrolling over the full screen.
func (s *Session) ResetScrollRegion() error { return s.write(ResetScrollRegionSeq) }

// SaveCursor saves the cursor position using the form selected at
// construction (ANSI CSI s or DEC ESC 7).
func (s *Session) SaveCursor() error {
	if s.opts.SaveRestoreANSI {
		return s.write(SaveCursorSeq)
	}
	return s.write(SaveCursorDECSeq)
}

// RestoreCursor restores the position saved by SaveCursor.
func (s *Session) RestoreCursor() error {
	if s.opts.SaveRestoreANSI {
		return s.write(RestoreCursorSeq)
	}
	return s.write(RestoreCursorDECSeq)
}

// EnableReplaceMode switches the terminal to replace (overwrite) mode and
// records it in the session flag.
func (s *Session) EnableReplaceMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.tr.Write([]byte(ReplaceModeSeq)); err != nil {
		return err
	}
	s.replacing = true
	return nil
}

// DisableReplaceMode switches the terminal back to insert mode.
func (s *Session) DisableReplaceMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.tr.Write([]byte(InsertModeSeq)); err != nil {
		return err
	}
	s.replacing = false
	return nil
}

// ShowCursor makes the cursor visible and records it in the session flag.
func (s *Session) ShowCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.tr.Write([]byte(ShowCursorSeq)); err != nil {
		return err
	}
	s.cursorVisible = true
	return nil
}

// HideCursor makes the cursor invisible.
func (s *Session) HideCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.tr.Write([]byte(HideCursorSeq)); err != nil {
		return err
	}
	s.cursorVisible = false
	return nil
}

// Replacing reports whether the last mode command issued through this
// session enabled replace mode.
func (s *Session) Replacing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replacing
}

// CursorVisible reports whether the last visibility command issued through
// this session left the cursor visible.
func (s *Session) CursorVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursorVisible
}
