// ABOUTME: ANSI/VT escape sequence vocabulary: fixed sequences and parameterized encoders
// ABOUTME: Pure string construction; no I/O and no state

package termctl

import "fmt"

const (
	esc = "\x1b"
	// CSI is the Control Sequence Introducer prefixing parameterized commands.
	CSI = esc + "["
)

// Fixed sequences with no parameters.
const (
	ShowCursorSeq = CSI + "?25h"
	HideCursorSeq = CSI + "?25l"

	// IRM: insert mode on (4h) inserts at the cursor, off (4l) replaces.
	InsertModeSeq  = CSI + "4h"
	ReplaceModeSeq = CSI + "4l"

	// ANSI.SYS-style save/restore.
	SaveCursorSeq    = CSI + "s"
	RestoreCursorSeq = CSI + "u"

	// DEC private save/restore, understood by terminals that predate CSI s/u.
	SaveCursorDECSeq    = esc + "7"
	RestoreCursorDECSeq = esc + "8"

	// Erase in display: cursor to end, start to cursor, entire screen.
	ClearToEndSeq     = CSI + "0J"
	ClearToStartSeq   = CSI + "1J"
	ClearScreenSeq    = CSI + "2J"
	ClearLineEndSeq   = CSI + "0K"
	ClearLineStartSeq = CSI + "1K"
	ClearLineSeq      = CSI + "2K"

	// CSI r with no parameters resets the scroll region to the full screen.
	ResetScrollRegionSeq = CSI + "r"
)

// DSR requests and their reply terminators.
const (
	cursorPositionReq  = CSI + "6n"
	cursorPositionTerm = 'R'

	screenSizeReq  = CSI + "18t"
	screenSizeTerm = 't'
)

// CursorStyle selects the cursor shape for SetCursorStyle. The numeric
// values are the blinking DECSCUSR parameters; the steady variant of each
// shape is the value plus one.
type CursorStyle int

const (
	CursorBlock     CursorStyle = 1
	CursorUnderline CursorStyle = 3
	CursorBar       CursorStyle = 5
)

// cursorStyle encodes DECSCUSR. blink selects between the base parameter
// and its steady counterpart.
func cursorStyle(style CursorStyle, blink bool) string {
	ps := int(style)
	if !blink {
		ps++
	}
	return fmt.Sprintf("%s%d q", CSI, ps)
}

// CursorUp moves the cursor n rows up, same column.
func CursorUp(n int) string { return fmt.Sprintf("%s%dA", CSI, n) }

// CursorDown moves the cursor n rows down, same column.
func CursorDown(n int) string { return fmt.Sprintf("%s%dB", CSI, n) }

// CursorForward moves the cursor n columns right.
func CursorForward(n int) string { return fmt.Sprintf("%s%dC", CSI, n) }

// CursorBack moves the cursor n columns left.
func CursorBack(n int) string { return fmt.Sprintf("%s%dD", CSI, n) }

// CursorNextLine moves the cursor to the start of the line n rows down.
func CursorNextLine(n int) string { return fmt.Sprintf("%s%dE", CSI, n) }

// CursorPrevLine moves the cursor to the start of the line n rows up.
func CursorPrevLine(n int) string { return fmt.Sprintf("%s%dF", CSI, n) }

// CursorColumn moves the cursor to absolute column col in the current row.
func CursorColumn(col int) string { return fmt.Sprintf("%s%dG", CSI, col) }

// CursorTo moves the cursor to the absolute 1-based row and column.
func CursorTo(row, col int) string { return fmt.Sprintf("%s%d;%dH", CSI, row, col) }

// InsertLines inserts n blank lines at the cursor row.
func InsertLines(n int) string { return fmt.Sprintf("%s%dL", CSI, n) }

// DeleteLines deletes n lines starting at the cursor row.
func DeleteLines(n int) string { return fmt.Sprintf("%s%dM", CSI, n) }

// DeleteChars deletes n characters at the cursor position.
func DeleteChars(n int) string { return fmt.Sprintf("%s%dP", CSI, n) }

// ScrollRegion restricts scrolling to the 1-based rows top through bottom.
func ScrollRegion(top, bottom int) string { return fmt.Sprintf("%s%d;%dr", CSI, top, bottom) }
