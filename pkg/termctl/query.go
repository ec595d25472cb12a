// ABOUTME: DSR report parsing for cursor position (CSI 6n) and screen size (CSI 18t) replies
// ABOUTME: Distinguishes terminal silence (sentinel) from garbage replies (ErrMalformedReply)

package termctl

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedReply reports that the terminal answered a status request with
// bytes that do not match the expected report grammar. It is distinct from
// no reply at all, which yields the (-1, -1) sentinel and no error.
var ErrMalformedReply = errors.New("malformed terminal reply")

// parseFields extracts two base-10 integers from reply, delimited by the
// '[' introducer, a ';' separator, and the final terminator byte, in that
// order. This is the common tail of both report grammars.
func parseFields(reply []byte, terminator byte) (int, int, error) {
	intro := bytes.IndexByte(reply, '[')
	if intro < 0 {
		return 0, 0, fmt.Errorf("%w: no introducer in %q", ErrMalformedReply, reply)
	}
	return parseFieldsAfter(reply, intro+1, terminator)
}

// parseFieldsAfter parses "<row>;<col><terminator>" starting at offset.
func parseFieldsAfter(reply []byte, offset int, terminator byte) (int, int, error) {
	rest := reply[offset:]

	sep := bytes.IndexByte(rest, ';')
	if sep < 0 {
		return 0, 0, fmt.Errorf("%w: no field separator in %q", ErrMalformedReply, reply)
	}
	term := bytes.IndexByte(rest[sep:], terminator)
	if term < 0 {
		return 0, 0, fmt.Errorf("%w: no terminator %q in %q", ErrMalformedReply, terminator, reply)
	}
	term += sep

	row, err := parseField(rest[:sep])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad row field in %q", ErrMalformedReply, reply)
	}
	col, err := parseField(rest[sep+1 : term])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad column field in %q", ErrMalformedReply, reply)
	}
	return row, col, nil
}

// parseField parses a report field as a non-negative base-10 integer. The
// grammar has no signs, so anything but digits is rejected; this keeps a
// garbage "-1" field from impersonating the no-reply sentinel.
func parseField(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, errors.New("empty field")
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-digit byte %q", c)
		}
	}
	return strconv.Atoi(string(b))
}

// parsePositionReport parses a CPR reply of the form ESC [ row ; col R.
func parsePositionReport(reply []byte) (row, col int, err error) {
	return parseFields(reply, cursorPositionTerm)
}

// parseSizeReport parses a text-area size reply of the form
// ESC [ 8 ; rows ; cols t. The fixed "8;" parameter after the introducer
// identifies the report kind and is required.
func parseSizeReport(reply []byte) (rows, cols int, err error) {
	intro := bytes.IndexByte(reply, '[')
	if intro < 0 {
		return 0, 0, fmt.Errorf("%w: no introducer in %q", ErrMalformedReply, reply)
	}
	if !bytes.HasPrefix(reply[intro+1:], []byte("8;")) {
		return 0, 0, fmt.Errorf("%w: not a size report: %q", ErrMalformedReply, reply)
	}
	return parseFieldsAfter(reply, intro+3, screenSizeTerm)
}
