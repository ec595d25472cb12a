// ABOUTME: ProcessTransport implements Transport over a real TTY using golang.org/x/term
// ABOUTME: Handles raw mode around each request and a read deadline for silent terminals

package termctl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/mauromedda/go-termctl/internal/log"
)

// DefaultReplyTimeout bounds how long a request waits for the terminal to
// answer. Interactive terminals reply within a few milliseconds; the margin
// covers slow remote sessions.
const DefaultReplyTimeout = 500 * time.Millisecond

// ProcessTransport is a real terminal transport backed by a pair of
// *os.File handles, normally os.Stdin and os.Stdout.
type ProcessTransport struct {
	mu      sync.Mutex
	in      *os.File
	out     *os.File
	timeout time.Duration
}

// NewProcessTransport returns a transport over os.Stdin/os.Stdout with the
// default reply timeout.
func NewProcessTransport() *ProcessTransport {
	return NewFileTransport(os.Stdin, os.Stdout, DefaultReplyTimeout)
}

// NewFileTransport returns a transport over an explicit file pair. A
// non-positive timeout falls back to DefaultReplyTimeout.
func NewFileTransport(in, out *os.File, timeout time.Duration) *ProcessTransport {
	if timeout <= 0 {
		timeout = DefaultReplyTimeout
	}
	return &ProcessTransport{in: in, out: out, timeout: timeout}
}

// Write sends bytes to the terminal's output stream.
func (t *ProcessTransport) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// Request emits seq and reads the reply up to and including terminator.
// When the streams are not a terminal, or the deadline expires before any
// byte arrives, it returns an empty reply and a nil error: silence is an
// expected outcome, not a failure.
//
// The input fd is switched to raw mode for the duration of the exchange so
// the reply is neither echoed nor line-buffered, then restored.
func (t *ProcessTransport) Request(seq []byte, terminator byte) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	inFd := int(t.in.Fd())
	if !term.IsTerminal(inFd) || !term.IsTerminal(int(t.out.Fd())) {
		log.Debug("request %q skipped: stream is not a terminal", seq)
		return nil, nil
	}

	state, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		if rerr := term.Restore(inFd, state); rerr != nil {
			log.Error("restoring terminal state: %v", rerr)
		}
	}()

	if _, err := t.out.Write(seq); err != nil {
		return nil, fmt.Errorf("writing request: %w", err)
	}

	// Deadline support depends on the fd being pollable; when it is not,
	// proceed without one rather than refusing the query.
	if err := t.in.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
		log.Debug("read deadline unsupported: %v", err)
	} else {
		defer t.in.SetReadDeadline(time.Time{})
	}

	reply, err := t.readUntil(terminator)
	if err != nil {
		return nil, err
	}
	log.Debug("request %q reply %q", seq, reply)
	return reply, nil
}

// readUntil accumulates bytes from the input stream until terminator is
// seen. Deadline expiry and EOF end the read with whatever arrived so far.
func (t *ProcessTransport) readUntil(terminator byte) ([]byte, error) {
	var reply []byte
	buf := make([]byte, 1)
	for {
		n, err := t.in.Read(buf)
		if n > 0 {
			reply = append(reply, buf[0])
			if buf[0] == terminator {
				return reply, nil
			}
		}
		if err != nil {
			if os.IsTimeout(err) {
				log.Debug("reply timed out after %d byte(s)", len(reply))
				return reply, nil
			}
			if errors.Is(err, io.EOF) {
				return reply, nil
			}
			return reply, fmt.Errorf("reading reply: %w", err)
		}
	}
}

// SizeFallback reports the terminal dimensions via the OS instead of the
// CSI 18t report, which most terminal emulators ignore. Returned as
// (rows, cols) to match the report-based query.
func (t *ProcessTransport) SizeFallback() (rows, cols int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return h, w, nil
}
