// ABOUTME: VirtualTransport implements Transport for testing without a real TTY
// ABOUTME: Captures written output and serves canned replies keyed by request bytes

package termctl

import (
	"bytes"
	"fmt"
	"sync"
)

// VirtualTransport is a fake Transport for unit tests. It records every
// write, logs every request, and answers requests from a table of canned
// replies. Requests with no canned reply return an empty result, mimicking
// a terminal that does not implement the report.
type VirtualTransport struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	replies  map[string][]byte
	requests []string
	err      error
}

// NewVirtualTransport returns an empty VirtualTransport.
func NewVirtualTransport() *VirtualTransport {
	return &VirtualTransport{replies: make(map[string][]byte)}
}

// Reply registers the canned reply returned for an exact request sequence.
func (v *VirtualTransport) Reply(seq, reply string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.replies[seq] = []byte(reply)
}

// FailWith makes every subsequent Request return err.
func (v *VirtualTransport) FailWith(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.err = err
}

// Write appends data to the internal buffer.
func (v *VirtualTransport) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// Request records the request and returns its canned reply, truncated at
// the first occurrence of terminator as a real transport would be.
func (v *VirtualTransport) Request(seq []byte, terminator byte) ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.requests = append(v.requests, string(seq))
	if v.err != nil {
		return nil, v.err
	}

	reply, ok := v.replies[string(seq)]
	if !ok {
		return nil, nil
	}
	if i := bytes.IndexByte(reply, terminator); i >= 0 {
		reply = reply[:i+1]
	}
	out := make([]byte, len(reply))
	copy(out, reply)
	return out, nil
}

// --- Test helpers (not part of Transport interface) ---

// Output returns everything written so far.
func (v *VirtualTransport) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Requests returns the request sequences issued so far, in order.
func (v *VirtualTransport) Requests() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]string, len(v.requests))
	copy(out, v.requests)
	return out
}

// Reset clears captured output and the request log, keeping canned replies.
func (v *VirtualTransport) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.requests = nil
}
