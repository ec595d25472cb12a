// ABOUTME: Defines the Transport interface for raw terminal I/O
// ABOUTME: Abstracts the byte stream so the protocol can target real or virtual terminals

package termctl

// Transport is the raw byte boundary to the terminal device.
//
// Write is fire-and-forget emission to the terminal's output stream.
//
// Request emits seq, then blocks reading the input stream until terminator
// is seen, returning everything read including the terminator. A nil or
// empty result with a nil error means the terminal did not answer (the
// stream is not a terminal, the report is unsupported, or the transport's
// deadline expired with nothing read). Timeout and EOF policy belong to the
// Transport implementation, not to callers.
type Transport interface {
	Write(p []byte) (n int, err error)
	Request(seq []byte, terminator byte) ([]byte, error)
}
