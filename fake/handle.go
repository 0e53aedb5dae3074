// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake I/O handle for testing the buffer's vectored I/O adapter.
// Provides predictable, controllable behavior: queued inbound bytes,
// per-call transfer limits to force partial reads/writes, and error
// injection.

package fake

import "github.com/momentics/hioload-buf/api"

// Handle is a scripted implementation of api.IoHandle. Zero value is
// usable: an empty handle reports would-block on read and accepts all
// writes.
type Handle struct {
	incoming []byte
	outgoing []byte

	// ReadLimit caps bytes moved per Readv call (0 = no cap). Forces
	// partially filled reservations.
	ReadLimit int

	// WriteLimit caps bytes accepted per Writev call (0 = no cap).
	// Forces partial writes.
	WriteLimit int

	readErr  error
	writeErr error

	readCalls  int
	writeCalls int
}

// NewHandle creates an empty fake handle.
func NewHandle() *Handle { return &Handle{} }

// Feed queues data to be returned by subsequent Readv calls.
func (h *Handle) Feed(data []byte) {
	h.incoming = append(h.incoming, data...)
}

// FailNextRead makes the next Readv return err without moving bytes.
func (h *Handle) FailNextRead(err error) { h.readErr = err }

// FailNextWrite makes the next Writev return err without moving bytes.
func (h *Handle) FailNextWrite(err error) { h.writeErr = err }

// Written returns everything accepted by Writev so far.
func (h *Handle) Written() []byte { return h.outgoing }

// ReadCalls returns the number of Readv invocations.
func (h *Handle) ReadCalls() int { return h.readCalls }

// WriteCalls returns the number of Writev invocations.
func (h *Handle) WriteCalls() int { return h.writeCalls }

// Readv implements api.IoHandle. Queued bytes fill bufs front to back, up
// to maxLen and ReadLimit; an empty queue reports would-block like a
// non-blocking socket.
func (h *Handle) Readv(maxLen int, bufs []api.RawSlice) api.IoResult {
	h.readCalls++
	if h.readErr != nil {
		err := h.readErr
		h.readErr = nil
		return api.IoResult{Err: err}
	}
	if len(h.incoming) == 0 {
		return api.IoResult{Err: api.ErrWouldBlock}
	}
	budget := maxLen
	if h.ReadLimit > 0 && h.ReadLimit < budget {
		budget = h.ReadLimit
	}
	total := 0
	for _, buf := range bufs {
		if budget == 0 || len(h.incoming) == 0 {
			break
		}
		n := len(buf)
		if n > budget {
			n = budget
		}
		n = copy(buf[:n], h.incoming)
		h.incoming = h.incoming[n:]
		budget -= n
		total += n
	}
	return api.IoResult{N: total}
}

// Writev implements api.IoHandle. Bytes are accepted front to back up to
// WriteLimit.
func (h *Handle) Writev(bufs []api.RawSlice) api.IoResult {
	h.writeCalls++
	if h.writeErr != nil {
		err := h.writeErr
		h.writeErr = nil
		return api.IoResult{Err: err}
	}
	budget := h.WriteLimit
	total := 0
	for _, buf := range bufs {
		n := len(buf)
		if h.WriteLimit > 0 {
			if budget == 0 {
				break
			}
			if n > budget {
				n = budget
			}
		}
		h.outgoing = append(h.outgoing, buf[:n]...)
		total += n
		if h.WriteLimit > 0 {
			budget -= n
		}
	}
	return api.IoResult{N: total}
}

var _ api.IoHandle = (*Handle)(nil)
