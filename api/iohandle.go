// File: api/iohandle.go
// Author: momentics <momentics@gmail.com>
//
// Operating-system I/O handle boundary. The buffer engine treats the handle
// as opaque: it does not retry, and interprets results only as
// success/would-block/error.

package api

import "errors"

// IoHandle abstracts a descriptor capable of vectored (scatter/gather) I/O.
// Implementations are expected to be non-blocking and report ErrWouldBlock
// instead of suspending.
type IoHandle interface {
	// Readv reads up to maxLen bytes into bufs, front to back, in one
	// vectored call. The combined capacity of bufs is at least maxLen.
	Readv(maxLen int, bufs []RawSlice) IoResult

	// Writev writes the bytes of bufs, front to back, in one vectored
	// call. A short write is reported through N, not an error.
	Writev(bufs []RawSlice) IoResult
}

// IoResult is the tagged outcome of one I/O call: a byte count on success,
// or an error. Would-block is a distinguished error condition, not a
// failure.
type IoResult struct {
	N   int
	Err error
}

// OK reports whether the call moved bytes (possibly zero) without error.
func (r IoResult) OK() bool { return r.Err == nil }

// WouldBlock reports whether the handle had no bytes to move right now.
func (r IoResult) WouldBlock() bool { return errors.Is(r.Err, ErrWouldBlock) }
