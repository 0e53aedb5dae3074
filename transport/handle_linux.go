// File: transport/handle_linux.go
//go:build linux
// +build linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux vectored I/O via readv/writev.

package transport

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-buf/api"
)

// Readv performs one vectored read into bufs. The buffer engine sizes bufs
// to maxLen before the call, so the cap is already enforced; maxLen is part
// of the contract for handles (e.g. datagram) that need it explicitly.
func (h *FDHandle) Readv(maxLen int, bufs []api.RawSlice) api.IoResult {
	for {
		n, err := unix.Readv(h.fd, bufs)
		if err == unix.EINTR {
			continue
		}
		return ioResult(n, "readv", err)
	}
}

// Writev performs one vectored write of bufs. Short writes surface through
// the byte count, not as errors.
func (h *FDHandle) Writev(bufs []api.RawSlice) api.IoResult {
	for {
		n, err := unix.Writev(h.fd, bufs)
		if err == unix.EINTR {
			continue
		}
		return ioResult(n, "writev", err)
	}
}

// Close closes the descriptor.
func (h *FDHandle) Close() error {
	return unix.Close(h.fd)
}

// ioResult maps a syscall outcome onto the tagged result contract.
func ioResult(n int, op string, err error) api.IoResult {
	if err == nil {
		return api.IoResult{N: n}
	}
	if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
		return api.IoResult{Err: api.ErrWouldBlock}
	}
	return api.IoResult{Err: fmt.Errorf("%s: %w", op, err)}
}
