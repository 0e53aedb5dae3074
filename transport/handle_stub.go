// File: transport/handle_stub.go
//go:build !linux
// +build !linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub I/O handle for platforms without the vectored syscall path.

package transport

import "github.com/momentics/hioload-buf/api"

// Readv is not supported on this platform.
func (h *FDHandle) Readv(maxLen int, bufs []api.RawSlice) api.IoResult {
	return api.IoResult{Err: api.ErrNotSupported}
}

// Writev is not supported on this platform.
func (h *FDHandle) Writev(bufs []api.RawSlice) api.IoResult {
	return api.IoResult{Err: api.ErrNotSupported}
}

// Close is a no-op on this platform.
func (h *FDHandle) Close() error { return nil }
