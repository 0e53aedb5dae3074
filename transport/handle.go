// File: transport/handle.go
// Author: momentics <momentics@gmail.com>
//
// Descriptor-backed I/O handle shared across platforms.

package transport

import "github.com/momentics/hioload-buf/api"

// FDHandle adapts a raw file descriptor to api.IoHandle. The descriptor is
// expected to be non-blocking; a blocking descriptor turns would-block
// reporting into stalls.
type FDHandle struct {
	fd int
}

// NewFDHandle wraps an existing descriptor. Ownership transfers: Close
// closes the descriptor.
func NewFDHandle(fd int) *FDHandle {
	return &FDHandle{fd: fd}
}

// FD returns the underlying OS-level file descriptor.
func (h *FDHandle) FD() int { return h.fd }

var _ api.IoHandle = (*FDHandle)(nil)
