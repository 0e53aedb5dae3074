// File: transport/socket_stub.go
//go:build !linux
// +build !linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Socket helper stubs for platforms without the non-blocking TCP path.

package transport

import "github.com/momentics/hioload-buf/api"

// Listen is not supported on this platform.
func Listen(addr string) (int, error) {
	return -1, api.ErrNotSupported
}

// Accept is not supported on this platform.
func Accept(lfd int) (*FDHandle, error) {
	return nil, api.ErrNotSupported
}

// Dial is not supported on this platform.
func Dial(addr string) (*FDHandle, error) {
	return nil, api.ErrNotSupported
}
