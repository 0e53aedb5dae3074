// File: transport/doc.go
// Package transport
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// OS-level I/O handles for hioload-buf.
// Wraps raw non-blocking file descriptors behind the api.IoHandle contract
// using vectored syscalls, strictly separated by build tags. Would-block
// surfaces as api.ErrWouldBlock; the handle never retries and never
// interprets errors beyond that.
package transport
