// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the hioload-buf library: the mutable growable buffer
// abstraction, raw slice views for vectored I/O, externally-owned fragments,
// the I/O handle boundary, and the slice-storage recycler. Implementations
// live in the buffer, pool and transport packages; everything here is
// interface-only so downstream code and test fakes stay decoupled from the
// concrete engine.
package api
