// Package pool
// Author: momentics <momentics@gmail.com>
//
// Slice-storage recycling for hioload-buf.
// Backing arrays for buffer-owned slices are handed out in power-of-two
// size classes and kept on per-class FIFO free lists after a full drain,
// so steady-state buffering allocates nothing. Oversized requests bypass
// the classes and are left to the garbage collector.
package pool
