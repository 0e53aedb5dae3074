// Package buffer
// Author: momentics <momentics@gmail.com>
//
// Slice-chain buffer engine for hioload-buf.
// An OwnedBuffer keeps its bytes in an ordered chain of memory slices:
// engine-owned slices acquired from a recycler, and zero-copy fragment
// slices referencing externally-owned memory. Appends fill spare tail
// capacity before growing the chain, moves splice whole slices between
// buffers without copying, and the reserve/commit protocol exposes writable
// capacity for direct vectored reads. One instance has one logical owner;
// no locking is performed.
package buffer
