// File: api/buffer.go
// Author: momentics <momentics@gmail.com>
//
// Mutable, growable byte buffer abstraction: the core data-movement
// primitive between protocol codecs and the I/O layer. Decouples callers
// from the physical layout of buffered bytes while allowing zero-copy
// ownership transfer between buffers and zero-copy ingestion of
// externally-owned memory.

package api

// RawSlice is a transient view of one contiguous region of a buffer's
// memory, the unit exchanged with vectored I/O. It never owns memory and is
// valid only until the next mutation of the buffer it was taken from.
type RawSlice = []byte

// Fragment is a capability representing externally-owned memory attached to
// a buffer without copying. The engine holds only a reference; Done is
// invoked exactly once when the engine no longer touches the memory (full
// drain or owning-buffer release), never before. The memory must stay valid
// until then.
type Fragment interface {
	// Bytes returns the externally-owned memory. Must be non-empty.
	Bytes() []byte

	// Done releases the memory back to its owner. Idempotent: repeated
	// calls after the first are no-ops.
	Done()
}

// Buffer is the logical byte-stream interface. Implementations are
// single-owner: no internal locking is performed, and a single instance must
// not be mutated concurrently. Contract violations (see ContractError) panic
// rather than returning an error.
type Buffer interface {
	// Len returns the number of readable bytes in the logical stream.
	Len() int

	// Add copies p to the end of the logical stream.
	Add(p []byte)

	// AddString copies s to the end of the logical stream.
	AddString(s string)

	// AddBuffer copies the readable content of other to the end of the
	// logical stream. other is left unchanged. Self-add panics.
	AddBuffer(other Buffer)

	// AddFragment appends externally-owned memory without copying.
	// f.Done() fires exactly once when the bytes are fully drained or the
	// buffer is released.
	AddFragment(f Fragment)

	// Prepend copies p in front of the logical stream. A zero-length p is
	// a strict no-op: no slice is allocated.
	Prepend(p []byte)

	// PrependString copies s in front of the logical stream.
	PrependString(s string)

	// PrependBuffer splices all of other's slices in front of this
	// buffer's slices without copying and empties other. Self-prepend
	// panics.
	PrependBuffer(other Buffer)

	// Move transfers the entire content of from to the end of this buffer
	// without copying, leaving from empty. Self-move panics.
	Move(from Buffer)

	// MoveN transfers exactly n bytes from the head of from to the end of
	// this buffer. Whole slices move pointer-only; a slice straddling the
	// boundary has its prefix copied. from.Len() < n panics.
	MoveN(from Buffer, n int)

	// Drain removes n bytes from the head of the logical stream. Owned
	// slices that become empty are recycled; fragment slices invoke Done
	// exactly once. n > Len() panics.
	Drain(n int)

	// RawSlices fills out with views of the readable range of each chain
	// slice in order, up to len(out), and returns the total slice count.
	// Probe with a nil out to size the destination first. The views are a
	// snapshot: any subsequent mutation invalidates them.
	RawSlices(out []RawSlice) int

	// Reserve grows the buffer with writable but not-yet-readable
	// capacity for at least n bytes, filling out with up to len(out)
	// views of that capacity, and returns the number of views produced.
	// The reserved bytes join the logical stream only on Commit.
	Reserve(n int, out []RawSlice) int

	// Commit finalizes the most recent Reserve. Each view may have been
	// re-sliced shorter to the length actually written; the shortfall
	// stays available as spare capacity. Committing more views, or a
	// longer view, than reserved panics.
	Commit(views []RawSlice)

	// Linearize guarantees the first n bytes of the logical stream are
	// contiguous and returns them. Returns nil when n == 0; n > Len()
	// panics.
	Linearize(n int) []byte

	// Search returns the logical offset of the first occurrence of
	// pattern at or after from, or -1 if absent. from beyond Len()
	// returns -1.
	Search(pattern []byte, from int) int

	// CopyOut copies len(dst) bytes starting at logical offset start into
	// dst without mutating the buffer. start+len(dst) > Len() panics.
	CopyOut(start int, dst []byte)

	// Bytes materializes the whole logical stream into one freshly
	// allocated contiguous region. Diagnostics path, not zero-copy.
	Bytes() []byte

	// String is Bytes as a string.
	String() string

	// ReadFrom reserves up to maxLen bytes, performs one vectored read on
	// h and commits exactly the bytes read. maxLen == 0 is an immediate
	// no-op success. On would-block or error nothing is committed.
	ReadFrom(h IoHandle, maxLen int) IoResult

	// WriteTo performs one vectored write of the head of the stream to h
	// and drains exactly the bytes written. On would-block, error, or a
	// zero-byte write nothing is drained.
	WriteTo(h IoHandle) IoResult

	// Release drops all content: owned slices return to the recycler and
	// every remaining fragment's Done fires. The buffer is empty and
	// reusable afterwards.
	Release()
}
