// File: buffer/owned.go
// Author: momentics <momentics@gmail.com>
//
// OwnedBuffer: the public buffer instance wrapping one slice chain.
// Contract violations panic with *api.ContractError; the chain itself
// assumes validated arguments.

package buffer

import (
	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/pool"
)

// reservation records one writable view handed out by Reserve. base is the
// slice's end at reserve time; fresh slices are not linked into the chain
// until committed with a non-zero length.
type reservation struct {
	s     *slice
	base  int
	n     int
	fresh bool
}

// OwnedBuffer is the slice-chain implementation of api.Buffer. Single
// owner, no internal locking. The zero value is not usable; construct with
// New, NewWith, NewString or NewBytes.
type OwnedBuffer struct {
	chain sliceChain
	resv  []reservation
}

// New creates an empty buffer backed by the default recycler.
func New() *OwnedBuffer { return NewWith(pool.Default()) }

// NewWith creates an empty buffer backed by rec.
func NewWith(rec api.SliceRecycler) *OwnedBuffer {
	return &OwnedBuffer{chain: sliceChain{rec: rec}}
}

// NewString creates a buffer pre-populated with s.
func NewString(s string) *OwnedBuffer {
	b := New()
	b.AddString(s)
	return b
}

// NewBytes creates a buffer pre-populated with a copy of p.
func NewBytes(p []byte) *OwnedBuffer {
	b := New()
	b.Add(p)
	return b
}

// Len returns the number of readable bytes.
func (b *OwnedBuffer) Len() int { return b.chain.size }

// Add copies p to the end of the logical stream.
func (b *OwnedBuffer) Add(p []byte) {
	b.cancelReservation()
	b.chain.append(p)
}

// AddString copies s to the end of the logical stream.
func (b *OwnedBuffer) AddString(s string) {
	b.Add([]byte(s))
}

// AddBuffer copies the readable content of other to the end of this
// buffer. other is left unchanged.
func (b *OwnedBuffer) AddBuffer(other api.Buffer) {
	if ob, ok := other.(*OwnedBuffer); ok && ob == b {
		panic(api.NewContractError("add", "cannot add a buffer to itself"))
	}
	n := other.RawSlices(nil)
	views := make([]api.RawSlice, n)
	other.RawSlices(views)
	for _, v := range views {
		b.Add(v)
	}
}

// AddFragment appends externally-owned memory without copying. f.Done()
// fires exactly once when the bytes are fully drained or the buffer is
// released.
func (b *OwnedBuffer) AddFragment(f api.Fragment) {
	if f == nil || len(f.Bytes()) == 0 {
		panic(api.NewContractError("addFragment", "fragment must carry non-empty memory"))
	}
	b.cancelReservation()
	b.chain.pushBack(newFragmentSlice(f))
}

// Prepend copies p in front of the logical stream. A zero-length p is a
// strict no-op: allocating an empty head slice would leave a degenerate
// node that corrupts a following move or append.
func (b *OwnedBuffer) Prepend(p []byte) {
	if len(p) == 0 {
		return
	}
	b.cancelReservation()
	b.chain.prepend(p)
}

// PrependString copies s in front of the logical stream.
func (b *OwnedBuffer) PrependString(s string) {
	b.Prepend([]byte(s))
}

// PrependBuffer splices all of other's slices in front of this buffer's
// slices without copying and empties other.
func (b *OwnedBuffer) PrependBuffer(other api.Buffer) {
	ob := b.sibling(other, "prepend")
	b.cancelReservation()
	ob.cancelReservation()
	b.chain.spliceFront(&ob.chain)
}

// Move transfers the entire content of from to the end of this buffer
// without copying, leaving from empty.
func (b *OwnedBuffer) Move(from api.Buffer) {
	ob := b.sibling(from, "move")
	b.cancelReservation()
	ob.cancelReservation()
	b.chain.moveAll(&ob.chain)
}

// MoveN transfers exactly n bytes from the head of from to the end of this
// buffer. The caller is expected to have checked from.Len() >= n.
func (b *OwnedBuffer) MoveN(from api.Buffer, n int) {
	ob := b.sibling(from, "move")
	if n < 0 || n > ob.Len() {
		panic(api.NewContractError("move", "source holds fewer bytes than requested").
			WithContext("requested", n).
			WithContext("available", ob.Len()))
	}
	if n == 0 {
		return
	}
	b.cancelReservation()
	ob.cancelReservation()
	b.chain.moveN(&ob.chain, n)
}

// Drain removes n bytes from the head of the logical stream.
func (b *OwnedBuffer) Drain(n int) {
	if n < 0 || n > b.chain.size {
		panic(api.NewContractError("drain", "drain beyond buffer length").
			WithContext("requested", n).
			WithContext("length", b.chain.size))
	}
	b.cancelReservation()
	b.chain.drain(n)
}

// RawSlices fills out with views of each chain slice in order, up to
// len(out), and returns the total slice count. Probe with nil to size the
// destination first.
func (b *OwnedBuffer) RawSlices(out []api.RawSlice) int {
	return b.chain.rawSlices(out)
}

// Reserve grows the buffer with writable but not-yet-readable capacity for
// at least n bytes. At most two views are produced: spare tail capacity of
// the last slice, then one fresh slice covering the remainder. A previous
// uncommitted reservation is discarded.
func (b *OwnedBuffer) Reserve(n int, out []api.RawSlice) int {
	if n <= 0 {
		panic(api.NewContractError("reserve", "reserve size must be positive").
			WithContext("requested", n))
	}
	if len(out) == 0 {
		panic(api.NewContractError("reserve", "no output views supplied"))
	}
	b.cancelReservation()

	t := b.chain.tail()
	if t != nil && t.tailRoom() >= n {
		b.resv = append(b.resv, reservation{s: t, base: t.end, n: n})
		out[0] = t.mem[t.end : t.end+n]
		return 1
	}
	views := 0
	remaining := n
	if t != nil && t.tailRoom() > 0 && len(out) > 1 {
		room := t.tailRoom()
		b.resv = append(b.resv, reservation{s: t, base: t.end, n: room})
		out[0] = t.mem[t.end:]
		views++
		remaining -= room
	}
	s := newOwnedSlice(b.chain.rec, remaining)
	b.resv = append(b.resv, reservation{s: s, n: remaining, fresh: true})
	out[views] = s.mem[:remaining]
	views++
	return views
}

// Commit finalizes the most recent Reserve. Each view may have been
// re-sliced shorter to the length actually written; the shortfall stays
// available as spare capacity. Fresh slices committed at zero length never
// join the chain.
func (b *OwnedBuffer) Commit(views []api.RawSlice) {
	if len(views) > len(b.resv) {
		panic(api.NewContractError("commit", "committing more views than reserved").
			WithContext("committed", len(views)).
			WithContext("reserved", len(b.resv)))
	}
	for i, v := range views {
		r := b.resv[i]
		if len(v) > r.n {
			panic(api.NewContractError("commit", "committed view longer than reserved").
				WithContext("view", i).
				WithContext("committed", len(v)).
				WithContext("reserved", r.n))
		}
		if r.fresh {
			if len(v) == 0 {
				b.chain.rec.Recycle(r.s.mem)
				continue
			}
			r.s.end = len(v)
			b.chain.pushBack(r.s)
			continue
		}
		if r.s.end != r.base {
			panic(api.NewContractError("commit", "reservation is stale"))
		}
		r.s.end = r.base + len(v)
		b.chain.size += len(v)
	}
	for _, r := range b.resv[len(views):] {
		if r.fresh {
			b.chain.rec.Recycle(r.s.mem)
		}
	}
	b.resv = b.resv[:0]
}

// cancelReservation discards an uncommitted reservation. Fresh slices were
// never linked into the chain; their storage returns to the recycler.
func (b *OwnedBuffer) cancelReservation() {
	for _, r := range b.resv {
		if r.fresh {
			b.chain.rec.Recycle(r.s.mem)
		}
	}
	b.resv = b.resv[:0]
}

// Linearize guarantees the first n bytes of the logical stream are
// contiguous and returns them. Linearizing more than is present risks the
// caller overflowing into unallocated memory, so that panics.
func (b *OwnedBuffer) Linearize(n int) []byte {
	if n < 0 || n > b.chain.size {
		panic(api.NewContractError("linearize", "linearize beyond buffer length").
			WithContext("requested", n).
			WithContext("length", b.chain.size))
	}
	if n == 0 {
		return nil
	}
	if h := b.chain.head(); h.size() >= n {
		return h.readable()[:n]
	}
	b.cancelReservation()
	mem := b.chain.rec.Acquire(n)
	b.chain.copyOut(0, mem[:n])
	b.chain.drain(n)
	s := &slice{mem: mem, end: n}
	b.chain.pushFront(s)
	return s.readable()
}

// Search returns the logical offset of the first occurrence of pattern at
// or after from, or -1 if absent. from beyond Len() returns -1 rather than
// failing.
func (b *OwnedBuffer) Search(pattern []byte, from int) int {
	return b.chain.search(pattern, from)
}

// CopyOut copies len(dst) bytes starting at logical offset start into dst
// without mutating the buffer.
func (b *OwnedBuffer) CopyOut(start int, dst []byte) {
	if start < 0 || start+len(dst) > b.chain.size {
		panic(api.NewContractError("copyOut", "copy range beyond buffer length").
			WithContext("start", start).
			WithContext("size", len(dst)).
			WithContext("length", b.chain.size))
	}
	b.chain.copyOut(start, dst)
}

// Bytes materializes the whole logical stream into one freshly allocated
// contiguous region. Diagnostics path, not zero-copy.
func (b *OwnedBuffer) Bytes() []byte {
	out := make([]byte, b.chain.size)
	b.chain.copyOut(0, out)
	return out
}

// String is Bytes as a string.
func (b *OwnedBuffer) String() string { return string(b.Bytes()) }

// Release drops all content: owned slices return to the recycler and every
// remaining fragment's Done fires. The buffer is empty and reusable
// afterwards.
func (b *OwnedBuffer) Release() {
	b.cancelReservation()
	b.chain.release()
}

// sibling asserts that other is a distinct slice-chain buffer. Zero-copy
// splices need access to both chains, so only OwnedBuffer peers qualify.
func (b *OwnedBuffer) sibling(other api.Buffer, op string) *OwnedBuffer {
	ob, ok := other.(*OwnedBuffer)
	if !ok {
		panic(api.NewContractError(op, "peer buffer is not a slice-chain buffer"))
	}
	if ob == b {
		panic(api.NewContractError(op, "source and destination are the same buffer"))
	}
	return ob
}

var _ api.Buffer = (*OwnedBuffer)(nil)
