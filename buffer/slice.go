// File: buffer/slice.go
// Author: momentics <momentics@gmail.com>
//
// Chain storage unit: one contiguous backing array with a readable window.

package buffer

import "github.com/momentics/hioload-buf/api"

// slice is one contiguous region of a chain. The readable window is
// mem[start:end]; bytes before start are spare head room (prepend), bytes
// after end are spare tail room (append/reserve). A non-nil frag marks the
// memory as externally owned: it is never written to or recycled, and
// frag.Done() fires when the slice retires.
//
// Invariant: 0 <= start <= end <= len(mem).
type slice struct {
	mem   []byte
	start int
	end   int
	frag  api.Fragment
}

// newOwnedSlice acquires a backing array of at least n bytes.
func newOwnedSlice(rec api.SliceRecycler, n int) *slice {
	if n < minSliceSize {
		n = minSliceSize
	}
	mem := rec.Acquire(n)
	if len(mem) < n {
		panic(api.NewContractError("alloc", "recycler returned undersized array").
			WithContext("want", n).
			WithContext("got", len(mem)))
	}
	return &slice{mem: mem}
}

// newFragmentSlice wraps externally-owned memory, readable end to end.
func newFragmentSlice(f api.Fragment) *slice {
	mem := f.Bytes()
	return &slice{mem: mem, end: len(mem), frag: f}
}

func (s *slice) size() int { return s.end - s.start }

func (s *slice) readable() []byte { return s.mem[s.start:s.end] }

// tailRoom reports spare capacity after the readable window. Fragment
// memory is immutable, so it never has room.
func (s *slice) tailRoom() int {
	if s.frag != nil {
		return 0
	}
	return len(s.mem) - s.end
}

// headRoom reports spare capacity before the readable window.
func (s *slice) headRoom() int {
	if s.frag != nil {
		return 0
	}
	return s.start
}

// writeTail copies as much of p as fits into tail room and extends the
// readable window. Returns the number of bytes copied.
func (s *slice) writeTail(p []byte) int {
	if s.frag != nil {
		return 0
	}
	n := copy(s.mem[s.end:], p)
	s.end += n
	return n
}

// writeHead copies p into head room directly in front of the readable
// window. Caller guarantees headRoom() >= len(p).
func (s *slice) writeHead(p []byte) {
	copy(s.mem[s.start-len(p):s.start], p)
	s.start -= len(p)
}

// retire releases the slice's memory: fragments fire their Done callback,
// owned arrays return to the recycler.
func (s *slice) retire(rec api.SliceRecycler) {
	if s.frag != nil {
		s.frag.Done()
		s.frag = nil
	} else if s.mem != nil {
		rec.Recycle(s.mem)
	}
	s.mem = nil
	s.start, s.end = 0, 0
}

// minSliceSize is the smallest backing array requested for an owned slice;
// small appends amortize into one allocation. maxSliceSize chunks large
// appends so their storage stays within the recycler's size classes.
const (
	minSliceSize = 4096
	maxSliceSize = 1 << 20
)
