// File: buffer/chain.go
// Author: momentics <momentics@gmail.com>
//
// Ordered slice chain: the buffer's logical byte stream is the
// concatenation of each slice's readable window, in chain order, with no
// gaps. The chain assumes arguments were validated at the OwnedBuffer
// boundary.

package buffer

import (
	"bytes"

	"github.com/momentics/hioload-buf/api"
)

type sliceChain struct {
	slices []*slice
	size   int
	rec    api.SliceRecycler
}

func (c *sliceChain) head() *slice {
	if len(c.slices) == 0 {
		return nil
	}
	return c.slices[0]
}

func (c *sliceChain) tail() *slice {
	if len(c.slices) == 0 {
		return nil
	}
	return c.slices[len(c.slices)-1]
}

func (c *sliceChain) pushBack(s *slice) {
	c.slices = append(c.slices, s)
	c.size += s.size()
}

func (c *sliceChain) pushFront(s *slice) {
	c.slices = append([]*slice{s}, c.slices...)
	c.size += s.size()
}

// append copies p to the end of the stream, filling the tail slice's spare
// capacity before growing the chain with a new owned slice.
func (c *sliceChain) append(p []byte) {
	if len(p) == 0 {
		return
	}
	if t := c.tail(); t != nil && t.tailRoom() > 0 {
		n := t.writeTail(p)
		c.size += n
		p = p[n:]
	}
	for len(p) > 0 {
		want := len(p)
		if want > maxSliceSize {
			want = maxSliceSize
		}
		s := newOwnedSlice(c.rec, want)
		n := s.writeTail(p)
		c.slices = append(c.slices, s)
		c.size += n
		p = p[n:]
	}
}

// prepend copies p in front of the stream. A fresh slice places its
// readable window at the far end of the backing array so that later
// prepends can keep filling head room.
func (c *sliceChain) prepend(p []byte) {
	if len(p) == 0 {
		return
	}
	if h := c.head(); h != nil && h.headRoom() >= len(p) {
		h.writeHead(p)
		c.size += len(p)
		return
	}
	s := newOwnedSlice(c.rec, len(p))
	s.start, s.end = len(s.mem), len(s.mem)
	s.writeHead(p)
	c.pushFront(s)
}

// spliceFront moves all of other's slices in front of this chain's slices.
// Pure pointer splice, no bytes are copied.
func (c *sliceChain) spliceFront(other *sliceChain) {
	if len(other.slices) == 0 {
		return
	}
	merged := make([]*slice, 0, len(other.slices)+len(c.slices))
	merged = append(merged, other.slices...)
	merged = append(merged, c.slices...)
	c.slices = merged
	c.size += other.size
	other.slices = nil
	other.size = 0
}

// moveAll appends all of other's slices to this chain and empties other.
func (c *sliceChain) moveAll(other *sliceChain) {
	if len(other.slices) == 0 {
		return
	}
	c.slices = append(c.slices, other.slices...)
	c.size += other.size
	other.slices = nil
	other.size = 0
}

// moveN transfers exactly n bytes from other's head to this chain's tail.
// Whole slices move pointer-only; when the boundary falls mid-slice only
// that slice's prefix is copied, keeping every backing array single-owner.
// Caller guarantees n <= other.size.
func (c *sliceChain) moveN(other *sliceChain, n int) {
	for n > 0 {
		h := other.slices[0]
		sz := h.size()
		if sz <= n {
			other.slices = other.slices[1:]
			other.size -= sz
			c.slices = append(c.slices, h)
			c.size += sz
			n -= sz
			continue
		}
		c.append(h.readable()[:n])
		h.start += n
		other.size -= n
		n = 0
	}
}

// drain removes n bytes from the head of the stream, retiring slices that
// become empty. Caller guarantees n <= c.size.
func (c *sliceChain) drain(n int) {
	for n > 0 {
		h := c.slices[0]
		sz := h.size()
		if sz <= n {
			c.slices = c.slices[1:]
			c.size -= sz
			n -= sz
			h.retire(c.rec)
			continue
		}
		h.start += n
		c.size -= n
		n = 0
	}
}

// rawSlices fills out with readable views in chain order, up to len(out),
// and returns the total slice count.
func (c *sliceChain) rawSlices(out []api.RawSlice) int {
	for i, s := range c.slices {
		if i >= len(out) {
			break
		}
		out[i] = s.readable()
	}
	return len(c.slices)
}

// copyOut copies len(dst) bytes starting at logical offset start into dst.
// Caller guarantees start+len(dst) <= c.size.
func (c *sliceChain) copyOut(start int, dst []byte) {
	for _, s := range c.slices {
		if len(dst) == 0 {
			return
		}
		sz := s.size()
		if start >= sz {
			start -= sz
			continue
		}
		n := copy(dst, s.readable()[start:])
		dst = dst[n:]
		start = 0
	}
}

// release retires every slice and empties the chain.
func (c *sliceChain) release() {
	for _, s := range c.slices {
		s.retire(c.rec)
	}
	c.slices = nil
	c.size = 0
}

// cursor addresses one logical byte as (slice index, offset within the
// slice's readable window).
type cursor struct {
	si  int
	off int
}

// seek positions a cursor at logical offset pos. Caller guarantees
// pos <= c.size; pos == c.size yields a cursor one past the last byte.
func (c *sliceChain) seek(pos int) cursor {
	cu := cursor{}
	for cu.si < len(c.slices) {
		sz := c.slices[cu.si].size()
		if pos < sz {
			cu.off = pos
			return cu
		}
		pos -= sz
		cu.si++
	}
	return cu
}

// matchAt reports whether pat occurs at the cursor position, comparing
// across slice boundaries. Caller guarantees pat fits in the remaining
// stream.
func (c *sliceChain) matchAt(cu cursor, pat []byte) bool {
	for len(pat) > 0 {
		s := c.slices[cu.si].readable()[cu.off:]
		n := len(s)
		if n > len(pat) {
			n = len(pat)
		}
		if !bytes.Equal(s[:n], pat[:n]) {
			return false
		}
		pat = pat[n:]
		cu.si++
		cu.off = 0
	}
	return true
}

// search returns the logical offset of the first occurrence of pat at or
// after from, or -1. An empty pattern matches at from.
func (c *sliceChain) search(pat []byte, from int) int {
	if from < 0 || from > c.size {
		return -1
	}
	if len(pat) == 0 {
		return from
	}
	last := c.size - len(pat)
	cu := c.seek(from)
	off := from
	for off <= last {
		s := c.slices[cu.si].readable()[cu.off:]
		i := bytes.IndexByte(s, pat[0])
		if i < 0 {
			off += len(s)
			cu.si++
			cu.off = 0
			continue
		}
		off += i
		if off > last {
			return -1
		}
		cu.off += i
		if c.matchAt(cu, pat) {
			return off
		}
		off++
		cu.off++
		for cu.si < len(c.slices) && cu.off >= c.slices[cu.si].size() {
			cu.si++
			cu.off = 0
		}
	}
	return -1
}
