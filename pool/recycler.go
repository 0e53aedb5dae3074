// File: pool/recycler.go
// Author: momentics <momentics@gmail.com>
//
// Size-classed recycler for slice backing arrays.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-buf/api"
)

// Predefined (power-of-two) size classes for slice backing arrays (bytes).
// This table can be tuned for deployment needs.
var sizeClasses = [...]int{
	4 * 1024,        // 4K
	8 * 1024,        // 8K
	16 * 1024,       // 16K
	32 * 1024,       // 32K
	64 * 1024,       // 64K
	128 * 1024,      // 128K
	256 * 1024,      // 256K
	512 * 1024,      // 512K
	1 * 1024 * 1024, // 1M
}

// classCapacity bounds the number of idle arrays kept per class.
const classCapacity = 1024

// classIndex returns the index of the smallest class >= size, or -1 when
// size exceeds the biggest class.
func classIndex(size int) int {
	for i, c := range sizeClasses {
		if size <= c {
			return i
		}
	}
	return -1
}

// classList is one per-class free list. eapache/queue is a plain ring
// queue; the mutex provides the single point of synchronization.
type classList struct {
	mu sync.Mutex
	q  *queue.Queue
}

// Recycler implements api.SliceRecycler with per-class FIFO free lists.
type Recycler struct {
	classes [len(sizeClasses)]classList

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewRecycler creates an empty recycler.
func NewRecycler() *Recycler {
	r := &Recycler{}
	for i := range r.classes {
		r.classes[i].q = queue.New()
	}
	return r
}

// Acquire returns a backing array of at least n bytes, len == cap. Arrays
// within the class table are reused; oversized requests allocate exactly.
func (r *Recycler) Acquire(n int) []byte {
	if n <= 0 {
		n = 1
	}
	ci := classIndex(n)
	if ci < 0 {
		r.totalAlloc.Add(1)
		return make([]byte, n)
	}
	cl := &r.classes[ci]
	cl.mu.Lock()
	if cl.q.Length() > 0 {
		p := cl.q.Remove().([]byte)
		cl.mu.Unlock()
		r.totalAlloc.Add(1)
		return p
	}
	cl.mu.Unlock()
	r.totalAlloc.Add(1)
	return make([]byte, sizeClasses[ci])
}

// Recycle returns a backing array for reuse. Arrays that do not match a
// class size exactly, or arrive when the class list is full, are dropped
// for the garbage collector.
func (r *Recycler) Recycle(p []byte) {
	r.totalFree.Add(1)
	ci := classIndex(len(p))
	if ci < 0 || len(p) != sizeClasses[ci] {
		return
	}
	cl := &r.classes[ci]
	cl.mu.Lock()
	if cl.q.Length() < classCapacity {
		cl.q.Add(p)
	}
	cl.mu.Unlock()
}

// Stats exposes allocation accounting. TotalAlloc counts arrays handed
// out, TotalFree counts arrays returned; InUse is the difference.
func (r *Recycler) Stats() api.RecyclerStats {
	alloc := r.totalAlloc.Load()
	free := r.totalFree.Load()
	return api.RecyclerStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
	}
}

var _ api.SliceRecycler = (*Recycler)(nil)
