// File: api/recycler.go
// Author: momentics <momentics@gmail.com>
//
// Slice-storage recycler contract. The buffer engine acquires backing
// arrays for owned slices here and returns them when fully drained.

package api

// SliceRecycler hands out reusable backing arrays for buffer-owned slices.
// Returned arrays have len == cap, rounded up to a size class >= n.
type SliceRecycler interface {
	// Acquire returns a backing array of at least n bytes.
	Acquire(n int) []byte

	// Recycle returns a backing array for reuse. The caller must hold no
	// further references into it.
	Recycle(p []byte)

	// Stats exposes allocation accounting for observability.
	Stats() RecyclerStats
}

// RecyclerStats aggregates backing-array allocation/reuse counters.
type RecyclerStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
