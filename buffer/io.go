// File: buffer/io.go
// Author: momentics <momentics@gmail.com>
//
// Adapter between the slice chain and vectored I/O on an external handle.
// Commits and drains happen only for the exact byte count the handle
// confirmed; would-block and errors leave the logical stream untouched.

package buffer

import "github.com/momentics/hioload-buf/api"

// The number of views offered to a single vectored call is bounded to cap
// per-call overhead. Reads need at most two regions (tail room plus one
// fresh slice); writes gather more to flush a fragmented chain in one call.
const (
	maxReadSlices  = 2
	maxWriteSlices = 16
)

// ReadFrom reserves up to maxLen bytes, performs one vectored read on h
// and commits exactly the bytes read: the trailing view is truncated to
// its actual written length and reserved-but-unwritten views are not
// committed at all. maxLen == 0 is an immediate no-op success.
func (b *OwnedBuffer) ReadFrom(h api.IoHandle, maxLen int) api.IoResult {
	if maxLen < 0 {
		panic(api.NewContractError("readFrom", "negative max length").
			WithContext("maxLen", maxLen))
	}
	if maxLen == 0 {
		return api.IoResult{}
	}
	var views [maxReadSlices]api.RawSlice
	n := b.Reserve(maxLen, views[:])
	res := h.Readv(maxLen, views[:n])
	if !res.OK() {
		b.cancelReservation()
		return res
	}
	if res.N > maxLen {
		panic(api.NewContractError("readFrom", "handle reported more bytes than reserved").
			WithContext("reported", res.N).
			WithContext("maxLen", maxLen))
	}
	remaining := res.N
	k := 0
	for remaining > 0 {
		if len(views[k]) > remaining {
			views[k] = views[k][:remaining]
			remaining = 0
		} else {
			remaining -= len(views[k])
		}
		k++
	}
	b.Commit(views[:k])
	return res
}

// WriteTo snapshots views from the head of the chain, performs one
// vectored write on h and drains exactly the bytes written, which may be
// fewer than offered on a partial write. On would-block, error, or a
// zero-byte write nothing is drained.
func (b *OwnedBuffer) WriteTo(h api.IoHandle) api.IoResult {
	var views [maxWriteSlices]api.RawSlice
	m := b.chain.rawSlices(views[:])
	if m > maxWriteSlices {
		m = maxWriteSlices
	}
	res := h.Writev(views[:m])
	if res.OK() && res.N > 0 {
		b.Drain(res.N)
	}
	return res
}
