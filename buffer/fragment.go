// File: buffer/fragment.go
// Author: momentics <momentics@gmail.com>
//
// One-shot release capability for externally-owned memory attached to a
// buffer without copying.

package buffer

import (
	"sync"

	"github.com/momentics/hioload-buf/api"
)

// Fragment implements api.Fragment over caller-owned memory. The release
// callback receives the memory and fires exactly once, when the buffer
// engine has fully drained the bytes or the owning buffer is released,
// never before. The memory must stay valid until then.
type Fragment struct {
	data    []byte
	release func([]byte)
	once    sync.Once
}

// NewFragment wraps externally-owned memory with a release callback.
// release may be nil when the owner needs no notification. Empty memory is
// a contract violation: a zero-length fragment would leave a degenerate
// node in the chain.
func NewFragment(data []byte, release func([]byte)) *Fragment {
	if len(data) == 0 {
		panic(api.NewContractError("fragment", "empty fragment memory"))
	}
	return &Fragment{data: data, release: release}
}

// Bytes returns the externally-owned memory.
func (f *Fragment) Bytes() []byte { return f.data }

// Len returns the fragment length in bytes.
func (f *Fragment) Len() int { return len(f.data) }

// Done invokes the release callback. Calls after the first are no-ops.
func (f *Fragment) Done() {
	f.once.Do(func() {
		if f.release != nil {
			f.release(f.data)
		}
	})
}

var _ api.Fragment = (*Fragment)(nil)
