// File: pool/default.go
// Author: momentics <momentics@gmail.com>
//
// Process-wide default recycler and stats reporting.

package pool

import (
	"log/slog"
	"sync"

	"github.com/pamburus/slogx"
)

var (
	defaultOnce sync.Once
	defaultRec  *Recycler
)

// Default returns the process-wide recycler shared by buffers constructed
// without an explicit one.
func Default() *Recycler {
	defaultOnce.Do(func() {
		defaultRec = NewRecycler()
	})
	return defaultRec
}

// LogStats emits the recycler's accounting counters through log.
func (r *Recycler) LogStats(log *slogx.Logger) {
	s := r.Stats()
	log.Info("slice recycler stats",
		slog.Int64("total_alloc", s.TotalAlloc),
		slog.Int64("total_free", s.TotalFree),
		slog.Int64("in_use", s.InUse),
	)
}
