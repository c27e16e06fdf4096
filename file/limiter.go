package file

import (
	"sync/atomic"

	"github.com/qingw1230/corefs/utils"
)

// Limiter bounds how many files may hold one unit of a scarce resource at
// a time, e.g. read-only mmap regions. A single Limiter is shared by every
// file its owning env opens.
type Limiter struct {
	available int32
	capacity  int32
}

// NewLimiter creates a limiter with capacity slots. The capacity is fixed
// for the limiter's lifetime.
func NewLimiter(capacity int32) *Limiter {
	return &Limiter{available: capacity, capacity: capacity}
}

// TryAcquire reserves one slot if any remain. It never blocks; a false
// return is an admission decision, not an error.
func (l *Limiter) TryAcquire() bool {
	if atomic.AddInt32(&l.available, -1) >= 0 {
		return true
	}
	s := atomic.AddInt32(&l.available, 1)
	utils.Assert(s <= l.capacity)
	return false
}

// Release returns a slot taken by a successful TryAcquire. At most one
// Release per acquisition.
func (l *Limiter) Release() {
	s := atomic.AddInt32(&l.available, 1)
	utils.Assert(s <= l.capacity)
}

// Available reports how many slots are currently free.
func (l *Limiter) Available() int32 {
	return atomic.LoadInt32(&l.available)
}
