package concurrent

import (
	"sync"

	"pq_structures/leftist"
)

// Versioned publishes immutable versions of a leftist heap. Writers build each
// new version with leftist.MergeCopy, so a version handed out by Load is never
// modified and readers can inspect it without holding any lock.
type Versioned struct {
	mu      *sync.Mutex
	current *leftist.Heap
	version uint64
}

func NewVersioned() *Versioned {
	return &Versioned{mu: new(sync.Mutex), current: leftist.New()}
}

// Load returns the current version and its number. The heap must be treated
// as read-only: use FindMin and Len, or Clone it before mutating.
func (v *Versioned) Load() (*leftist.Heap, uint64) {
	v.mu.Lock()
	h, n := v.current, v.version
	v.mu.Unlock()
	return h, n
}

// Publish installs a new version holding the current keys plus batch, which
// is not modified. It returns the new version number.
func (v *Versioned) Publish(batch *leftist.Heap) uint64 {
	v.mu.Lock()
	v.current = leftist.MergeCopy(v.current, batch)
	v.version++
	n := v.version
	v.mu.Unlock()
	return n
}
