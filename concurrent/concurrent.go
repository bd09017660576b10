// Package concurrent provides external synchronization for the queues in this
// module, none of which is safe for concurrent use on its own.
package concurrent

import (
	"sync"

	"github.com/goose-lang/std"

	"pq_structures/pq"
)

// Locked serializes every operation on a queue with one mutex.
type Locked struct {
	q  pq.Queue
	mu *sync.Mutex
}

// NewLocked wraps q. The caller must not use q directly afterwards.
func NewLocked(q pq.Queue) *Locked {
	return &Locked{q: q, mu: new(sync.Mutex)}
}

func (l *Locked) Insert(key uint64) {
	l.mu.Lock()
	l.q.Insert(key)
	l.mu.Unlock()
}

func (l *Locked) FindMin() (uint64, bool) {
	l.mu.Lock()
	x, ok := l.q.FindMin()
	l.mu.Unlock()
	return x, ok
}

func (l *Locked) DeleteMin() (uint64, bool) {
	l.mu.Lock()
	x, ok := l.q.DeleteMin()
	l.mu.Unlock()
	return x, ok
}

func (l *Locked) Len() uint64 {
	l.mu.Lock()
	n := l.q.Len()
	l.mu.Unlock()
	return n
}

// ParallelInsert inserts each batch from its own thread and waits for all of
// them to finish.
func ParallelInsert(l *Locked, batches [][]uint64) {
	var handles []*std.JoinHandle
	for _, batch := range batches {
		h := std.Spawn(func() {
			for _, k := range batch {
				l.Insert(k)
			}
		})
		handles = append(handles, h)
	}
	for _, h := range handles {
		h.Join()
	}
}
