// Package pq defines the capability set shared by the priority queues in this
// module, so that callers can use them interchangeably.
package pq

import (
	"fmt"
	"sort"

	"pq_structures/arrayheap"
	"pq_structures/binomial"
	"pq_structures/leftist"
	"pq_structures/skew"
)

// Queue is a priority queue of uint64 keys. FindMin and DeleteMin return
// false when the queue is empty.
type Queue interface {
	Insert(key uint64)
	FindMin() (uint64, bool)
	DeleteMin() (uint64, bool)
	Len() uint64
}

var (
	_ Queue = (*arrayheap.Heap)(nil)
	_ Queue = (*binomial.Heap)(nil)
	_ Queue = (*leftist.Heap)(nil)
	_ Queue = (*skew.Heap)(nil)
)

var constructors = map[string]func() Queue{
	"arrayheap": func() Queue { return arrayheap.New(0, arrayheap.MinOrder) },
	"binomial":  func() Queue { return binomial.New() },
	"leftist":   func() Queue { return leftist.New() },
	"skew":      func() Queue { return skew.New() },
}

// Kinds lists the names accepted by New, sorted.
func Kinds() []string {
	var kinds = make([]string, 0, len(constructors))
	for k := range constructors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// New returns an empty min-queue of the named kind.
func New(kind string) (Queue, error) {
	mk, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("pq: unknown queue kind %q (want one of %v)", kind, Kinds())
	}
	return mk(), nil
}

func InsertAll(q Queue, keys []uint64) {
	for _, k := range keys {
		q.Insert(k)
	}
}

// Drain removes every key from q, returning them in the order they were
// extracted.
func Drain(q Queue) []uint64 {
	var out = make([]uint64, 0, q.Len())
	for {
		k, ok := q.DeleteMin()
		if !ok {
			break
		}
		out = append(out, k)
	}
	return out
}
