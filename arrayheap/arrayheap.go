package arrayheap

import (
	"errors"

	"github.com/goose-lang/std"
)

// Ordering selects whether the root holds the smallest or the largest key.
type Ordering uint8

const (
	MinOrder Ordering = iota
	MaxOrder
)

func (o Ordering) String() string {
	if o == MaxOrder {
		return "max"
	}
	return "min"
}

const minCapacity = 4

// ErrIncompatibleOrdering is returned when merging a min-heap with a max-heap.
var ErrIncompatibleOrdering = errors.New("arrayheap: cannot merge heaps with different orderings")

// Heap is a binary heap stored in a slice. The children of index i are at
// 2i+1 and 2i+2.
//
// A Heap is not safe for concurrent use.
type Heap struct {
	data     []uint64
	ordering Ordering
}

func New(capacity uint64, ordering Ordering) *Heap {
	if capacity == 0 {
		capacity = minCapacity
	}
	return &Heap{
		data:     make([]uint64, 0, capacity),
		ordering: ordering,
	}
}

// Build copies keys and heapifies them in O(n) by sifting down every internal
// node, starting from the last one.
func Build(keys []uint64, ordering Ordering) *Heap {
	capacity := uint64(len(keys))
	if capacity == 0 {
		capacity = 1
	}
	data := make([]uint64, len(keys), capacity)
	copy(data, keys)
	h := &Heap{data: data, ordering: ordering}
	h.heapify()
	return h
}

func (h *Heap) heapify() {
	n := uint64(len(h.data))
	if n < 2 {
		return
	}
	for i := parent(n - 1); ; i-- {
		h.siftDown(i)
		if i == 0 {
			break
		}
	}
}

func parent(i uint64) uint64 { return (i - 1) / 2 }
func left(i uint64) uint64   { return 2*i + 1 }
func right(i uint64) uint64  { return 2*i + 2 }

// prefers reports whether a belongs strictly above b.
func (h *Heap) prefers(a uint64, b uint64) bool {
	if h.ordering == MaxOrder {
		return a > b
	}
	return a < b
}

func (h *Heap) siftUp(i uint64) {
	for i > 0 {
		p := parent(i)
		if !h.prefers(h.data[i], h.data[p]) {
			break
		}
		h.data[i], h.data[p] = h.data[p], h.data[i]
		i = p
	}
}

func (h *Heap) siftDown(i uint64) {
	n := uint64(len(h.data))
	for {
		l := left(i)
		r := right(i)
		best := i
		if l < n && h.prefers(h.data[l], h.data[best]) {
			best = l
		}
		if r < n && h.prefers(h.data[r], h.data[best]) {
			best = r
		}
		if best == i {
			break
		}
		h.data[i], h.data[best] = h.data[best], h.data[i]
		i = best
	}
}

func (h *Heap) Len() uint64 {
	return uint64(len(h.data))
}

func (h *Heap) Ordering() Ordering {
	return h.ordering
}

func (h *Heap) Push(key uint64) {
	h.data = append(h.data, key)
	h.siftUp(uint64(len(h.data)) - 1)
}

// Peek returns the root without removing it. The boolean is false if the heap
// is empty.
func (h *Heap) Peek() (uint64, bool) {
	if len(h.data) == 0 {
		return 0, false
	}
	return h.data[0], true
}

// Pop removes and returns the root. The boolean is false if the heap is
// empty.
func (h *Heap) Pop() (uint64, bool) {
	n := uint64(len(h.data))
	if n == 0 {
		return 0, false
	}
	root := h.data[0]
	h.data[0] = h.data[n-1]
	h.data = h.data[:n-1]
	if n > 1 {
		h.siftDown(0)
	}
	return root, true
}

// Insert, FindMin and DeleteMin let a Heap stand in for the other
// priority queues. For a max-heap they operate on the largest key.

func (h *Heap) Insert(key uint64) {
	h.Push(key)
}

func (h *Heap) FindMin() (uint64, bool) {
	return h.Peek()
}

func (h *Heap) DeleteMin() (uint64, bool) {
	return h.Pop()
}

// Keys returns a copy of the underlying buffer in heap order.
func (h *Heap) Keys() []uint64 {
	keys := make([]uint64, len(h.data))
	copy(keys, h.data)
	return keys
}

func concat(a *Heap, b *Heap) []uint64 {
	total := std.SumAssumeNoOverflow(a.Len(), b.Len())
	buf := make([]uint64, 0, total)
	buf = append(buf, a.data...)
	buf = append(buf, b.data...)
	return buf
}

// Merge returns a new heap holding the keys of both a and b, leaving a and b
// unchanged. Either argument may be nil.
func Merge(a *Heap, b *Heap) (*Heap, error) {
	if a == nil && b == nil {
		return nil, nil
	}
	if a == nil {
		return Build(b.data, b.ordering), nil
	}
	if b == nil {
		return Build(a.data, a.ordering), nil
	}
	if a.ordering != b.ordering {
		return nil, ErrIncompatibleOrdering
	}
	return Build(concat(a, b), a.ordering), nil
}

// MergeDestroy is like Merge but releases the buffers of both inputs, which
// are left empty. On error neither input is modified.
func MergeDestroy(a *Heap, b *Heap) (*Heap, error) {
	if a != nil && a == b {
		panic("arrayheap: merge of a heap with itself")
	}
	merged, err := Merge(a, b)
	if err != nil {
		return nil, err
	}
	if a != nil {
		a.data = nil
	}
	if b != nil {
		b.data = nil
	}
	return merged, nil
}
