package algo

import (
	"pq_structures/arrayheap"
	"pq_structures/pq"
)

// Sort sorts arr in increasing order with a heap sort: an O(n) Floyd build
// followed by n pops.
func Sort(arr []uint64) {
	h := arrayheap.Build(arr, arrayheap.MinOrder)
	for i := range arr {
		x, _ := h.Pop()
		arr[i] = x
	}
}

// SortWith sorts arr in increasing order by passing it through q, which must be
// empty.
func SortWith(q pq.Queue, arr []uint64) {
	pq.InsertAll(q, arr)
	for i := range arr {
		x, _ := q.DeleteMin()
		arr[i] = x
	}
}
