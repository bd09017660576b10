package binomial

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// node is the root of a binomial tree. A tree of degree k has 2^k nodes and k
// children, linked through sibling in decreasing degree.
type node struct {
	key     uint64
	degree  uint64
	child   *node
	sibling *node
}

// Heap is a min-heap stored as a forest of binomial trees. The root list
// (head, linked through sibling) holds at most one tree per degree, sorted
// by increasing degree.
type Heap struct {
	head *node
	size uint64
}

func New() *Heap {
	return &Heap{}
}

func (h *Heap) Len() uint64 {
	return h.size
}

// link makes the root with the larger key the first child of the other root.
// Both trees must have the same degree.
func link(a *node, b *node) *node {
	primitive.Assert(a.degree == b.degree)
	if b.key < a.key {
		a, b = b, a
	}
	b.sibling = a.child
	a.child = b
	a.degree++
	return a
}

// mergeRoots merges two root lists sorted by degree into one sorted list,
// without linking trees of equal degree.
func mergeRoots(a *node, b *node) *node {
	var dummy node
	tail := &dummy
	for a != nil && b != nil {
		if a.degree <= b.degree {
			tail.sibling = a
			a = a.sibling
		} else {
			tail.sibling = b
			b = b.sibling
		}
		tail = tail.sibling
	}
	if a != nil {
		tail.sibling = a
	} else {
		tail.sibling = b
	}
	return dummy.sibling
}

// union combines two root lists into a valid forest, adding trees like binary
// digits. Three trees of one degree can appear in a row (two from the inputs
// plus a carry); the first is then left alone and the next two are linked.
func union(a *node, b *node) *node {
	head := mergeRoots(a, b)
	if head == nil {
		return nil
	}
	var prev *node
	curr := head
	next := curr.sibling
	for next != nil {
		if curr.degree != next.degree ||
			(next.sibling != nil && next.sibling.degree == curr.degree) {
			prev = curr
			curr = next
		} else {
			rest := next.sibling
			curr = link(curr, next)
			curr.sibling = rest
			if prev == nil {
				head = curr
			} else {
				prev.sibling = curr
			}
		}
		next = curr.sibling
	}
	return head
}

func (h *Heap) Insert(key uint64) {
	h.head = union(h.head, &node{key: key})
	h.size++
}

// minRoot returns the root with the smallest key and its predecessor in the
// root list (nil if it is the head).
func (h *Heap) minRoot() (*node, *node) {
	var minPrev *node
	least := h.head
	for n := h.head; n.sibling != nil; n = n.sibling {
		if n.sibling.key < least.key {
			least = n.sibling
			minPrev = n
		}
	}
	return least, minPrev
}

// FindMin scans the root list for the smallest key. The boolean is false if
// the heap is empty.
func (h *Heap) FindMin() (uint64, bool) {
	if h.head == nil {
		return 0, false
	}
	least, _ := h.minRoot()
	return least.key, true
}

// DeleteMin removes the smallest key. The children of the removed root are
// reversed into a root list of increasing degree and merged back in.
func (h *Heap) DeleteMin() (uint64, bool) {
	if h.head == nil {
		return 0, false
	}
	least, minPrev := h.minRoot()
	if minPrev == nil {
		h.head = least.sibling
	} else {
		minPrev.sibling = least.sibling
	}

	var rev *node
	child := least.child
	for child != nil {
		next := child.sibling
		child.sibling = rev
		rev = child
		child = next
	}

	h.head = union(h.head, rev)
	h.size--
	return least.key, true
}

// Merge moves the trees of a and b into a new heap. Both a and b are left
// empty; a nil argument is treated as an empty heap.
func Merge(a *Heap, b *Heap) *Heap {
	if a != nil && a == b {
		panic("binomial: merge of a heap with itself")
	}
	if a == nil {
		a = New()
	}
	if b == nil {
		b = New()
	}
	merged := &Heap{
		head: union(a.head, b.head),
		size: std.SumAssumeNoOverflow(a.size, b.size),
	}
	*a = Heap{}
	*b = Heap{}
	return merged
}

// Degrees returns the degree of each tree in the root list, in list order.
func (h *Heap) Degrees() []uint64 {
	var degrees = []uint64{}
	for n := h.head; n != nil; n = n.sibling {
		degrees = append(degrees, n.degree)
	}
	return degrees
}
