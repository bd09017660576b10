package skew

import "github.com/goose-lang/std"

type node struct {
	key   uint64
	left  *node
	right *node
}

// merge melds two skew trees, reusing their nodes. Children are swapped
// unconditionally on the way back up, which gives an amortized O(log n)
// bound without storing any balance information.
func merge(a *node, b *node) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.key < a.key {
		a, b = b, a
	}
	a.right = merge(a.right, b)
	a.left, a.right = a.right, a.left
	return a
}

func clone(n *node) *node {
	if n == nil {
		return nil
	}
	return &node{key: n.key, left: clone(n.left), right: clone(n.right)}
}

// Heap is a skew min-heap.
type Heap struct {
	root *node
	size uint64
}

func New() *Heap {
	return &Heap{}
}

func (h *Heap) Len() uint64 {
	return h.size
}

func (h *Heap) Insert(key uint64) {
	h.root = merge(h.root, &node{key: key})
	h.size++
}

func (h *Heap) FindMin() (uint64, bool) {
	if h.root == nil {
		return 0, false
	}
	return h.root.key, true
}

func (h *Heap) DeleteMin() (uint64, bool) {
	if h.root == nil {
		return 0, false
	}
	root := h.root
	h.root = merge(root.left, root.right)
	h.size--
	return root.key, true
}

func (h *Heap) Clone() *Heap {
	return &Heap{root: clone(h.root), size: h.size}
}

// Merge moves the nodes of a and b into a new heap. Both a and b are left
// empty; a nil argument is treated as an empty heap.
func Merge(a *Heap, b *Heap) *Heap {
	if a != nil && a == b {
		panic("skew: merge of a heap with itself")
	}
	if a == nil {
		a = New()
	}
	if b == nil {
		b = New()
	}
	merged := &Heap{
		root: merge(a.root, b.root),
		size: std.SumAssumeNoOverflow(a.size, b.size),
	}
	*a = Heap{}
	*b = Heap{}
	return merged
}

// MergeCopy is the non-destructive Merge: both trees are copied first.
func MergeCopy(a *Heap, b *Heap) *Heap {
	if a == nil {
		a = New()
	}
	if b == nil {
		b = New()
	}
	return Merge(a.Clone(), b.Clone())
}
