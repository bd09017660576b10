package leftist

import "github.com/goose-lang/std"

type node struct {
	key   uint64
	npl   int64
	left  *node
	right *node
}

// npl is the null path length of n: the length of the shortest path to a node
// missing a child. A missing node has npl -1.
func npl(n *node) int64 {
	if n == nil {
		return -1
	}
	return n.npl
}

// merge melds two leftist trees into one, reusing their nodes. Only the right
// spines are walked, and the leftist property keeps them O(log n) long.
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
	if npl(a.left) < npl(a.right) {
		a.left, a.right = a.right, a.left
	}
	a.npl = 1 + npl(a.right)
	return a
}

func clone(n *node) *node {
	if n == nil {
		return nil
	}
	return &node{
		key:   n.key,
		npl:   n.npl,
		left:  clone(n.left),
		right: clone(n.right),
	}
}

// Heap is a leftist min-heap: every node has npl(left) >= npl(right).
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

// Clone returns a deep copy of h that shares no nodes with it.
func (h *Heap) Clone() *Heap {
	return &Heap{root: clone(h.root), size: h.size}
}

// Merge moves the nodes of a and b into a new heap in O(log(n+m)) time. Both
// a and b are left empty; a nil argument is treated as an empty heap.
func Merge(a *Heap, b *Heap) *Heap {
	if a != nil && a == b {
		panic("leftist: merge of a heap with itself")
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

// MergeCopy returns a heap holding the keys of a and b without modifying
// either; it copies both trees first, in O(n+m) time. Merging a heap with
// itself is allowed.
func MergeCopy(a *Heap, b *Heap) *Heap {
	if a == nil {
		a = New()
	}
	if b == nil {
		b = New()
	}
	return Merge(a.Clone(), b.Clone())
}
