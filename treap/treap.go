package treap

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// PrioritySource draws the random priority of each new node.
type PrioritySource func() uint64

type node struct {
	key      uint64
	priority uint64
	left     *node
	right    *node
}

// split partitions t into the keys below key and the keys at or above it.
func split(t *node, key uint64) (*node, *node) {
	if t == nil {
		return nil, nil
	}
	if t.key < key {
		l, r := split(t.right, key)
		t.right = l
		return t, r
	}
	l, r := split(t.left, key)
	t.left = r
	return l, t
}

// merge joins two treaps where every key of l is below every key of r. The
// root with the higher priority stays on top.
func merge(l *node, r *node) *node {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	primitive.Assert(l.key < r.key)
	if l.priority > r.priority {
		l.right = merge(l.right, r)
		return l
	}
	r.left = merge(l, r.left)
	return r
}

func remove(t *node, key uint64) (*node, bool) {
	if t == nil {
		return nil, false
	}
	if key == t.key {
		return merge(t.left, t.right), true
	}
	var removed bool
	if key < t.key {
		t.left, removed = remove(t.left, key)
	} else {
		t.right, removed = remove(t.right, key)
	}
	return t, removed
}

func inOrder(t *node, visit func(uint64)) {
	if t == nil {
		return
	}
	inOrder(t.left, visit)
	visit(t.key)
	inOrder(t.right, visit)
}

func height(t *node) uint64 {
	if t == nil {
		return 0
	}
	return 1 + max(height(t.left), height(t.right))
}

// Treap is a randomized binary search tree of distinct keys. Keys are in BST
// order and priorities in max-heap order, so the expected depth is O(log n)
// whatever order the keys arrive in.
//
// A Treap is not safe for concurrent use.
type Treap struct {
	root   *node
	size   uint64
	source PrioritySource
}

// New creates an empty treap drawing priorities from source. A nil source
// uses primitive.RandomUint64.
func New(source PrioritySource) *Treap {
	if source == nil {
		source = primitive.RandomUint64
	}
	return &Treap{source: source}
}

func (t *Treap) Len() uint64 {
	return t.size
}

func (t *Treap) Height() uint64 {
	return height(t.root)
}

func (t *Treap) Contains(key uint64) bool {
	var n = t.root
	for n != nil {
		if key == n.key {
			return true
		}
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// Insert adds key, returning false if it was already present.
func (t *Treap) Insert(key uint64) bool {
	if t.Contains(key) {
		return false
	}
	l, r := split(t.root, key)
	n := &node{key: key, priority: t.source()}
	t.root = merge(merge(l, n), r)
	t.size++
	return true
}

// Delete removes key, returning false if it was not present.
func (t *Treap) Delete(key uint64) bool {
	root, removed := remove(t.root, key)
	t.root = root
	if removed {
		t.size--
	}
	return removed
}

// InOrder visits the keys in ascending order.
func (t *Treap) InOrder(visit func(uint64)) {
	inOrder(t.root, visit)
}

// Split moves the keys of t below key into l and the rest into r. Both results
// share t's priority source, and t is left empty.
func (t *Treap) Split(key uint64) (*Treap, *Treap) {
	lroot, rroot := split(t.root, key)
	l := &Treap{root: lroot, source: t.source}
	r := &Treap{root: rroot, source: t.source}
	var n uint64
	inOrder(lroot, func(uint64) { n++ })
	l.size = n
	r.size = t.size - n
	*t = Treap{source: t.source}
	return l, r
}

// Merge joins l and r into a new treap using l's priority source. Every key
// of l must be less than every key of r. Both inputs are left empty.
func Merge(l *Treap, r *Treap) *Treap {
	if l == r {
		panic("treap: merge of a treap with itself")
	}
	merged := &Treap{
		root:   merge(l.root, r.root),
		size:   std.SumAssumeNoOverflow(l.size, r.size),
		source: l.source,
	}
	l.root, l.size = nil, 0
	r.root, r.size = nil, 0
	return merged
}
