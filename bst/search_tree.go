package bst

// SearchTree is an unbalanced binary search tree of distinct keys. The nil
// *SearchTree is the empty tree, and methods that change the shape return the
// new root:
//
//	t := NewSearchTree()
//	t = t.Insert(3)
type SearchTree struct {
	key   uint64
	left  *SearchTree
	right *SearchTree
}

func NewSearchTree() *SearchTree {
	var s *SearchTree
	return s
}

func singletonTree(key uint64) *SearchTree {
	return &SearchTree{key: key}
}

// Insert adds key to the tree. Inserting a key that is already present leaves
// the tree unchanged.
func (t *SearchTree) Insert(key uint64) *SearchTree {
	if t == nil {
		return singletonTree(key)
	}
	// modify in-place
	if key < t.key {
		t.left = t.left.Insert(key)
	} else if t.key < key {
		t.right = t.right.Insert(key)
	}
	// if t.key == key then key is already present
	return t
}

func (t *SearchTree) Contains(key uint64) bool {
	var n = t
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

// Min returns the smallest key. The boolean is false if the tree is empty.
func (t *SearchTree) Min() (uint64, bool) {
	if t == nil {
		return 0, false
	}
	var n = t
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Delete removes key from the tree, if present. A node with two children takes
// the key of its in-order successor, which is then deleted from the right
// subtree.
func (t *SearchTree) Delete(key uint64) *SearchTree {
	if t == nil {
		return t
	}
	if key < t.key {
		t.left = t.left.Delete(key)
		return t
	}
	if t.key < key {
		t.right = t.right.Delete(key)
		return t
	}
	if t.left == nil {
		return t.right
	}
	if t.right == nil {
		return t.left
	}
	succ, _ := t.right.Min()
	t.key = succ
	t.right = t.right.Delete(succ)
	return t
}

func (t *SearchTree) PreOrder(visit func(uint64)) {
	if t == nil {
		return
	}
	visit(t.key)
	t.left.PreOrder(visit)
	t.right.PreOrder(visit)
}

// InOrder visits the keys in ascending order.
func (t *SearchTree) InOrder(visit func(uint64)) {
	if t == nil {
		return
	}
	t.left.InOrder(visit)
	visit(t.key)
	t.right.InOrder(visit)
}

func (t *SearchTree) PostOrder(visit func(uint64)) {
	if t == nil {
		return
	}
	t.left.PostOrder(visit)
	t.right.PostOrder(visit)
	visit(t.key)
}

func (t *SearchTree) Len() uint64 {
	if t == nil {
		return 0
	}
	return 1 + t.left.Len() + t.right.Len()
}

// Height is the number of nodes on the longest root-to-leaf path; the empty
// tree has height 0.
func (t *SearchTree) Height() uint64 {
	if t == nil {
		return 0
	}
	l := t.left.Height()
	r := t.right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Destroy unlinks every node in post-order and returns how many nodes were
// released. The tree must not be used afterwards.
func (t *SearchTree) Destroy() uint64 {
	if t == nil {
		return 0
	}
	n := t.left.Destroy() + t.right.Destroy()
	t.left = nil
	t.right = nil
	return n + 1
}
