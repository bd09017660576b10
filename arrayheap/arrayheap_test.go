package arrayheap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func drain(h *Heap) []uint64 {
	out := []uint64{}
	for {
		x, ok := h.Pop()
		if !ok {
			break
		}
		out = append(out, x)
	}
	return out
}

// checkHeap verifies the parent/child ordering at every index.
func checkHeap(t assert.TestingT, h *Heap) bool {
	n := uint64(len(h.data))
	for i := uint64(0); i < n; i++ {
		for _, c := range []uint64{left(i), right(i)} {
			if c < n && h.prefers(h.data[c], h.data[i]) {
				return assert.Fail(t, "heap property violated",
					"index %d (%d) has preferred child %d (%d)", i, h.data[i], c, h.data[c])
			}
		}
	}
	return true
}

func TestBuildDrain(t *testing.T) {
	assert := assert.New(t)

	vals := []uint64{5, 3, 8, 1, 9, 2, 7}
	h := Build(vals, MinOrder)
	assert.Equal(uint64(7), h.Len())
	assert.Equal([]uint64{1, 2, 3, 5, 7, 8, 9}, drain(h))
	// Build copies its input
	assert.Equal([]uint64{5, 3, 8, 1, 9, 2, 7}, vals)

	h = Build(vals, MaxOrder)
	assert.Equal([]uint64{9, 8, 7, 5, 3, 2, 1}, drain(h))
}

func TestPushPop(t *testing.T) {
	assert := assert.New(t)

	h := New(0, MaxOrder)
	_, ok := h.Peek()
	assert.False(ok, "peek on empty heap")
	_, ok = h.Pop()
	assert.False(ok, "pop on empty heap")

	for _, x := range []uint64{5, 3, 8, 1, 9, 2, 7} {
		h.Push(x)
	}
	top, ok := h.Peek()
	assert.True(ok)
	assert.Equal(uint64(9), top)
	assert.Equal(uint64(7), h.Len(), "peek does not remove")

	assert.Equal([]uint64{9, 8, 7, 5, 3, 2, 1}, drain(h))
	assert.Equal(uint64(0), h.Len())
}

func TestDuplicates(t *testing.T) {
	h := New(2, MinOrder)
	for _, x := range []uint64{4, 4, 1, 4, 1} {
		h.Push(x)
	}
	assert.Equal(t, []uint64{1, 1, 4, 4, 4}, drain(h))
}

func TestMerge(t *testing.T) {
	assert := assert.New(t)

	a := Build([]uint64{4, 1, 7}, MinOrder)
	b := Build([]uint64{3, 9}, MinOrder)
	m, err := Merge(a, b)
	assert.NoError(err)
	assert.Equal(uint64(5), m.Len())
	assert.Equal([]uint64{1, 3, 4, 7, 9}, drain(m))

	// inputs are untouched
	assert.Equal(uint64(3), a.Len())
	assert.Equal(uint64(2), b.Len())

	m, err = MergeDestroy(a, b)
	assert.NoError(err)
	assert.Equal([]uint64{1, 3, 4, 7, 9}, drain(m))
	assert.Equal(uint64(0), a.Len())
	assert.Equal(uint64(0), b.Len())
}

func TestMergeIncompatible(t *testing.T) {
	assert := assert.New(t)

	a := Build([]uint64{1, 2}, MinOrder)
	b := Build([]uint64{3}, MaxOrder)
	_, err := Merge(a, b)
	assert.ErrorIs(err, ErrIncompatibleOrdering)

	_, err = MergeDestroy(a, b)
	assert.ErrorIs(err, ErrIncompatibleOrdering)
	assert.Equal(uint64(2), a.Len(), "failed merge must not consume inputs")
	assert.Equal(uint64(1), b.Len())
}

func TestMergeEmpty(t *testing.T) {
	assert := assert.New(t)

	h := Build([]uint64{6, 2, 4}, MinOrder)
	empty := New(0, MinOrder)

	m1, err := Merge(empty, h)
	assert.NoError(err)
	m2, err := Merge(h, empty)
	assert.NoError(err)
	m3, err := Merge(nil, h)
	assert.NoError(err)
	assert.Equal([]uint64{2, 4, 6}, drain(m1))
	assert.Equal([]uint64{2, 4, 6}, drain(m2))
	assert.Equal([]uint64{2, 4, 6}, drain(m3))

	m, err := Merge(nil, nil)
	assert.NoError(err)
	assert.Nil(m)
}

func TestMergeSelfPanics(t *testing.T) {
	h := Build([]uint64{1}, MinOrder)
	assert.Panics(t, func() { MergeDestroy(h, h) })
}

func orderingGen() *rapid.Generator[Ordering] {
	return rapid.SampledFrom([]Ordering{MinOrder, MaxOrder})
}

func sortedFor(keys []uint64, o Ordering) []uint64 {
	s := append([]uint64{}, keys...)
	slices.Sort(s)
	if o == MaxOrder {
		slices.Reverse(s)
	}
	return s
}

func TestHeapProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		o := orderingGen().Draw(t, "ordering")
		initial := rapid.SliceOf(rapid.Uint64Range(0, 100)).Draw(t, "initial")
		h := Build(initial, o)
		checkHeap(t, h)

		model := slices.Clone(initial)
		ops := rapid.SliceOfN(rapid.Uint64Range(0, 101), 0, 50).Draw(t, "ops")
		for _, op := range ops {
			// 101 is a pop, anything else is pushed
			if op == 101 {
				x, ok := h.Pop()
				if len(model) == 0 {
					assert.False(ok)
					continue
				}
				want := sortedFor(model, o)[0]
				assert.True(ok)
				assert.Equal(want, x)
				model = slices.Delete(model, slices.Index(model, want), slices.Index(model, want)+1)
			} else {
				h.Push(op)
				model = append(model, op)
			}
			checkHeap(t, h)
		}
		assert.Equal(uint64(len(model)), h.Len())
		assert.Equal(sortedFor(model, o), drain(h))
	})
}

func TestMergeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		o := orderingGen().Draw(t, "ordering")
		xs := rapid.SliceOf(rapid.Uint64()).Draw(t, "xs")
		ys := rapid.SliceOf(rapid.Uint64()).Draw(t, "ys")

		m, err := MergeDestroy(Build(xs, o), Build(ys, o))
		if assert.NoError(err) {
			checkHeap(t, m)
			assert.Equal(uint64(len(xs)+len(ys)), m.Len())
			assert.Equal(sortedFor(append(slices.Clone(xs), ys...), o), drain(m))
		}
	})
}
