package minidb

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLeaf(keys ...int) *node[int, int] {
	n := &node[int, int]{}

	for _, k := range keys {
		n.entries = append(n.entries, entry[int, int]{key: k, val: k * 10})
	}

	return n
}

func testInternal(keys []int, children ...*node[int, int]) *node[int, int] {
	n := testLeaf(keys...)
	n.children = children

	return n
}

func TestNodeLocate(t *testing.T) {
	n := testLeaf(10, 20, 30)

	for _, tc := range []struct {
		k  int
		i  int
		eq bool
	}{
		{5, 0, false},
		{10, 0, true},
		{15, 1, false},
		{20, 1, true},
		{30, 2, true},
		{35, 3, false},
	} {
		i, eq := n.locate(tc.k, cmp.Compare[int])
		assert.Equal(t, tc.i, i, "key %d", tc.k)
		assert.Equal(t, tc.eq, eq, "key %d", tc.k)
	}

	i, eq := testLeaf().locate(1, cmp.Compare[int])
	assert.Equal(t, 0, i)
	assert.False(t, eq)
}

func TestNodeOccupancy(t *testing.T) {
	assert.True(t, testLeaf(1, 2, 3).full(2))
	assert.False(t, testLeaf(1, 2).full(2))

	assert.True(t, testLeaf(1).deficient(3))
	assert.False(t, testLeaf(1, 2).deficient(3))

	assert.True(t, testLeaf(1, 2).spare(2))
	assert.False(t, testLeaf(1).spare(2))
}

func TestNodeSplitLeaf(t *testing.T) {
	p := testInternal(nil, testLeaf(1, 2, 3, 4, 5))

	p.split(0, 3)

	assert.Equal(t, []int{3}, keysOf(p))
	assert.Equal(t, []int{1, 2}, keysOf(p.children[0]))
	assert.Equal(t, []int{4, 5}, keysOf(p.children[1]))
	assert.Equal(t, 30, p.entries[0].val)
	assert.True(t, p.children[1].leaf())
}

func TestNodeSplitInternal(t *testing.T) {
	var leaves []*node[int, int]
	for i := 0; i < 4; i++ {
		leaves = append(leaves, testLeaf(i*10+1))
	}

	c := testInternal([]int{10, 20, 30}, leaves...)
	p := testInternal([]int{100}, c, testLeaf(101, 102))

	p.split(0, 2)

	assert.Equal(t, []int{20, 100}, keysOf(p))
	assert.Len(t, p.children, 3)

	l, r := p.children[0], p.children[1]
	assert.Equal(t, []int{10}, keysOf(l))
	assert.Equal(t, []int{30}, keysOf(r))
	assert.Equal(t, []*node[int, int]{leaves[0], leaves[1]}, l.children)
	assert.Equal(t, []*node[int, int]{leaves[2], leaves[3]}, r.children)
}

func TestNodeMerge(t *testing.T) {
	l := testLeaf(1, 2)
	r := testLeaf(4, 5)
	p := testInternal([]int{3, 9}, l, r, testLeaf(10, 11))

	m := p.merge(0)

	assert.Same(t, l, m)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, keysOf(m))
	assert.Equal(t, []int{9}, keysOf(p))
	assert.Len(t, p.children, 2)
	assert.Nil(t, r.entries)
}

func TestNodeRotate(t *testing.T) {
	p := testInternal([]int{10, 20}, testLeaf(1, 2, 3), testLeaf(11), testLeaf(21, 22))

	p.rotateRight(1)

	assert.Equal(t, []int{3, 20}, keysOf(p))
	assert.Equal(t, []int{1, 2}, keysOf(p.children[0]))
	assert.Equal(t, []int{10, 11}, keysOf(p.children[1]))

	p.rotateLeft(1)

	assert.Equal(t, []int{3, 21}, keysOf(p))
	assert.Equal(t, []int{10, 11, 20}, keysOf(p.children[1]))
	assert.Equal(t, []int{22}, keysOf(p.children[2]))
}

func TestNodeRotateInternal(t *testing.T) {
	a, b, c, d, e := testLeaf(1), testLeaf(3), testLeaf(5), testLeaf(11), testLeaf(21)

	p := testInternal([]int{10},
		testInternal([]int{2, 4}, a, b, c),
		testInternal([]int{20}, d, e),
	)

	p.rotateRight(1)

	assert.Equal(t, []int{4}, keysOf(p))
	assert.Equal(t, []*node[int, int]{a, b}, p.children[0].children)
	assert.Equal(t, []int{10, 20}, keysOf(p.children[1]))
	assert.Equal(t, []*node[int, int]{c, d, e}, p.children[1].children)
}

func TestNodeMinMax(t *testing.T) {
	p := testInternal([]int{10}, testLeaf(1, 2), testInternal([]int{15}, testLeaf(11), testLeaf(17, 19)))

	assert.Equal(t, 1, p.min().key)
	assert.Equal(t, 19, p.max().key)
	assert.Equal(t, 190, p.max().val)
}
