package minidb

import "iter"

type (
	// NodeView is a detached copy of a node.
	// Changing it doesn't affect the tree.
	NodeView[K, V any] struct {
		Leaf     bool
		Keys     []K
		Values   []V
		Children int
	}

	levelItem[K, V any] struct {
		n *node[K, V]
		d int
	}
)

// Walk visits nodes depth first, parent before its children, children left to right.
// Each node comes with its depth, root is 0.
// A node with Children > 0 is followed by that many subtrees.
//
// The sequence may be iterated any number of times.
// The tree must not be modified while it's being iterated.
func (t *Tree[K, V]) Walk() iter.Seq2[int, NodeView[K, V]] {
	return func(yield func(int, NodeView[K, V]) bool) {
		t.root.walk(0, yield)
	}
}

// Levels visits nodes level by level, left to right.
func (t *Tree[K, V]) Levels() iter.Seq2[int, NodeView[K, V]] {
	return func(yield func(int, NodeView[K, V]) bool) {
		q := []levelItem[K, V]{{n: t.root}}

		for len(q) != 0 {
			it := q[0]
			q = q[1:]

			if !yield(it.d, it.n.view()) {
				return
			}

			for _, c := range it.n.children {
				q = append(q, levelItem[K, V]{n: c, d: it.d + 1})
			}
		}
	}
}

func (n *node[K, V]) walk(d int, yield func(int, NodeView[K, V]) bool) bool {
	if !yield(d, n.view()) {
		return false
	}

	for _, c := range n.children {
		if !c.walk(d+1, yield) {
			return false
		}
	}

	return true
}

func (n *node[K, V]) view() NodeView[K, V] {
	v := NodeView[K, V]{
		Leaf:     n.leaf(),
		Keys:     make([]K, len(n.entries)),
		Values:   make([]V, len(n.entries)),
		Children: len(n.children),
	}

	for i, e := range n.entries {
		v.Keys[i] = e.key
		v.Values[i] = e.val
	}

	return v
}
