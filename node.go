package minidb

import "sort"

type (
	entry[K, V any] struct {
		key K
		val V
	}

	// node keeps entries sorted by key.
	// Internal nodes always have len(children) == len(entries)+1,
	// leaves have no children at all.
	node[K, V any] struct {
		entries  []entry[K, V]
		children []*node[K, V]
	}
)

func (n *node[K, V]) leaf() bool {
	return len(n.children) == 0
}

func (n *node[K, V]) full(t int) bool {
	return len(n.entries) == 2*t-1
}

// deficient reports a non-root node below the minimum occupancy.
// Delete never lets a node reach this state, the checker uses it to prove that.
func (n *node[K, V]) deficient(t int) bool {
	return len(n.entries) < t-1
}

// spare reports the node can give away an entry and still hold t-1.
func (n *node[K, V]) spare(t int) bool {
	return len(n.entries) >= t
}

// locate returns the lower bound of k in the node.
// It's the entry index if eq is true and the child index to descend otherwise.
func (n *node[K, V]) locate(k K, cmp func(a, b K) int) (i int, eq bool) {
	i = sort.Search(len(n.entries), func(i int) bool {
		return cmp(n.entries[i].key, k) >= 0
	})

	eq = i < len(n.entries) && cmp(n.entries[i].key, k) == 0

	return i, eq
}

func (n *node[K, V]) insertEntryAt(i int, e entry[K, V]) {
	n.entries = append(n.entries, entry[K, V]{})
	copy(n.entries[i+1:], n.entries[i:])
	n.entries[i] = e
}

func (n *node[K, V]) removeEntryAt(i int) entry[K, V] {
	e := n.entries[i]
	copy(n.entries[i:], n.entries[i+1:])
	n.entries[len(n.entries)-1] = entry[K, V]{}
	n.entries = n.entries[:len(n.entries)-1]
	return e
}

func (n *node[K, V]) insertChildAt(i int, c *node[K, V]) {
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
}

func (n *node[K, V]) removeChildAt(i int) *node[K, V] {
	c := n.children[i]
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	return c
}

// split moves the upper half of the full child i into a new right sibling
// and lifts the median entry into n at position i.
//
//	child: e[0..t-2] e[t-1] e[t..2t-2]  ->  left: e[0..t-2], n: e[t-1], right: e[t..2t-2]
func (n *node[K, V]) split(i, t int) {
	c := n.children[i]
	mid := c.entries[t-1]

	r := &node[K, V]{
		entries: make([]entry[K, V], t-1, 2*t-1),
	}
	copy(r.entries, c.entries[t:])

	if !c.leaf() {
		r.children = make([]*node[K, V], t, 2*t)
		copy(r.children, c.children[t:])

		clear(c.children[t:])
		c.children = c.children[:t]
	}

	clear(c.entries[t-1:])
	c.entries = c.entries[:t-1]

	n.insertEntryAt(i, mid)
	n.insertChildAt(i+1, r)
}

// merge joins child i, separator entry i and child i+1 into child i.
// The right child is dropped from n and cleared.
func (n *node[K, V]) merge(i int) *node[K, V] {
	l := n.children[i]
	sep := n.removeEntryAt(i)
	r := n.removeChildAt(i + 1)

	l.entries = append(l.entries, sep)
	l.entries = append(l.entries, r.entries...)
	l.children = append(l.children, r.children...)

	r.entries = nil
	r.children = nil

	return l
}

// rotateRight moves the last entry of child i-1 up into n
// and the separator i-1 down to the front of child i.
func (n *node[K, V]) rotateRight(i int) {
	c := n.children[i]
	l := n.children[i-1]

	c.insertEntryAt(0, n.entries[i-1])
	n.entries[i-1] = l.removeEntryAt(len(l.entries) - 1)

	if !l.leaf() {
		c.insertChildAt(0, l.removeChildAt(len(l.children)-1))
	}
}

// rotateLeft moves the first entry of child i+1 up into n
// and the separator i down to the end of child i.
func (n *node[K, V]) rotateLeft(i int) {
	c := n.children[i]
	r := n.children[i+1]

	c.entries = append(c.entries, n.entries[i])
	n.entries[i] = r.removeEntryAt(0)

	if !r.leaf() {
		c.children = append(c.children, r.removeChildAt(0))
	}
}

func (n *node[K, V]) max() entry[K, V] {
	for !n.leaf() {
		n = n.children[len(n.children)-1]
	}

	return n.entries[len(n.entries)-1]
}

func (n *node[K, V]) min() entry[K, V] {
	for !n.leaf() {
		n = n.children[0]
	}

	return n.entries[0]
}
