package minidb

import (
	"fmt"

	"tlog.app/go/loc"
)

type (
	// InvariantError reports a broken tree.
	// It means a bug in this package, the tree must not be used after it.
	InvariantError struct {
		Reason string
		Loc    loc.PC
	}

	checker[K, V any] struct {
		t *Tree[K, V]

		leafDepth int
		count     int
	}
)

func (e *InvariantError) Error() string {
	return fmt.Sprintf("btree invariant violated: %s (checked at %v)", e.Reason, e.Loc)
}

// Check verifies occupancy bounds, child counts, key order across the whole tree,
// equal leaf depth and the key counter.
func (t *Tree[K, V]) Check() error {
	if t.root == nil {
		return violation("nil root")
	}

	c := checker[K, V]{t: t, leafDepth: -1}

	if err := c.node(t.root, 0, nil, nil); err != nil {
		return err
	}

	if c.count != t.n {
		return violation("tree has %d keys, counter says %d", c.count, t.n)
	}

	return nil
}

func (t *Tree[K, V]) mustCheck() {
	if err := t.Check(); err != nil {
		panic(err)
	}
}

// node checks the subtree of n, all its keys must be strictly between lo and hi when they are set.
func (c *checker[K, V]) node(n *node[K, V], d int, lo, hi *K) error {
	t := c.t

	if len(n.entries) > 2*t.t-1 {
		return violation("depth %d: node has %d entries, max %d", d, len(n.entries), 2*t.t-1)
	}

	if d != 0 && n.deficient(t.t) {
		return violation("depth %d: node has %d entries, min %d", d, len(n.entries), t.t-1)
	}

	for i, e := range n.entries {
		if i > 0 && t.cmp(n.entries[i-1].key, e.key) >= 0 {
			return violation("depth %d: entries %d and %d out of order: %v >= %v", d, i-1, i, n.entries[i-1].key, e.key)
		}

		if lo != nil && t.cmp(*lo, e.key) >= 0 {
			return violation("depth %d: key %v not above parent bound %v", d, e.key, *lo)
		}

		if hi != nil && t.cmp(e.key, *hi) >= 0 {
			return violation("depth %d: key %v not below parent bound %v", d, e.key, *hi)
		}
	}

	c.count += len(n.entries)

	if n.leaf() {
		switch {
		case c.leafDepth == -1:
			c.leafDepth = d
		case c.leafDepth != d:
			return violation("leaf at depth %d, others at %d", d, c.leafDepth)
		}

		return nil
	}

	if len(n.children) != len(n.entries)+1 {
		return violation("depth %d: %d children for %d entries", d, len(n.children), len(n.entries))
	}

	if d == 0 && len(n.entries) == 0 {
		return violation("empty internal root")
	}

	for i, ch := range n.children {
		clo, chi := lo, hi

		if i > 0 {
			clo = &n.entries[i-1].key
		}

		if i < len(n.entries) {
			chi = &n.entries[i].key
		}

		if err := c.node(ch, d+1, clo, chi); err != nil {
			return err
		}
	}

	return nil
}

func violation(format string, args ...interface{}) *InvariantError {
	return &InvariantError{
		Reason: fmt.Sprintf(format, args...),
		Loc:    loc.Caller(1),
	}
}
