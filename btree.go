package minidb

import (
	"cmp"

	"tlog.app/go/errors"
)

type (
	// Tree is an in-memory B-tree of minimum degree t.
	// Every node except the root holds t-1 to 2t-1 entries,
	// the root holds 0 to 2t-1, all leaves are at the same depth.
	//
	// Tree is not safe for concurrent use. Readers may share it only while no writer is active.
	Tree[K, V any] struct {
		root *node[K, V]
		t    int
		n    int

		cmp func(a, b K) int
	}
)

var ( // errors
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrKeyNotFound   = errors.New("key not found")
	ErrInvalidDegree = errors.New("invalid degree")
)

// checkTree makes every mutation verify the whole tree afterwards.
// Tests turn it on.
var checkTree bool

// New creates an empty tree ordered by cmp.Compare.
func New[K cmp.Ordered, V any](t int) (*Tree[K, V], error) {
	return NewFunc[K, V](t, cmp.Compare[K])
}

// NewFunc creates an empty tree ordered by compare,
// which must define a total order and return -1, 0 or +1 like cmp.Compare.
func NewFunc[K, V any](t int, compare func(a, b K) int) (*Tree[K, V], error) {
	if t < 2 {
		return nil, errors.Wrap(ErrInvalidDegree, "minimum degree %d", t)
	}
	if compare == nil {
		return nil, errors.New("nil compare func")
	}

	return &Tree[K, V]{
		root: &node[K, V]{},
		t:    t,
		cmp:  compare,
	}, nil
}

// DegreeFromMax converts the maximum number of children per node
// into the minimum degree. max must be even and at least 4.
func DegreeFromMax(max int) (int, error) {
	if max < 4 || max%2 != 0 {
		return 0, errors.Wrap(ErrInvalidDegree, "max degree %d: want an even number larger than 3", max)
	}

	return max / 2, nil
}

// Len is the number of keys in the tree.
func (t *Tree[K, V]) Len() int { return t.n }

// Degree is the minimum degree the tree was created with.
func (t *Tree[K, V]) Degree() int { return t.t }

// Height is the number of levels, 1 for a tree with a single leaf root.
func (t *Tree[K, V]) Height() (h int) {
	for n := t.root; ; n = n.children[0] {
		h++

		if n.leaf() {
			return h
		}
	}
}

// Search returns the value stored under k.
func (t *Tree[K, V]) Search(k K) (v V, ok bool) {
	n, i := t.search(k)
	if n == nil {
		return v, false
	}

	return n.entries[i].val, true
}

// Get is Search reporting a missing key as ErrKeyNotFound.
func (t *Tree[K, V]) Get(k K) (v V, err error) {
	v, ok := t.Search(k)
	if !ok {
		return v, errors.Wrap(ErrKeyNotFound, "key %v", k)
	}

	return v, nil
}

func (t *Tree[K, V]) search(k K) (*node[K, V], int) {
	for n := t.root; ; {
		i, eq := n.locate(k, t.cmp)
		if eq {
			return n, i
		}

		if n.leaf() {
			return nil, -1
		}

		n = n.children[i]
	}
}

// Insert adds k with value v.
// Existing keys are never overwritten, ErrDuplicateKey is returned instead.
func (t *Tree[K, V]) Insert(k K, v V) error {
	if n, _ := t.search(k); n != nil {
		return errors.Wrap(ErrDuplicateKey, "key %v", k)
	}

	if t.root.full(t.t) {
		r := &node[K, V]{
			children: []*node[K, V]{t.root},
		}

		r.split(0, t.t)

		t.root = r
	}

	n := t.root

	for !n.leaf() {
		i, _ := n.locate(k, t.cmp)

		if n.children[i].full(t.t) {
			n.split(i, t.t)

			if t.cmp(k, n.entries[i].key) > 0 {
				i++
			}
		}

		n = n.children[i]
	}

	i, _ := n.locate(k, t.cmp)
	n.insertEntryAt(i, entry[K, V]{key: k, val: v})

	t.n++

	if checkTree {
		t.mustCheck()
	}

	return nil
}

// Delete removes k from the tree or returns ErrKeyNotFound.
func (t *Tree[K, V]) Delete(k K) error {
	if n, _ := t.search(k); n == nil {
		return errors.Wrap(ErrKeyNotFound, "key %v", k)
	}

	t.delete(t.root, k)

	if len(t.root.entries) == 0 && !t.root.leaf() {
		t.root = t.root.children[0]
	}

	t.n--

	if checkTree {
		t.mustCheck()
	}

	return nil
}
