package minidb

// delete removes k from the subtree rooted at n. k must be present.
//
// Every node it descends into holds at least t entries,
// so removing one never leaves a non-root node underfull
// and nothing has to be fixed on the way back up.
func (t *Tree[K, V]) delete(n *node[K, V], k K) {
	for {
		i, eq := n.locate(k, t.cmp)

		if n.leaf() {
			if eq {
				n.removeEntryAt(i)
			}

			return
		}

		if !eq {
			n = t.grow(n, i)
			continue
		}

		switch l, r := n.children[i], n.children[i+1]; {
		case l.spare(t.t):
			p := l.max()
			n.entries[i] = p

			n, k = l, p.key
		case r.spare(t.t):
			s := r.min()
			n.entries[i] = s

			n, k = r, s.key
		default:
			n = n.merge(i)
		}
	}
}

// grow makes sure child i of n holds at least t entries and returns it.
// It borrows through n from a sibling with a spare entry, left first,
// or merges the child with its right sibling (left one for the last child).
// The returned node may be a merged one, it still covers the key range of child i.
func (t *Tree[K, V]) grow(n *node[K, V], i int) *node[K, V] {
	c := n.children[i]

	switch {
	case c.spare(t.t):
		return c
	case i > 0 && n.children[i-1].spare(t.t):
		n.rotateRight(i)
		return c
	case i < len(n.entries) && n.children[i+1].spare(t.t):
		n.rotateLeft(i)
		return c
	case i < len(n.entries):
		return n.merge(i)
	default:
		return n.merge(i - 1)
	}
}
