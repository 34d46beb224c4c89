package minidb

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes one line per node, indented by depth, with keys and values.
func (t *Tree[K, V]) Dump(w io.Writer) {
	fmt.Fprintf(w, "btree t=%d keys=%d height=%d\n", t.t, t.n, t.Height())

	for d, v := range t.Walk() {
		pad := strings.Repeat("    ", d)

		if v.Leaf {
			fmt.Fprintf(w, "%sleaf  %v -> %v\n", pad, v.Keys, v.Values)
			continue
		}

		fmt.Fprintf(w, "%snode  %v -> %v  (%d children)\n", pad, v.Keys, v.Values, v.Children)
	}
}
