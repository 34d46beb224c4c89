// Package render draws a tree for people from its read-only node sequence.
// It never sees the tree itself.
package render

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/nikandfor/hacked/low"
	"github.com/xlab/treeprint"
	"nikand.dev/go/minidb"
	"tlog.app/go/errors"
)

// Text writes one line per node in depth first order:
//
//	Root: [3]
//	            Level 1: [1]
//
// Children are padded by 12 spaces plus 4 per level of their parent, accumulated down the tree.
func Text[K, V any](w io.Writer, nodes iter.Seq2[int, minidb.NodeView[K, V]]) error {
	var b low.Buf
	var pads []int

	for d, v := range nodes {
		b = b[:0]

		if d == 0 {
			pads = pads[:0]
			b = append(b, "Root: "...)
		} else {
			pads = append(pads[:d-1], pad(pads, d))
			b = append(b, strings.Repeat(" ", pads[d-1])...)
			b = append(b, "Level "...)
			b = strconv.AppendInt(b, int64(d), 10)
			b = append(b, ": "...)
		}

		b = appendKeys(b, v.Keys)
		b = append(b, '\n')

		if _, err := w.Write(b); err != nil {
			return errors.Wrap(err, "write")
		}
	}

	return nil
}

func pad(pads []int, d int) int {
	p := 12 + (d-1)*4

	if d > 1 {
		p += pads[d-2]
	}

	return p
}

// Outline renders the tree with box drawing characters.
func Outline[K, V any](nodes iter.Seq2[int, minidb.NodeView[K, V]]) string {
	var root treeprint.Tree
	var stack []treeprint.Tree

	for d, v := range nodes {
		label := string(appendKeys(nil, v.Keys))

		if d == 0 {
			root = treeprint.NewWithRoot(label)
			stack = append(stack[:0], root)

			continue
		}

		if v.Leaf {
			stack[d-1].AddNode(label)
			continue
		}

		stack = append(stack[:d], stack[d-1].AddBranch(label))
	}

	if root == nil {
		return ""
	}

	return root.String()
}

// DOT writes a graphviz digraph, one record per node labeled with its keys.
func DOT[K, V any](w io.Writer, nodes iter.Seq2[int, minidb.NodeView[K, V]]) error {
	var b low.Buf
	var stack []int

	b = append(b, "digraph btree {\n\tnode [shape=box, style=\"rounded,filled\", fillcolor=lightblue];\n"...)

	id := 0

	for d, v := range nodes {
		fmt.Fprintf(&b, "\tn%d [label=%q];\n", id, appendKeys(nil, v.Keys))

		if d > 0 {
			fmt.Fprintf(&b, "\tn%d -> n%d;\n", stack[d-1], id)
		}

		stack = append(stack[:d], id)
		id++
	}

	b = append(b, "}\n"...)

	_, err := w.Write(b)
	if err != nil {
		return errors.Wrap(err, "write")
	}

	return nil
}

func appendKeys[K any](b []byte, keys []K) []byte {
	b = append(b, '[')

	for i, k := range keys {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = fmt.Append(b, k)
	}

	return append(b, ']')
}
