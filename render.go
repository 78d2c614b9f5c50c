package btree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Dump writes an indentation-based rendering of the tree to w.
//
// Every occupied slot prints on its own line: child slots recurse one
// indent level deeper, value slots print their key, and the overflow slot
// prints "no key". The output is deterministic and purely diagnostic.
func (t *Tree[K, V]) Dump(w io.Writer) {
	t.dumpNode(w, t.root, 0)
}

// String renders the tree via Dump.
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	t.Dump(&sb)
	return sb.String()
}

func (t *Tree[K, V]) dumpNode(w io.Writer, n *node[K, V], depth int) {
	indent := strings.Repeat("  ", depth)
	used := int(n.used)
	for i, s := range n.slots {
		if s.isChild() {
			if i < used {
				fmt.Fprintf(w, "%schild <= %v:\n", indent, n.keys[i])
			} else {
				fmt.Fprintf(w, "%schild (overflow):\n", indent)
			}
			t.dumpNode(w, s.child, depth+1)
		} else {
			if i < used {
				fmt.Fprintf(w, "%skey %v\n", indent, n.keys[i])
			} else {
				fmt.Fprintf(w, "%sno key\n", indent)
			}
		}
	}
}

// ColorDump writes the Dump rendering to w with ANSI colors: separator
// lines of internal nodes in cyan, overflow slots in yellow. Colors follow
// the global color.NoColor switch, so output degrades to the plain Dump
// text on non-terminals.
func (t *Tree[K, V]) ColorDump(w io.Writer) {
	sep := color.New(color.FgCyan)
	leaf := color.New(color.FgGreen)
	over := color.New(color.FgYellow)
	t.colorDumpNode(w, t.root, 0, sep, leaf, over)
}

func (t *Tree[K, V]) colorDumpNode(w io.Writer, n *node[K, V], depth int, sep, leaf, over *color.Color) {
	indent := strings.Repeat("  ", depth)
	used := int(n.used)
	for i, s := range n.slots {
		if s.isChild() {
			if i < used {
				sep.Fprintf(w, "%schild <= %v:\n", indent, n.keys[i])
			} else {
				over.Fprintf(w, "%schild (overflow):\n", indent)
			}
			t.colorDumpNode(w, s.child, depth+1, sep, leaf, over)
		} else {
			if i < used {
				leaf.Fprintf(w, "%skey %v\n", indent, n.keys[i])
			} else {
				over.Fprintf(w, "%sno key\n", indent)
			}
		}
	}
}
