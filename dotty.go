package btree

import (
	"cmp"
	"fmt"
	"io"
)

type nodeids[K cmp.Ordered, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K cmp.Ordered, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes).
//
// Internal nodes render as circles labeled with their separator keys,
// leaves as boxes listing key/value pairs; overflow slots are marked with
// an asterisk. Output order follows the tree structure and is
// deterministic.
func (t *Tree[K, V]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	t.dotNode(t.root, &ids, &nodelist, &edgelist)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func (t *Tree[K, V]) dotNode(n *node[K, V], ids *nodeids[K, V], nodelist, edgelist *string) {
	id := ids.alloc(n)
	used := int(n.used)
	if n.leaf() {
		label := ""
		for i, s := range n.slots {
			if i > 0 {
				label += "\\n"
			}
			if i < used {
				label += fmt.Sprintf("%v=%v", n.keys[i], s.value)
			} else {
				label += fmt.Sprintf("*=%v", s.value)
			}
		}
		*nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",style=filled,shape=box];\n", id, label)
		return
	}
	label := ""
	for i := 0; i < used; i++ {
		if i > 0 {
			label += " "
		}
		label += fmt.Sprintf("%v", n.keys[i])
	}
	*nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=circle];\n", id, label)
	for i, s := range n.slots {
		childID := ids.alloc(s.child)
		if i < used {
			*edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"<=%v\"];\n", id, childID, n.keys[i])
		} else {
			*edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"*\"];\n", id, childID)
		}
		t.dotNode(s.child, ids, nodelist, edgelist)
	}
}
