/*
Package btree implements an in-memory, generic ordered key-value container
as a B-tree with top-down proactive splitting.

The tree keeps all leaves at equal depth and bounds node fan-out between a
minimum degree t and 2t. A node stores up to 2t-1 separator keys
interleaved with up to 2t slots, each slot holding either a child node
(internal nodes) or a value (leaf nodes). Splitting is eager: a full node
is split before it is descended into, so the tree never needs parent
back-pointers.

Current status:
  - fixed-array node storage with dynamic views over inline buffers,
  - positional search and top-down insert with proactive child splits,
  - root growth via pre-split of a wrapped full root,
  - deep structural equality,
  - strict structural invariant checker,
  - indentation, colored-console and Graphviz DOT renderings.

Deletion and range iteration are intentionally absent; the occupancy floor
of classic B-trees (t-1 keys per non-root node) is therefore never
enforced.

A quirk of the slot layout: a node produced by a split owns an overflow
slot at position used, a value with no explicit separator key of its
own. The value of every promoted separator key lives in such a slot
and is only reachable through it, which is why Find treats a leaf position
equal to used as a match whenever that slot is occupied. The flip side is
that a lookup for an absent key greater than every explicit key of such a
leaf reports the overflow value as found. See Tree.Find.

# BSD License

Please refer to the LICENSE file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btree'
func tracer() tracing.Trace {
	return tracing.Select("btree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
