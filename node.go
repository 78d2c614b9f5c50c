package btree

import "cmp"

const (
	// Fixed storage capacities sized for the largest supported minimum degree.
	maxBase  = 20
	maxKeys  = 2*maxBase - 1
	maxSlots = 2 * maxBase
)

// slot is the closed two-case variant stored in a node: a child link
// (internal nodes) or a value payload (leaf nodes). A slot with a non-nil
// child is a child slot. Occupancy is tracked by the owning node's slice
// views, not by the slot itself.
type slot[K cmp.Ordered, V any] struct {
	child *node[K, V]
	value V
}

func (s slot[K, V]) isChild() bool { return s.child != nil }

// node is the single recursive entity of the tree.
//
// A node stores up to 2t-1 separator keys and up to 2t slots. The occupied
// prefixes are exposed through the keys/slots views:
//
//	len(keys) == int(used)
//	len(slots) is the slot occupancy: used for nodes grown by plain leaf
//	insertion, used+1 for nodes produced by a split. The extra, keyless
//	entry at slots[used] is the overflow slot.
//
// Keys in the occupied prefix are distinct and strictly ascending. All
// occupied slots of one node hold the same variant: a node is classified
// leaf or internal by inspecting its first slot.
type node[K cmp.Ordered, V any] struct {
	// used is the number of explicit separator keys.
	used uint8
	// keyStore is the fixed backing storage for separator keys.
	keyStore [maxKeys]K
	// slotStore is the fixed backing storage for child/value slots.
	slotStore [maxSlots]slot[K, V]
	// keys is a dynamic-length view over keyStore[:used].
	keys []K
	// slots is a dynamic-length view over the occupied prefix of slotStore.
	slots []slot[K, V]
}

func newNode[K cmp.Ordered, V any]() *node[K, V] {
	n := &node[K, V]{}
	n.keys = n.keyStore[:0]
	n.slots = n.slotStore[:0]
	return n
}

// leaf classifies a node by inspecting its first slot. An empty node counts
// as a leaf.
func (n *node[K, V]) leaf() bool {
	return len(n.slots) == 0 || !n.slots[0].isChild()
}

// searchPos returns the smallest index i in [0, used) with keys[i] >= key,
// or used when every stored key is smaller.
func (n *node[K, V]) searchPos(key K) int {
	for i, k := range n.keys {
		if k >= key {
			return i
		}
	}
	return len(n.keys)
}

// insertEntryAt opens up position pos in a leaf for a new key/value pair.
//
// Keys in [pos, used) and slots in [pos, occupancy) move one position to
// the right; the overflow slot, if present, moves with them. The caller
// must write keyStore[pos] and slotStore[pos] afterwards.
func (n *node[K, V]) insertEntryAt(pos int) {
	used := int(n.used)
	occ := len(n.slots)
	assert(pos >= 0 && pos <= used, "insertEntryAt position out of range")
	assert(used < maxKeys && occ < maxSlots, "insertEntryAt exceeds fixed capacity")
	copy(n.keyStore[pos+1:used+1], n.keyStore[pos:used])
	copy(n.slotStore[pos+1:occ+1], n.slotStore[pos:occ])
	n.used = uint8(used + 1)
	n.keys = n.keyStore[:used+1]
	n.slots = n.slotStore[:occ+1]
}

// reset empties the node in place. Child slots are dropped, releasing their
// subtrees through normal ownership drop.
func (n *node[K, V]) reset() {
	var zeroKey K
	var zeroSlot slot[K, V]
	for i := range n.keys {
		n.keyStore[i] = zeroKey
	}
	for i := range n.slots {
		n.slotStore[i] = zeroSlot
	}
	n.used = 0
	n.keys = n.keyStore[:0]
	n.slots = n.slotStore[:0]
}

// equal performs a deep structural comparison of two subtrees, comparing
// values with eq.
func (n *node[K, V]) equal(o *node[K, V], eq func(a, b V) bool) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.used != o.used || len(n.slots) != len(o.slots) {
		return false
	}
	for i := range n.keys {
		if n.keys[i] != o.keys[i] {
			return false
		}
	}
	for i := range n.slots {
		a, b := n.slots[i], o.slots[i]
		if a.isChild() != b.isChild() {
			return false
		}
		if a.isChild() {
			if !a.child.equal(b.child, eq) {
				return false
			}
		} else if !eq(a.value, b.value) {
			return false
		}
	}
	return true
}
