package btree

import (
	"cmp"
	"reflect"
)

// Tree is a mutable, generic ordered key-value container.
//
// K is the key type, V the value type. Keys are kept in strictly ascending
// order; the minimum degree is fixed at construction time through Config.
//
// All operations are synchronous and single-threaded. A tree shared across
// goroutines needs external mutual exclusion; the package performs no
// locking of its own.
type Tree[K cmp.Ordered, V any] struct {
	cfg  Config
	root *node[K, V]
}

// New creates an empty tree with validated configuration.
func New[K cmp.Ordered, V any](cfg Config) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{cfg: cfg, root: newNode[K, V]()}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config {
	return t.cfg
}

// Capacity returns the maximum number of separator keys per node, 2t-1.
func (t *Tree[K, V]) Capacity() int {
	return 2*t.cfg.MinDegree - 1
}

// Len returns the number of separator keys used in the root node.
//
// This is a shallow count, not the total number of entries stored in the
// tree. It mirrors the bookkeeping of the root node only.
func (t *Tree[K, V]) Len() int {
	return int(t.root.used)
}

// IsEmpty reports whether the tree holds no entries, i.e. whether the
// root's first slot is unoccupied.
func (t *Tree[K, V]) IsEmpty() bool {
	return len(t.root.slots) == 0
}

// Clear empties the root node in place. Subtrees hanging off the root are
// released through normal ownership drop.
func (t *Tree[K, V]) Clear() {
	t.root.reset()
	tracer().Debugf("btree: tree cleared")
}

// Find returns the value stored for key.
//
// Descent recomputes the slot position at every node: the smallest index
// whose separator key is >= key, or used when no such key exists. At a
// leaf the lookup succeeds when the position holds the key explicitly, or
// when the position is the node's occupied overflow slot. The overflow
// rule is deliberate: the value of every separator key promoted by a split
// lives in the left sibling's overflow slot and is only reachable through
// it. Its flip side is that a lookup for an absent key greater than every
// explicit key of such a leaf reports the overflow value as found.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	var zero V
	n := t.root
	for {
		if len(n.slots) == 0 {
			return zero, false
		}
		pos := n.searchPos(key)
		if !n.leaf() {
			assert(pos < len(n.slots), "find: no child for computed position")
			child := n.slots[pos].child
			assert(child != nil, "find: internal node slot holds no child")
			n = child
			continue
		}
		if pos == int(n.used) {
			if pos < len(n.slots) {
				return n.slots[pos].value, true
			}
			return zero, false
		}
		if n.keys[pos] == key {
			return n.slots[pos].value, true
		}
		return zero, false
	}
}

// Insert stores value under key and reports whether the key is net-new.
// Inserting an existing key overwrites its value in place and returns
// false.
//
// Insertion is a single top-down pass with proactive splitting: a full
// root grows the tree by one level before descent begins, and a full child
// is split before it is descended into. A node is therefore always
// guaranteed spare capacity when a new key actually reaches it.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	if int(t.root.used) == t.Capacity() {
		t.growRoot()
	}
	return t.insertNonFull(t.root, key, value)
}

// growRoot wraps the full root's content into a fresh child and splits
// that child at position 0, so the root regains spare capacity. The former
// root content becomes the sole child of a new, single-key root.
func (t *Tree[K, V]) growRoot() {
	root := t.root
	child := newNode[K, V]()
	child.used = root.used
	child.keyStore = root.keyStore
	child.slotStore = root.slotStore
	child.keys = child.keyStore[:len(root.keys)]
	child.slots = child.slotStore[:len(root.slots)]
	root.reset()
	root.slotStore[0] = slot[K, V]{child: child}
	root.slots = root.slotStore[:1]
	t.splitChild(root, 0)
	tracer().Debugf("btree: root grown, tree height increased by one")
}

// insertNonFull inserts key/value into the subtree rooted at n, which must
// have spare key capacity. Full children are split before descent.
func (t *Tree[K, V]) insertNonFull(n *node[K, V], key K, value V) bool {
	assert(int(n.used) < t.Capacity(), "insertNonFull called on a full node")
	pos := n.searchPos(key)
	if n.leaf() {
		newKey := pos == int(n.used) || n.keys[pos] != key
		if newKey {
			n.insertEntryAt(pos)
		}
		n.keyStore[pos] = key
		n.slotStore[pos] = slot[K, V]{value: value}
		return newKey
	}
	assert(pos < len(n.slots), "insertNonFull: no child for computed position")
	child := n.slots[pos].child
	assert(child != nil, "insertNonFull: internal node slot holds no child")
	if int(child.used) == t.Capacity() {
		t.splitChild(n, pos)
		// The median promoted into n at pos decides the direction: keys
		// greater than it belong to the new right sibling at pos+1.
		if key > n.keys[pos] {
			pos++
		}
	}
	return t.insertNonFull(n.slots[pos].child, key, value)
}

// Equal reports deep structural equality of two trees: same used counts,
// same key sequences and same slot sequences, recursing into child nodes.
//
// Values are compared with reflect.DeepEqual; use EqualFunc when values
// need custom comparison semantics.
func (t *Tree[K, V]) Equal(other *Tree[K, V]) bool {
	return t.EqualFunc(other, func(a, b V) bool { return reflect.DeepEqual(a, b) })
}

// EqualFunc reports deep structural equality of two trees, comparing
// values with eq.
func (t *Tree[K, V]) EqualFunc(other *Tree[K, V], eq func(a, b V) bool) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.root.equal(other.root, eq)
}
