package btree

// splitChild relieves the full child behind parent slot pos.
//
// The child's upper t-1 keys and its upper slots move into a new right
// sibling, the median key moves up into the parent at index pos, and the
// sibling is installed at pos+1. Both siblings end up holding exactly t-1
// keys and the parent gains exactly one key and one child. The new key is
// inserted afterwards by insertNonFull, never here.
//
// The left sibling keeps slots [0, t): t slots against t-1 keys, so the
// slot at position t-1 becomes its overflow slot, carrying the value of
// the promoted median. The right sibling receives slots [t, occupancy),
// which is t-1 slots when the child had no overflow slot and t when it
// had one.
func (t *Tree[K, V]) splitChild(parent *node[K, V], pos int) {
	base := t.cfg.MinDegree
	pused := int(parent.used)
	pocc := len(parent.slots)
	assert(pused < t.Capacity(), "splitChild: parent has no room for the median")
	assert(pos >= 0 && pos < pocc, "splitChild: position outside the occupied slots")
	left := parent.slotStore[pos].child
	assert(left != nil, "splitChild: slot does not hold a child")
	assert(int(left.used) == t.Capacity(), "splitChild: child is not full")

	// Make room in the parent for the median key and the new sibling.
	copy(parent.keyStore[pos+1:pused+1], parent.keyStore[pos:pused])
	copy(parent.slotStore[pos+2:pocc+1], parent.slotStore[pos+1:pocc])

	// Move the child's upper half into a new right sibling.
	locc := len(left.slots)
	right := newNode[K, V]()
	copy(right.keyStore[:base-1], left.keyStore[base:2*base-1])
	copy(right.slotStore[:locc-base], left.slotStore[base:locc])
	right.used = uint8(base - 1)
	right.keys = right.keyStore[:base-1]
	right.slots = right.slotStore[:locc-base]

	// Promote the median and shrink the left sibling, zeroing vacated
	// storage so structural equality stays well-defined.
	parent.keyStore[pos] = left.keyStore[base-1]
	var zeroKey K
	var zeroSlot slot[K, V]
	for i := base - 1; i < int(left.used); i++ {
		left.keyStore[i] = zeroKey
	}
	for i := base; i < locc; i++ {
		left.slotStore[i] = zeroSlot
	}
	left.used = uint8(base - 1)
	left.keys = left.keyStore[:base-1]
	left.slots = left.slotStore[:base]

	parent.slotStore[pos+1] = slot[K, V]{child: right}
	parent.used = uint8(pused + 1)
	parent.keys = parent.keyStore[:pused+1]
	parent.slots = parent.slotStore[:pocc+1]
	tracer().Debugf("btree: split child at slot %d, median promoted to parent", pos)
}
