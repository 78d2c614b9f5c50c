package btree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and should be used in tests after
// every mutation batch. A non-nil result indicates a tree algorithm bug,
// not an input error.
func (t *Tree[K, V]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	_, err := t.checkNode(t.root, true)
	return err
}

type subtreeInfo[K any] struct {
	height  int
	hasKeys bool
	minKey  K
	maxKey  K
}

func (t *Tree[K, V]) checkNode(n *node[K, V], isRoot bool) (info subtreeInfo[K], err error) {
	if n == nil {
		return info, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	used := int(n.used)
	occ := len(n.slots)
	if len(n.keys) != used {
		return info, fmt.Errorf("%w: key view length %d does not match used %d",
			ErrInvariant, len(n.keys), used)
	}
	if used > t.Capacity() {
		return info, fmt.Errorf("%w: %d keys exceed capacity %d",
			ErrInvariant, used, t.Capacity())
	}
	if occ > used+1 {
		return info, fmt.Errorf("%w: %d occupied slots for %d keys",
			ErrInvariant, occ, used)
	}
	for i := 1; i < used; i++ {
		if n.keys[i-1] >= n.keys[i] {
			return info, fmt.Errorf("%w: keys not strictly ascending at index %d",
				ErrInvariant, i)
		}
	}
	if occ == 0 {
		if !isRoot || used != 0 {
			return info, fmt.Errorf("%w: empty node below the root", ErrInvariant)
		}
		info.height = 1
		return info, nil
	}
	isLeaf := !n.slots[0].isChild()
	for i, s := range n.slots {
		if s.isChild() == isLeaf {
			return info, fmt.Errorf("%w: mixed child/value slots at index %d",
				ErrInvariant, i)
		}
	}
	if isLeaf {
		if occ < used {
			return info, fmt.Errorf("%w: leaf with %d slots for %d keys",
				ErrInvariant, occ, used)
		}
		info.height = 1
		info.hasKeys = used > 0
		if used > 0 {
			info.minKey = n.keys[0]
			info.maxKey = n.keys[used-1]
		}
		return info, nil
	}
	if occ != used+1 {
		return info, fmt.Errorf("%w: internal node with %d children for %d keys",
			ErrInvariant, occ, used)
	}
	var childHeight int
	for i, s := range n.slots {
		child, cErr := t.checkNode(s.child, false)
		if cErr != nil {
			return info, cErr
		}
		if i == 0 {
			childHeight = child.height
		} else if child.height != childHeight {
			return info, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariant)
		}
		if !child.hasKeys {
			continue
		}
		// Separator bounds: subtree i holds keys <= keys[i] relative to
		// its neighbors, the last subtree holds keys > keys[used-1].
		if i < used && child.maxKey > n.keys[i] {
			return info, fmt.Errorf("%w: subtree %d exceeds its separator key",
				ErrInvariant, i)
		}
		if i > 0 && child.minKey <= n.keys[i-1] {
			return info, fmt.Errorf("%w: subtree %d undercuts its separator key",
				ErrInvariant, i)
		}
		if !info.hasKeys {
			info.hasKeys = true
			info.minKey = child.minKey
		}
		info.maxKey = child.maxKey
	}
	if used > 0 {
		if info.hasKeys {
			info.minKey = min(info.minKey, n.keys[0])
			info.maxKey = max(info.maxKey, n.keys[used-1])
		} else {
			info.hasKeys = true
			info.minKey = n.keys[0]
			info.maxKey = n.keys[used-1]
		}
	}
	info.height = childHeight + 1
	return info, nil
}
