package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrInvariant signals a broken structural invariant detected by Check.
	ErrInvariant = errors.New("btree: structural invariant violated")
)
