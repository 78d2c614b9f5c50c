package btree

import "fmt"

// DefaultMinDegree is the minimum degree t used when the configuration
// leaves it unset. It yields 39 keys and 40 slots per node.
const DefaultMinDegree = 20

// Config configures a B-tree container.
type Config struct {
	// MinDegree is the minimum degree t of the tree. A node holds at most
	// 2t-1 separator keys and 2t slots. Zero selects DefaultMinDegree.
	MinDegree int
}

func (cfg Config) normalized() Config {
	if cfg.MinDegree == 0 {
		cfg.MinDegree = DefaultMinDegree
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.MinDegree < 2 {
		return fmt.Errorf("%w: minimum degree must be at least 2, got %d",
			ErrInvalidConfig, cfg.MinDegree)
	}
	if cfg.MinDegree > maxBase {
		return fmt.Errorf("%w: minimum degree %d exceeds fixed storage base %d",
			ErrInvalidConfig, cfg.MinDegree, maxBase)
	}
	return nil
}
