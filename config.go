package wavl

import (
	"cmp"
	"fmt"
)

// DefaultCapacity is the number of node slots pre-allocated if a
// configuration does not state a capacity.
const DefaultCapacity = 16

// Config configures a tree.
type Config[K any] struct {
	// Compare defines the total order of keys. It must return a negative
	// number if a < b, 0 if a == b, and a positive number if a > b.
	Compare func(a, b K) int
	// Capacity is a hint for the number of nodes to pre-allocate.
	Capacity int
	// CheckInvariants runs Check after every mutation and panics if the
	// tree got corrupted. Intended for tests and debugging sessions.
	CheckInvariants bool
}

// OrderedConfig returns a configuration for keys with a natural order.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}
