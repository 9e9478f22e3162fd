package bitpile

import "github.com/pkg/errors"

// Map-level invariant checks, wired into tests the same way the block-level
// ones are; a non-nil result always means a bug in this package. An emptied
// container is legal only between Remove and the next Optimize, so callers
// check outside that window.

func (m *Map32) validate() error {
	if len(m.keys) != len(m.blocks) {
		return errors.Errorf("map32: %d keys for %d blocks", len(m.keys), len(m.blocks))
	}
	for i, key := range m.keys {
		if i > 0 && m.keys[i-1] >= key {
			return errors.Errorf("map32: keys not strictly ascending at %d: %d >= %d",
				i, m.keys[i-1], key)
		}
		if m.blocks[i].CountOnes() == 0 {
			return errors.Errorf("map32: key %d maps to an empty block", key)
		}
	}
	return nil
}

func (m *Map64) validate() error {
	if len(m.keys) != len(m.shards) {
		return errors.Errorf("map64: %d keys for %d shards", len(m.keys), len(m.shards))
	}
	for i, key := range m.keys {
		if i > 0 && m.keys[i-1] >= key {
			return errors.Errorf("map64: keys not strictly ascending at %d: %d >= %d",
				i, m.keys[i-1], key)
		}
		if m.shards[i].CountOnes() == 0 {
			return errors.Errorf("map64: key %d maps to an empty shard", key)
		}
		if err := m.shards[i].validate(); err != nil {
			return errors.Wrapf(err, "map64: shard %d", key)
		}
	}
	return nil
}
