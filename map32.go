package bitpile

import (
	"golang.org/x/exp/slices"

	"github.com/bitpile/bitpile/block"
)

// Map32 is a set of uint32 values sharded across blocks keyed by the high
// 16 bits. Keys are kept sorted, so iteration is ascending and rank/select
// aggregate across shards in key order.
type Map32 struct {
	keys   []uint16
	blocks []*block.Block
}

// NewMap32 returns an empty Map32.
func NewMap32() *Map32 {
	return &Map32{}
}

// NewMap32FromSlice returns a Map32 holding the given values.
func NewMap32FromSlice(values []uint32) *Map32 {
	m := NewMap32()
	for _, x := range values {
		m.Insert(x)
	}
	return m
}

// Clear resets the map to the empty set.
func (m *Map32) Clear() {
	m.keys = nil
	m.blocks = nil
}

// Clone returns a deep copy of the map.
func (m *Map32) Clone() *Map32 {
	c := &Map32{
		keys:   slices.Clone(m.keys),
		blocks: make([]*block.Block, len(m.blocks)),
	}
	for i, b := range m.blocks {
		c.blocks[i] = b.Clone()
	}
	return c
}

func (m *Map32) findKey(hi uint16) (int, bool) {
	return slices.BinarySearch(m.keys, hi)
}

// Contains reports whether x is in the set.
func (m *Map32) Contains(x uint32) bool {
	hi, lo := split32(x)
	i, ok := m.findKey(hi)
	return ok && m.blocks[i].Contains(lo)
}

// Insert adds x to the set. It returns true if x was absent.
func (m *Map32) Insert(x uint32) bool {
	hi, lo := split32(x)
	i, ok := m.findKey(hi)
	if !ok {
		m.keys = slices.Insert(m.keys, i, hi)
		m.blocks = slices.Insert(m.blocks, i, block.New())
	}
	return m.blocks[i].Insert(lo)
}

// Remove deletes x from the set. It returns true if x was present. An
// emptied block stays in place until Optimize reclaims it.
func (m *Map32) Remove(x uint32) bool {
	hi, lo := split32(x)
	i, ok := m.findKey(hi)
	return ok && m.blocks[i].Remove(lo)
}

// CountOnes returns the number of values in the set.
func (m *Map32) CountOnes() uint64 {
	n := uint64(0)
	for _, b := range m.blocks {
		n += uint64(b.CountOnes())
	}
	return n
}

// CountZeros returns the number of absent values, 2^32 - CountOnes.
func (m *Map32) CountZeros() uint64 {
	return 1<<32 - m.CountOnes()
}

// MemSize returns the approximate heap footprint of all blocks in bytes.
func (m *Map32) MemSize() uint64 {
	n := uint64(0)
	for _, b := range m.blocks {
		n += uint64(b.MemSize())
	}
	return n
}

// Stats returns the per-block Stats in key order.
func (m *Map32) Stats() []block.Stats {
	out := make([]block.Stats, len(m.blocks))
	for i, b := range m.blocks {
		out[i] = b.Stats()
	}
	return out
}

// Optimize re-fits every block to its cheapest representation and drops the
// blocks that have become empty.
func (m *Map32) Optimize() {
	n := 0
	for i, b := range m.blocks {
		b.Optimize()
		if b.CountOnes() != 0 {
			m.keys[n] = m.keys[i]
			m.blocks[n] = b
			n++
		}
	}
	m.keys = m.keys[:n]
	m.blocks = m.blocks[:n]
}

// ShrinkToFit drops excess backing capacity in every block.
func (m *Map32) ShrinkToFit() {
	for _, b := range m.blocks {
		b.ShrinkToFit()
	}
	m.keys = slices.Clip(m.keys)
	m.blocks = slices.Clip(m.blocks)
}

// Rank1 counts members strictly below position i.
func (m *Map32) Rank1(i uint32) uint64 {
	hi, lo := split32(i)
	rank := uint64(0)
	for idx, key := range m.keys {
		if key > hi {
			break
		}
		if key == hi {
			rank += uint64(m.blocks[idx].Rank1(uint32(lo)))
			break
		}
		rank += uint64(m.blocks[idx].CountOnes())
	}
	return rank
}

// Rank0 counts absent values strictly below position i.
func (m *Map32) Rank0(i uint32) uint64 {
	return uint64(i) - m.Rank1(i)
}

// Select1 returns the position of the (k+1)-th member, or ok=false when
// fewer than k+1 values are present.
func (m *Map32) Select1(k uint64) (uint32, bool) {
	for idx, key := range m.keys {
		w := uint64(m.blocks[idx].CountOnes())
		if k < w {
			lo, _ := m.blocks[idx].Select1(uint32(k))
			return merge32(key, lo), true
		}
		k -= w
	}
	return 0, false
}

// Select0 returns the position of the (k+1)-th absent value, or ok=false
// when fewer than k+1 values are absent. Keys with no block are treated as
// blocks of 2^16 zeros, so the scan accounts for the gaps between present
// keys explicitly.
func (m *Map32) Select0(k uint64) (uint32, bool) {
	next := uint32(0) // first key not yet accounted for
	for idx, key := range m.keys {
		if gap := (uint64(key) - uint64(next)) << 16; k < gap {
			return next<<16 + uint32(k), true
		} else {
			k -= gap
		}
		if z := uint64(m.blocks[idx].CountZeros()); k < z {
			lo, _ := m.blocks[idx].Select0(uint32(k))
			return merge32(key, lo), true
		} else {
			k -= z
		}
		next = uint32(key) + 1
	}
	if tail := (1<<16 - uint64(next)) << 16; k < tail {
		return next<<16 + uint32(k), true
	}
	return 0, false
}

// Iter returns an ascending iterator over the members.
func (m *Map32) Iter() *Iter32 {
	return &Iter32{keys: m.keys, blocks: m.blocks}
}

// ForEach calls f on each member in ascending order until f returns false.
func (m *Map32) ForEach(f func(x uint32) bool) {
	it := m.Iter()
	for {
		x, ok := it.Next()
		if !ok || !f(x) {
			return
		}
	}
}

// Iter32 is a finite, ascending stream over the members of a Map32. It is
// not restartable and must not outlive mutations of its map.
type Iter32 struct {
	keys   []uint16
	blocks []*block.Block
	idx    int
	cur    *block.Iterator
}

// Next returns the next member in ascending order, or ok=false when the
// stream is exhausted.
func (it *Iter32) Next() (uint32, bool) {
	for {
		if it.cur == nil {
			if it.idx >= len(it.keys) {
				return 0, false
			}
			it.cur = it.blocks[it.idx].Iter()
		}
		if lo, ok := it.cur.Next(); ok {
			return merge32(it.keys[it.idx], lo), true
		}
		it.cur = nil
		it.idx++
	}
}
