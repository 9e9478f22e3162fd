package bitpile

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/bitpile/bitpile/block"
)

// Map64 is a set of uint64 values sharded across Map32s keyed by the high
// 32 bits. A shard covers 2^32 consecutive values, itself sharded into
// blocks, so the whole structure is two-level at every layer.
type Map64 struct {
	keys   []uint32
	shards []*Map32
}

// NewMap64 returns an empty Map64.
func NewMap64() *Map64 {
	return &Map64{}
}

// NewMap64FromSlice returns a Map64 holding the given values.
func NewMap64FromSlice(values []uint64) *Map64 {
	m := NewMap64()
	for _, x := range values {
		m.Insert(x)
	}
	return m
}

// Clear resets the map to the empty set.
func (m *Map64) Clear() {
	m.keys = nil
	m.shards = nil
}

// Clone returns a deep copy of the map.
func (m *Map64) Clone() *Map64 {
	c := &Map64{
		keys:   slices.Clone(m.keys),
		shards: make([]*Map32, len(m.shards)),
	}
	for i, s := range m.shards {
		c.shards[i] = s.Clone()
	}
	return c
}

func (m *Map64) findKey(hi uint32) (int, bool) {
	return slices.BinarySearch(m.keys, hi)
}

// Contains reports whether x is in the set.
func (m *Map64) Contains(x uint64) bool {
	hi, lo := split64(x)
	i, ok := m.findKey(hi)
	return ok && m.shards[i].Contains(lo)
}

// Insert adds x to the set. It returns true if x was absent.
func (m *Map64) Insert(x uint64) bool {
	hi, lo := split64(x)
	i, ok := m.findKey(hi)
	if !ok {
		m.keys = slices.Insert(m.keys, i, hi)
		m.shards = slices.Insert(m.shards, i, NewMap32())
	}
	return m.shards[i].Insert(lo)
}

// Remove deletes x from the set. It returns true if x was present. An
// emptied shard stays in place until Optimize reclaims it.
func (m *Map64) Remove(x uint64) bool {
	hi, lo := split64(x)
	i, ok := m.findKey(hi)
	return ok && m.shards[i].Remove(lo)
}

// CountOnes returns the number of values in the set. The count saturates at
// math.MaxUint64; the exact count 2^64 requires a set no real process can
// hold, so the last value is reported as one short.
func (m *Map64) CountOnes() uint64 {
	n := uint64(0)
	for _, s := range m.shards {
		w := s.CountOnes()
		if n > math.MaxUint64-w {
			return math.MaxUint64
		}
		n += w
	}
	return n
}

// CountZeros returns the number of absent values, 2^64 - CountOnes. The
// empty map reports math.MaxUint64 rather than the unrepresentable 2^64.
func (m *Map64) CountZeros() uint64 {
	ones := m.CountOnes()
	if ones == 0 {
		return math.MaxUint64
	}
	return math.MaxUint64 - ones + 1
}

// MemSize returns the approximate heap footprint of all shards in bytes.
func (m *Map64) MemSize() uint64 {
	n := uint64(0)
	for _, s := range m.shards {
		n += s.MemSize()
	}
	return n
}

// Stats returns the per-block Stats of every shard, in key order.
func (m *Map64) Stats() []block.Stats {
	var out []block.Stats
	for _, s := range m.shards {
		out = append(out, s.Stats()...)
	}
	return out
}

// Optimize re-fits every shard and drops the shards that have become empty.
func (m *Map64) Optimize() {
	n := 0
	for i, s := range m.shards {
		s.Optimize()
		if s.CountOnes() != 0 {
			m.keys[n] = m.keys[i]
			m.shards[n] = s
			n++
		}
	}
	m.keys = m.keys[:n]
	m.shards = m.shards[:n]
}

// ShrinkToFit drops excess backing capacity in every shard.
func (m *Map64) ShrinkToFit() {
	for _, s := range m.shards {
		s.ShrinkToFit()
	}
	m.keys = slices.Clip(m.keys)
	m.shards = slices.Clip(m.shards)
}

// Rank1 counts members strictly below position i.
func (m *Map64) Rank1(i uint64) uint64 {
	hi, lo := split64(i)
	rank := uint64(0)
	for idx, key := range m.keys {
		if key > hi {
			break
		}
		if key == hi {
			rank += m.shards[idx].Rank1(lo)
			break
		}
		rank += m.shards[idx].CountOnes()
	}
	return rank
}

// Rank0 counts absent values strictly below position i.
func (m *Map64) Rank0(i uint64) uint64 {
	return i - m.Rank1(i)
}

// Select1 returns the position of the (k+1)-th member, or ok=false when
// fewer than k+1 values are present.
func (m *Map64) Select1(k uint64) (uint64, bool) {
	for idx, key := range m.keys {
		w := m.shards[idx].CountOnes()
		if k < w {
			lo, _ := m.shards[idx].Select1(k)
			return merge64(key, lo), true
		}
		k -= w
	}
	return 0, false
}

// Select0 returns the position of the (k+1)-th absent value, or ok=false
// when fewer than k+1 values are absent. As in Map32, absent keys count as
// shards of 2^32 zeros.
func (m *Map64) Select0(k uint64) (uint64, bool) {
	next := uint64(0) // first key not yet accounted for
	for idx, key := range m.keys {
		if gap := (uint64(key) - next) << 32; k < gap {
			return next<<32 + k, true
		} else {
			k -= gap
		}
		if z := m.shards[idx].CountZeros(); k < z {
			lo, _ := m.shards[idx].Select0(k)
			return merge64(key, lo), true
		} else {
			k -= z
		}
		next = uint64(key) + 1
	}
	// The tail spans (2^32 - next) absent keys; for the empty map that is
	// the whole universe and every k addresses a zero.
	remaining := uint64(1)<<32 - next
	if remaining == 1<<32 || k < remaining<<32 {
		return next<<32 + k, true
	}
	return 0, false
}

// Iter returns an ascending iterator over the members.
func (m *Map64) Iter() *Iter64 {
	return &Iter64{keys: m.keys, shards: m.shards}
}

// ForEach calls f on each member in ascending order until f returns false.
func (m *Map64) ForEach(f func(x uint64) bool) {
	it := m.Iter()
	for {
		x, ok := it.Next()
		if !ok || !f(x) {
			return
		}
	}
}

// Iter64 is a finite, ascending stream over the members of a Map64. It is
// not restartable and must not outlive mutations of its map.
type Iter64 struct {
	keys   []uint32
	shards []*Map32
	idx    int
	cur    *Iter32
}

// Next returns the next member in ascending order, or ok=false when the
// stream is exhausted.
func (it *Iter64) Next() (uint64, bool) {
	for {
		if it.cur == nil {
			if it.idx >= len(it.keys) {
				return 0, false
			}
			it.cur = it.shards[it.idx].Iter()
		}
		if lo, ok := it.cur.Next(); ok {
			return merge64(it.keys[it.idx], lo), true
		}
		it.cur = nil
		it.idx++
	}
}
