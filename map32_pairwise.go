package bitpile

import (
	"golang.org/x/exp/slices"

	"github.com/bitpile/bitpile/block"
)

// The map-level pairwise operators merge the sorted key slices of both
// operands and delegate matching keys to the block operators. Result blocks
// that come back empty are dropped, keeping the keys-map-to-non-empty-blocks
// invariant without waiting for Optimize. Blocks taken from the right
// operand are cloned; the right side is never mutated.

// And returns the intersection of m and o as a new Map32.
func (m *Map32) And(o *Map32) *Map32 {
	out := NewMap32()
	i, j := 0, 0
	for i < len(m.keys) && j < len(o.keys) {
		switch {
		case m.keys[i] < o.keys[j]:
			i++
		case m.keys[i] > o.keys[j]:
			j++
		default:
			out.pushBlock(m.keys[i], m.blocks[i].And(o.blocks[j]))
			i++
			j++
		}
	}
	return out
}

// Or returns the union of m and o as a new Map32.
func (m *Map32) Or(o *Map32) *Map32 {
	out := NewMap32()
	i, j := 0, 0
	for i < len(m.keys) || j < len(o.keys) {
		switch {
		case j == len(o.keys) || i < len(m.keys) && m.keys[i] < o.keys[j]:
			out.pushBlock(m.keys[i], m.blocks[i].Clone())
			i++
		case i == len(m.keys) || m.keys[i] > o.keys[j]:
			out.pushBlock(o.keys[j], o.blocks[j].Clone())
			j++
		default:
			out.pushBlock(m.keys[i], m.blocks[i].Or(o.blocks[j]))
			i++
			j++
		}
	}
	return out
}

// AndNot returns the difference m minus o as a new Map32.
func (m *Map32) AndNot(o *Map32) *Map32 {
	out := NewMap32()
	j := 0
	for i, key := range m.keys {
		for j < len(o.keys) && o.keys[j] < key {
			j++
		}
		if j < len(o.keys) && o.keys[j] == key {
			out.pushBlock(key, m.blocks[i].AndNot(o.blocks[j]))
		} else {
			out.pushBlock(key, m.blocks[i].Clone())
		}
	}
	return out
}

// Xor returns the symmetric difference of m and o as a new Map32.
func (m *Map32) Xor(o *Map32) *Map32 {
	out := NewMap32()
	i, j := 0, 0
	for i < len(m.keys) || j < len(o.keys) {
		switch {
		case j == len(o.keys) || i < len(m.keys) && m.keys[i] < o.keys[j]:
			out.pushBlock(m.keys[i], m.blocks[i].Clone())
			i++
		case i == len(m.keys) || m.keys[i] > o.keys[j]:
			out.pushBlock(o.keys[j], o.blocks[j].Clone())
			j++
		default:
			out.pushBlock(m.keys[i], m.blocks[i].Xor(o.blocks[j]))
			i++
			j++
		}
	}
	return out
}

// AndWith replaces m with the intersection of m and o.
func (m *Map32) AndWith(o *Map32) {
	n, j := 0, 0
	for i, key := range m.keys {
		for j < len(o.keys) && o.keys[j] < key {
			j++
		}
		if j < len(o.keys) && o.keys[j] == key {
			b := m.blocks[i]
			b.AndWith(o.blocks[j])
			if b.CountOnes() != 0 {
				m.keys[n] = key
				m.blocks[n] = b
				n++
			}
		}
	}
	m.keys = m.keys[:n]
	m.blocks = m.blocks[:n]
}

// OrWith replaces m with the union of m and o.
func (m *Map32) OrWith(o *Map32) {
	for j, key := range o.keys {
		i, ok := m.findKey(key)
		if ok {
			m.blocks[i].OrWith(o.blocks[j])
		} else {
			m.keys = slices.Insert(m.keys, i, key)
			m.blocks = slices.Insert(m.blocks, i, o.blocks[j].Clone())
		}
	}
}

// AndNotWith replaces m with the difference m minus o.
func (m *Map32) AndNotWith(o *Map32) {
	n, j := 0, 0
	for i, key := range m.keys {
		b := m.blocks[i]
		for j < len(o.keys) && o.keys[j] < key {
			j++
		}
		if j < len(o.keys) && o.keys[j] == key {
			b.AndNotWith(o.blocks[j])
		}
		if b.CountOnes() != 0 {
			m.keys[n] = key
			m.blocks[n] = b
			n++
		}
	}
	m.keys = m.keys[:n]
	m.blocks = m.blocks[:n]
}

// XorWith replaces m with the symmetric difference of m and o.
func (m *Map32) XorWith(o *Map32) {
	for j, key := range o.keys {
		i, ok := m.findKey(key)
		if ok {
			m.blocks[i].XorWith(o.blocks[j])
		} else {
			m.keys = slices.Insert(m.keys, i, key)
			m.blocks = slices.Insert(m.blocks, i, o.blocks[j].Clone())
		}
	}
	m.dropEmpty()
}

// pushBlock appends a key/block pair produced in ascending key order,
// discarding empty blocks.
func (m *Map32) pushBlock(key uint16, b *block.Block) {
	if b.CountOnes() == 0 {
		return
	}
	m.keys = append(m.keys, key)
	m.blocks = append(m.blocks, b)
}

// dropEmpty removes blocks emptied by an in-place operator.
func (m *Map32) dropEmpty() {
	n := 0
	for i, b := range m.blocks {
		if b.CountOnes() != 0 {
			m.keys[n] = m.keys[i]
			m.blocks[n] = b
			n++
		}
	}
	m.keys = m.keys[:n]
	m.blocks = m.blocks[:n]
}
