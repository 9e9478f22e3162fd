package bitpile

import "golang.org/x/exp/slices"

// The Map64 operators mirror the Map32 ones, one level up: matching shard
// keys delegate to the Map32 operators, unmatched shards are kept or
// dropped per operator, and shards taken from the right side are cloned.

// And returns the intersection of m and o as a new Map64.
func (m *Map64) And(o *Map64) *Map64 {
	out := NewMap64()
	i, j := 0, 0
	for i < len(m.keys) && j < len(o.keys) {
		switch {
		case m.keys[i] < o.keys[j]:
			i++
		case m.keys[i] > o.keys[j]:
			j++
		default:
			out.pushShard(m.keys[i], m.shards[i].And(o.shards[j]))
			i++
			j++
		}
	}
	return out
}

// Or returns the union of m and o as a new Map64.
func (m *Map64) Or(o *Map64) *Map64 {
	out := NewMap64()
	i, j := 0, 0
	for i < len(m.keys) || j < len(o.keys) {
		switch {
		case j == len(o.keys) || i < len(m.keys) && m.keys[i] < o.keys[j]:
			out.pushShard(m.keys[i], m.shards[i].Clone())
			i++
		case i == len(m.keys) || m.keys[i] > o.keys[j]:
			out.pushShard(o.keys[j], o.shards[j].Clone())
			j++
		default:
			out.pushShard(m.keys[i], m.shards[i].Or(o.shards[j]))
			i++
			j++
		}
	}
	return out
}

// AndNot returns the difference m minus o as a new Map64.
func (m *Map64) AndNot(o *Map64) *Map64 {
	out := NewMap64()
	j := 0
	for i, key := range m.keys {
		for j < len(o.keys) && o.keys[j] < key {
			j++
		}
		if j < len(o.keys) && o.keys[j] == key {
			out.pushShard(key, m.shards[i].AndNot(o.shards[j]))
		} else {
			out.pushShard(key, m.shards[i].Clone())
		}
	}
	return out
}

// Xor returns the symmetric difference of m and o as a new Map64.
func (m *Map64) Xor(o *Map64) *Map64 {
	out := NewMap64()
	i, j := 0, 0
	for i < len(m.keys) || j < len(o.keys) {
		switch {
		case j == len(o.keys) || i < len(m.keys) && m.keys[i] < o.keys[j]:
			out.pushShard(m.keys[i], m.shards[i].Clone())
			i++
		case i == len(m.keys) || m.keys[i] > o.keys[j]:
			out.pushShard(o.keys[j], o.shards[j].Clone())
			j++
		default:
			out.pushShard(m.keys[i], m.shards[i].Xor(o.shards[j]))
			i++
			j++
		}
	}
	return out
}

// AndWith replaces m with the intersection of m and o.
func (m *Map64) AndWith(o *Map64) {
	n, j := 0, 0
	for i, key := range m.keys {
		for j < len(o.keys) && o.keys[j] < key {
			j++
		}
		if j < len(o.keys) && o.keys[j] == key {
			s := m.shards[i]
			s.AndWith(o.shards[j])
			if s.CountOnes() != 0 {
				m.keys[n] = key
				m.shards[n] = s
				n++
			}
		}
	}
	m.keys = m.keys[:n]
	m.shards = m.shards[:n]
}

// OrWith replaces m with the union of m and o.
func (m *Map64) OrWith(o *Map64) {
	for j, key := range o.keys {
		i, ok := m.findKey(key)
		if ok {
			m.shards[i].OrWith(o.shards[j])
		} else {
			m.keys = slices.Insert(m.keys, i, key)
			m.shards = slices.Insert(m.shards, i, o.shards[j].Clone())
		}
	}
}

// AndNotWith replaces m with the difference m minus o.
func (m *Map64) AndNotWith(o *Map64) {
	n, j := 0, 0
	for i, key := range m.keys {
		s := m.shards[i]
		for j < len(o.keys) && o.keys[j] < key {
			j++
		}
		if j < len(o.keys) && o.keys[j] == key {
			s.AndNotWith(o.shards[j])
		}
		if s.CountOnes() != 0 {
			m.keys[n] = key
			m.shards[n] = s
			n++
		}
	}
	m.keys = m.keys[:n]
	m.shards = m.shards[:n]
}

// XorWith replaces m with the symmetric difference of m and o.
func (m *Map64) XorWith(o *Map64) {
	for j, key := range o.keys {
		i, ok := m.findKey(key)
		if ok {
			m.shards[i].XorWith(o.shards[j])
		} else {
			m.keys = slices.Insert(m.keys, i, key)
			m.shards = slices.Insert(m.shards, i, o.shards[j].Clone())
		}
	}
	n := 0
	for i, s := range m.shards {
		if s.CountOnes() != 0 {
			m.keys[n] = m.keys[i]
			m.shards[n] = s
			n++
		}
	}
	m.keys = m.keys[:n]
	m.shards = m.shards[:n]
}

// pushShard appends a key/shard pair produced in ascending key order,
// discarding empty shards.
func (m *Map64) pushShard(key uint32, s *Map32) {
	if s.CountOnes() == 0 {
		return
	}
	m.keys = append(m.keys, key)
	m.shards = append(m.shards, s)
}
