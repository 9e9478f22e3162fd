package block

import (
	"golang.org/x/exp/slices"

	"github.com/bitpile/bitpile/internal/bitops"
)

// seq64 is the dense representation: a fixed array of 1024 words covering
// the whole universe. Bit i lives at words[i>>6], position i&63. The weight
// is maintained incrementally so CountOnes stays O(1).
type seq64 struct {
	weight uint32
	words  []uint64
}

func newSeq64() seq64 {
	return seq64{words: make([]uint64, seq64Words)}
}

func (s *seq64) clone() seq64 {
	return seq64{weight: s.weight, words: slices.Clone(s.words)}
}

func (s *seq64) contains(x uint16) bool {
	return s.words[x>>6]&(1<<(x&63)) != 0
}

func (s *seq64) insert(x uint16) bool {
	w := &s.words[x>>6]
	mask := uint64(1) << (x & 63)
	if *w&mask != 0 {
		return false
	}
	*w |= mask
	s.weight++
	return true
}

func (s *seq64) remove(x uint16) bool {
	w := &s.words[x>>6]
	mask := uint64(1) << (x & 63)
	if *w&mask == 0 {
		return false
	}
	*w &^= mask
	s.weight--
	return true
}

// rank1 counts members strictly below i: whole words below the straddling
// word, then a partial rank inside it.
func (s *seq64) rank1(i uint32) uint32 {
	if i >= Capacity {
		return s.weight
	}
	q := int(i >> 6)
	rank := uint32(0)
	for _, w := range s.words[:q] {
		rank += bitops.OnesCount(w)
	}
	return rank + bitops.Rank1(s.words[q], i&63)
}

// select1 streams words, skipping whole words by popcount and finishing
// inside the target word.
func (s *seq64) select1(k uint32) (uint16, bool) {
	if k >= s.weight {
		return 0, false
	}
	for i, w := range s.words {
		ones := bitops.OnesCount(w)
		if k < ones {
			pos, _ := bitops.Select1(w, k)
			return uint16(i)<<6 | uint16(pos), true
		}
		k -= ones
	}
	return 0, false
}

// select0 is the dual of select1 over the cleared bits.
func (s *seq64) select0(k uint32) (uint16, bool) {
	if k >= Capacity-s.weight {
		return 0, false
	}
	for i, w := range s.words {
		zeros := bitops.WordBits - bitops.OnesCount(w)
		if k < zeros {
			pos, _ := bitops.Select0(w, k)
			return uint16(i)<<6 | uint16(pos), true
		}
		k -= zeros
	}
	return 0, false
}

// countRuns counts maximal runs of consecutive set bits across the words.
func (s *seq64) countRuns() int {
	runs := 0
	for i, w := range s.words {
		// Bits that start a run inside the word: set with the bit below clear.
		runs += int(bitops.OnesCount(w &^ (w << 1)))
		if i > 0 && s.words[i-1]>>63 == 1 && w&1 == 1 {
			runs-- // run continued over the word boundary
		}
	}
	return runs
}

func (s *seq64) recount() {
	n := uint32(0)
	for _, w := range s.words {
		n += bitops.OnesCount(w)
	}
	s.weight = n
}

// rangeWords visits the words overlapping [lo, hi] with the mask of the
// in-range bits of each.
func (s *seq64) rangeWords(lo, hi uint16, f func(w *uint64, mask uint64)) {
	first, last := int(lo>>6), int(hi>>6)
	for i := first; i <= last; i++ {
		mask := ^uint64(0)
		if i == first {
			mask <<= lo & 63
		}
		if i == last {
			mask &= ^uint64(0) >> (63 - hi&63)
		}
		f(&s.words[i], mask)
	}
}

func (s *seq64) setRange(lo, hi uint16) {
	s.rangeWords(lo, hi, func(w *uint64, mask uint64) {
		s.weight += bitops.OnesCount(mask &^ *w)
		*w |= mask
	})
}

func (s *seq64) clearRange(lo, hi uint16) {
	s.rangeWords(lo, hi, func(w *uint64, mask uint64) {
		s.weight -= bitops.OnesCount(mask & *w)
		*w &^= mask
	})
}

func (s *seq64) flipRange(lo, hi uint16) {
	s.rangeWords(lo, hi, func(w *uint64, mask uint64) {
		s.weight += bitops.OnesCount(mask &^ *w)
		s.weight -= bitops.OnesCount(mask & *w)
		*w ^= mask
	})
}

func (s *seq64) andWith(o *seq64) {
	for i := range s.words {
		s.words[i] &= o.words[i]
	}
	s.recount()
}

func (s *seq64) orWith(o *seq64) {
	for i := range s.words {
		s.words[i] |= o.words[i]
	}
	s.recount()
}

func (s *seq64) andNotWith(o *seq64) {
	for i := range s.words {
		s.words[i] &^= o.words[i]
	}
	s.recount()
}

func (s *seq64) xorWith(o *seq64) {
	for i := range s.words {
		s.words[i] ^= o.words[i]
	}
	s.recount()
}
