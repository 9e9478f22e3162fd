package block

import "sort"

// Rank1 counts members strictly below position i. i may exceed the universe;
// Rank1(Capacity) is CountOnes.
func (b *Block) Rank1(i uint32) uint32 {
	switch b.kind {
	case KindSeq16:
		return b.s16.rank1(i)
	case KindSeq64:
		return b.s64.rank1(i)
	default:
		return b.r16.rank1(min(i, Capacity))
	}
}

// Rank0 counts absent values strictly below position i.
func (b *Block) Rank0(i uint32) uint32 {
	i = min(i, Capacity)
	return i - b.Rank1(i)
}

// Select1 returns the position of the (k+1)-th member, or ok=false when
// fewer than k+1 values are present.
func (b *Block) Select1(k uint32) (uint16, bool) {
	switch b.kind {
	case KindSeq16:
		return b.s16.select1(k)
	case KindSeq64:
		return b.s64.select1(k)
	default:
		return b.r16.select1(k)
	}
}

// Select0 returns the position of the (k+1)-th absent value, or ok=false
// when fewer than k+1 values are absent. The dense bitmap answers directly;
// the other representations binary-search on Rank0.
func (b *Block) Select0(k uint32) (uint16, bool) {
	if k >= b.CountZeros() {
		return 0, false
	}
	if b.kind == KindSeq64 {
		return b.s64.select0(k)
	}
	p := sort.Search(Capacity, func(p int) bool {
		return b.Rank0(uint32(p)+1) > k
	})
	return uint16(p), true
}
