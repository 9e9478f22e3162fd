package block

import "github.com/bitpile/bitpile/internal/bitops"

// Iterator is a finite, ascending stream over the members of a Block. It is
// not restartable and must not outlive mutations of the Block it came from.
type Iterator struct {
	kind Kind

	// seq16
	v []uint16

	// seq64
	words   []uint64
	wordIdx int
	rem     uint64 // unvisited bits of words[wordIdx]

	// rle16
	runs   []run
	runIdx int
	next   uint32 // next value inside runs[runIdx], widened to avoid wrap
}

// Iter returns an iterator positioned before the first member.
func (b *Block) Iter() *Iterator {
	switch b.kind {
	case KindSeq16:
		return &Iterator{kind: KindSeq16, v: b.s16.v}
	case KindSeq64:
		it := newSeq64Iterator(&b.s64)
		return &it
	default:
		it := Iterator{kind: KindRle16, runs: b.r16.runs}
		if len(it.runs) > 0 {
			it.next = uint32(it.runs[0].lo)
		}
		return &it
	}
}

func newSeq64Iterator(s *seq64) Iterator {
	it := Iterator{kind: KindSeq64, words: s.words}
	if len(it.words) > 0 {
		it.rem = it.words[0]
	}
	return it
}

// Next returns the next member in ascending order, or ok=false when the
// stream is exhausted.
func (it *Iterator) Next() (uint16, bool) {
	switch it.kind {
	case KindSeq16:
		if len(it.v) == 0 {
			return 0, false
		}
		x := it.v[0]
		it.v = it.v[1:]
		return x, true

	case KindSeq64:
		for it.rem == 0 {
			it.wordIdx++
			if it.wordIdx >= len(it.words) {
				return 0, false
			}
			it.rem = it.words[it.wordIdx]
		}
		pos := bitops.TrailingZeros(it.rem)
		it.rem &= it.rem - 1
		return uint16(it.wordIdx)<<6 | uint16(pos), true

	default:
		if it.runIdx >= len(it.runs) {
			return 0, false
		}
		x := uint16(it.next)
		if it.next == uint32(it.runs[it.runIdx].hi) {
			it.runIdx++
			if it.runIdx < len(it.runs) {
				it.next = uint32(it.runs[it.runIdx].lo)
			}
		} else {
			it.next++
		}
		return x, true
	}
}
