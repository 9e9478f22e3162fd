package block

import "github.com/pkg/errors"

// validate checks the representation invariants. It is wired into tests;
// a non-nil result always means a bug in this package.
func (b *Block) validate() error {
	switch b.kind {
	case KindSeq16:
		for i := 1; i < len(b.s16.v); i++ {
			if b.s16.v[i-1] >= b.s16.v[i] {
				return errors.Errorf("seq16: not strictly ascending at %d: %d >= %d",
					i, b.s16.v[i-1], b.s16.v[i])
			}
		}

	case KindSeq64:
		if len(b.s64.words) != seq64Words {
			return errors.Errorf("seq64: %d words, want %d", len(b.s64.words), seq64Words)
		}
		var s64 seq64
		s64.words = b.s64.words
		s64.recount()
		if s64.weight != b.s64.weight {
			return errors.Errorf("seq64: cached weight %d, popcount %d", b.s64.weight, s64.weight)
		}

	case KindRle16:
		weight := uint32(0)
		for i, rn := range b.r16.runs {
			if rn.lo > rn.hi {
				return errors.Errorf("rle16: inverted run %d: [%d, %d]", i, rn.lo, rn.hi)
			}
			if i > 0 && uint32(b.r16.runs[i-1].hi)+1 >= uint32(rn.lo) {
				return errors.Errorf("rle16: runs %d and %d overlap or touch: [..%d] [%d..]",
					i-1, i, b.r16.runs[i-1].hi, rn.lo)
			}
			weight += rn.count()
		}
		if weight != b.r16.weight {
			return errors.Errorf("rle16: cached weight %d, run total %d", b.r16.weight, weight)
		}

	default:
		return errors.Errorf("unknown representation %v", b.kind)
	}
	return nil
}
