// Package block implements a fixed-universe bit container holding values in
// [0, 1<<16). A Block stores its contents in one of three physical
// representations and reshapes between them on request:
//
//   - seq16: a sorted slice of distinct uint16 values, cheap when sparse.
//   - seq64: 1024 64-bit words, a plain dense bitmap.
//   - rle16: a sorted slice of disjoint inclusive ranges, cheap when runs
//     dominate.
//
// All operations act on the abstract set regardless of the active
// representation. Optimize picks the representation with the smallest
// projected footprint; it never changes the contents.
//
// A Block is not safe for concurrent mutation. Concurrent readers of a Block
// that is no longer being written are fine.
package block

import "golang.org/x/exp/slices"

// Capacity is the number of addressable bits in a Block.
const Capacity = 1 << 16

const (
	// seq16Threshold is the weight above which seq16 is never preferred:
	// at 4096 entries a seq16 costs the same 8KiB as the dense bitmap.
	seq16Threshold = 4096
	// seq64Words is the fixed word count of the dense representation.
	seq64Words = 1024
)

// Block is a set of uint16 values backed by one of the three physical
// representations. The zero value is not usable; call New.
type Block struct {
	kind Kind

	// Exactly one of the fields below is active, selected by kind. The
	// inactive ones hold no storage.
	s16 seq16
	s64 seq64
	r16 rle16
}

// New returns an empty Block. The initial representation is the dense
// bitmap, so dense populations are built without intermediate reshapes.
func New() *Block {
	return &Block{kind: KindSeq64, s64: newSeq64()}
}

// Clear resets the Block to the empty set, releasing prior storage.
func (b *Block) Clear() {
	*b = *New()
}

// Clone returns a deep copy of the Block.
func (b *Block) Clone() *Block {
	c := &Block{kind: b.kind}
	switch b.kind {
	case KindSeq16:
		c.s16 = b.s16.clone()
	case KindSeq64:
		c.s64 = b.s64.clone()
	case KindRle16:
		c.r16 = b.r16.clone()
	}
	return c
}

// Contains reports whether x is in the set.
func (b *Block) Contains(x uint16) bool {
	switch b.kind {
	case KindSeq16:
		return b.s16.contains(x)
	case KindSeq64:
		return b.s64.contains(x)
	default:
		return b.r16.contains(x)
	}
}

// Insert adds x to the set. It returns true if x was absent.
func (b *Block) Insert(x uint16) bool {
	switch b.kind {
	case KindSeq16:
		return b.s16.insert(x)
	case KindSeq64:
		return b.s64.insert(x)
	default:
		return b.r16.insert(x)
	}
}

// Remove deletes x from the set. It returns true if x was present.
func (b *Block) Remove(x uint16) bool {
	switch b.kind {
	case KindSeq16:
		return b.s16.remove(x)
	case KindSeq64:
		return b.s64.remove(x)
	default:
		return b.r16.remove(x)
	}
}

// CountOnes returns the number of values in the set.
func (b *Block) CountOnes() uint32 {
	switch b.kind {
	case KindSeq16:
		return b.s16.weight()
	case KindSeq64:
		return b.s64.weight
	default:
		return b.r16.weight
	}
}

// CountZeros returns the number of absent values, Capacity - CountOnes.
func (b *Block) CountZeros() uint32 {
	return Capacity - b.CountOnes()
}

// MemSize returns the approximate heap footprint of the Block in bytes.
func (b *Block) MemSize() int {
	switch b.kind {
	case KindSeq16:
		return seq16Size(len(b.s16.v))
	case KindSeq64:
		return seq64Size(len(b.s64.words))
	default:
		return rle16Size(len(b.r16.runs))
	}
}

// ShrinkToFit drops excess backing capacity left behind by removals.
func (b *Block) ShrinkToFit() {
	switch b.kind {
	case KindSeq16:
		b.s16.v = slices.Clip(b.s16.v)
	case KindRle16:
		b.r16.runs = slices.Clip(b.r16.runs)
	}
	// seq64 storage is fixed-size; nothing to reclaim.
}

// Optimize switches the Block to the representation with the smallest
// projected footprint for the current contents. Ties prefer rle16 over
// seq16 over seq64. The contents are unchanged and the call is idempotent.
func (b *Block) Optimize() {
	switch b.kind {
	case KindSeq16:
		inSeq16 := seq16Size(len(b.s16.v))
		inSeq64 := seq64Size(seq64Words)
		inRle16 := rle16Size(b.s16.countRuns())
		if inRle16 <= min(inSeq64, inSeq16) {
			b.r16 = rle16FromSeq16(&b.s16)
			b.s16 = seq16{}
			b.kind = KindRle16
		} else if b.s16.weight() > seq16Threshold {
			b.s64 = seq64FromSeq16(&b.s16)
			b.s16 = seq16{}
			b.kind = KindSeq64
		}

	case KindSeq64:
		inSeq16 := seq16Size(int(b.s64.weight))
		inSeq64 := seq64Size(len(b.s64.words))
		inRle16 := rle16Size(b.s64.countRuns())
		if inRle16 <= min(inSeq64, inSeq16) {
			b.r16 = rle16FromSeq64(&b.s64)
			b.s64 = seq64{}
			b.kind = KindRle16
		} else if b.s64.weight <= seq16Threshold {
			b.s16 = seq16FromSeq64(&b.s64)
			b.s64 = seq64{}
			b.kind = KindSeq16
		}

	case KindRle16:
		inSeq16 := seq16Size(int(b.r16.weight))
		inSeq64 := seq64Size(seq64Words)
		inRle16 := rle16Size(len(b.r16.runs))
		if inRle16 <= min(inSeq64, inSeq16) {
			return
		} else if b.r16.weight <= seq16Threshold {
			b.s16 = seq16FromRle16(&b.r16)
			b.r16 = rle16{}
			b.kind = KindSeq16
		} else {
			b.s64 = seq64FromRle16(&b.r16)
			b.r16 = rle16{}
			b.kind = KindSeq64
		}
	}
}

// asSeq64 reshapes the Block to the dense representation. It is the
// normalization step for operator arms that have no specialized code.
func (b *Block) asSeq64() {
	switch b.kind {
	case KindSeq16:
		b.s64 = seq64FromSeq16(&b.s16)
		b.s16 = seq16{}
	case KindRle16:
		b.s64 = seq64FromRle16(&b.r16)
		b.r16 = rle16{}
	case KindSeq64:
		return
	}
	b.kind = KindSeq64
}

