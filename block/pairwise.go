package block

// The four pairwise operators each come in an allocating form (And, Or,
// AndNot, Xor) and an in-place form (AndWith, ...). The in-place forms
// dispatch on the 3x3 operand representations; combinations without a
// specialized arm normalize the left operand to the dense bitmap and
// recurse, so every pair is covered after at most one conversion.
//
// None of the operators reshape the result; callers invoke Optimize when
// they want the footprint reconsidered.

// And returns the intersection of b and o as a new Block.
func (b *Block) And(o *Block) *Block {
	if out, ok := directPair(b, o, (*seq16).andWith, (*rle16).andWith); ok {
		return out
	}
	out := b.Clone()
	out.AndWith(o)
	return out
}

// Or returns the union of b and o as a new Block.
func (b *Block) Or(o *Block) *Block {
	if out, ok := directPair(b, o, (*seq16).orWith, (*rle16).orWith); ok {
		return out
	}
	out := b.Clone()
	out.OrWith(o)
	return out
}

// AndNot returns the difference b minus o as a new Block.
func (b *Block) AndNot(o *Block) *Block {
	if out, ok := directPair(b, o, (*seq16).andNotWith, (*rle16).andNotWith); ok {
		return out
	}
	out := b.Clone()
	out.AndNotWith(o)
	return out
}

// Xor returns the symmetric difference of b and o as a new Block.
func (b *Block) Xor(o *Block) *Block {
	if out, ok := directPair(b, o, (*seq16).xorWith, (*rle16).xorWith); ok {
		return out
	}
	out := b.Clone()
	out.XorWith(o)
	return out
}

// directPair builds the result without going through the dense bitmap when
// both operands share a merge-friendly representation.
func directPair(b, o *Block, f16 func(*seq16, *seq16), fr func(*rle16, *rle16)) (*Block, bool) {
	switch {
	case b.kind == KindSeq16 && o.kind == KindSeq16:
		s := b.s16.clone()
		f16(&s, &o.s16)
		return &Block{kind: KindSeq16, s16: s}, true
	case b.kind == KindRle16 && o.kind == KindRle16:
		r := b.r16.clone()
		fr(&r, &o.r16)
		return &Block{kind: KindRle16, r16: r}, true
	}
	return nil, false
}

// AndWith replaces b with the intersection of b and o.
func (b *Block) AndWith(o *Block) {
	switch {
	case b.kind == KindSeq16 && o.kind == KindSeq16:
		b.s16.andWith(&o.s16)

	case b.kind == KindSeq16 && o.kind == KindSeq64:
		// Compact in place: keep the entries whose bit is set on the right.
		n := 0
		for _, x := range b.s16.v {
			if o.s64.contains(x) {
				b.s16.v[n] = x
				n++
			}
		}
		b.s16.v = b.s16.v[:n]

	case b.kind == KindSeq64 && o.kind == KindSeq64:
		b.s64.andWith(&o.s64)

	case b.kind == KindSeq64 && o.kind == KindSeq16:
		m := seq64FromSeq16(&o.s16)
		b.s64.andWith(&m)

	case b.kind == KindSeq64 && o.kind == KindRle16:
		m := seq64FromRle16(&o.r16)
		b.s64.andWith(&m)

	case b.kind == KindRle16 && o.kind == KindRle16:
		b.r16.andWith(&o.r16)

	default:
		b.asSeq64()
		b.AndWith(o)
	}
}

// OrWith replaces b with the union of b and o.
func (b *Block) OrWith(o *Block) {
	switch {
	case b.kind == KindSeq16 && o.kind == KindSeq16:
		b.s16.orWith(&o.s16)

	case b.kind == KindSeq64 && o.kind == KindSeq64:
		b.s64.orWith(&o.s64)

	case b.kind == KindSeq64 && o.kind == KindSeq16:
		for _, x := range o.s16.v {
			b.s64.insert(x)
		}

	case b.kind == KindSeq64 && o.kind == KindRle16:
		for _, rn := range o.r16.runs {
			b.s64.setRange(rn.lo, rn.hi)
		}

	case b.kind == KindRle16 && o.kind == KindRle16:
		b.r16.orWith(&o.r16)

	default:
		b.asSeq64()
		b.OrWith(o)
	}
}

// AndNotWith replaces b with the difference b minus o.
func (b *Block) AndNotWith(o *Block) {
	switch {
	case b.kind == KindSeq16 && o.kind == KindSeq16:
		b.s16.andNotWith(&o.s16)

	case b.kind == KindSeq64 && o.kind == KindSeq64:
		b.s64.andNotWith(&o.s64)

	case b.kind == KindSeq64 && o.kind == KindSeq16:
		for _, x := range o.s16.v {
			b.s64.remove(x)
		}

	case b.kind == KindSeq64 && o.kind == KindRle16:
		for _, rn := range o.r16.runs {
			b.s64.clearRange(rn.lo, rn.hi)
		}

	case b.kind == KindRle16 && o.kind == KindRle16:
		b.r16.andNotWith(&o.r16)

	default:
		b.asSeq64()
		b.AndNotWith(o)
	}
}

// XorWith replaces b with the symmetric difference of b and o.
func (b *Block) XorWith(o *Block) {
	switch {
	case b.kind == KindSeq16 && o.kind == KindSeq16:
		b.s16.xorWith(&o.s16)

	case b.kind == KindSeq64 && o.kind == KindSeq64:
		b.s64.xorWith(&o.s64)

	case b.kind == KindSeq64 && o.kind == KindSeq16:
		for _, x := range o.s16.v {
			if !b.s64.insert(x) {
				b.s64.remove(x)
			}
		}

	case b.kind == KindSeq64 && o.kind == KindRle16:
		for _, rn := range o.r16.runs {
			b.s64.flipRange(rn.lo, rn.hi)
		}

	case b.kind == KindRle16 && o.kind == KindRle16:
		b.r16.xorWith(&o.r16)

	default:
		b.asSeq64()
		b.XorWith(o)
	}
}
