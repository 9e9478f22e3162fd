package block

// Projected footprints in bytes, used by Optimize to compare the three
// representations without materializing them. The constant 16 accounts for
// the slice header and tag.

func seq16Size(n int) int {
	return 16 + 2*n
}

func seq64Size(words int) int {
	return 16 + 8*words
}

func rle16Size(runs int) int {
	return 16 + 4*runs
}

func seq64FromSeq16(s *seq16) seq64 {
	out := newSeq64()
	for _, x := range s.v {
		out.words[x>>6] |= 1 << (x & 63)
	}
	out.weight = s.weight()
	return out
}

func seq64FromRle16(r *rle16) seq64 {
	out := newSeq64()
	for _, rn := range r.runs {
		out.setRange(rn.lo, rn.hi)
	}
	out.weight = r.weight
	return out
}

func seq16FromSeq64(s *seq64) seq16 {
	out := seq16{v: make([]uint16, 0, s.weight)}
	it := newSeq64Iterator(s)
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		out.v = append(out.v, x)
	}
	return out
}

func seq16FromRle16(r *rle16) seq16 {
	out := seq16{v: make([]uint16, 0, r.weight)}
	for _, rn := range r.runs {
		for x := uint32(rn.lo); x <= uint32(rn.hi); x++ {
			out.v = append(out.v, uint16(x))
		}
	}
	return out
}

func rle16FromSeq16(s *seq16) rle16 {
	var out rle16
	for _, x := range s.v {
		if n := len(out.runs); n > 0 && out.runs[n-1].hi+1 == x {
			out.runs[n-1].hi = x
		} else {
			out.runs = append(out.runs, run{lo: x, hi: x})
		}
	}
	out.weight = s.weight()
	return out
}

func rle16FromSeq64(s *seq64) rle16 {
	var out rle16
	it := newSeq64Iterator(s)
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		if n := len(out.runs); n > 0 && out.runs[n-1].hi+1 == x {
			out.runs[n-1].hi = x
		} else {
			out.runs = append(out.runs, run{lo: x, hi: x})
		}
	}
	out.weight = s.weight
	return out
}
