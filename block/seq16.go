package block

import "golang.org/x/exp/slices"

// seq16 is the sparse representation: a strictly ascending slice of the
// member values. Weight is the slice length.
type seq16 struct {
	v []uint16
}

func (s *seq16) weight() uint32 {
	return uint32(len(s.v))
}

func (s *seq16) clone() seq16 {
	return seq16{v: slices.Clone(s.v)}
}

func (s *seq16) contains(x uint16) bool {
	_, ok := slices.BinarySearch(s.v, x)
	return ok
}

func (s *seq16) insert(x uint16) bool {
	i, ok := slices.BinarySearch(s.v, x)
	if ok {
		return false
	}
	s.v = slices.Insert(s.v, i, x)
	return true
}

func (s *seq16) remove(x uint16) bool {
	i, ok := slices.BinarySearch(s.v, x)
	if !ok {
		return false
	}
	s.v = slices.Delete(s.v, i, i+1)
	return true
}

// rank1 counts members strictly below i. i may be Capacity to count all.
func (s *seq16) rank1(i uint32) uint32 {
	if i >= Capacity {
		return s.weight()
	}
	p, _ := slices.BinarySearch(s.v, uint16(i))
	return uint32(p)
}

// select1 returns the k-th member in ascending order.
func (s *seq16) select1(k uint32) (uint16, bool) {
	if k >= s.weight() {
		return 0, false
	}
	return s.v[k], true
}

// countRuns counts maximal runs of consecutive values.
func (s *seq16) countRuns() int {
	runs := 0
	for i, x := range s.v {
		if i == 0 || s.v[i-1]+1 != x {
			runs++
		}
	}
	return runs
}

// andWith keeps only the members also present in o, compacting in place.
func (s *seq16) andWith(o *seq16) {
	n := 0
	j := 0
	for _, x := range s.v {
		for j < len(o.v) && o.v[j] < x {
			j++
		}
		if j < len(o.v) && o.v[j] == x {
			s.v[n] = x
			n++
		}
	}
	s.v = s.v[:n]
}

func (s *seq16) orWith(o *seq16) {
	s.v = mergeSorted(s.v, o.v, func(inA, inB bool) bool { return inA || inB })
}

func (s *seq16) andNotWith(o *seq16) {
	s.v = mergeSorted(s.v, o.v, func(inA, inB bool) bool { return inA && !inB })
}

func (s *seq16) xorWith(o *seq16) {
	s.v = mergeSorted(s.v, o.v, func(inA, inB bool) bool { return inA != inB })
}

// mergeSorted walks two ascending slices and keeps each candidate value
// according to its membership on either side. The output is ascending and
// duplicate-free.
func mergeSorted(a, b []uint16, keep func(inA, inB bool) bool) []uint16 {
	out := make([]uint16, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			if keep(true, false) {
				out = append(out, a[i])
			}
			i++
		case a[i] > b[j]:
			if keep(false, true) {
				out = append(out, b[j])
			}
			j++
		default:
			if keep(true, true) {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}
	if keep(true, false) {
		out = append(out, a[i:]...)
	}
	if keep(false, true) {
		out = append(out, b[j:]...)
	}
	return out
}
