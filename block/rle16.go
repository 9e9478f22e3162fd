package block

import "golang.org/x/exp/slices"

// run is an inclusive range of consecutive members.
type run struct {
	lo, hi uint16
}

func (r run) count() uint32 {
	return uint32(r.hi-r.lo) + 1
}

// rle16 is the run-length representation: a sorted slice of disjoint,
// non-adjacent inclusive ranges. Neighbouring runs always have at least one
// absent value between them, so every set has exactly one encoding.
type rle16 struct {
	weight uint32
	runs   []run
}

func (r *rle16) clone() rle16 {
	return rle16{weight: r.weight, runs: slices.Clone(r.runs)}
}

// search locates the run containing x, or the insertion index for a new run.
func (r *rle16) search(x uint16) (int, bool) {
	return slices.BinarySearchFunc(r.runs, x, func(rn run, x uint16) int {
		switch {
		case rn.hi < x:
			return -1
		case rn.lo > x:
			return 1
		default:
			return 0
		}
	})
}

func (r *rle16) contains(x uint16) bool {
	_, ok := r.search(x)
	return ok
}

func (r *rle16) insert(x uint16) bool {
	i, ok := r.search(x)
	if ok {
		return false
	}
	joinLeft := x > 0 && i > 0 && r.runs[i-1].hi == x-1
	joinRight := x < Capacity-1 && i < len(r.runs) && r.runs[i].lo == x+1
	switch {
	case joinLeft && joinRight:
		r.runs[i-1].hi = r.runs[i].hi
		r.runs = slices.Delete(r.runs, i, i+1)
	case joinLeft:
		r.runs[i-1].hi = x
	case joinRight:
		r.runs[i].lo = x
	default:
		r.runs = slices.Insert(r.runs, i, run{lo: x, hi: x})
	}
	r.weight++
	return true
}

func (r *rle16) remove(x uint16) bool {
	i, ok := r.search(x)
	if !ok {
		return false
	}
	rn := r.runs[i]
	switch {
	case rn.lo == rn.hi:
		r.runs = slices.Delete(r.runs, i, i+1)
	case x == rn.lo:
		r.runs[i].lo = x + 1
	case x == rn.hi:
		r.runs[i].hi = x - 1
	default:
		r.runs[i].hi = x - 1
		r.runs = slices.Insert(r.runs, i+1, run{lo: x + 1, hi: rn.hi})
	}
	r.weight--
	return true
}

// rank1 counts members strictly below i: the runs wholly to the left plus a
// partial count when i lands inside a run.
func (r *rle16) rank1(i uint32) uint32 {
	rank := uint32(0)
	for _, rn := range r.runs {
		switch {
		case uint32(rn.hi) < i:
			rank += rn.count()
		case uint32(rn.lo) < i:
			return rank + i - uint32(rn.lo)
		default:
			return rank
		}
	}
	return rank
}

// select1 scans runs keeping a running cardinality.
func (r *rle16) select1(k uint32) (uint16, bool) {
	for _, rn := range r.runs {
		if n := rn.count(); k < n {
			return rn.lo + uint16(k), true
		} else {
			k -= n
		}
	}
	return 0, false
}

func (r *rle16) countRuns() int {
	return len(r.runs)
}

func (r *rle16) andWith(o *rle16) {
	*r = mergeRuns(r.runs, o.runs, func(inA, inB bool) bool { return inA && inB })
}

func (r *rle16) orWith(o *rle16) {
	*r = mergeRuns(r.runs, o.runs, func(inA, inB bool) bool { return inA || inB })
}

func (r *rle16) andNotWith(o *rle16) {
	*r = mergeRuns(r.runs, o.runs, func(inA, inB bool) bool { return inA && !inB })
}

func (r *rle16) xorWith(o *rle16) {
	*r = mergeRuns(r.runs, o.runs, func(inA, inB bool) bool { return inA != inB })
}

// mergeRuns sweeps both run lists left to right, slicing the universe at
// every run boundary. Each maximal segment with constant membership on both
// sides is kept or dropped by the operator, and kept segments are coalesced
// so the output invariant (disjoint, non-adjacent) holds by construction.
//
// Positions are widened to uint32 so hi+1 at 65535 cannot wrap.
func mergeRuns(a, b []run, keep func(inA, inB bool) bool) rle16 {
	var out rle16
	i, j := 0, 0
	pos := uint32(0)
	for pos < Capacity {
		inA, nextA := segment(a, &i, pos)
		inB, nextB := segment(b, &j, pos)
		end := min(nextA, nextB) // first position past the current segment
		if keep(inA, inB) {
			out.push(pos, end-1)
		}
		pos = end
	}
	return out
}

// segment reports membership at pos in the run list and the first position
// where that membership can change. idx is advanced past exhausted runs.
func segment(runs []run, idx *int, pos uint32) (in bool, next uint32) {
	for *idx < len(runs) && uint32(runs[*idx].hi) < pos {
		*idx++
	}
	if *idx == len(runs) {
		return false, Capacity
	}
	rn := runs[*idx]
	if pos < uint32(rn.lo) {
		return false, uint32(rn.lo)
	}
	return true, uint32(rn.hi) + 1
}

// push appends the inclusive segment [lo, hi], fusing it with the previous
// run when adjacent.
func (r *rle16) push(lo, hi uint32) {
	r.weight += hi - lo + 1
	if n := len(r.runs); n > 0 && uint32(r.runs[n-1].hi)+1 == lo {
		r.runs[n-1].hi = uint16(hi)
		return
	}
	r.runs = append(r.runs, run{lo: uint16(lo), hi: uint16(hi)})
}
