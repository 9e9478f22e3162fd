package block

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// expected computes the reference result of an operator over two value sets.
func expected(op string, a, b []uint16) []uint16 {
	inA := make(map[uint16]bool, len(a))
	for _, x := range a {
		inA[x] = true
	}
	inB := make(map[uint16]bool, len(b))
	for _, x := range b {
		inB[x] = true
	}
	var out []uint16
	for x := 0; x < Capacity; x++ {
		v := uint16(x)
		var keep bool
		switch op {
		case "and":
			keep = inA[v] && inB[v]
		case "or":
			keep = inA[v] || inB[v]
		case "andnot":
			keep = inA[v] && !inB[v]
		case "xor":
			keep = inA[v] != inB[v]
		}
		if keep {
			out = append(out, v)
		}
	}
	return out
}

func runOp(op string, a, b *Block) *Block {
	switch op {
	case "and":
		return a.And(b)
	case "or":
		return a.Or(b)
	case "andnot":
		return a.AndNot(b)
	default:
		return a.Xor(b)
	}
}

func runOpWith(op string, a, b *Block) {
	switch op {
	case "and":
		a.AndWith(b)
	case "or":
		a.OrWith(b)
	case "andnot":
		a.AndNotWith(b)
	default:
		a.XorWith(b)
	}
}

// Every operator must produce the same set through every one of the nine
// representation pairings, in both the allocating and the in-place shape.
func TestPairwiseMatrix(t *testing.T) {
	aVals := rangeVals(100, 200)
	aVals = append(aVals, 500, 502, 504, 65535)
	bVals := rangeVals(150, 250)
	bVals = append(bVals, 0, 500, 503)

	for _, op := range []string{"and", "or", "andnot", "xor"} {
		want := expected(op, aVals, bVals)
		for _, ka := range kinds {
			for _, kb := range kinds {
				t.Run(fmt.Sprintf("%s/%s_%s", op, ka, kb), func(t *testing.T) {
					a := mkBlock(ka, aVals...)
					b := mkBlock(kb, bVals...)

					out := runOp(op, a, b)
					require.Equal(t, want, collect(out))
					require.Equal(t, uint32(len(want)), out.CountOnes())
					require.NoError(t, out.validate())

					// Allocating form must not disturb the operands.
					require.Equal(t, expected("or", aVals, nil), collect(a))
					require.Equal(t, expected("or", bVals, nil), collect(b))

					runOpWith(op, a, b)
					require.Equal(t, want, collect(a))
					require.Equal(t, uint32(len(want)), a.CountOnes())
					require.NoError(t, a.validate())
				})
			}
		}
	}
}

func rangeVals(lo, hi uint16) []uint16 {
	out := make([]uint16, 0, hi-lo+1)
	for x := lo; x <= hi; x++ {
		out = append(out, x)
	}
	return out
}

func TestPairwiseSmall(t *testing.T) {
	a := []uint16{0, 1, 2, 3}
	b := []uint16{2, 3, 4, 5}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			A, B := mkBlock(k, a...), mkBlock(k, b...)
			require.Equal(t, []uint16{2, 3}, collect(A.And(B)))
			require.Equal(t, []uint16{0, 1, 2, 3, 4, 5}, collect(A.Or(B)))
			require.Equal(t, []uint16{0, 1}, collect(A.AndNot(B)))
			require.Equal(t, []uint16{0, 1, 4, 5}, collect(A.Xor(B)))
		})
	}
}

func TestPairwiseWithEmpty(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			a := mkBlock(k, 10, 20, 30)
			empty := mkBlock(k)

			require.Empty(t, collect(a.And(empty)))
			require.Equal(t, []uint16{10, 20, 30}, collect(a.Or(empty)))
			require.Equal(t, []uint16{10, 20, 30}, collect(a.AndNot(empty)))
			require.Equal(t, []uint16{10, 20, 30}, collect(a.Xor(empty)))
			require.Empty(t, collect(empty.AndNot(a)))
		})
	}
}

// Algebraic laws over randomized operands: commutativity, the difference
// identity a-b == a&^b == a^(a&b), and xor as union minus intersection.
func TestPairwiseLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		a := randBlock(rng)
		b := randBlock(rng)

		require.Equal(t, collect(a.And(b)), collect(b.And(a)))
		require.Equal(t, collect(a.Or(b)), collect(b.Or(a)))
		require.Equal(t, collect(a.Xor(b)), collect(b.Xor(a)))

		union := a.Or(b)
		inter := a.And(b)
		require.Equal(t, collect(a.Xor(b)), collect(union.AndNot(inter)))
		require.Equal(t, collect(a.AndNot(b)), collect(a.Xor(inter)))
	}
}

func randBlock(rng *rand.Rand) *Block {
	k := kinds[rng.Intn(len(kinds))]
	n := rng.Intn(500)
	vs := make([]uint16, 0, n)
	if rng.Intn(2) == 0 {
		// run-heavy shape
		lo := uint16(rng.Intn(Capacity - 1000))
		vs = append(vs, rangeVals(lo, lo+uint16(rng.Intn(900)))...)
	}
	for i := 0; i < n; i++ {
		vs = append(vs, uint16(rng.Intn(Capacity)))
	}
	return mkBlock(k, vs...)
}
