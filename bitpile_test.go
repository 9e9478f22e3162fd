package bitpile_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitpile/bitpile"
)

// A single far-out value lands in the right shard and is immediately
// addressable by rank and select.
func TestSparseHighValue(t *testing.T) {
	m := bitpile.NewMap64()
	require.True(t, m.Insert(1<<50))
	require.True(t, m.Contains(1<<50))
	require.Equal(t, uint64(1), m.CountOnes())
	require.Equal(t, uint64(0), m.Rank1(1<<50))
	require.Equal(t, uint64(1), m.Rank1(1<<50+1))

	got, ok := m.Select1(0)
	require.True(t, ok)
	require.Equal(t, uint64(1)<<50, got)
}

// Inserting a contiguous range element by element compresses to a single
// run on Optimize without disturbing the contents.
func TestRangeCompresses(t *testing.T) {
	m := bitpile.NewMap32()
	for x := uint32(1000); x <= 60000; x++ {
		require.True(t, m.Insert(x))
	}
	m.Optimize()
	require.Equal(t, uint64(59001), m.CountOnes())
	require.True(t, m.MemSize() < 100)

	it := m.Iter()
	for want := uint32(1000); want <= 60000; want++ {
		x, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, want, x)
	}
	_, ok := it.Next()
	require.False(t, ok)
}

func TestPairwiseScenario(t *testing.T) {
	a := bitpile.NewMap32FromSlice([]uint32{0, 1, 2, 3})
	b := bitpile.NewMap32FromSlice([]uint32{2, 3, 4, 5})

	for _, c := range []struct {
		name     string
		got      *bitpile.Map32
		expected []uint32
	}{
		{name: "and", got: a.And(b), expected: []uint32{2, 3}},
		{name: "or", got: a.Or(b), expected: []uint32{0, 1, 2, 3, 4, 5}},
		{name: "andnot", got: a.AndNot(b), expected: []uint32{0, 1}},
		{name: "xor", got: a.Xor(b), expected: []uint32{0, 1, 4, 5}},
	} {
		t.Run(c.name, func(t *testing.T) {
			var got []uint32
			c.got.ForEach(func(x uint32) bool {
				got = append(got, x)
				return true
			})
			require.Equal(t, c.expected, got)
			require.Equal(t, uint64(len(c.expected)), c.got.CountOnes())
		})
	}
}

// Random contents survive an iterate-and-rebuild round trip, and rank and
// select stay inverse over the whole population.
func TestRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	model := make(map[uint32]bool)
	m := bitpile.NewMap32()
	for len(model) < 10000 {
		x := rng.Uint32()
		m.Insert(x)
		model[x] = true
	}
	m.Optimize()
	require.Equal(t, uint64(len(model)), m.CountOnes())

	var got []uint32
	it := m.Iter()
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, x)
	}

	want := make([]uint32, 0, len(model))
	for x := range model {
		want = append(want, x)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	require.Equal(t, want, got)

	rebuilt := bitpile.NewMap32FromSlice(got)
	require.Equal(t, m.CountOnes(), rebuilt.CountOnes())
	for k := uint64(0); k < rebuilt.CountOnes(); k++ {
		pos, ok := rebuilt.Select1(k)
		require.True(t, ok)
		require.True(t, rebuilt.Contains(pos))
		require.Equal(t, k, rebuilt.Rank1(pos))
		require.Equal(t, want[k], pos)
	}
}

// Insert/remove pairs restore the prior state with the advertised booleans.
func TestInsertRemoveLaw(t *testing.T) {
	m := bitpile.NewMap64FromSlice([]uint64{5, 1 << 40})
	before := m.CountOnes()

	require.True(t, m.Insert(777))
	require.True(t, m.Remove(777))
	require.Equal(t, before, m.CountOnes())
	require.False(t, m.Contains(777))
}

// Optimize commutes with the abstract set: interleaving it with mutations
// must not change what the set contains.
func TestOptimizeTransparent(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	plain := bitpile.NewMap64()
	tuned := bitpile.NewMap64()

	for i := 0; i < 5000; i++ {
		x := rng.Uint64() >> uint(rng.Intn(40)) // mix dense low and sparse high
		plain.Insert(x)
		tuned.Insert(x)
		if i%500 == 0 {
			tuned.Optimize()
		}
	}
	for i := 0; i < 1000; i++ {
		x := rng.Uint64() >> 50
		plain.Remove(x)
		tuned.Remove(x)
	}
	tuned.Optimize()

	require.Equal(t, plain.CountOnes(), tuned.CountOnes())
	it := plain.Iter()
	jt := tuned.Iter()
	for {
		x, okX := it.Next()
		y, okY := jt.Next()
		require.Equal(t, okX, okY)
		require.Equal(t, x, y)
		if !okX {
			return
		}
	}
}
