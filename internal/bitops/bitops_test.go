package bitops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOnesCount(t *testing.T) {
	require.Equal(t, uint32(0), OnesCount(0))
	require.Equal(t, uint32(1), OnesCount(1))
	require.Equal(t, uint32(1), OnesCount(1<<63))
	require.Equal(t, uint32(64), OnesCount(math.MaxUint64))
	require.Equal(t, uint32(32), OnesCount(0xaaaaaaaa_aaaaaaaa))
}

func TestRank1(t *testing.T) {
	for _, c := range []struct {
		w        uint64
		i        uint32
		expected uint32
	}{
		{w: 0, i: 0, expected: 0},
		{w: 0, i: 64, expected: 0},
		{w: 1, i: 0, expected: 0},
		{w: 1, i: 1, expected: 1},
		{w: 0b1011, i: 2, expected: 2},
		{w: 0b1011, i: 3, expected: 2},
		{w: 0b1011, i: 4, expected: 3},
		{w: math.MaxUint64, i: 13, expected: 13},
		{w: math.MaxUint64, i: 64, expected: 64},
		{w: 1 << 63, i: 63, expected: 0},
		{w: 1 << 63, i: 64, expected: 1},
	} {
		require.Equal(t, c.expected, Rank1(c.w, c.i), "Rank1(%#x, %d)", c.w, c.i)
		require.Equal(t, c.i-c.expected, Rank0(c.w, c.i), "Rank0(%#x, %d)", c.w, c.i)
	}
}

func TestSelect1(t *testing.T) {
	for _, c := range []struct {
		w   uint64
		k   uint32
		pos uint32
		ok  bool
	}{
		{w: 0, k: 0, ok: false},
		{w: 1, k: 0, pos: 0, ok: true},
		{w: 1, k: 1, ok: false},
		{w: 0b1011, k: 0, pos: 0, ok: true},
		{w: 0b1011, k: 1, pos: 1, ok: true},
		{w: 0b1011, k: 2, pos: 3, ok: true},
		{w: 0b1011, k: 3, ok: false},
		{w: 1 << 63, k: 0, pos: 63, ok: true},
		{w: math.MaxUint64, k: 63, pos: 63, ok: true},
		{w: math.MaxUint64, k: 64, ok: false},
	} {
		pos, ok := Select1(c.w, c.k)
		require.Equal(t, c.ok, ok, "Select1(%#x, %d)", c.w, c.k)
		if ok {
			require.Equal(t, c.pos, pos, "Select1(%#x, %d)", c.w, c.k)
		}
	}
}

func TestSelect0(t *testing.T) {
	pos, ok := Select0(0b1011, 0)
	require.True(t, ok)
	require.Equal(t, uint32(2), pos)

	pos, ok = Select0(math.MaxUint64, 0)
	require.False(t, ok)
	require.Equal(t, uint32(0), pos)

	pos, ok = Select0(0, 63)
	require.True(t, ok)
	require.Equal(t, uint32(63), pos)
}

// Select1 and Rank1 are inverse over every set bit of the word.
func TestSelectRankRoundTrip(t *testing.T) {
	for _, w := range []uint64{0b1011, 0xdeadbeef, 1 << 63, math.MaxUint64, 0x8000000000000001} {
		ones := OnesCount(w)
		for k := uint32(0); k < ones; k++ {
			pos, ok := Select1(w, k)
			require.True(t, ok)
			require.Equal(t, k, Rank1(w, pos))
		}
	}
}
