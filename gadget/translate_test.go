package gadget

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslatorMapping(t *testing.T) {
	// 2 connections with arbitrary wire ids, 1 output, locals from 100
	tr := NewTranslator([]uint64{5, 9}, 1, 100)

	cases := []struct {
		wireID   uint64
		internal int
	}{
		{0, 0},   // constant one
		{5, 1},   // first connection
		{9, 2},   // second connection
		{100, 4}, // first local, right after the output slot
		{101, 5},
		{150, 54},
	}
	for _, c := range cases {
		idx, err := tr.ToInternal(c.wireID)
		require.NoError(t, err)
		require.Equal(t, c.internal, idx, "wire id %d", c.wireID)

		// and back
		id, err := tr.ToWire(idx)
		require.NoError(t, err)
		require.Equal(t, c.wireID, id, "internal index %d", idx)
	}
}

func TestTranslatorInjective(t *testing.T) {
	tr := NewTranslator([]uint64{7, 3, 1000}, 2, 2000)

	seen := make(map[int]uint64)
	ids := []uint64{0, 7, 3, 1000, 2000, 2001, 2002, 2050}
	for _, id := range ids {
		idx, err := tr.ToInternal(id)
		require.NoError(t, err)
		prev, dup := seen[idx]
		require.False(t, dup, "wire ids %d and %d collide on internal %d", prev, id, idx)
		seen[idx] = id
	}
}

func TestTranslatorUnknownID(t *testing.T) {
	tr := NewTranslator([]uint64{5, 9}, 0, 100)

	// neither a connection nor at or above the free id
	_, err := tr.ToInternal(7)
	require.ErrorIs(t, err, ErrUnknownVariable)
	_, err = tr.ToInternal(99)
	require.ErrorIs(t, err, ErrUnknownVariable)
}

func TestTranslatorLocalOffsetOverflow(t *testing.T) {
	tr := NewTranslator([]uint64{5}, 0, 100)

	// far above the free id: the offset no longer fits a variable index
	for _, id := range []uint64{math.MaxUint64, 100 + math.MaxInt32 + 1} {
		_, err := tr.ToInternal(id)
		require.ErrorIs(t, err, ErrUnknownVariable, "wire id %d", id)
	}

	// the largest representable local offset still translates
	idx, err := tr.ToInternal(100 + math.MaxInt32)
	require.NoError(t, err)
	require.Equal(t, 2+math.MaxInt32, idx)
}

func TestTranslatorOutputsRejected(t *testing.T) {
	tr := NewTranslator([]uint64{5, 9}, 2, 100)

	// internal indices 3 and 4 are the output slots
	for _, idx := range []int{3, 4} {
		_, err := tr.ToWire(idx)
		require.ErrorIs(t, err, ErrOutputVariable)
	}

	// the surrounding regions still translate
	id, err := tr.ToWire(2)
	require.NoError(t, err)
	require.Equal(t, uint64(9), id)
	id, err = tr.ToWire(5)
	require.NoError(t, err)
	require.Equal(t, uint64(100), id)
}
