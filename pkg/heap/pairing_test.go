package heap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/cmp"
	"github.com/flier/algokit/pkg/heap"
)

func TestPairing(t *testing.T) {
	h := heap.NewPairing(cmp.Natural[int]())

	for _, k := range []int{5, 3, 8, 1, 9, 2} {
		h.Insert(k)
	}
	require.Equal(t, 6, h.Len())

	min, ok := h.Min()
	require.True(t, ok)
	require.Equal(t, 1, min)

	var out []int
	for !h.IsEmpty() {
		out = append(out, h.DeleteMin())
	}
	require.Equal(t, []int{1, 2, 3, 5, 8, 9}, out)
}

func TestPairingDeleteMinOnEmptyPanics(t *testing.T) {
	h := heap.NewPairing(cmp.Natural[int]())
	require.Panics(t, func() { h.DeleteMin() })
}

func TestPairingMeld(t *testing.T) {
	a := heap.NewPairing(cmp.Natural[int]())
	b := heap.NewPairing(cmp.Natural[int]())

	for _, k := range []int{4, 2, 6} {
		a.Insert(k)
	}
	for _, k := range []int{1, 5, 3} {
		b.Insert(k)
	}

	a.Meld(b)
	require.Equal(t, 6, a.Len())
	require.Equal(t, 0, b.Len())
	require.True(t, b.IsEmpty())

	var out []int
	for !a.IsEmpty() {
		out = append(out, a.DeleteMin())
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, out)
}

func TestIndexPairing(t *testing.T) {
	h := heap.NewIndexPairing(5, cmp.Natural[float64]())

	require.NoError(t, h.Insert(0, 10.0))
	require.NoError(t, h.Insert(1, 5.0))
	require.NoError(t, h.Insert(2, 20.0))
	require.True(t, h.Contains(1))
	require.False(t, h.Contains(3))

	idx, key := h.DeleteMin()
	require.Equal(t, 1, idx)
	require.Equal(t, 5.0, key)
	require.False(t, h.Contains(1))

	require.NoError(t, h.DecreaseKey(2, 1.0))
	idx, key = h.DeleteMin()
	require.Equal(t, 2, idx)
	require.Equal(t, 1.0, key)

	idx, key = h.DeleteMin()
	require.Equal(t, 0, idx)
	require.Equal(t, 10.0, key)
	require.True(t, h.IsEmpty())
}

func TestIndexPairingDecreaseKeyRejectsIncrease(t *testing.T) {
	h := heap.NewIndexPairing(3, cmp.Natural[int]())
	require.NoError(t, h.Insert(0, 5))

	err := h.DecreaseKey(0, 9)
	require.Error(t, err)
}

func TestIndexPairingInsertOutOfRange(t *testing.T) {
	h := heap.NewIndexPairing(2, cmp.Natural[int]())
	err := h.Insert(5, 1)
	require.Error(t, err)
}

func TestIndexPairingRemove(t *testing.T) {
	h := heap.NewIndexPairing(4, cmp.Natural[int]())
	require.NoError(t, h.Insert(0, 3))
	require.NoError(t, h.Insert(1, 1))
	require.NoError(t, h.Insert(2, 4))
	require.NoError(t, h.Insert(3, 2))

	key, ok := h.Remove(0)
	require.True(t, ok)
	require.Equal(t, 3, key)
	require.Equal(t, 3, h.Len())

	var out []int
	for !h.IsEmpty() {
		_, k := h.DeleteMin()
		out = append(out, k)
	}
	require.Equal(t, []int{1, 2, 4}, out)
}
