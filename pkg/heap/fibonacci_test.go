package heap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/cmp"
	"github.com/flier/algokit/pkg/heap"
)

func TestFibonacci(t *testing.T) {
	h := heap.NewFibonacci(cmp.Natural[int]())

	keys := []int{12, 4, 19, 1, 7, 15, 3, 8, 11, 0, 17, 6}
	for _, k := range keys {
		h.Insert(k)
	}
	require.Equal(t, len(keys), h.Len())

	min, ok := h.Min()
	require.True(t, ok)
	require.Equal(t, 0, min)

	var out []int
	for !h.IsEmpty() {
		out = append(out, h.DeleteMin())
	}
	require.Equal(t, []int{0, 1, 3, 4, 6, 7, 8, 11, 12, 15, 17, 19}, out)
}

func TestFibonacciDeleteMinOnEmptyPanics(t *testing.T) {
	h := heap.NewFibonacci(cmp.Natural[int]())
	require.Panics(t, func() { h.DeleteMin() })
}

func TestFibonacciMeld(t *testing.T) {
	a := heap.NewFibonacci(cmp.Natural[int]())
	b := heap.NewFibonacci(cmp.Natural[int]())

	for _, k := range []int{9, 2, 5} {
		a.Insert(k)
	}
	for _, k := range []int{8, 1, 6} {
		b.Insert(k)
	}

	a.Meld(b)
	require.Equal(t, 6, a.Len())
	require.True(t, b.IsEmpty())

	var out []int
	for !a.IsEmpty() {
		out = append(out, a.DeleteMin())
	}
	require.Equal(t, []int{1, 2, 5, 6, 8, 9}, out)
}

func TestFibonacciInterleavedInsertAndDeleteMin(t *testing.T) {
	h := heap.NewFibonacci(cmp.Natural[int]())

	h.Insert(5)
	h.Insert(3)
	require.Equal(t, 3, h.DeleteMin())

	h.Insert(1)
	h.Insert(9)
	require.Equal(t, 1, h.DeleteMin())
	require.Equal(t, 5, h.DeleteMin())
	require.Equal(t, 9, h.DeleteMin())
	require.True(t, h.IsEmpty())
}
