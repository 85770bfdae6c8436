package heap

import (
	"github.com/flier/algokit/internal/debug"
	"github.com/flier/algokit/pkg/cmp"
	"github.com/flier/algokit/pkg/status"
)

// IndexFibonacci is a Fibonacci heap whose elements are addressable by an
// external index in [0, capacity) (spec.md §4.4 "Indexed variants").
//
// It wraps a plain [Fibonacci] and keeps a parallel nodes table so
// DecreaseKey can locate the node for an index in O(1). DeleteMin and
// DecreaseKey reuse the wrapped heap's delete-min and cut logic; Insert
// splices straight into the wrapped heap's root ring so it can record the
// node. There is no Meld, IncreaseKey or Remove.
type IndexFibonacci[K any] struct {
	fib   *Fibonacci[K]
	nodes []*fibNode[K]
}

// NewIndexFibonacci returns an empty indexed Fibonacci heap over indices
// [0, capacity).
func NewIndexFibonacci[K any](capacity int, less cmp.Func[K]) *IndexFibonacci[K] {
	return &IndexFibonacci[K]{
		fib:   NewFibonacci(less),
		nodes: make([]*fibNode[K], capacity),
	}
}

// Len returns the number of indices currently in the heap.
func (h *IndexFibonacci[K]) Len() int { return h.fib.size }

// IsEmpty reports whether the heap holds no indices.
func (h *IndexFibonacci[K]) IsEmpty() bool { return h.fib.IsEmpty() }

// Contains reports whether index i currently has an entry in the heap.
func (h *IndexFibonacci[K]) Contains(i int) bool {
	return i >= 0 && i < len(h.nodes) && h.nodes[i] != nil
}

// Insert adds index i with key, if it does not already have an entry.
//
// Returns a [status.CapacityExceeded] error if i is out of range.
func (h *IndexFibonacci[K]) Insert(i int, key K) error {
	if i < 0 || i >= len(h.nodes) {
		return status.Newf("heap.IndexFibonacci.Insert", status.CapacityExceeded, i)
	}
	if h.nodes[i] != nil {
		return nil
	}
	n := newRing(&fibNode[K]{idx: i, key: key})
	h.fib.min = spliceInto(h.fib.min, n)
	if h.fib.min == nil || cmp.Smaller(h.fib.less, n.key, h.fib.min.key) {
		h.fib.min = n
	}
	h.fib.size++
	h.nodes[i] = n
	return nil
}

// MinIndex returns the index of the minimum key, if the heap is non-empty.
func (h *IndexFibonacci[K]) MinIndex() (int, bool) {
	if h.fib.min == nil {
		return 0, false
	}
	return h.fib.min.idx, true
}

// MinKey returns the minimum key, if the heap is non-empty.
func (h *IndexFibonacci[K]) MinKey() (K, bool) { return h.fib.Min() }

// DeleteMin removes and returns the index and key of the minimum entry.
//
// Panics if the heap is empty.
func (h *IndexFibonacci[K]) DeleteMin() (int, K) {
	z := h.fib.deleteMinNode()
	h.nodes[z.idx] = nil
	return z.idx, z.key
}

// DecreaseKey lowers the key of index i.
//
// Returns a [status.NotDecreased] error if newKey does not strictly improve
// on the current key.
func (h *IndexFibonacci[K]) DecreaseKey(i int, newKey K) error {
	n := h.nodes[i]
	debug.Assert(n != nil, "heap.IndexFibonacci: decrease-key on an index not in the heap")

	if !cmp.Smaller(h.fib.less, newKey, n.key) {
		return status.Newf("heap.IndexFibonacci.DecreaseKey", status.NotDecreased, i)
	}
	h.fib.decrease(n, newKey)
	return nil
}
