package heap

import (
	"github.com/flier/algokit/internal/debug"
	"github.com/flier/algokit/pkg/cmp"
	"github.com/flier/algokit/pkg/status"
)

// IndexPairing is a pairing heap whose elements are addressable by an
// external index in [0, capacity), used directly by
// [github.com/flier/algokit/pkg/graphalg]'s Dijkstra implementation
// (spec.md §4.6: "An indexed pairing-heap keyed by tentative distance").
//
// decrease-key detaches the touched node in place and compare-links it
// back at the root (spec.md §4.4 "Indexed variants").
type IndexPairing[K any] struct {
	nodes []*pairingNode[K]
	root  *pairingNode[K]
	less  cmp.Func[K]
	size  int
}

// NewIndexPairing returns an empty indexed pairing heap over indices
// [0, capacity).
func NewIndexPairing[K any](capacity int, less cmp.Func[K]) *IndexPairing[K] {
	return &IndexPairing[K]{nodes: make([]*pairingNode[K], capacity), less: less}
}

// Len returns the number of indices currently in the heap.
func (h *IndexPairing[K]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no indices.
func (h *IndexPairing[K]) IsEmpty() bool { return h.size == 0 }

// Contains reports whether index i currently has an entry in the heap.
func (h *IndexPairing[K]) Contains(i int) bool {
	return i >= 0 && i < len(h.nodes) && h.nodes[i] != nil
}

// Insert adds index i with key, if it does not already have an entry.
//
// Returns a [status.CapacityExceeded] error if i is out of range.
func (h *IndexPairing[K]) Insert(i int, key K) error {
	if i < 0 || i >= len(h.nodes) {
		return status.Newf("heap.IndexPairing.Insert", status.CapacityExceeded, i)
	}
	if h.nodes[i] != nil {
		return nil
	}
	n := &pairingNode[K]{key: key}
	h.nodes[i] = n
	h.root = linkOrNil(h.less, h.root, n)
	h.size++
	return nil
}

// MinIndex returns the index of the minimum key, if the heap is non-empty.
func (h *IndexPairing[K]) MinIndex() (int, bool) {
	if h.root == nil {
		return 0, false
	}
	return h.indexOf(h.root), true
}

// indexOf finds i such that h.nodes[i] == n by linear scan over the nodes
// table. MinIndex and DeleteMin use it to recover the root's index, so both
// cost O(capacity).
func (h *IndexPairing[K]) indexOf(n *pairingNode[K]) int {
	for i, m := range h.nodes {
		if m == n {
			return i
		}
	}
	debug.Assert(false, "heap.IndexPairing: node has no matching index")
	return -1
}

// MinKey returns the minimum key, if the heap is non-empty.
func (h *IndexPairing[K]) MinKey() (K, bool) {
	if h.root == nil {
		var zero K
		return zero, false
	}
	return h.root.key, true
}

// DeleteMin removes and returns the index and key of the minimum entry.
//
// Panics if the heap is empty.
func (h *IndexPairing[K]) DeleteMin() (int, K) {
	debug.Assert(h.root != nil, "heap.IndexPairing: delete-min on an empty heap")

	i := h.indexOf(h.root)
	key := h.root.key
	h.nodes[i] = nil
	h.root = mergePairs(h.less, collectChildren(h.root))
	h.size--
	return i, key
}

// DecreaseKey lowers the key of index i.
//
// Returns a [status.NotDecreased] error if newKey does not strictly improve
// on the current key.
func (h *IndexPairing[K]) DecreaseKey(i int, newKey K) error {
	n := h.nodes[i]
	debug.Assert(n != nil, "heap.IndexPairing: decrease-key on an index not in the heap")

	if !cmp.Smaller(h.less, newKey, n.key) {
		return status.Newf("heap.IndexPairing.DecreaseKey", status.NotDecreased, i)
	}
	n.key = newKey
	if n != h.root {
		cut(n)
		h.root = compareLink(h.less, h.root, n)
	}
	return nil
}

// Remove deletes index i from the heap, wherever it sits, returning its key.
func (h *IndexPairing[K]) Remove(i int) (K, bool) {
	n := h.nodes[i]
	if n == nil {
		var zero K
		return zero, false
	}

	key := n.key
	replacement := mergePairs(h.less, collectChildren(n))
	if n == h.root {
		h.root = replacement
	} else {
		cut(n)
		h.root = linkOrNil(h.less, h.root, replacement)
	}
	h.nodes[i] = nil
	h.size--
	return key, true
}
