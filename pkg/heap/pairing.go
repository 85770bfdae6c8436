// Package heap holds the meldable priority queues of spec.md §4.4: plain
// and indexed pairing, binomial and Fibonacci heaps, translated from
// original_source/heap/{pairingheap,binomialpq,fibonaccipq,indexpairheap,
// indexbinompq,indexfibpq}.
//
// Every heap here is a min-heap under its [github.com/flier/algokit/pkg/cmp.Func]:
// the key [cmp.Smaller] under the comparator is removed first. Deleting
// from an empty heap panics, matching spec.md §4.4 ("Delete on an empty heap
// is fatal"): with the debug build tag the internal/debug.Assert check
// fires, and without it the missing root is dereferenced.
package heap

import (
	"github.com/flier/algokit/internal/debug"
	"github.com/flier/algokit/pkg/cmp"
)

type pairingNode[K any] struct {
	key                 K
	child, sibling, prev *pairingNode[K]
}

// Pairing is a pairing heap ordered by a [cmp.Func] over K.
type Pairing[K any] struct {
	root *pairingNode[K]
	less cmp.Func[K]
	size int
}

// NewPairing returns an empty pairing heap ordered by less.
func NewPairing[K any](less cmp.Func[K]) *Pairing[K] {
	return &Pairing[K]{less: less}
}

// Len returns the number of keys in the heap.
func (h *Pairing[K]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no keys.
func (h *Pairing[K]) IsEmpty() bool { return h.root == nil }

// compareLink attaches the larger-keyed of a, b as the leftmost child of
// the smaller-keyed, and returns the winner (spec.md §4.4).
func compareLink[K any](less cmp.Func[K], a, b *pairingNode[K]) *pairingNode[K] {
	var winner, loser *pairingNode[K]
	if cmp.Smaller(less, a.key, b.key) {
		winner, loser = a, b
	} else {
		winner, loser = b, a
	}

	loser.prev = winner
	loser.sibling = winner.child
	if winner.child != nil {
		winner.child.prev = loser
	}
	winner.child = loser
	winner.sibling, winner.prev = nil, nil
	return winner
}

func linkOrNil[K any](less cmp.Func[K], a, b *pairingNode[K]) *pairingNode[K] {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return compareLink(less, a, b)
	}
}

// Insert adds key to the heap.
func (h *Pairing[K]) Insert(key K) {
	n := &pairingNode[K]{key: key}
	h.root = linkOrNil(h.less, h.root, n)
	h.size++
}

// Min returns the smallest key, if any.
func (h *Pairing[K]) Min() (K, bool) {
	if h.root == nil {
		var zero K
		return zero, false
	}
	return h.root.key, true
}

// DeleteMin removes and returns the smallest key.
//
// Panics if the heap is empty.
func (h *Pairing[K]) DeleteMin() K {
	debug.Assert(h.root != nil, "heap.Pairing: delete-min on an empty heap")

	key := h.root.key
	h.root = mergePairs(h.less, collectChildren(h.root))
	h.size--
	return key
}

// Meld absorbs other into h in O(1), leaving other empty.
func (h *Pairing[K]) Meld(other *Pairing[K]) {
	h.root = linkOrNil(h.less, h.root, other.root)
	h.size += other.size
	other.root, other.size = nil, 0
}

// collectChildren detaches n's children into a slice, clearing their
// parent/sibling links so each can be relinked independently.
func collectChildren[K any](n *pairingNode[K]) []*pairingNode[K] {
	var out []*pairingNode[K]
	for c := n.child; c != nil; {
		next := c.sibling
		c.sibling, c.prev = nil, nil
		out = append(out, c)
		c = next
	}
	return out
}

// mergePairs runs the pairing heap's two-pass combine: left-to-right
// pairwise compare-link, then right-to-left combine of the results into a
// single tree (spec.md §4.4).
func mergePairs[K any](less cmp.Func[K], children []*pairingNode[K]) *pairingNode[K] {
	if len(children) == 0 {
		return nil
	}

	var merged []*pairingNode[K]
	i := 0
	for i+1 < len(children) {
		merged = append(merged, compareLink(less, children[i], children[i+1]))
		i += 2
	}
	if i < len(children) {
		merged = append(merged, children[i])
	}

	result := merged[len(merged)-1]
	for j := len(merged) - 2; j >= 0; j-- {
		result = compareLink(less, merged[j], result)
	}
	return result
}

// cut detaches n from its parent/sibling chain in place, using the prev
// pointer convention of spec.md §3: "Prev pointer of the first child points
// to its parent; prev of subsequent siblings points to the preceding
// sibling."
func cut[K any](n *pairingNode[K]) {
	if n.prev == nil {
		return
	}
	if n.prev.child == n {
		n.prev.child = n.sibling
	} else {
		n.prev.sibling = n.sibling
	}
	if n.sibling != nil {
		n.sibling.prev = n.prev
	}
	n.sibling, n.prev = nil, nil
}
