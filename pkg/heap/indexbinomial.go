package heap

import (
	"github.com/flier/algokit/internal/debug"
	"github.com/flier/algokit/pkg/cmp"
	"github.com/flier/algokit/pkg/status"
)

// indexBinomialNode is a binomial tree node that additionally carries the
// external index it represents and a parent pointer, needed so
// [IndexBinomial.DecreaseKey] can find and detach an arbitrary node without
// a full-forest scan.
type indexBinomialNode[K any] struct {
	idx             int
	key             K
	degree          int
	parent, child, sibling *indexBinomialNode[K]
}

// IndexBinomial is a binomial heap whose elements are addressable by an
// external index in [0, capacity) (spec.md §4.4 "Indexed variants").
//
// Increase-key on a binomial heap cannot simply relax a key in place: relaxing a node upward in its own tree would
// break the heap-order invariant against its now-smaller children, so
// IncreaseKey instead removes and reinserts the index, which changes which
// *node backs that index. Callers must not cache node identity across an
// IncreaseKey call (spec.md §9 open question, resolved here in favor of the
// remove/reinsert strategy original_source/heap/indexbinompq.c also uses).
type IndexBinomial[K any] struct {
	nodes []*indexBinomialNode[K]
	head  *indexBinomialNode[K]
	less  cmp.Func[K]
	size  int
}

// NewIndexBinomial returns an empty indexed binomial heap over indices
// [0, capacity).
func NewIndexBinomial[K any](capacity int, less cmp.Func[K]) *IndexBinomial[K] {
	return &IndexBinomial[K]{nodes: make([]*indexBinomialNode[K], capacity), less: less}
}

// Len returns the number of indices currently in the heap.
func (h *IndexBinomial[K]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no indices.
func (h *IndexBinomial[K]) IsEmpty() bool { return h.size == 0 }

// Contains reports whether index i currently has an entry in the heap.
func (h *IndexBinomial[K]) Contains(i int) bool {
	return i >= 0 && i < len(h.nodes) && h.nodes[i] != nil
}

func ibLink[K any](less cmp.Func[K], a, b *indexBinomialNode[K]) *indexBinomialNode[K] {
	if cmp.Larger(less, a.key, b.key) {
		a, b = b, a
	}
	b.sibling = a.child
	b.parent = a
	a.child = b
	a.degree++
	return a
}

func ibMergeRootLists[K any](a, b *indexBinomialNode[K]) *indexBinomialNode[K] {
	dummy := &indexBinomialNode[K]{}
	tail := dummy
	for a != nil && b != nil {
		if a.degree <= b.degree {
			tail.sibling = a
			a = a.sibling
		} else {
			tail.sibling = b
			b = b.sibling
		}
		tail = tail.sibling
	}
	if a != nil {
		tail.sibling = a
	} else {
		tail.sibling = b
	}
	return dummy.sibling
}

func ibUnion[K any](less cmp.Func[K], a, b *indexBinomialNode[K]) *indexBinomialNode[K] {
	merged := ibMergeRootLists(a, b)
	if merged == nil {
		return nil
	}
	merged.parent = nil

	var prev *indexBinomialNode[K]
	curr := merged
	next := curr.sibling
	for next != nil {
		if curr.degree != next.degree || (next.sibling != nil && next.sibling.degree == curr.degree) {
			prev, curr = curr, next
		} else if cmp.SmallerOrEqual(less, curr.key, next.key) {
			curr.sibling = next.sibling
			curr = ibLink(less, curr, next)
			curr.parent = nil
		} else {
			if prev == nil {
				merged = next
			} else {
				prev.sibling = next
			}
			curr = ibLink(less, next, curr)
			curr.parent = nil
		}
		next = curr.sibling
	}
	return merged
}

// Insert adds index i with key, if it does not already have an entry.
//
// Returns a [status.CapacityExceeded] error if i is out of range.
func (h *IndexBinomial[K]) Insert(i int, key K) error {
	if i < 0 || i >= len(h.nodes) {
		return status.Newf("heap.IndexBinomial.Insert", status.CapacityExceeded, i)
	}
	if h.nodes[i] != nil {
		return nil
	}
	n := &indexBinomialNode[K]{idx: i, key: key}
	h.nodes[i] = n
	h.head = ibUnion(h.less, h.head, n)
	h.size++
	return nil
}

func (h *IndexBinomial[K]) minRoot() (prev, min *indexBinomialNode[K]) {
	if h.head == nil {
		return nil, nil
	}
	min = h.head
	curr := h.head.sibling
	p := h.head
	for curr != nil {
		if cmp.Smaller(h.less, curr.key, min.key) {
			min = curr
			prev = p
		}
		p = curr
		curr = curr.sibling
	}
	return prev, min
}

// MinIndex returns the index of the minimum key, if the heap is non-empty.
func (h *IndexBinomial[K]) MinIndex() (int, bool) {
	_, min := h.minRoot()
	if min == nil {
		return 0, false
	}
	return min.idx, true
}

func ibReverseChildren[K any](n *indexBinomialNode[K]) *indexBinomialNode[K] {
	var head *indexBinomialNode[K]
	for c := n.child; c != nil; {
		next := c.sibling
		c.sibling = head
		c.parent = nil
		head = c
		c = next
	}
	return head
}

// DeleteMin removes and returns the index and key of the minimum entry.
//
// Panics if the heap is empty.
func (h *IndexBinomial[K]) DeleteMin() (int, K) {
	debug.Assert(h.head != nil, "heap.IndexBinomial: delete-min on an empty heap")

	prev, min := h.minRoot()
	if prev == nil {
		h.head = min.sibling
	} else {
		prev.sibling = min.sibling
	}
	h.head = ibUnion(h.less, h.head, ibReverseChildren(min))
	h.size--
	h.nodes[min.idx] = nil
	return min.idx, min.key
}

// DecreaseKey lowers the key of index i, bubbling it up past its ancestors
// by swapping (idx, key) pairs, not by re-linking nodes.
//
// Returns a [status.NotDecreased] error if newKey does not strictly improve
// on the current key.
func (h *IndexBinomial[K]) DecreaseKey(i int, newKey K) error {
	n := h.nodes[i]
	debug.Assert(n != nil, "heap.IndexBinomial: decrease-key on an index not in the heap")

	if !cmp.Smaller(h.less, newKey, n.key) {
		return status.Newf("heap.IndexBinomial.DecreaseKey", status.NotDecreased, i)
	}
	n.key = newKey
	for n.parent != nil && cmp.Smaller(h.less, n.key, n.parent.key) {
		p := n.parent
		n.idx, p.idx = p.idx, n.idx
		n.key, p.key = p.key, n.key
		h.nodes[n.idx] = n
		h.nodes[p.idx] = p
		n = p
	}
	return nil
}

// IncreaseKey raises the key of index i by removing and reinserting it;
// see the [IndexBinomial] doc comment for why this cannot be done in place.
//
// Returns a [status.NotIncreased] error if newKey does not strictly relax
// the current one.
func (h *IndexBinomial[K]) IncreaseKey(i int, newKey K) error {
	n := h.nodes[i]
	debug.Assert(n != nil, "heap.IndexBinomial: increase-key on an index not in the heap")

	if !cmp.Larger(h.less, newKey, n.key) {
		return status.Newf("heap.IndexBinomial.IncreaseKey", status.NotIncreased, i)
	}
	if _, ok := h.Remove(i); !ok {
		debug.Assert(false, "heap.IndexBinomial: index vanished mid increase-key")
	}
	return h.Insert(i, newKey)
}

// Remove deletes index i from the heap, wherever it sits, returning its key.
func (h *IndexBinomial[K]) Remove(i int) (K, bool) {
	n := h.nodes[i]
	if n == nil {
		var zero K
		return zero, false
	}

	// Bubble n to the root by swapping (idx, key) with ancestors, then
	// detach it as if it were the minimum root.
	for n.parent != nil {
		p := n.parent
		n.idx, p.idx = p.idx, n.idx
		n.key, p.key = p.key, n.key
		h.nodes[n.idx] = n
		h.nodes[p.idx] = p
		n = p
	}

	key := n.key
	var prev *indexBinomialNode[K]
	curr := h.head
	for curr != n {
		prev = curr
		curr = curr.sibling
	}
	if prev == nil {
		h.head = n.sibling
	} else {
		prev.sibling = n.sibling
	}
	h.head = ibUnion(h.less, h.head, ibReverseChildren(n))
	h.size--
	h.nodes[i] = nil
	return key, true
}
