package heap

import (
	"github.com/flier/algokit/internal/debug"
	"github.com/flier/algokit/pkg/cmp"
)

// binomialNode is one tree in a binomial forest: a degree-k node has
// exactly k children, of degrees k-1, k-2, ..., 0, reachable through
// child/sibling in decreasing-degree order (spec.md §4.4).
type binomialNode[K any] struct {
	key             K
	degree          int
	child, sibling  *binomialNode[K]
}

// Binomial is a binomial heap ordered by a [cmp.Func] over K, translated
// from original_source/heap/binomialpq.
type Binomial[K any] struct {
	head *binomialNode[K] // roots in increasing order of degree
	less cmp.Func[K]
	size int
}

// NewBinomial returns an empty binomial heap ordered by less.
func NewBinomial[K any](less cmp.Func[K]) *Binomial[K] {
	return &Binomial[K]{less: less}
}

// Len returns the number of keys in the heap.
func (h *Binomial[K]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no keys.
func (h *Binomial[K]) IsEmpty() bool { return h.head == nil }

// linkTrees attaches the larger-keyed root as the new leftmost child of the
// smaller-keyed root, producing a tree of degree a.degree+1. Both a and b
// must have equal degree.
func linkTrees[K any](less cmp.Func[K], a, b *binomialNode[K]) *binomialNode[K] {
	if cmp.Larger(less, a.key, b.key) {
		a, b = b, a
	}
	b.sibling = a.child
	a.child = b
	a.degree++
	return a
}

// mergeRootLists splices two increasing-degree root lists into one
// increasing-degree list, without combining equal-degree trees.
func mergeRootLists[K any](a, b *binomialNode[K]) *binomialNode[K] {
	dummy := &binomialNode[K]{}
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

// union merges two root lists, combining equal-degree trees left to right,
// the classic binary-addition carry walk over a binomial forest.
func union[K any](less cmp.Func[K], a, b *binomialNode[K]) *binomialNode[K] {
	merged := mergeRootLists(a, b)
	if merged == nil {
		return nil
	}

	var prev *binomialNode[K]
	curr := merged
	next := curr.sibling
	for next != nil {
		if curr.degree != next.degree || (next.sibling != nil && next.sibling.degree == curr.degree) {
			prev, curr = curr, next
		} else if cmp.SmallerOrEqual(less, curr.key, next.key) {
			curr.sibling = next.sibling
			curr = linkTrees(less, curr, next)
		} else {
			if prev == nil {
				merged = next
			} else {
				prev.sibling = next
			}
			curr = linkTrees(less, next, curr)
		}
		next = curr.sibling
	}
	return merged
}

// Insert adds key to the heap.
func (h *Binomial[K]) Insert(key K) {
	n := &binomialNode[K]{key: key}
	h.head = union(h.less, h.head, n)
	h.size++
}

// Meld absorbs other into h in O(log n), leaving other empty.
func (h *Binomial[K]) Meld(other *Binomial[K]) {
	h.head = union(h.less, h.head, other.head)
	h.size += other.size
	other.head, other.size = nil, 0
}

// minRoot returns the root holding the smallest key, and its predecessor in
// the root list (nil if it is the head).
func (h *Binomial[K]) minRoot() (prevOfMin, min *binomialNode[K]) {
	if h.head == nil {
		return nil, nil
	}
	min = h.head
	curr := h.head.sibling
	var prev *binomialNode[K] = h.head
	for curr != nil {
		if cmp.Smaller(h.less, curr.key, min.key) {
			min = curr
			prevOfMin = prev
		}
		prev = curr
		curr = curr.sibling
	}
	return prevOfMin, min
}

// Min returns the smallest key, if any.
func (h *Binomial[K]) Min() (K, bool) {
	_, min := h.minRoot()
	if min == nil {
		var zero K
		return zero, false
	}
	return min.key, true
}

// reverseChildren detaches n's children into a root list in increasing
// degree order, the mirror image of how they hang off n in decreasing
// degree order.
func reverseChildren[K any](n *binomialNode[K]) *binomialNode[K] {
	var head *binomialNode[K]
	for c := n.child; c != nil; {
		next := c.sibling
		c.sibling = head
		head = c
		c = next
	}
	return head
}

// DeleteMin removes and returns the smallest key.
//
// Panics if the heap is empty.
func (h *Binomial[K]) DeleteMin() K {
	debug.Assert(h.head != nil, "heap.Binomial: delete-min on an empty heap")

	prev, min := h.minRoot()
	if prev == nil {
		h.head = min.sibling
	} else {
		prev.sibling = min.sibling
	}

	h.head = union(h.less, h.head, reverseChildren(min))
	h.size--
	return min.key
}
