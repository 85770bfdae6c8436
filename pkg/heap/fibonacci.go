package heap

import (
	"math"

	"github.com/flier/algokit/internal/debug"
	"github.com/flier/algokit/pkg/cmp"
)

// fibNode is a doubly-linked circular root/child list node, carrying the
// mark bit cascading-cut relies on (spec.md §4.4, translated from
// original_source/heap/fibonaccipq).
type fibNode[K any] struct {
	idx                    int // external index, used only by IndexFibonacci
	key                    K
	degree                 int
	marked                 bool
	parent, child          *fibNode[K]
	left, right            *fibNode[K] // circular doubly-linked sibling ring
}

// Fibonacci is a Fibonacci heap ordered by a [cmp.Func] over K. Insert and
// Meld run in O(1) amortized; DeleteMin runs in O(log n) amortized by
// deferring the consolidation work that pairing/binomial heaps do eagerly.
type Fibonacci[K any] struct {
	min  *fibNode[K]
	less cmp.Func[K]
	size int
}

// NewFibonacci returns an empty Fibonacci heap ordered by less.
func NewFibonacci[K any](less cmp.Func[K]) *Fibonacci[K] {
	return &Fibonacci[K]{less: less}
}

// Len returns the number of keys in the heap.
func (h *Fibonacci[K]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no keys.
func (h *Fibonacci[K]) IsEmpty() bool { return h.min == nil }

// newRing returns a singleton circular ring containing n.
func newRing[K any](n *fibNode[K]) *fibNode[K] {
	n.left, n.right = n, n
	return n
}

// spliceInto inserts the ring rooted at b into the ring rooted at a,
// immediately to a's right, and returns a (the ring is unchanged if b is
// nil).
func spliceInto[K any](a, b *fibNode[K]) *fibNode[K] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	aRight, bLeft := a.right, b.left
	a.right, bLeft.right = b, aRight
	b.left, aRight.left = a, bLeft
	return a
}

// removeFromRing detaches n from whatever ring it sits in and returns the
// ring's remaining representative (nil if n was the only member).
func removeFromRing[K any](n *fibNode[K]) *fibNode[K] {
	if n.right == n {
		return nil
	}
	n.left.right = n.right
	n.right.left = n.left
	rest := n.right
	n.left, n.right = n, n
	return rest
}

// Insert adds key to the heap.
func (h *Fibonacci[K]) Insert(key K) {
	n := newRing(&fibNode[K]{key: key})
	h.min = spliceInto(h.min, n)
	if h.min == nil || cmp.Smaller(h.less, n.key, h.min.key) {
		h.min = n
	}
	h.size++
}

// Min returns the smallest key, if any.
func (h *Fibonacci[K]) Min() (K, bool) {
	if h.min == nil {
		var zero K
		return zero, false
	}
	return h.min.key, true
}

// Meld absorbs other into h in O(1), leaving other empty.
func (h *Fibonacci[K]) Meld(other *Fibonacci[K]) {
	h.min = spliceInto(h.min, other.min)
	if other.min != nil && (h.min == nil || cmp.Smaller(h.less, other.min.key, h.min.key)) {
		h.min = other.min
	}
	h.size += other.size
	other.min, other.size = nil, 0
}

// ringSlice materializes a circular ring as a slice, so callers can walk it
// while mutating sibling pointers.
func ringSlice[K any](start *fibNode[K]) []*fibNode[K] {
	if start == nil {
		return nil
	}
	var out []*fibNode[K]
	n := start
	for {
		out = append(out, n)
		n = n.right
		if n == start {
			break
		}
	}
	return out
}

// consolidate merges roots of equal degree until every degree in the root
// list is unique, then re-derives the minimum pointer.
func (h *Fibonacci[K]) consolidate() {
	if h.min == nil {
		return
	}

	maxDegree := int(math.Log2(float64(h.size))) + 2
	degreeTable := make([]*fibNode[K], maxDegree+1)

	roots := ringSlice(h.min)
	for _, n := range roots {
		n.left, n.right = n, n
	}

	var ring *fibNode[K]
	for _, n := range roots {
		x := n
		d := x.degree
		for degreeTable[d] != nil {
			y := degreeTable[d]
			if cmp.Larger(h.less, x.key, y.key) {
				x, y = y, x
			}
			h.fibLink(y, x)
			degreeTable[d] = nil
			d++
		}
		degreeTable[d] = x
	}

	h.min = nil
	for _, x := range degreeTable {
		if x == nil {
			continue
		}
		x.left, x.right = x, x
		ring = spliceInto(ring, x)
		if h.min == nil || cmp.Smaller(h.less, x.key, h.min.key) {
			h.min = x
		}
	}
}

// fibLink makes y a child of x, clearing y's mark as a freshly-attached
// child (spec.md §4.4).
func (h *Fibonacci[K]) fibLink(y, x *fibNode[K]) {
	removeFromRing(y)
	y.left, y.right = y, y
	y.parent = x
	x.child = spliceInto(x.child, y)
	x.degree++
	y.marked = false
}

// DeleteMin removes and returns the smallest key.
//
// Panics if the heap is empty.
func (h *Fibonacci[K]) DeleteMin() K {
	return h.deleteMinNode().key
}

// deleteMinNode is DeleteMin's implementation, returning the detached node
// so IndexFibonacci can recover its external index.
func (h *Fibonacci[K]) deleteMinNode() *fibNode[K] {
	debug.Assert(h.min != nil, "heap.Fibonacci: delete-min on an empty heap")

	z := h.min
	for _, c := range ringSlice(z.child) {
		c.parent = nil
	}
	rest := removeFromRing(z)
	if z.child != nil {
		rest = spliceInto(rest, z.child)
	}

	if rest == z {
		h.min = nil
	} else {
		h.min = rest
		h.consolidate()
	}
	h.size--
	return z
}

// cutChild detaches x from its parent y's child ring and adds it to the
// root ring, clearing its mark.
func (h *Fibonacci[K]) cutChild(x, y *fibNode[K]) {
	if y.child == x {
		if x.right == x {
			y.child = nil
		} else {
			y.child = x.right
		}
	}
	removeFromRing(x)
	y.degree--
	x.left, x.right = x, x
	x.parent = nil
	x.marked = false
	h.min = spliceInto(h.min, x)
}

// cascadingCut walks up from y, cutting any already-marked ancestor,
// stopping at the first unmarked one (which it marks instead) or at a root.
func (h *Fibonacci[K]) cascadingCut(y *fibNode[K]) {
	p := y.parent
	if p == nil {
		return
	}
	if !y.marked {
		y.marked = true
		return
	}
	h.cutChild(y, p)
	h.cascadingCut(p)
}

// decrease lowers x's key and, if that breaks heap order against its
// parent, cuts x free and cascades the cut upward.
func (h *Fibonacci[K]) decrease(x *fibNode[K], newKey K) {
	x.key = newKey
	p := x.parent
	if p != nil && cmp.Smaller(h.less, x.key, p.key) {
		h.cutChild(x, p)
		h.cascadingCut(p)
	}
	if cmp.Smaller(h.less, x.key, h.min.key) {
		h.min = x
	}
}
