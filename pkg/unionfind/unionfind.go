// Package unionfind is a weighted quick-union structure with no path
// compression, translated from original_source/graphs/unionfind.
//
// Union always attaches the root of the smaller tree under the root of the
// larger (spec.md §4.3), bounding tree height by log2(n) without needing
// path compression to keep find() fast.
package unionfind

import "github.com/flier/algokit/internal/debug"

// UnionFind tracks the connected-components structure over n elements
// numbered 0..n-1.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}

// New returns a UnionFind over n elements, each initially its own
// singleton component.
func New(n int) *UnionFind {
	debug.Assert(n >= 0, "unionfind: n must be non-negative")
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// Count returns the current number of connected components.
func (uf *UnionFind) Count() int { return uf.count }

// Find returns the root of the component containing p.
func (uf *UnionFind) Find(p int) int {
	for p != uf.parent[p] {
		p = uf.parent[p]
	}
	return p
}

// Connected reports whether p and q are in the same component.
func (uf *UnionFind) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

// Union merges the components containing p and q. If they are already in
// the same component this is a no-op; otherwise the smaller tree's root is
// attached under the larger, with ties broken in favor of keeping q's root
// as the new root (spec.md §4.3).
func (uf *UnionFind) Union(p, q int) {
	rootP, rootQ := uf.Find(p), uf.Find(q)
	if rootP == rootQ {
		return
	}

	if uf.size[rootP] <= uf.size[rootQ] {
		uf.parent[rootP] = rootQ
		uf.size[rootQ] += uf.size[rootP]
	} else {
		uf.parent[rootQ] = rootP
		uf.size[rootP] += uf.size[rootQ]
	}
	uf.count--
}

// ComponentSize returns the number of elements in p's component.
func (uf *UnionFind) ComponentSize(p int) int {
	return uf.size[uf.Find(p)]
}
