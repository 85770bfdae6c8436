// Package splaytree is an access-splaying binary search tree, translated
// from original_source/searchtree/splaytree.
//
// Every [Tree.Get], [Tree.Put] and [Tree.Delete] concludes by rotating the
// last node it touched up to the root via zig / zig-zig / zig-zag steps
// (spec.md §3 "Splay tree node"), so a Tree mutates on read: concurrent
// read-only access is not safe (spec.md §5).
package splaytree

import (
	"github.com/flier/algokit/pkg/cmp"
	"github.com/flier/algokit/pkg/opt"
)

type node[K, V any] struct {
	key                 K
	value               V
	left, right, parent *node[K, V]
}

// Tree is a splay tree ordered by a [cmp.Func] over K.
type Tree[K, V any] struct {
	root *node[K, V]
	less cmp.Func[K]
	size int
}

// New returns an empty splay tree ordered by less.
func New[K, V any](less cmp.Func[K]) *Tree[K, V] {
	return &Tree[K, V]{less: less}
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool { return t.root == nil }

// find walks to the node matching key, or to the last node visited on the
// search path if key is absent; it always splays whatever it stops at.
func (t *Tree[K, V]) find(key K) *node[K, V] {
	n := t.root
	if n == nil {
		return nil
	}

	var last *node[K, V]
	for n != nil {
		last = n
		switch c := t.less(key, n.key); {
		case c > 0:
			n = n.left
		case c < 0:
			n = n.right
		default:
			t.splay(n)
			return n
		}
	}
	t.splay(last)
	return nil
}

// Get looks up key, returning its value and true if present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n := t.find(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Put inserts key with value, overwriting the value of an existing key.
func (t *Tree[K, V]) Put(key K, value V) {
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		t.size++
		return
	}

	n := t.find(key)
	if n != nil {
		n.value = value
		return
	}

	// find() splayed the last node on the search path to the root.
	r := t.root
	newNode := &node[K, V]{key: key, value: value}

	if cmp.Smaller(t.less, key, r.key) {
		newNode.left, newNode.right = r.left, r
		if r.left != nil {
			r.left.parent = newNode
		}
		r.left = nil
	} else {
		newNode.left, newNode.right = r, r.right
		if r.right != nil {
			r.right.parent = newNode
		}
		r.right = nil
	}
	r.parent = newNode
	t.root = newNode
	t.size++
}

// Delete removes key if present.
func (t *Tree[K, V]) Delete(key K) bool {
	n := t.find(key)
	if n == nil {
		return false
	}
	// n is now the root.
	t.size--

	if n.left == nil {
		t.root = n.right
		if t.root != nil {
			t.root.parent = nil
		}
		return true
	}

	right := n.right
	left := n.left
	left.parent = nil

	// Splay the maximum of the left subtree to its root; it then has no
	// right child, so right can be attached there.
	t.root = left
	max := left
	for max.right != nil {
		max = max.right
	}
	t.splay(max)
	t.root.right = right
	if right != nil {
		right.parent = t.root
	}
	return true
}

// splay rotates n up to the root via zig / zig-zig / zig-zag steps.
func (t *Tree[K, V]) splay(n *node[K, V]) {
	for n.parent != nil {
		p := n.parent
		g := p.parent
		switch {
		case g == nil:
			// zig
			if p.left == n {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
		case g.left == p && p.left == n:
			// zig-zig
			t.rotateRight(g)
			t.rotateRight(p)
		case g.right == p && p.right == n:
			// zig-zig
			t.rotateLeft(g)
			t.rotateLeft(p)
		case g.left == p && p.right == n:
			// zig-zag
			t.rotateLeft(p)
			t.rotateRight(g)
		default:
			// zig-zag
			t.rotateRight(p)
			t.rotateLeft(g)
		}
	}
	t.root = n
}

func (t *Tree[K, V]) rotateRight(p *node[K, V]) {
	n := p.left
	p.left = n.right
	if n.right != nil {
		n.right.parent = p
	}
	n.parent = p.parent
	t.attachToParent(p, n)
	n.right = p
	p.parent = n
}

func (t *Tree[K, V]) rotateLeft(p *node[K, V]) {
	n := p.right
	p.right = n.left
	if n.left != nil {
		n.left.parent = p
	}
	n.parent = p.parent
	t.attachToParent(p, n)
	n.left = p
	p.parent = n
}

func (t *Tree[K, V]) attachToParent(old, replacement *node[K, V]) {
	g := old.parent
	switch {
	case g == nil:
		t.root = replacement
	case g.left == old:
		g.left = replacement
	default:
		g.right = replacement
	}
}

// Min returns the smallest key, if any. Splays the minimum to the root.
func (t *Tree[K, V]) Min() opt.Option[K] {
	if t.root == nil {
		return opt.None[K]()
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	t.splay(n)
	return opt.Some(n.key)
}

// Max returns the largest key, if any. Splays the maximum to the root.
func (t *Tree[K, V]) Max() opt.Option[K] {
	if t.root == nil {
		return opt.None[K]()
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	t.splay(n)
	return opt.Some(n.key)
}

// Floor returns the greatest stored key <= key, if any.
func (t *Tree[K, V]) Floor(key K) opt.Option[K] {
	if t.Contains(key) {
		return opt.Some(key)
	}
	// Contains() splayed the closest node on the search path to the root.
	r := t.root
	if r == nil {
		return opt.None[K]()
	}
	if cmp.Larger(t.less, r.key, key) {
		if r.left == nil {
			return opt.None[K]()
		}
		n := r.left
		for n.right != nil {
			n = n.right
		}
		return opt.Some(n.key)
	}
	return opt.Some(r.key)
}

// Ceiling returns the least stored key >= key, if any.
func (t *Tree[K, V]) Ceiling(key K) opt.Option[K] {
	if t.Contains(key) {
		return opt.Some(key)
	}
	r := t.root
	if r == nil {
		return opt.None[K]()
	}
	if cmp.Smaller(t.less, r.key, key) {
		if r.right == nil {
			return opt.None[K]()
		}
		n := r.right
		for n.left != nil {
			n = n.left
		}
		return opt.Some(n.key)
	}
	return opt.Some(r.key)
}

// Entry is a key/value pair produced by range scans.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Range returns every stored key in [lo, hi], ascending. Unlike Get/Put/Delete
// this does not splay, since it must visit every matching node regardless.
func (t *Tree[K, V]) Range(lo, hi K) []Entry[K, V] {
	var out []Entry[K, V]
	var walk func(*node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		if cmp.Smaller(t.less, lo, n.key) {
			walk(n.left)
		}
		if cmp.SmallerOrEqual(t.less, lo, n.key) && cmp.SmallerOrEqual(t.less, n.key, hi) {
			out = append(out, Entry[K, V]{n.key, n.value})
		}
		if cmp.Smaller(t.less, n.key, hi) {
			walk(n.right)
		}
	}
	walk(t.root)
	return out
}

// Keys returns every stored key, ascending, without splaying.
func (t *Tree[K, V]) Keys() []K {
	out := make([]K, 0, t.size)
	var walk func(*node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Clear empties the tree.
func (t *Tree[K, V]) Clear() { t.root = nil; t.size = 0 }

// CheckInvariants verifies the tree remains a valid BST at rest, matching
// spec.md §3's "the tree remains a BST at every intermediate state".
func (t *Tree[K, V]) CheckInvariants() bool {
	return t.isBST(t.root, nil, nil) && t.parentsConsistent(t.root, nil)
}

func (t *Tree[K, V]) isBST(n *node[K, V], lo, hi *K) bool {
	if n == nil {
		return true
	}
	if lo != nil && !cmp.Larger(t.less, n.key, *lo) {
		return false
	}
	if hi != nil && !cmp.Smaller(t.less, n.key, *hi) {
		return false
	}
	return t.isBST(n.left, lo, &n.key) && t.isBST(n.right, &n.key, hi)
}

func (t *Tree[K, V]) parentsConsistent(n, parent *node[K, V]) bool {
	if n == nil {
		return true
	}
	if n.parent != parent {
		return false
	}
	return t.parentsConsistent(n.left, n) && t.parentsConsistent(n.right, n)
}
