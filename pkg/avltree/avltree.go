// Package avltree is a self-balancing binary search tree storing ordered
// key/value pairs, translated from
// original_source/searchtree/avltree/avltree.c.
//
// Unlike the C source, which distinguishes a borrowed vs. owned key by a
// zero/positive key-size byte count (spec.md §3), this translation always
// owns K and V directly as Go values; callers who want borrow semantics
// should store a pointer type as K or V.
package avltree

import (
	"github.com/flier/algokit/internal/debug"
	"github.com/flier/algokit/pkg/cmp"
	"github.com/flier/algokit/pkg/opt"
)

type node[K, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	size        int
	height      int
}

func size[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// Tree is an AVL tree ordered by a [cmp.Func] over K.
type Tree[K, V any] struct {
	root *node[K, V]
	less cmp.Func[K]
}

// New returns an empty AVL tree ordered by less.
func New[K, V any](less cmp.Func[K]) *Tree[K, V] {
	return &Tree[K, V]{less: less}
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int { return size(t.root) }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool { return t.root == nil }

// Get looks up key, returning its value and true if present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n := t.getNode(t.root, key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

func (t *Tree[K, V]) getNode(n *node[K, V], key K) *node[K, V] {
	for n != nil {
		switch c := t.less(key, n.key); {
		case c > 0: // key smaller
			n = n.left
		case c < 0: // key larger
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Put inserts key with value, overwriting the value of an existing key.
func (t *Tree[K, V]) Put(key K, value V) {
	t.root = t.put(t.root, key, value)
}

func (t *Tree[K, V]) put(n *node[K, V], key K, value V) *node[K, V] {
	if n == nil {
		return &node[K, V]{key: key, value: value, size: 1, height: 0}
	}

	switch c := t.less(key, n.key); {
	case c > 0:
		n.left = t.put(n.left, key, value)
	case c < 0:
		n.right = t.put(n.right, key, value)
	default:
		n.value = value
		return n
	}

	n.size = 1 + size(n.left) + size(n.right)
	n.height = 1 + max(height(n.left), height(n.right))
	return t.balance(n)
}

func (t *Tree[K, V]) balance(n *node[K, V]) *node[K, V] {
	bf := height(n.left) - height(n.right)

	switch {
	case bf > 1:
		if height(n.left.left)-height(n.left.right) < 0 {
			n.left = t.rotateLeft(n.left)
		}
		n = t.rotateRight(n)
	case bf < -1:
		if height(n.right.left)-height(n.right.right) > 0 {
			n.right = t.rotateRight(n.right)
		}
		n = t.rotateLeft(n)
	}

	debug.Assert(-1 <= height(n.left)-height(n.right) && height(n.left)-height(n.right) <= 1,
		"avltree: balance factor out of range after rebalance")
	return n
}

func (t *Tree[K, V]) rotateRight(n *node[K, V]) *node[K, V] {
	x := n.left
	n.left = x.right
	x.right = n

	n.size = 1 + size(n.left) + size(n.right)
	n.height = 1 + max(height(n.left), height(n.right))
	x.size = 1 + size(x.left) + size(x.right)
	x.height = 1 + max(height(x.left), height(x.right))
	return x
}

func (t *Tree[K, V]) rotateLeft(n *node[K, V]) *node[K, V] {
	x := n.right
	n.right = x.left
	x.left = n

	n.size = 1 + size(n.left) + size(n.right)
	n.height = 1 + max(height(n.left), height(n.right))
	x.size = 1 + size(x.left) + size(x.right)
	x.height = 1 + max(height(x.left), height(x.right))
	return x
}

// Delete removes key if present.
func (t *Tree[K, V]) Delete(key K) bool {
	if !t.Contains(key) {
		return false
	}
	t.root = t.delete(t.root, key)
	return true
}

func (t *Tree[K, V]) delete(n *node[K, V], key K) *node[K, V] {
	switch c := t.less(key, n.key); {
	case c > 0:
		n.left = t.delete(n.left, key)
	case c < 0:
		n.right = t.delete(n.right, key)
	default:
		switch {
		case n.left == nil:
			return n.right
		case n.right == nil:
			return n.left
		default:
			succ := t.minNode(n.right)
			n.key, n.value = succ.key, succ.value
			n.right = t.deleteMin(n.right)
		}
	}

	n.size = 1 + size(n.left) + size(n.right)
	n.height = 1 + max(height(n.left), height(n.right))
	return t.balance(n)
}

func (t *Tree[K, V]) deleteMin(n *node[K, V]) *node[K, V] {
	if n.left == nil {
		return n.right
	}
	n.left = t.deleteMin(n.left)
	n.size = 1 + size(n.left) + size(n.right)
	n.height = 1 + max(height(n.left), height(n.right))
	return t.balance(n)
}

// Min returns the smallest key, if any.
func (t *Tree[K, V]) Min() opt.Option[K] {
	if t.root == nil {
		return opt.None[K]()
	}
	return opt.Some(t.minNode(t.root).key)
}

func (t *Tree[K, V]) minNode(n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Max returns the largest key, if any.
func (t *Tree[K, V]) Max() opt.Option[K] {
	if t.root == nil {
		return opt.None[K]()
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return opt.Some(n.key)
}

// Floor returns the greatest stored key <= key, if any.
func (t *Tree[K, V]) Floor(key K) opt.Option[K] {
	n := t.floor(t.root, key)
	if n == nil {
		return opt.None[K]()
	}
	return opt.Some(n.key)
}

func (t *Tree[K, V]) floor(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}
	switch c := t.less(key, n.key); {
	case c == 0:
		return n
	case c < 0: // key larger than n.key
		if r := t.floor(n.right, key); r != nil {
			return r
		}
		return n
	default: // key smaller than n.key
		return t.floor(n.left, key)
	}
}

// Ceiling returns the least stored key >= key, if any.
func (t *Tree[K, V]) Ceiling(key K) opt.Option[K] {
	n := t.ceiling(t.root, key)
	if n == nil {
		return opt.None[K]()
	}
	return opt.Some(n.key)
}

func (t *Tree[K, V]) ceiling(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}
	switch c := t.less(key, n.key); {
	case c == 0:
		return n
	case c > 0: // key smaller than n.key
		if l := t.ceiling(n.left, key); l != nil {
			return l
		}
		return n
	default: // key larger than n.key
		return t.ceiling(n.right, key)
	}
}

// Rank returns the number of keys strictly smaller than key.
func (t *Tree[K, V]) Rank(key K) int {
	return t.rank(t.root, key)
}

func (t *Tree[K, V]) rank(n *node[K, V], key K) int {
	if n == nil {
		return 0
	}
	switch c := t.less(key, n.key); {
	case c > 0: // key smaller
		return t.rank(n.left, key)
	case c < 0: // key larger
		return 1 + size(n.left) + t.rank(n.right, key)
	default:
		return size(n.left)
	}
}

// Select returns the key of rank r (0-indexed), if r is in range.
func (t *Tree[K, V]) Select(r int) opt.Option[K] {
	if r < 0 || r >= size(t.root) {
		return opt.None[K]()
	}
	return opt.Some(t.selectNode(t.root, r))
}

func (t *Tree[K, V]) selectNode(n *node[K, V], r int) K {
	ls := size(n.left)
	switch {
	case r < ls:
		return t.selectNode(n.left, r)
	case r > ls:
		return t.selectNode(n.right, r-ls-1)
	default:
		return n.key
	}
}

// Entry is a key/value pair produced by range scans.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Range returns every stored key in [lo, hi], ascending.
func (t *Tree[K, V]) Range(lo, hi K) []Entry[K, V] {
	var out []Entry[K, V]
	t.rangeNode(t.root, lo, hi, &out)
	return out
}

func (t *Tree[K, V]) rangeNode(n *node[K, V], lo, hi K, out *[]Entry[K, V]) {
	if n == nil {
		return
	}
	if cmp.Smaller(t.less, lo, n.key) {
		t.rangeNode(n.left, lo, hi, out)
	}
	if cmp.SmallerOrEqual(t.less, lo, n.key) && cmp.SmallerOrEqual(t.less, n.key, hi) {
		*out = append(*out, Entry[K, V]{n.key, n.value})
	}
	if cmp.Smaller(t.less, n.key, hi) {
		t.rangeNode(n.right, lo, hi, out)
	}
}

// Keys returns every stored key, ascending.
func (t *Tree[K, V]) Keys() []K {
	out := make([]K, 0, size(t.root))
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
func (t *Tree[K, V]) Clear() { t.root = nil }

// CheckInvariants verifies the BST order, AVL balance, subtree-size
// consistency, and rank/select mutual-inverse invariants documented in
// spec.md §3 "AVL tree node".
func (t *Tree[K, V]) CheckInvariants() bool {
	if !t.isBST(t.root, nil, nil) {
		return false
	}
	if !t.isBalanced(t.root) {
		return false
	}
	if !t.isSizeConsistent(t.root) {
		return false
	}
	return t.isRankConsistent()
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

func (t *Tree[K, V]) isBalanced(n *node[K, V]) bool {
	if n == nil {
		return true
	}
	bf := height(n.left) - height(n.right)
	if bf < -1 || bf > 1 {
		return false
	}
	return t.isBalanced(n.left) && t.isBalanced(n.right)
}

func (t *Tree[K, V]) isSizeConsistent(n *node[K, V]) bool {
	if n == nil {
		return true
	}
	if n.size != 1+size(n.left)+size(n.right) {
		return false
	}
	return t.isSizeConsistent(n.left) && t.isSizeConsistent(n.right)
}

func (t *Tree[K, V]) isRankConsistent() bool {
	for r := 0; r < size(t.root); r++ {
		sel := t.Select(r)
		if !sel.IsSome() || t.Rank(sel.Unwrap()) != r {
			return false
		}
	}
	for _, k := range t.Keys() {
		sel := t.Select(t.Rank(k))
		if !sel.IsSome() || !cmp.Equal(t.less, sel.Unwrap(), k) {
			return false
		}
	}
	return true
}
