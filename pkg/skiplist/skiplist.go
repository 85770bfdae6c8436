// Package skiplist is a probabilistic ordered map, translated from
// original_source/skiplist/skiplist.c.
//
// Level 0 is a sorted singly-linked list holding every key; each higher
// level is an independently-sampled sublist used to skip over runs of
// level-0 nodes during search (spec.md §3 "Skip list node"). Level
// sampling draws from [github.com/flier/algokit/pkg/rng], the one
// randomness source shared by the whole module; the maximum level is fixed
// at construction.
package skiplist

import (
	"github.com/flier/algokit/internal/debug"
	"github.com/flier/algokit/pkg/cmp"
	"github.com/flier/algokit/pkg/opt"
	"github.com/flier/algokit/pkg/rng"
)

const (
	// DefaultMaxLevel is used when a [List] is constructed with New
	// instead of [NewWithLevels]; it comfortably covers lists up to
	// roughly 2^16 keys at the default promotion probability.
	DefaultMaxLevel = 16
	// DefaultP is the promotion probability used by New.
	DefaultP = 0.5
)

type node[K, V any] struct {
	key     K
	value   V
	forward []*node[K, V]
}

// List is a skip list ordered by a [cmp.Func] over K.
type List[K, V any] struct {
	less     cmp.Func[K]
	maxLevel int
	p        float64
	level    int // highest level currently in use, 0-indexed
	head     *node[K, V]
	size     int
}

// New returns an empty skip list with the default max level and promotion
// probability (spec.md §4.1: "L = ⌈log₂ n⌉ or 16, p = 0.5").
func New[K, V any](less cmp.Func[K]) *List[K, V] {
	return NewWithLevels[K, V](less, DefaultMaxLevel, DefaultP)
}

// NewWithLevels returns an empty skip list with an explicit max level and
// promotion probability.
func NewWithLevels[K, V any](less cmp.Func[K], maxLevel int, p float64) *List[K, V] {
	debug.Assert(maxLevel >= 1, "skiplist: maxLevel must be >= 1")
	return &List[K, V]{
		less:     less,
		maxLevel: maxLevel,
		p:        p,
		head:     &node[K, V]{forward: make([]*node[K, V], maxLevel)},
	}
}

// Len returns the number of keys in the list.
func (l *List[K, V]) Len() int { return l.size }

// IsEmpty reports whether the list holds no keys.
func (l *List[K, V]) IsEmpty() bool { return l.size == 0 }

// randomLevel samples a new node's top level via independent Bernoulli(p)
// flips, capped at maxLevel (spec.md §4.1).
func (l *List[K, V]) randomLevel() int {
	lvl := 0
	for lvl < l.maxLevel-1 && rng.Bernoulli(l.p) {
		lvl++
	}
	return lvl
}

// search walks forward on the highest level that does not overshoot key,
// dropping one level at a time, and records the rightmost predecessor
// visited at each level in update.
func (l *List[K, V]) search(key K) (update []*node[K, V], found *node[K, V]) {
	update = make([]*node[K, V], l.maxLevel)
	x := l.head
	for i := l.level; i >= 0; i-- {
		for x.forward[i] != nil && cmp.Larger(l.less, key, x.forward[i].key) {
			x = x.forward[i]
		}
		update[i] = x
	}
	if x.forward[0] != nil && cmp.Equal(l.less, x.forward[0].key, key) {
		found = x.forward[0]
	}
	return update, found
}

// Get looks up key, returning its value and true if present.
func (l *List[K, V]) Get(key K) (V, bool) {
	_, found := l.search(key)
	if found == nil {
		var zero V
		return zero, false
	}
	return found.value, true
}

// Contains reports whether key is present.
func (l *List[K, V]) Contains(key K) bool {
	_, ok := l.Get(key)
	return ok
}

// Put inserts key with value, overwriting the value of an existing key.
func (l *List[K, V]) Put(key K, value V) {
	update, found := l.search(key)
	if found != nil {
		found.value = value
		return
	}

	lvl := l.randomLevel()
	if lvl > l.level {
		for i := l.level + 1; i <= lvl; i++ {
			update[i] = l.head
		}
		l.level = lvl
	}

	n := &node[K, V]{key: key, value: value, forward: make([]*node[K, V], lvl+1)}
	for i := 0; i <= lvl; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}
	l.size++
}

// Delete removes key if present.
func (l *List[K, V]) Delete(key K) bool {
	update, found := l.search(key)
	if found == nil {
		return false
	}

	for i := 0; i <= l.level; i++ {
		if update[i].forward[i] != found {
			continue
		}
		update[i].forward[i] = found.forward[i]
	}

	for l.level > 0 && l.head.forward[l.level] == nil {
		l.level--
	}
	l.size--
	return true
}

// Min returns the smallest key, if any.
func (l *List[K, V]) Min() opt.Option[K] {
	if l.head.forward[0] == nil {
		return opt.None[K]()
	}
	return opt.Some(l.head.forward[0].key)
}

// Max returns the largest key, if any.
func (l *List[K, V]) Max() opt.Option[K] {
	x := l.head
	for i := l.level; i >= 0; i-- {
		for x.forward[i] != nil {
			x = x.forward[i]
		}
	}
	if x == l.head {
		return opt.None[K]()
	}
	return opt.Some(x.key)
}

// Floor returns the greatest stored key <= key, if any.
func (l *List[K, V]) Floor(key K) opt.Option[K] {
	x := l.head
	for i := l.level; i >= 0; i-- {
		for x.forward[i] != nil && cmp.LargerOrEqual(l.less, key, x.forward[i].key) {
			x = x.forward[i]
		}
	}
	if x == l.head {
		return opt.None[K]()
	}
	return opt.Some(x.key)
}

// Ceiling returns the least stored key >= key, if any.
func (l *List[K, V]) Ceiling(key K) opt.Option[K] {
	x := l.head
	for i := l.level; i >= 0; i-- {
		for x.forward[i] != nil && cmp.Larger(l.less, key, x.forward[i].key) {
			x = x.forward[i]
		}
	}
	n := x.forward[0]
	if n == nil {
		return opt.None[K]()
	}
	return opt.Some(n.key)
}

// Entry is a key/value pair produced by range scans.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Range returns every stored key in [lo, hi], ascending.
func (l *List[K, V]) Range(lo, hi K) []Entry[K, V] {
	var out []Entry[K, V]
	x := l.head
	for i := l.level; i >= 0; i-- {
		for x.forward[i] != nil && cmp.Larger(l.less, lo, x.forward[i].key) {
			x = x.forward[i]
		}
	}
	for n := x.forward[0]; n != nil && cmp.SmallerOrEqual(l.less, n.key, hi); n = n.forward[0] {
		out = append(out, Entry[K, V]{n.key, n.value})
	}
	return out
}

// Keys returns every stored key, ascending.
func (l *List[K, V]) Keys() []K {
	out := make([]K, 0, l.size)
	for n := l.head.forward[0]; n != nil; n = n.forward[0] {
		out = append(out, n.key)
	}
	return out
}

// Clear empties the list.
func (l *List[K, V]) Clear() {
	l.head = &node[K, V]{forward: make([]*node[K, V], l.maxLevel)}
	l.level = 0
	l.size = 0
}

// CheckInvariants verifies that level 0 is sorted ascending and that every
// higher level is a subsequence of level 0, per spec.md §3 "Skip list node".
func (l *List[K, V]) CheckInvariants() bool {
	onBase := make(map[*node[K, V]]bool, l.size)
	var prev *K
	for n := l.head.forward[0]; n != nil; n = n.forward[0] {
		if prev != nil && !cmp.Larger(l.less, n.key, *prev) {
			return false
		}
		k := n.key
		prev = &k
		onBase[n] = true
	}
	for i := 1; i <= l.level; i++ {
		var last *node[K, V]
		for n := l.head.forward[i]; n != nil; n = n.forward[i] {
			if !onBase[n] || (last != nil && !cmp.Larger(l.less, n.key, last.key)) {
				return false
			}
			last = n
		}
	}
	return true
}
