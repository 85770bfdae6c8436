package hashtable

import (
	"github.com/dolthub/maphash"

	"github.com/flier/algokit/pkg/status"
)

// LinearProbing is an open-addressing hash table probing the sequence (h,
// h+1, ..., h+m-1) mod m (spec.md §3 "Linear-probing hash").
//
// The source represents an empty slot with an all-zero element record,
// which spec.md §9's open questions calls out as ambiguous: a real key
// that hashes to the zero key with a zero value would be indistinguishable
// from "empty". This translation resolves that by carrying an explicit
// occupied bit per slot instead of an all-zero sentinel, so any K, V pair
// — including K and V's zero values — can be stored safely.
type LinearProbing[K comparable, V any] struct {
	keys     []K
	values   []V
	occupied []bool
	hasher   maphash.Hasher[K]
	size     int
}

// NewLinearProbing returns an empty table with capacity m. The table never
// resizes (spec.md §3: "Load factor is not automatically resized in this
// spec; the table rejects inserts when full.").
func NewLinearProbing[K comparable, V any](m int) *LinearProbing[K, V] {
	if m < 1 {
		m = 1
	}
	return &LinearProbing[K, V]{
		keys:     make([]K, m),
		values:   make([]V, m),
		occupied: make([]bool, m),
		hasher:   maphash.NewHasher[K](),
	}
}

func (l *LinearProbing[K, V]) slot(key K) int {
	return int(l.hasher.Hash(key) % uint64(len(l.keys)))
}

func (l *LinearProbing[K, V]) cap() int { return len(l.keys) }

// Len returns the number of keys stored.
func (l *LinearProbing[K, V]) Len() int { return l.size }

// Cap returns the table's fixed capacity.
func (l *LinearProbing[K, V]) Cap() int { return l.cap() }

// Get looks up key, returning its value and true if present.
func (l *LinearProbing[K, V]) Get(key K) (V, bool) {
	m := l.cap()
	for n, i := 0, l.slot(key); n < m && l.occupied[i]; n, i = n+1, (i+1)%m {
		if l.keys[i] == key {
			return l.values[i], true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (l *LinearProbing[K, V]) Contains(key K) bool {
	_, ok := l.Get(key)
	return ok
}

// Put inserts key with value, overwriting the value of an existing key.
//
// Returns a [status.CapacityExceeded] error if the table is full and key is
// not already present.
func (l *LinearProbing[K, V]) Put(key K, value V) error {
	m := l.cap()
	i := l.slot(key)
	for n := 0; n < m; n++ {
		probe := (i + n) % m
		if !l.occupied[probe] {
			l.keys[probe] = key
			l.values[probe] = value
			l.occupied[probe] = true
			l.size++
			return nil
		}
		if l.keys[probe] == key {
			l.values[probe] = value
			return nil
		}
	}
	return status.Newf("hashtable.LinearProbing.Put", status.CapacityExceeded, key)
}

// Delete removes key if present, re-inserting every key in the cluster
// following the vacated slot to preserve the probe-sequence invariant
// (spec.md §4.2: "Deletion must re-insert every key in the cluster
// following the removed slot").
func (l *LinearProbing[K, V]) Delete(key K) bool {
	m := l.cap()
	start := l.slot(key)
	i := -1
	for n, probe := 0, start; n < m; n, probe = n+1, (probe+1)%m {
		if !l.occupied[probe] {
			return false
		}
		if l.keys[probe] == key {
			i = probe
			break
		}
	}
	if i < 0 {
		return false
	}

	l.occupied[i] = false
	var zeroK K
	var zeroV V
	l.keys[i], l.values[i] = zeroK, zeroV
	l.size--

	j := (i + 1) % m
	for l.occupied[j] {
		k, v := l.keys[j], l.values[j]
		l.occupied[j] = false
		l.keys[j], l.values[j] = zeroK, zeroV
		l.size--
		// Re-insert; this always finds a slot since the table only
		// shrank by the entries drained out of the cluster.
		_ = l.Put(k, v)
		j = (j + 1) % m
	}
	return true
}
