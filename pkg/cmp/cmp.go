// Package cmp defines the comparator convention shared by every ordered
// container and priority queue in algokit.
//
// The convention is inherited from the C library this module was translated
// from and is the opposite of [cmp.Compare]: a [Func] returns +1 when its
// first argument is the smaller of the two (and therefore preferred by a
// min-oriented priority queue), 0 when the two compare equal, and -1 when
// the first argument is the larger. Every package in this module documents
// this inversion again at the call sites where it is easy to get backwards
// (heap compare-link, AVL rotation direction); it is never silently flipped
// to the conventional sign partway through the module.
package cmp

import "cmp"

// Func is a total-order comparator over T.
//
//	Func(a, b) == +1  // a is strictly smaller than b
//	Func(a, b) ==  0  // a equals b
//	Func(a, b) == -1  // a is strictly larger than b
type Func[T any] func(a, b T) int

// Smaller reports whether a is strictly smaller than b under f.
func Smaller[T any](f Func[T], a, b T) bool { return f(a, b) > 0 }

// Larger reports whether a is strictly larger than b under f.
func Larger[T any](f Func[T], a, b T) bool { return f(a, b) < 0 }

// Equal reports whether a and b compare equal under f.
func Equal[T any](f Func[T], a, b T) bool { return f(a, b) == 0 }

// SmallerOrEqual reports whether a sorts at or before b under f.
func SmallerOrEqual[T any](f Func[T], a, b T) bool { return f(a, b) >= 0 }

// LargerOrEqual reports whether a sorts at or after b under f.
func LargerOrEqual[T any](f Func[T], a, b T) bool { return f(a, b) <= 0 }

// Min returns whichever of a, b is smaller under f, preferring a on ties.
func Min[T any](f Func[T], a, b T) T {
	if Larger(f, a, b) {
		return b
	}
	return a
}

// Max returns whichever of a, b is larger under f, preferring a on ties.
func Max[T any](f Func[T], a, b T) T {
	if Smaller(f, a, b) {
		return b
	}
	return a
}

// Natural builds a [Func] for an ordered type T using the natural order,
// translated into algokit's inverted-sign convention.
func Natural[T cmp.Ordered]() Func[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return 1
		case a > b:
			return -1
		default:
			return 0
		}
	}
}

// Bytes compares two byte slices lexicographically, in algokit's convention.
//
// This is a byte-level bytewise comparison, for callers who want string
// keys ordered without any Unicode-aware collation.
func Bytes(a, b []byte) int {
	switch c := bytesCompare(a, b); {
	case c < 0:
		return 1
	case c > 0:
		return -1
	default:
		return 0
	}
}

func bytesCompare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}
