// Package status funnels the non-fatal error kinds raised throughout
// algokit into a single typed error, replacing the signed-integer status
// codes of the library this module was translated from (§7 of the design
// spec: -1 index-out-of-range, -2 not-contained, -3 not-decreased /
// not-increased / equal-key, -4 dependent-operation-failed).
//
// Fatal misuse — a nil required argument, a corrupted invariant — is not
// represented here: it is checked with
// [github.com/flier/algokit/internal/debug.Assert], which panics in builds
// with the debug tag and compiles to nothing otherwise. A negative edge
// weight handed to Dijkstra is also fatal; that check panics in every build.
package status

import (
	"fmt"

	"github.com/flier/algokit/pkg/xerrors"
)

// Code enumerates the non-fatal error kinds a container or algorithm may
// report.
type Code int

const (
	// OutOfRange marks an index or vertex id outside its valid domain.
	OutOfRange Code = iota + 1
	// NotContained marks an operation on an index/key the container does
	// not currently hold.
	NotContained
	// NotDecreased marks a decrease-key call whose new key did not
	// strictly improve on the current one.
	NotDecreased
	// NotIncreased marks an increase-key call whose new key did not
	// strictly relax the current one.
	NotIncreased
	// CapacityExceeded marks an insert into a fixed-capacity structure
	// (indexed heap, linear-probing table) that has no room left.
	CapacityExceeded
	// DependentFailed marks an operation that could not proceed because a
	// prerequisite computation failed (e.g. a path query after
	// Floyd-Warshall detected a negative cycle).
	DependentFailed
)

func (c Code) String() string {
	switch c {
	case OutOfRange:
		return "out of range"
	case NotContained:
		return "not contained"
	case NotDecreased:
		return "not decreased"
	case NotIncreased:
		return "not increased"
	case CapacityExceeded:
		return "capacity exceeded"
	case DependentFailed:
		return "dependent operation failed"
	default:
		return "unknown"
	}
}

// Error is a status-coded error: a [Code] plus the operation-specific
// context that produced it.
type Error struct {
	Code Code
	Op   string
	Key  any
}

func (e *Error) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Op, e.Code, e.Key)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

// New builds a status [Error] for operation op with the given code.
func New(op string, code Code) error { return &Error{Code: code, Op: op} }

// Newf builds a status [Error] carrying the key/index that triggered it.
func Newf(op string, code Code, key any) error { return &Error{Code: code, Op: op, Key: key} }

// Is reports whether err is a status [Error] of the given [Code].
func Is(err error, code Code) bool {
	e, ok := xerrors.AsA[*Error](err)
	return ok && e.Code == code
}
