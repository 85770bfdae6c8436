// Package regexp implements the Thompson-construction NFA regular-expression
// matcher of spec.md §4.7, translated from
// original_source/strings/stringsearch/{nfare,nfaregexp}.c and built on
// top of pkg/graph's directed-graph substrate.
//
// The supported alphabet is concatenation, `|` alternation, `*` `+` `?`
// closure operators, `.` wildcard, parenthesized grouping, and literal
// bytes. There is no backtracking: the matcher tracks the full set of
// reachable NFA states as it consumes input, so match time stays polynomial
// regardless of how pathological the pattern is. Each input byte runs one
// DFS of the ε-graph per active state, O(len(pattern)²) per byte.
package regexp

import (
	"github.com/flier/algokit/internal/debug"
	"github.com/flier/algokit/pkg/graph"
	"github.com/flier/algokit/pkg/graphalg"
)

// NFA is the ε-transition graph compiled from a pattern, plus the pattern
// bytes themselves (literal transitions stay implicit: state i advances to
// i+1 on a match of pattern[i]).
type NFA struct {
	pattern []byte
	eps     *graph.Digraph
}

// Compile builds the NFA for pattern. It mirrors the construction in
// spec.md §4.7: a directed graph on len(pattern)+1 vertices, built by a
// single left-to-right scan that keeps a stack of unmatched `(` and `|`
// positions.
//
// `?` only adds the forward skip edge, not a back-edge, so a `?`'d
// operand never loops the way a `*`'d one does. That is "zero or one X":
// since the engine tracks a set of reachable states rather than a single
// preferred path, there is no separate greedy/lazy choice to make.
func Compile(pattern string) *NFA {
	re := []byte(pattern)
	r := len(re)
	eps := graph.NewDigraph(r + 1)

	var stack []int
	push := func(p int) { stack = append(stack, p) }
	pop := func() int {
		debug.Assert(len(stack) > 0, "regexp: unbalanced pattern %q", pattern)
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return p
	}
	top := func() int { return stack[len(stack)-1] }

	for i := 0; i < r; i++ {
		lp := i

		switch re[i] {
		case '(', '|':
			push(i)
		case ')':
			var bars []int
			for len(stack) > 0 && re[top()] == '|' {
				bars = append(bars, pop())
			}
			lp = pop() // matching '('
			for _, o := range bars {
				eps.AddEdge(o, i)
				eps.AddEdge(lp, o+1)
			}
		}

		if i < r-1 {
			switch re[i+1] {
			case '*':
				eps.AddEdge(lp, i+1)
				eps.AddEdge(i+1, lp)
			case '+':
				eps.AddEdge(i+1, lp)
			case '?':
				eps.AddEdge(lp, i+1)
			}
		}

		switch re[i] {
		case '(', ')', '*', '+', '?':
			eps.AddEdge(i, i+1)
		}
	}

	debug.Assert(len(stack) == 0, "regexp: unbalanced pattern %q", pattern)

	return &NFA{pattern: re, eps: eps}
}

// closure returns the ε-closure of a set of states: every state reachable
// from sources by following only ε-edges. Reachability from each source is
// computed by [graphalg.DFS] over the ε-transition graph, per spec.md
// §4.7 ("computed by DFS on the ε-transition graph"); the per-source
// results are unioned since the transition graph has no single root.
func (n *NFA) closure(sources []int) []int {
	marked := make([]bool, n.eps.V())

	for _, s := range sources {
		p := graphalg.DFS(n.eps, s)
		for v := 0; v < n.eps.V(); v++ {
			if p.HasPathTo(v) {
				marked[v] = true
			}
		}
	}

	reachable := make([]int, 0, len(marked))
	for s, ok := range marked {
		if ok {
			reachable = append(reachable, s)
		}
	}

	return reachable
}

// hasMetachar reports whether t contains any byte from the pattern's
// metacharacter alphabet. Match rejects such inputs: t is meant to be
// literal text, not another pattern.
func hasMetachar(t string) bool {
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '(', ')', '|', '*', '+', '?', '.':
			return true
		}
	}
	return false
}

// Match reports whether t, interpreted as a literal string (no
// metacharacters), is recognized by the pattern n was compiled from.
func (n *NFA) Match(t string) bool {
	if hasMetachar(t) {
		return false
	}

	r := len(n.pattern)
	states := n.closure([]int{0})

	for i := 0; i < len(t); i++ {
		c := t[i]

		var next []int
		for _, s := range states {
			if s >= r {
				continue
			}
			if n.pattern[s] == c || n.pattern[s] == '.' {
				next = append(next, s+1)
			}
		}

		if len(next) == 0 {
			return false
		}

		states = n.closure(next)
	}

	for _, s := range states {
		if s == r {
			return true
		}
	}

	return false
}

// Match compiles pattern and reports whether t matches it. It is a
// convenience wrapper around Compile and (*NFA).Match for callers that do
// not need to reuse the compiled automaton across many inputs.
func Match(pattern, t string) bool {
	return Compile(pattern).Match(t)
}
