package graphalg

import (
	"github.com/flier/algokit/pkg/container"
	"github.com/flier/algokit/pkg/graph"
)

// SCC is the strongly-connected-component partition of a digraph: every
// vertex is assigned an id, and two vertices are strongly connected iff
// their ids match.
type SCC struct {
	id    []int
	count int
}

// Count returns the number of strongly connected components.
func (s *SCC) Count() int { return s.count }

// ID returns the component id of vertex v.
func (s *SCC) ID(v int) int { return s.id[v] }

// StronglyConnected reports whether v and w are in the same component.
func (s *SCC) StronglyConnected(v, w int) bool { return s.id[v] == s.id[w] }

// ReversePostorderDFSOrder returns the reverse-postorder vertex sequence of
// a DFS over g in natural vertex order, without the acyclicity check
// [ReversePostorderTopologicalOrder] applies (a digraph may have cycles and
// still need this order, e.g. for [KosarajuSharir]).
func ReversePostorderDFSOrder(g adjacency) []int {
	marked := make([]bool, g.V())
	post := container.NewStack[int]()

	var visit func(v int)
	visit = func(v int) {
		marked[v] = true
		for _, w := range g.Adj(v) {
			if !marked[w] {
				visit(w)
			}
		}
		post.Push(v)
	}
	for v := 0; v < g.V(); v++ {
		if !marked[v] {
			visit(v)
		}
	}
	return post.ToSlice()
}

// KosarajuSharir computes g's strongly connected components by running DFS
// over the reverse graph's reverse-postorder, then a second DFS over g in
// that order, assigning a fresh component id to every vertex reached from
// each new DFS root (spec.md §4.6 "Kosaraju-Sharir").
func KosarajuSharir(g *graph.Digraph) *SCC {
	order := ReversePostorderDFSOrder(g.Reverse())

	s := &SCC{id: make([]int, g.V())}
	for v := range s.id {
		s.id[v] = noParent
	}

	var visit func(v int)
	visit = func(v int) {
		s.id[v] = s.count
		for _, w := range g.Adj(v) {
			if s.id[w] == noParent {
				visit(w)
			}
		}
	}
	for _, v := range order {
		if s.id[v] == noParent {
			visit(v)
			s.count++
		}
	}
	return s
}

// GabowSCC computes g's strongly connected components with a single DFS
// maintaining two stacks: a preorder stack of all active vertices and a
// "spine" stack whose top always belongs to the current component
// (spec.md §4.6 "Gabow"). When a back-edge to a still-unfinished vertex w
// is seen, spine entries with preorder greater than preorder(w) are popped;
// when DFS returns to a vertex that is still the spine's top, its component
// is popped off the preorder stack and assigned a fresh id.
func GabowSCC(g adjacency) *SCC {
	s := &SCC{id: make([]int, g.V())}
	for v := range s.id {
		s.id[v] = noParent
	}

	preorder := make([]int, g.V())
	for v := range preorder {
		preorder[v] = -1
	}
	preCounter := 0

	preStack := container.NewStack[int]()
	spine := container.NewStack[int]()

	var visit func(v int)
	visit = func(v int) {
		preorder[v] = preCounter
		preCounter++
		preStack.Push(v)
		spine.Push(v)

		for _, w := range g.Adj(v) {
			switch {
			case preorder[w] == -1:
				visit(w)
			case s.id[w] == noParent:
				for {
					top, _ := spine.Peek()
					if preorder[top] <= preorder[w] {
						break
					}
					spine.Pop()
				}
			}
		}

		if top, _ := spine.Peek(); top == v {
			spine.Pop()
			for {
				x, _ := preStack.Pop()
				s.id[x] = s.count
				if x == v {
					break
				}
			}
			s.count++
		}
	}

	for v := 0; v < g.V(); v++ {
		if preorder[v] == -1 {
			visit(v)
		}
	}
	return s
}
