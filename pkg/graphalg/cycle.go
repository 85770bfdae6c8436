package graphalg

import "github.com/flier/algokit/pkg/container"

// DirectedCycle finds a directed cycle in g, if one exists, using a
// three-color DFS encoded as two boolean arrays marked and onStack
// (spec.md §4.6 "Directed cycle detection"). On encountering an edge (v,w)
// with onStack[w] set, the cycle is recovered by walking edgeTo from v back
// to w, then appending w and v; exploration short-circuits as soon as a
// cycle is found.
type DirectedCycle struct {
	marked  []bool
	onStack []bool
	edgeTo  []int
	cycle   []int
}

// FindDirectedCycle searches g for a directed cycle.
func FindDirectedCycle(g adjacency) *DirectedCycle {
	c := &DirectedCycle{
		marked:  make([]bool, g.V()),
		onStack: make([]bool, g.V()),
		edgeTo:  make([]int, g.V()),
	}
	for v := 0; v < g.V() && c.cycle == nil; v++ {
		if !c.marked[v] {
			c.dfs(g, v)
		}
	}
	return c
}

func (c *DirectedCycle) dfs(g adjacency, v int) {
	c.onStack[v] = true
	c.marked[v] = true
	for _, w := range g.Adj(v) {
		if c.cycle != nil {
			return
		}
		if !c.marked[w] {
			c.edgeTo[w] = v
			c.dfs(g, w)
		} else if c.onStack[w] {
			s := container.NewStack[int]()
			for x := v; x != w; x = c.edgeTo[x] {
				s.Push(x)
			}
			s.Push(w)
			s.Push(v)
			c.cycle = s.ToSlice()
		}
	}
	c.onStack[v] = false
}

// HasCycle reports whether a directed cycle was found.
func (c *DirectedCycle) HasCycle() bool { return c.cycle != nil }

// Cycle returns the vertices of the found cycle, source-first, or nil if
// none was found.
func (c *DirectedCycle) Cycle() []int { return c.cycle }
