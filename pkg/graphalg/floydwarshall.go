package graphalg

import (
	"github.com/flier/algokit/pkg/graph"
	"github.com/flier/algokit/pkg/status"
)

// AllPairsShortestPaths is the dense distTo/edgeTo matrix result of
// Floyd-Warshall.
type AllPairsShortestPaths struct {
	v             int
	distTo        [][]float64
	edgeTo        [][]int
	negativeCycle bool
}

// HasNegativePath reports whether a negative cycle was detected during
// construction; once true, path queries are an error (spec.md §4.6
// "subsequent path queries on such a graph are an error").
func (p *AllPairsShortestPaths) HasNegativePath() bool { return p.negativeCycle }

// DistTo returns the shortest distance from v to w, or an error wrapping
// [status.DependentFailed] if a negative cycle was detected.
func (p *AllPairsShortestPaths) DistTo(v, w int) (float64, error) {
	if p.negativeCycle {
		return 0, status.New("graphalg.AllPairsShortestPaths.DistTo", status.DependentFailed)
	}
	return p.distTo[v][w], nil
}

// FloydWarshall computes all-pairs shortest paths over the dense edge
// matrix g: distTo and edgeTo are initialized from the input edge list with
// each diagonal set to zero (unless a self-loop is genuinely shorter), then
// for each intermediate vertex k relaxes every (v, w) pair through k. After
// processing vertex k, if any distTo[v][v] < 0 the negative-cycle flag is
// set and construction terminates early (spec.md §4.6 "Floyd-Warshall").
func FloydWarshall(g *graph.EdgeMatrix) *AllPairsShortestPaths {
	v := g.V()
	p := &AllPairsShortestPaths{
		v:      v,
		distTo: make([][]float64, v),
		edgeTo: make([][]int, v),
	}
	for i := 0; i < v; i++ {
		p.distTo[i] = make([]float64, v)
		p.edgeTo[i] = make([]int, v)
		for j := 0; j < v; j++ {
			p.edgeTo[i][j] = noParent
			w := g.Weight(i, j)
			switch {
			case i == j && w < 0:
				p.distTo[i][j] = w
				p.edgeTo[i][j] = i
			case i == j:
				p.distTo[i][j] = 0
			case w != graph.NoEdge:
				p.distTo[i][j] = w
				p.edgeTo[i][j] = i
			default:
				p.distTo[i][j] = graph.NoEdge
			}
		}
	}

	for k := 0; k < v; k++ {
		for i := 0; i < v; i++ {
			if p.distTo[i][k] == graph.NoEdge {
				continue
			}
			for j := 0; j < v; j++ {
				if p.distTo[k][j] == graph.NoEdge {
					continue
				}
				through := p.distTo[i][k] + p.distTo[k][j]
				if through < p.distTo[i][j] {
					p.distTo[i][j] = through
					p.edgeTo[i][j] = p.edgeTo[k][j]
				}
			}
		}
		for i := 0; i < v; i++ {
			if p.distTo[i][i] < 0 {
				p.negativeCycle = true
				return p
			}
		}
	}
	return p
}
