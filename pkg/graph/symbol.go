package graph

import (
	"bufio"
	"io"
	"strings"

	"github.com/flier/algokit/internal/debug"
)

// MaxSymbolNameLen is the longest vertex name a [SymbolGraph] will retain;
// names beyond this are truncated (spec.md §6 "Maximum name length is 64
// bytes; longer names are truncated").
const MaxSymbolNameLen = 64

// SymbolGraph wraps an undirected [Graph] with a name<->id mapping, so
// input expressed in caller-meaningful names can build a graph over dense
// integer vertex ids and round-trip back (spec.md §6 "symbol-graph text
// input").
type SymbolGraph struct {
	graph  *Graph
	idOf   map[string]int
	nameOf []string
}

func truncateName(name string) string {
	if len(name) > MaxSymbolNameLen {
		return name[:MaxSymbolNameLen]
	}
	return name
}

// ReadSymbolGraph parses the line-oriented symbol-graph format from r:
// each line holds a vertex name followed by its neighbors' names,
// separated by delim. Unknown names are assigned fresh integer ids in
// first-appearance order.
func ReadSymbolGraph(r io.Reader, delim string) (*SymbolGraph, error) {
	debug.Assert(delim != "", "graph.ReadSymbolGraph: delim must be non-empty")

	sg := &SymbolGraph{idOf: make(map[string]int)}

	var lines [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitAndTruncate(line, delim)
		lines = append(lines, fields)
		for _, name := range fields {
			sg.internName(name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sg.graph = NewGraph(len(sg.nameOf))
	for _, fields := range lines {
		v := sg.idOf[fields[0]]
		for _, name := range fields[1:] {
			sg.graph.AddEdge(v, sg.idOf[name])
		}
	}
	return sg, nil
}

func splitAndTruncate(line, delim string) []string {
	parts := strings.Split(line, delim)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, truncateName(strings.TrimSpace(p)))
	}
	return out
}

func (sg *SymbolGraph) internName(name string) int {
	if id, ok := sg.idOf[name]; ok {
		return id
	}
	id := len(sg.nameOf)
	sg.idOf[name] = id
	sg.nameOf = append(sg.nameOf, name)
	return id
}

// Graph returns the underlying integer-vertex graph.
func (sg *SymbolGraph) Graph() *Graph { return sg.graph }

// Contains reports whether name was seen while parsing.
func (sg *SymbolGraph) Contains(name string) bool {
	_, ok := sg.idOf[truncateName(name)]
	return ok
}

// IndexOf returns the id assigned to name.
func (sg *SymbolGraph) IndexOf(name string) (int, bool) {
	id, ok := sg.idOf[truncateName(name)]
	return id, ok
}

// NameOf returns the name assigned to vertex id v.
func (sg *SymbolGraph) NameOf(v int) (string, bool) {
	if v < 0 || v >= len(sg.nameOf) {
		return "", false
	}
	return sg.nameOf[v], true
}
