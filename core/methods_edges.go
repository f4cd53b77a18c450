// File: methods_edges.go
// Role: Edge insertion & adjacency queries.
//
// Determinism:
//   - Neighbors() returns edges in insertion order.
//   - Edges() walks slots in index order, then insertion order.
package core

// AddEdge appends a start→end leg of the given weight.
//
// Both endpoints must be live vertices; otherwise the edge is dropped and
// AddEdge returns false without reporting an error. Parallel edges and
// self-loops are stored as given. Weight is not validated.
//
// Complexity: O(N) for the two endpoint lookups, O(1) amortized append.
func (g *Graph) AddEdge(start, end string, weight int64) bool {
	from, ok := g.IndexOf(start)
	if !ok {
		return false
	}
	if _, ok = g.IndexOf(end); !ok {
		return false
	}
	g.adj[from] = append(g.adj[from], Edge{To: end, Weight: weight})
	g.edges++

	return true
}

// Neighbors returns the outgoing edges of slot i. The returned slice aliases
// graph storage and must not be modified. Out-of-range indices yield nil.
func (g *Graph) Neighbors(i int) []Edge {
	if i < 0 || i >= len(g.adj) {
		return nil
	}
	return g.adj[i]
}

// EdgeCount returns the number of stored edges, stale ones included.
func (g *Graph) EdgeCount() int { return g.edges }

// SlotEdges is the adjacency of one vertex slot, used for diagnostic dumps.
type SlotEdges struct {
	Index int
	Code  string // "" for blank or unfilled slots
	Edges []Edge
}

// Edges enumerates the adjacency of every slot in index order. Edge slices
// are copies.
func (g *Graph) Edges() []SlotEdges {
	out := make([]SlotEdges, len(g.vertices))
	for i := range g.vertices {
		es := make([]Edge, len(g.adj[i]))
		copy(es, g.adj[i])
		out[i] = SlotEdges{Index: i, Code: g.vertices[i], Edges: es}
	}

	return out
}
