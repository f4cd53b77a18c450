// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns slots in index order, blanks included.
//   - IndexOf() returns the lowest matching index.
package core

// AddVertex appends code at the next free slot.
//
// Errors:
//   - ErrEmptyVertexID: code == "".
//   - ErrVertexExists: code is already live.
//   - ErrGraphFull: every slot has been handed out. The graph is unchanged and
//     the caller may keep using it.
//
// Complexity: O(N) for the uniqueness scan.
func (g *Graph) AddVertex(code string) error {
	if code == deletedSlot {
		return ErrEmptyVertexID
	}
	if _, ok := g.IndexOf(code); ok {
		return ErrVertexExists
	}
	if g.filled >= len(g.vertices) {
		return ErrGraphFull
	}
	g.vertices[g.filled] = code
	g.filled++

	return nil
}

// IndexOf resolves code to its slot index by linear scan of the filled prefix.
// This is O(N), not a hash lookup.
func (g *Graph) IndexOf(code string) (int, bool) {
	if code == deletedSlot {
		return -1, false
	}
	for i := 0; i < g.filled; i++ {
		if g.vertices[i] == code {
			return i, true
		}
	}

	return -1, false
}

// HasVertex reports whether code is a live vertex.
func (g *Graph) HasVertex(code string) bool {
	_, ok := g.IndexOf(code)
	return ok
}

// VertexAt returns the code stored in slot i, "" for blank or unfilled slots.
func (g *Graph) VertexAt(i int) string {
	if i < 0 || i >= g.filled {
		return deletedSlot
	}
	return g.vertices[i]
}

// DeleteVertex soft-deletes code by blanking its slot.
//
// The slot is not compacted or reused, and no edges are scrubbed: edges that
// leave the blank slot are never reached again, and edges pointing at code
// fail to resolve during traversal. Both kinds still count in EdgeCount.
// Re-adding the same code later takes a fresh slot, and the old inbound edges
// resolve to it again because they store the code.
//
// Errors:
//   - ErrVertexNotFound: code is not live.
func (g *Graph) DeleteVertex(code string) error {
	i, ok := g.IndexOf(code)
	if !ok {
		return ErrVertexNotFound
	}
	g.vertices[i] = deletedSlot

	return nil
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int {
	n := 0
	for i := 0; i < g.filled; i++ {
		if g.vertices[i] != deletedSlot {
			n++
		}
	}

	return n
}

// Vertices returns a copy of every slot, in index order, blanks included.
// Unfilled slots are returned as "" as well.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)

	return out
}
