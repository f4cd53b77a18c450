// Package core provides the Route Graph: an in-memory, fixed-capacity
// adjacency-list graph whose vertices are airport codes.
//
// Model:
//
//   - Vertices occupy a dense slice of N slots handed out in insertion order.
//     A vertex's slot index is its identity; traversal paths are index lists.
//   - Edges are (destination code, weight) pairs appended to the source slot's
//     adjacency list. There is no dedup and no edge removal.
//   - DeleteVertex blanks a slot ("") without compacting or scrubbing edges.
//     Surviving edges that touch the blank slot become unreachable during
//     traversal rather than failing. This is a known data hazard kept on
//     purpose: slot indices must stay stable for the lifetime of the graph.
//
// Core Methods:
//
//	NewGraph(capacity int, opts ...GraphOption) (*Graph, error)
//
//	// Vertex lifecycle
//	AddVertex(code string) error           // O(N): ErrGraphFull, ErrVertexExists, ErrEmptyVertexID
//	IndexOf(code string) (int, bool)       // O(N) linear scan
//	HasVertex(code string) bool            // O(N)
//	DeleteVertex(code string) error        // O(N), soft delete
//
//	// Edges
//	AddEdge(start, end string, w int64) bool // false when an endpoint is unknown
//	Neighbors(i int) []Edge                  // O(1), insertion order
//
//	// Diagnostics
//	Vertices() []string
//	Edges() []SlotEdges
//	String() string
//
// Errors are reported only where the caller can act on them (vertex add and
// delete). AddEdge with an unknown endpoint is a silent no-op.
//
// Concurrency: none. A Graph assumes a single writer and no concurrent readers.
package core
