// Package core defines the Route Graph: a fixed-capacity, slot-indexed
// adjacency-list graph over airport codes, plus the Route record produced by
// traversals.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrBadCapacity    - capacity passed to NewGraph is not positive.
//	ErrEmptyVertexID  - vertex code is the empty string (reserved sentinel).
//	ErrGraphFull      - every vertex slot has been filled.
//	ErrVertexExists   - vertex code is already live in the graph.
//	ErrVertexNotFound - requested vertex does not exist.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadCapacity indicates a non-positive vertex capacity.
	ErrBadCapacity = errors.New("core: capacity must be positive")

	// ErrEmptyVertexID indicates an empty vertex code. The empty string marks
	// soft-deleted slots and can never name a live vertex.
	ErrEmptyVertexID = errors.New("core: vertex code is empty")

	// ErrGraphFull indicates that AddVertex ran out of vertex slots.
	ErrGraphFull = errors.New("core: graph is full")

	// ErrVertexExists indicates that AddVertex was given a live code.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// deletedSlot marks a vertex slot whose code was blanked by DeleteVertex.
const deletedSlot = ""

// Edge is one outgoing flight leg stored in its source vertex's adjacency list.
//
// The destination is kept by code, not by index: it is resolved again on
// every traversal, so an edge whose destination was soft-deleted stops
// resolving instead of pointing at a blank slot.
type Edge struct {
	// To is the destination airport code.
	To string

	// Weight is the leg distance. Negative values are stored as given.
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithEdgeHint pre-sizes every adjacency list for n outgoing edges.
// Non-positive hints are ignored.
func WithEdgeHint(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edgeHint = n
		}
	}
}

// Graph is the Route Graph.
//
// Vertices live in a dense slice of fixed capacity; a vertex's position is its
// index and the only identifier edges and traversal paths use. filled counts
// the slots handed out so far, including soft-deleted ones, which are never
// reused or compacted.
//
// Graph is not safe for concurrent use. Callers that share one across
// goroutines must serialise access externally.
type Graph struct {
	vertices []string // slot index → code; deletedSlot once soft-deleted
	adj      [][]Edge // slot index → outgoing edges, append-only
	filled   int      // number of slots handed out
	edges    int      // total edges stored, stale ones included
	edgeHint int      // initial capacity of each adjacency list
}

// NewGraph creates an empty Graph able to hold capacity vertices.
//
// Complexity: O(capacity).
func NewGraph(capacity int, opts ...GraphOption) (*Graph, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	g := &Graph{
		vertices: make([]string, capacity),
		adj:      make([][]Edge, capacity),
	}
	for _, opt := range opts {
		opt(g)
	}
	for i := range g.adj {
		g.adj[i] = make([]Edge, 0, g.edgeHint)
	}

	return g, nil
}

// Capacity returns the fixed number of vertex slots.
func (g *Graph) Capacity() int { return len(g.vertices) }

// Filled returns how many slots have been handed out, soft-deleted ones included.
func (g *Graph) Filled() int { return g.filled }
