// Package bfs enumerates every loop-free route between two airports
// within a layover bound, breadth-first.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/airlink/core"
)

// queueItem is one partial route: the vertex it currently ends at, the slot
// indices visited so far (origin first) and the accumulated distance.
type queueItem struct {
	at       int
	path     []int
	distance int64
}

// walker encapsulates mutable search state.
type walker struct {
	graph    *core.Graph
	opts     Options
	dest     int
	maxLen   int // longest path (in vertices) that may still be extended
	queue    []queueItem
	routes   []core.Route
	finished bool
}

// FindRoutes returns every route from origin to destination with at most
// maxLayovers intermediate stops, in breadth-first discovery order.
//
// A route never visits the same airport twice. Reaching the destination emits
// a route but does not stop expansion of that state: partial paths running
// through the destination are still queued while the layover bound allows,
// they just can never come back to it.
//
// Unknown origin or destination yields an empty result and a nil error.
// Returns ErrGraphNil, ErrNegativeLayovers, ErrOptionViolation for invalid
// input, ctx.Err() on cancellation, or any error returned by OnEmit; in the
// last two cases the routes emitted so far are returned alongside the error.
//
// Complexity: bounded by the number of loop-free paths of at most
// maxLayovers+2 vertices starting at origin; each expansion costs O(N) per
// edge for the destination lookup.
func FindRoutes(g *core.Graph, origin, destination string, maxLayovers int, opts ...Option) ([]core.Route, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxLayovers < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeLayovers, maxLayovers)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, ok := g.IndexOf(origin)
	if !ok {
		return []core.Route{}, nil
	}
	dest, ok := g.IndexOf(destination)
	if !ok {
		return []core.Route{}, nil
	}

	w := &walker{
		graph:  g,
		opts:   o,
		dest:   dest,
		maxLen: maxLayovers + 1,
		routes: []core.Route{},
	}
	w.enqueue(queueItem{at: start, path: []int{start}})
	err := w.loop()

	return w.routes, err
}

// loop processes the queue until empty, capped, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.finished {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if item.at == w.dest {
			if err := w.emit(item); err != nil {
				return err
			}
			if w.finished {
				return nil
			}
		}
		if len(item.path) <= w.maxLen {
			w.expand(item)
		}
	}

	return nil
}

// enqueue appends item to the FIFO queue and fires OnEnqueue.
func (w *walker) enqueue(item queueItem) {
	if w.opts.OnEnqueue != nil {
		w.opts.OnEnqueue(w.codes(item.path), item.distance)
	}
	w.queue = append(w.queue, item)
}

// dequeue pops the first item and fires OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue[0] = queueItem{}
	w.queue = w.queue[1:]
	if w.opts.OnDequeue != nil {
		w.opts.OnDequeue(w.codes(item.path), item.distance)
	}

	return item
}

// emit translates item into a Route and records it.
func (w *walker) emit(item queueItem) error {
	r := core.NewRoute(w.codes(item.path), item.distance)
	if err := w.opts.OnEmit(r); err != nil {
		return fmt.Errorf("bfs: OnEmit error at %q: %w", r.String(), err)
	}
	w.routes = append(w.routes, r)
	if w.opts.MaxRoutes > 0 && len(w.routes) >= w.opts.MaxRoutes {
		w.finished = true
	}

	return nil
}

// expand enqueues one successor per outgoing edge whose destination resolves
// to a live vertex not yet on the path. Edges to soft-deleted airports fail
// to resolve and are skipped.
func (w *walker) expand(item queueItem) {
	for _, e := range w.graph.Neighbors(item.at) {
		next, ok := w.graph.IndexOf(e.To)
		if !ok || onPath(item.path, next) {
			continue
		}
		path := make([]int, len(item.path)+1)
		copy(path, item.path)
		path[len(item.path)] = next
		w.enqueue(queueItem{at: next, path: path, distance: item.distance + e.Weight})
	}
}

// codes maps slot indices to airport codes.
func (w *walker) codes(path []int) []string {
	out := make([]string, len(path))
	for i, idx := range path {
		out[i] = w.graph.VertexAt(idx)
	}

	return out
}

// onPath reports whether idx already appears in path.
func onPath(path []int, idx int) bool {
	for _, p := range path {
		if p == idx {
			return true
		}
	}

	return false
}
