// Package bfs enumerates air routes over a core.Graph breadth-first,
// bounded by a maximum number of layovers.
//
// What
//
//   - Explore partial routes from an origin in FIFO order, each carrying the
//     slot indices visited so far and the accumulated distance.
//   - Emit a core.Route every time a partial route is dequeued at the
//     destination. Emission does not stop expansion of that state.
//   - Extend a partial route only while it holds at most maxLayovers+1
//     airports, and only to airports not already on it. The visited check is
//     per path, not global: two routes may share intermediate stops.
//   - Edges whose destination code no longer resolves (soft-deleted airports)
//     are skipped silently.
//
// Why
//
//   - Enumerates every itinerary within the bound, not just the cheapest, so
//     callers can order candidates by distance or layovers themselves (see
//     package routesort).
//
// Determinism
//
//	Edges are expanded in insertion order and the queue is strictly FIFO, so
//	the returned routes are reproducible and ordered by non-decreasing hop
//	count. No distance ordering is applied.
//
// Termination
//
//	Path length is bounded by maxLayovers+2 and no airport repeats within a
//	path, so the number of states is finite.
//
// Complexity (N = vertex capacity, d = max out-degree, k = maxLayovers)
//
//   - States: O(d^(k+1)) in the worst case, capped by loop-free paths.
//   - Each expansion resolves destinations by the O(N) core.Graph.IndexOf scan.
//
// Usage
//
//	routes, err := bfs.FindRoutes(g, "MEL", "JFK", 1)
//	if err != nil {
//	    // ErrGraphNil, ErrNegativeLayovers, ErrOptionViolation, ctx or hook errors
//	}
//
//	routes, err = bfs.FindRoutes(
//	    g, "MEL", "JFK", 2,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxRoutes(50),
//	    bfs.WithOnEmit(func(r core.Route) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no hooks, no route cap.
//   - WithContext(ctx):     cancellation, checked once per dequeue.
//   - WithOnEnqueue(fn):    hook for every partial route queued.
//   - WithOnDequeue(fn):    hook immediately before a partial route is examined.
//   - WithOnEmit(fn):       hook per completed route; an error aborts.
//   - WithMaxRoutes(n):     stop after n routes (n>0).
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrNegativeLayovers   if maxLayovers < 0.
//   - ErrOptionViolation    if an Option is invalid.
//   - ctx.Err() and wrapped OnEmit errors.
//
// Unknown origin or destination is not an error: the result is empty.
package bfs
