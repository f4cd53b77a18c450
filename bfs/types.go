// Package bfs provides tunable options and error definitions
// for bounded-layover route enumeration over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/airlink/core"
)

// Sentinel errors for route enumeration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNegativeLayovers is returned when maxLayovers < 0.
	ErrNegativeLayovers = errors.New("bfs: max layovers cannot be negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures FindRoutes via functional arguments.
// If an Option is invalid (e.g. negative route cap), it is recorded
// internally and surfaced as ErrOptionViolation when FindRoutes is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a route search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called for each partial path pushed onto the queue.
	// nil skips the call and the code translation it needs.
	OnEnqueue func(path []string, distance int64)

	// OnDequeue is called immediately before a partial path is examined.
	// nil skips the call.
	OnDequeue func(path []string, distance int64)

	// OnEmit is called for every completed route before it is recorded.
	// Returning an error aborts the search and propagates that error.
	OnEmit func(r core.Route) error

	// MaxRoutes, if > 0, stops the search once that many routes were emitted.
	// A value of 0 disables the cap.
	MaxRoutes int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no route cap (MaxRoutes == 0)
//   - no queue hooks (OnEnqueue, OnDequeue nil), no-op OnEmit
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEmit:    func(core.Route) error { return nil },
		MaxRoutes: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(path []string, distance int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(path []string, distance int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnEmit registers a callback to run for each completed route; returning
// an error from this callback stops the search.
func WithOnEmit(fn func(r core.Route) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEmit = fn
		}
	}
}

// WithMaxRoutes stops the search after n routes.
//
//	n > 0: cap the result at n routes
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRoutes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRoutes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRoutes = n
	}
}
