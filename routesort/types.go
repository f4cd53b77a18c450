// Package routesort provides the field and algorithm selectors and error
// definitions for ordering enumerated routes.
package routesort

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/airlink/core"
)

// Sentinel errors for route sorting.
var (
	// ErrUnknownField is returned when a sort key name cannot be parsed.
	ErrUnknownField = errors.New("routesort: unknown sort field")

	// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed
	// or an Algorithm value is out of range.
	ErrUnknownAlgorithm = errors.New("routesort: unknown sort algorithm")
)

// Field selects the route attribute routes are ordered by.
type Field int

const (
	// ByDistance orders by Route.Distance.
	ByDistance Field = iota
	// ByLayovers orders by Route.Layovers.
	ByLayovers
	// ByHops orders by Route.Hops.
	ByHops
)

// key extracts the ordering key of r.
func (f Field) key(r *core.Route) int64 {
	switch f {
	case ByLayovers:
		return int64(r.Layovers)
	case ByHops:
		return int64(r.Hops)
	default:
		return r.Distance
	}
}

// String returns the canonical field name.
func (f Field) String() string {
	switch f {
	case ByDistance:
		return "distance"
	case ByLayovers:
		return "layovers"
	case ByHops:
		return "hops"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// ParseField maps "distance", "layovers" or "hops" (case-insensitive) to a Field.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance":
		return ByDistance, nil
	case "layovers":
		return ByLayovers, nil
	case "hops":
		return ByHops, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Algorithm selects one of the interchangeable sorts.
type Algorithm int

const (
	// Heap is in-place heap-sort: O(n log n) worst case, not stable.
	Heap Algorithm = iota
	// Quick is Lomuto quicksort: O(n log n) average, O(n²) worst, not stable.
	Quick
	// Merge is top-down merge-sort: O(n log n), stable, O(n) extra space.
	Merge
)

// Algorithms lists every Algorithm in declaration order.
func Algorithms() []Algorithm { return []Algorithm{Heap, Quick, Merge} }

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Heap:
		return "heap"
	case Quick:
		return "quick"
	case Merge:
		return "merge"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Stable reports whether a keeps equal-key routes in input order.
func (a Algorithm) Stable() bool { return a == Merge }

// ParseAlgorithm maps "heap", "quick" or "merge" (case-insensitive, an
// optional "sort" suffix allowed) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.TrimSuffix(name, "sort"), "-")
	switch name {
	case "heap":
		return Heap, nil
	case "quick":
		return Quick, nil
	case "merge":
		return Merge, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}
