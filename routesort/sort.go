package routesort

import (
	"fmt"

	"github.com/katalvlaran/airlink/core"
)

// Func is the shape shared by HeapSort, QuickSort and MergeSort.
type Func func(routes []core.Route, f Field) []core.Route

// Impl returns the implementation behind a.
func (a Algorithm) Impl() (Func, error) {
	switch a {
	case Heap:
		return HeapSort, nil
	case Quick:
		return QuickSort, nil
	case Merge:
		return MergeSort, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
}

// Sort orders routes in place with algorithm a by field f.
func Sort(a Algorithm, routes []core.Route, f Field) ([]core.Route, error) {
	fn, err := a.Impl()
	if err != nil {
		return nil, err
	}

	return fn(routes, f), nil
}

// IsSorted reports whether routes are ascending by f.
func IsSorted(routes []core.Route, f Field) bool {
	for i := 1; i < len(routes); i++ {
		if f.key(&routes[i]) < f.key(&routes[i-1]) {
			return false
		}
	}

	return true
}
