package routesort

import "github.com/katalvlaran/airlink/core"

// QuickSort orders routes ascending by f in place and returns the same slice.
//
// Lomuto partition around the last element; already-sorted input hits the
// O(n²) worst case and recursion depth n.
func QuickSort(routes []core.Route, f Field) []core.Route {
	quickSort(routes, 0, len(routes)-1, f)
	return routes
}

func quickSort(routes []core.Route, low, high int, f Field) {
	if low < high {
		p := partition(routes, low, high, f)
		quickSort(routes, low, p-1, f)
		quickSort(routes, p+1, high, f)
	}
}

// partition moves every route keyed strictly below the pivot to the front
// and returns the pivot's final position.
func partition(routes []core.Route, low, high int, f Field) int {
	pivot := f.key(&routes[high])
	i := low - 1
	for j := low; j < high; j++ {
		if f.key(&routes[j]) < pivot {
			i++
			routes[i], routes[j] = routes[j], routes[i]
		}
	}
	routes[i+1], routes[high] = routes[high], routes[i+1]

	return i + 1
}
