package routesort

import "github.com/katalvlaran/airlink/core"

// HeapSort orders routes ascending by f in place and returns the same slice.
//
// A max-heap is built bottom-up over the whole slice, then the root is
// swapped to the end and the shrinking prefix re-heapified, so the tail
// fills with the largest keys first.
func HeapSort(routes []core.Route, f Field) []core.Route {
	n := len(routes)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(routes, n, i, f)
	}
	for end := n - 1; end > 0; end-- {
		routes[0], routes[end] = routes[end], routes[0]
		siftDown(routes, end, 0, f)
	}

	return routes
}

// siftDown restores the max-heap property for the subtree rooted at i
// within the first n elements.
func siftDown(routes []core.Route, n, i int, f Field) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && f.key(&routes[left]) > f.key(&routes[largest]) {
			largest = left
		}
		if right < n && f.key(&routes[right]) > f.key(&routes[largest]) {
			largest = right
		}
		if largest == i {
			return
		}
		routes[i], routes[largest] = routes[largest], routes[i]
		i = largest
	}
}
