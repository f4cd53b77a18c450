package routesort

import "github.com/katalvlaran/airlink/core"

// MergeSort orders routes ascending by f and returns the same slice.
// It is stable: routes with equal keys keep their input order.
func MergeSort(routes []core.Route, f Field) []core.Route {
	mergeSort(routes, 0, len(routes)-1, f)
	return routes
}

func mergeSort(routes []core.Route, l, r int, f Field) {
	if l < r {
		m := (l + r) / 2
		mergeSort(routes, l, m, f)
		mergeSort(routes, m+1, r, f)
		merge(routes, l, m, r, f)
	}
}

// merge combines the sorted runs [l..m] and [m+1..r] through temporary
// copies. Ties take from the left run first.
func merge(routes []core.Route, l, m, r int, f Field) {
	left := make([]core.Route, m-l+1)
	right := make([]core.Route, r-m)
	copy(left, routes[l:m+1])
	copy(right, routes[m+1:r+1])

	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		if f.key(&left[i]) <= f.key(&right[j]) {
			routes[k] = left[i]
			i++
		} else {
			routes[k] = right[j]
			j++
		}
		k++
	}
	k += copy(routes[k:], left[i:])
	copy(routes[k:], right[j:])
}
