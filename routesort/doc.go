// Package routesort orders enumerated routes with one of three
// interchangeable in-place comparison sorts.
//
//	HeapSort   max-heap, bottom-up build, root swapped to the end   not stable
//	QuickSort  Lomuto partition, last element as pivot               not stable
//	MergeSort  top-down, temporary left/right buffers, ties go left  stable
//
// All three take the same input, sort ascending by the selected Field
// (distance, layovers or hops) and return the slice they were given. For
// equal keys only MergeSort guarantees the input order; the other two may
// order ties differently from each other.
//
// The algorithms are bespoke rather than wrappers over package sort or
// slices: they exist to compare their cost profiles (see package bench).
package routesort
