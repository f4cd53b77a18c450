// Package airline is the airport management service: it keeps the route
// graph and the airport index in step, answers route queries through an LRU
// cache, and sorts results with a selectable algorithm.
//
// The graph and the index are independent stores; Service is the only place
// that coordinates them. Adding an airport creates a vertex and then an index
// entry; deleting one soft-deletes the vertex and removes the entry. Any
// graph mutation purges the route cache.
//
// A Service is safe for concurrent use. Queries share a read lock, mutations
// take the write lock.
package airline
