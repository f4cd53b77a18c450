// Package bench compares the route sort algorithms on random networks.
//
// For every edge count in a configured sweep, Run builds a random graph over
// vertices "0".."n-1" with leg weights in [1, 10], enumerates the routes from
// "0" to "n-1", and times each algorithm sorting its own copy of them by
// distance. Each point is repeated and summarised as mean and standard
// deviation.
package bench
