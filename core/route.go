package core

import (
	"fmt"
	"strings"
)

// Route is one origin→destination itinerary produced by a traversal.
// Routes are values; nothing in this module mutates a Route after creation.
type Route struct {
	// Path lists airport codes from origin to destination inclusive.
	Path []string

	// Layovers is the number of stops strictly between origin and destination.
	Layovers int

	// Hops is the number of legs flown, len(Path)-1.
	Hops int

	// Distance is the sum of leg weights along Path.
	Distance int64
}

// NewRoute builds a Route from a path and its accumulated distance.
func NewRoute(path []string, distance int64) Route {
	hops := len(path) - 1
	if hops < 0 {
		hops = 0
	}
	layovers := hops - 1
	if layovers < 0 {
		layovers = 0
	}

	return Route{Path: path, Layovers: layovers, Hops: hops, Distance: distance}
}

// Origin returns the first code of the path, "" for an empty route.
func (r Route) Origin() string {
	if len(r.Path) == 0 {
		return ""
	}
	return r.Path[0]
}

// Destination returns the last code of the path, "" for an empty route.
func (r Route) Destination() string {
	if len(r.Path) == 0 {
		return ""
	}
	return r.Path[len(r.Path)-1]
}

// String renders the route the way the console prints it.
func (r Route) String() string {
	return fmt.Sprintf("Route: %s, Layovers: %d, Distance: %d",
		strings.Join(r.Path, "->"), r.Layovers, r.Distance)
}
