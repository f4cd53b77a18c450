// Package airlink is an in-memory airline network toolkit: a fixed-capacity
// route graph, bounded-layover route enumeration, an open-addressed airport
// index, and a family of route sorts.
//
// What is inside:
//
//	core/        Route Graph: airport vertices, weighted legs, soft delete
//	bfs/         breadth-first route enumeration with a layover bound
//	hashindex/   linear-probing airport table with grow/shrink rebuilds
//	routesort/   heap, quick and merge sort over routes by key field
//	ingest/      CSV import of legs and airports
//	config/      YAML configuration and logger setup
//	metrics/     Prometheus collectors
//	airline/     service keeping graph and index in step, with a route cache
//	bench/       sort comparison sweep over random networks
//	console/     interactive management menu
//	cmd/airlink  the command-line entry point
//
// Quick example (see bfs.ExampleFindRoutes):
//
//	MEL ──5──▶ LAX ──3──▶ JFK
//	 │                     ▲
//	 └──2──▶ BKK ──4───────┘
//
//	routes, _ := bfs.FindRoutes(g, "MEL", "JFK", 1)
//	routesort.HeapSort(routes, routesort.ByDistance)
//	// MEL->BKK->JFK (6), MEL->LAX->JFK (8)
package airlink
