// Package metrics declares the Prometheus collectors airlink reports to.
// Collectors register with the default registry on import via promauto.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values.
const (
	ResultFound     = "found"
	ResultNone      = "none"
	ResultError     = "error"
	CacheHit        = "hit"
	CacheMiss       = "miss"
	DirectionGrow   = "grow"
	DirectionShrink = "shrink"
)

var (
	// RouteQueries counts route searches by outcome.
	RouteQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airlink_route_queries_total",
			Help: "Route searches by result (found, none, error)",
		},
		[]string{"result"},
	)

	// RoutesFound records how many itineraries each search returned.
	RoutesFound = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "airlink_routes_found",
			Help:    "Number of routes returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 50, 100, 500, 1000},
		},
	)

	// RouteCache counts query cache lookups.
	RouteCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airlink_route_cache_total",
			Help: "Route cache lookups by outcome (hit, miss)",
		},
		[]string{"outcome"},
	)

	// IndexResizes counts airport index rebuilds.
	IndexResizes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airlink_index_resizes_total",
			Help: "Airport index rebuilds by direction (grow, shrink)",
		},
		[]string{"direction"},
	)

	// IndexCapacity tracks the current airport index slot count.
	IndexCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "airlink_index_capacity",
			Help: "Current number of slots in the airport index",
		},
	)

	// SortDuration measures route sorting time per algorithm.
	SortDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "airlink_sort_duration_seconds",
			Help:    "Time spent sorting routes",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
		[]string{"algorithm"},
	)
)

// ObserveResize records one index rebuild from one capacity to another.
func ObserveResize(from, to int) {
	dir := DirectionGrow
	if to < from {
		dir = DirectionShrink
	}
	IndexResizes.WithLabelValues(dir).Inc()
	IndexCapacity.Set(float64(to))
}

// ObserveQuery records the outcome of one route search.
func ObserveQuery(routes int, err error) {
	switch {
	case err != nil:
		RouteQueries.WithLabelValues(ResultError).Inc()
		return
	case routes == 0:
		RouteQueries.WithLabelValues(ResultNone).Inc()
	default:
		RouteQueries.WithLabelValues(ResultFound).Inc()
	}
	RoutesFound.Observe(float64(routes))
}

// ObserveCache records one cache lookup.
func ObserveCache(hit bool) {
	if hit {
		RouteCache.WithLabelValues(CacheHit).Inc()
		return
	}
	RouteCache.WithLabelValues(CacheMiss).Inc()
}

// ObserveSort records the time one sort took.
func ObserveSort(algorithm string, d time.Duration) {
	SortDuration.WithLabelValues(algorithm).Observe(d.Seconds())
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
