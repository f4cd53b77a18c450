package metrics_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airlink/metrics"
)

func TestObserveResize(t *testing.T) {
	grow := testutil.ToFloat64(metrics.IndexResizes.WithLabelValues(metrics.DirectionGrow))
	shrink := testutil.ToFloat64(metrics.IndexResizes.WithLabelValues(metrics.DirectionShrink))

	metrics.ObserveResize(6, 12)
	require.Equal(t, grow+1, testutil.ToFloat64(metrics.IndexResizes.WithLabelValues(metrics.DirectionGrow)))
	require.Equal(t, 12.0, testutil.ToFloat64(metrics.IndexCapacity))

	metrics.ObserveResize(12, 6)
	require.Equal(t, shrink+1, testutil.ToFloat64(metrics.IndexResizes.WithLabelValues(metrics.DirectionShrink)))
	require.Equal(t, 6.0, testutil.ToFloat64(metrics.IndexCapacity))
}

func TestObserveQuery(t *testing.T) {
	read := func(result string) float64 {
		return testutil.ToFloat64(metrics.RouteQueries.WithLabelValues(result))
	}
	found, none, failed := read(metrics.ResultFound), read(metrics.ResultNone), read(metrics.ResultError)

	metrics.ObserveQuery(2, nil)
	metrics.ObserveQuery(0, nil)
	metrics.ObserveQuery(0, errors.New("boom"))

	require.Equal(t, found+1, read(metrics.ResultFound))
	require.Equal(t, none+1, read(metrics.ResultNone))
	require.Equal(t, failed+1, read(metrics.ResultError))
}

func TestObserveCache(t *testing.T) {
	hits := testutil.ToFloat64(metrics.RouteCache.WithLabelValues(metrics.CacheHit))
	misses := testutil.ToFloat64(metrics.RouteCache.WithLabelValues(metrics.CacheMiss))

	metrics.ObserveCache(true)
	metrics.ObserveCache(false)
	metrics.ObserveCache(false)

	require.Equal(t, hits+1, testutil.ToFloat64(metrics.RouteCache.WithLabelValues(metrics.CacheHit)))
	require.Equal(t, misses+2, testutil.ToFloat64(metrics.RouteCache.WithLabelValues(metrics.CacheMiss)))
}

func TestHandler(t *testing.T) {
	metrics.ObserveSort("heap", time.Millisecond)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	for _, name := range []string{
		"airlink_sort_duration_seconds_count{algorithm=\"heap\"}",
		"airlink_index_capacity",
		"airlink_route_cache_total",
	} {
		require.True(t, strings.Contains(body, name), name)
	}
}
