package airline_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/airlink/airline"
	"github.com/katalvlaran/airlink/config"
	"github.com/katalvlaran/airlink/core"
	"github.com/katalvlaran/airlink/ingest"
	"github.com/katalvlaran/airlink/metrics"
	"github.com/katalvlaran/airlink/routesort"
)

// referenceConfig is the default seed plus the four reference legs.
func referenceConfig() config.Config {
	cfg := config.Default()
	cfg.Edges = []config.Edge{
		{From: "MEL", To: "LAX", Weight: 5},
		{From: "LAX", To: "JFK", Weight: 3},
		{From: "MEL", To: "BKK", Weight: 2},
		{From: "BKK", To: "JFK", Weight: 4},
	}
	return cfg
}

func paths(routes []core.Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = strings.Join(r.Path, "->")
	}
	return out
}

type ServiceSuite struct {
	suite.Suite
	svc  *airline.Service
	logs *observer.ObservedLogs
}

func TestServiceSuite(t *testing.T) { suite.Run(t, new(ServiceSuite)) }

func (s *ServiceSuite) SetupTest() {
	obs, logs := observer.New(zapcore.DebugLevel)
	svc, err := airline.New(referenceConfig(), zap.New(obs))
	s.Require().NoError(err)
	s.svc, s.logs = svc, logs
}

func (s *ServiceSuite) find(origin, destination string, k int) []core.Route {
	q := s.svc.NewQuery(origin, destination)
	q.MaxLayovers = k
	routes, err := s.svc.FindRoutes(context.Background(), q)
	s.Require().NoError(err)
	return routes
}

func (s *ServiceSuite) TestSeed() {
	s.Equal(12, s.svc.IndexSize(), "five names overflow a six-slot index")
	name, ok := s.svc.Lookup("LHR")
	s.True(ok)
	s.Equal("London Heathrow Airport", name)
	s.Len(s.svc.IndexEntries(), 5)
	s.Equal(1, s.logs.FilterMessage("airport index resized").Len())
}

func (s *ServiceSuite) TestFindRoutes_SortedByDistance() {
	routes := s.find("MEL", "JFK", 1)
	s.Equal([]string{"MEL->BKK->JFK", "MEL->LAX->JFK"}, paths(routes))
	s.Equal(int64(6), routes[0].Distance)
	s.Equal(int64(8), routes[1].Distance)
}

func (s *ServiceSuite) TestFindRoutes_None() {
	s.Empty(s.find("MEL", "JFK", 0))
	s.Empty(s.find("JFK", "MEL", 3))
	s.Empty(s.find("XXX", "JFK", 3))
}

func (s *ServiceSuite) TestFindRoutes_NegativeLayovers() {
	q := s.svc.NewQuery("MEL", "JFK")
	q.MaxLayovers = -1
	_, err := s.svc.FindRoutes(context.Background(), q)
	s.Error(err)
}

// TestFindRoutes_UnknownAlgorithm fails before enumerating and counts the
// query as an error.
func (s *ServiceSuite) TestFindRoutes_UnknownAlgorithm() {
	read := func(result string) float64 {
		return testutil.ToFloat64(metrics.RouteQueries.WithLabelValues(result))
	}
	found, failed := read(metrics.ResultFound), read(metrics.ResultError)

	q := s.svc.NewQuery("MEL", "JFK")
	q.Algorithm = routesort.Algorithm(99)
	routes, err := s.svc.FindRoutes(context.Background(), q)
	s.ErrorIs(err, routesort.ErrUnknownAlgorithm)
	s.Nil(routes)

	s.Equal(failed+1, read(metrics.ResultError))
	s.Equal(found, read(metrics.ResultFound))
	s.Equal(1, s.logs.FilterMessage("route query failed").Len())
}

func (s *ServiceSuite) TestFindRoutes_CopiesAreIndependent() {
	a := s.find("MEL", "JFK", 1)
	a[0], a[1] = a[1], a[0]
	b := s.find("MEL", "JFK", 1)
	s.Equal([]string{"MEL->BKK->JFK", "MEL->LAX->JFK"}, paths(b))
}

func (s *ServiceSuite) TestFindRoutes_CacheHitAndPurge() {
	hits := testutil.ToFloat64(metrics.RouteCache.WithLabelValues(metrics.CacheHit))
	s.find("MEL", "JFK", 1)
	s.find("MEL", "JFK", 1)
	s.Equal(hits+1, testutil.ToFloat64(metrics.RouteCache.WithLabelValues(metrics.CacheHit)))

	s.True(s.svc.AddRoute("MEL", "JFK", 20))
	routes := s.find("MEL", "JFK", 1)
	s.Equal([]string{"MEL->BKK->JFK", "MEL->LAX->JFK", "MEL->JFK"}, paths(routes))
	s.Equal(0, routes[2].Layovers)
}

func (s *ServiceSuite) TestFindRoutes_ByHops() {
	s.True(s.svc.AddRoute("MEL", "JFK", 20))
	q := s.svc.NewQuery("MEL", "JFK")
	q.Field = routesort.ByHops
	q.Algorithm = routesort.Merge
	routes, err := s.svc.FindRoutes(context.Background(), q)
	s.Require().NoError(err)
	s.Equal("MEL->JFK", paths(routes)[0])
}

func (s *ServiceSuite) TestAddRoute_UnknownEndpoint() {
	s.False(s.svc.AddRoute("MEL", "SYD", 1))
	s.Equal(1, s.logs.FilterMessage("route dropped").Len())
}

func (s *ServiceSuite) TestAddAirport_GraphFull() {
	err := s.svc.AddAirport("SYD", "Sydney")
	s.ErrorIs(err, core.ErrGraphFull)
	_, ok := s.svc.Lookup("SYD")
	s.False(ok, "index untouched when the vertex was rejected")
}

func (s *ServiceSuite) TestAddAirport_Duplicate() {
	s.ErrorIs(s.svc.AddAirport("MEL", "again"), core.ErrVertexExists)
}

func (s *ServiceSuite) TestDeleteAirport() {
	s.Require().NoError(s.svc.DeleteAirport("BKK"))

	_, ok := s.svc.Lookup("BKK")
	s.False(ok)
	s.Equal([]string{"MEL->LAX->JFK"}, paths(s.find("MEL", "JFK", 1)))
	s.Contains(s.svc.GraphDump(), "Vertex 4:\n")
	for _, a := range s.svc.Directory() {
		s.NotEqual("BKK", a.Code)
	}

	s.ErrorIs(s.svc.DeleteAirport("BKK"), airline.ErrAirportNotFound)
}

func (s *ServiceSuite) TestDeleteAirport_ShrinksIndex() {
	s.Require().NoError(s.svc.DeleteAirport("MEL"))
	s.Equal(6, s.svc.IndexSize())
	for _, code := range []string{"JFK", "LAX", "LHR", "BKK"} {
		_, ok := s.svc.Lookup(code)
		s.True(ok, code)
	}
}

func (s *ServiceSuite) TestDirectory() {
	var codes []string
	for _, a := range s.svc.Directory() {
		codes = append(codes, a.Code)
	}
	s.Equal([]string{"BKK", "JFK", "LAX", "LHR", "MEL"}, codes)
}

func (s *ServiceSuite) TestImportRoutes() {
	st, err := s.svc.ImportRoutes(strings.NewReader("MEL,LHR,9\nLHR,JFK,1\nLHR,SYD,4\n"))
	s.Require().NoError(err)
	s.Equal(ingest.Stats{Applied: 2, Dropped: 1}, st)
	s.Contains(paths(s.find("MEL", "JFK", 1)), "MEL->LHR->JFK")

	st, err = s.svc.ImportRoutes(strings.NewReader("MEL,JFK,1\nMEL,JFK\n"))
	var le *ingest.LineError
	s.ErrorAs(err, &le)
	s.Equal(2, le.Line)
	s.Equal(1, st.Applied)
}

func (s *ServiceSuite) TestGraphDump() {
	dump := s.svc.GraphDump()
	s.True(strings.HasPrefix(dump, "Vertex 0: MEL\n-> LAX (5)\n-> BKK (2)\n"), dump)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Routes.SortAlgorithm = "bogo"
	_, err := airline.New(cfg, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNew_SeedOverflow(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.Capacity = 3
	cfg.Edges = []config.Edge{{From: "MEL", To: "BKK", Weight: 1}}
	obs, logs := observer.New(zapcore.WarnLevel)

	svc, err := airline.New(cfg, zap.New(obs))
	require.NoError(t, err)
	require.Equal(t, 2, logs.FilterMessage("seed airport skipped").Len())
	require.Equal(t, 1, logs.FilterMessage("seed route dropped").Len())
	require.Len(t, svc.Directory(), 3)
}

func TestImportAirports(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.Capacity = 7
	svc, err := airline.New(cfg, zap.NewNop())
	require.NoError(t, err)

	st, err := svc.ImportAirports(strings.NewReader("SYD,Sydney\nMEL,dup\nDXB,Dubai\nSIN,Singapore\n"))
	require.NoError(t, err)
	require.Equal(t, ingest.Stats{Applied: 2, Dropped: 2}, st)
	name, ok := svc.Lookup("DXB")
	require.True(t, ok)
	require.Equal(t, "Dubai", name)

	_, err = svc.ImportAirports(strings.NewReader(",nameless\n"))
	require.ErrorIs(t, err, ingest.ErrMalformedRecord)
}

func TestFindRoutes_Cancelled(t *testing.T) {
	cfg := referenceConfig()
	cfg.Routes.CacheSize = 0
	svc, err := airline.New(cfg, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.FindRoutes(ctx, svc.NewQuery("MEL", "JFK"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestService_Concurrent(t *testing.T) {
	cfg := referenceConfig()
	cfg.Graph.Capacity = 16
	svc, err := airline.New(cfg, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := svc.FindRoutes(context.Background(), svc.NewQuery("MEL", "JFK"))
				assert.NoError(t, err)
			}
		}()
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				svc.AddRoute("MEL", "JFK", int64(i*50+j))
			}
		}(i)
	}
	wg.Wait()

	routes, err := svc.FindRoutes(context.Background(), svc.NewQuery("MEL", "JFK"))
	require.NoError(t, err)
	require.Len(t, routes, 2+8*50)
	require.True(t, routesort.IsSorted(routes, routesort.ByDistance))
}
