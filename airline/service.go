package airline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tidwall/btree"
	"go.uber.org/zap"

	"github.com/katalvlaran/airlink/bfs"
	"github.com/katalvlaran/airlink/config"
	"github.com/katalvlaran/airlink/core"
	"github.com/katalvlaran/airlink/hashindex"
	"github.com/katalvlaran/airlink/ingest"
	"github.com/katalvlaran/airlink/metrics"
	"github.com/katalvlaran/airlink/routesort"
)

// ErrAirportNotFound is returned when a code names no live airport.
var ErrAirportNotFound = errors.New("airline: airport not found")

// Airport is one directory entry.
type Airport struct {
	Code string
	Name string
}

// Query asks for every route from Origin to Destination with at most
// MaxLayovers intermediate stops, ordered by Field using Algorithm.
type Query struct {
	Origin      string
	Destination string
	MaxLayovers int
	Field       routesort.Field
	Algorithm   routesort.Algorithm
}

type cacheKey struct {
	origin      string
	destination string
	maxLayovers int
}

// Service owns the route graph, the airport index and the route cache.
type Service struct {
	mu        sync.RWMutex
	graph     *core.Graph
	index     *hashindex.Table[string]
	directory *btree.BTreeG[Airport]
	cache     *lru.Cache[cacheKey, []core.Route] // nil when disabled
	logger    *zap.Logger

	maxLayovers int
	maxRoutes   int
	field       routesort.Field
	algorithm   routesort.Algorithm
	observe     bool
}

// New builds a Service from cfg and seeds it with cfg.Airports and cfg.Edges.
// Seed airports that do not fit the graph, and seed edges with an unknown
// endpoint, are logged and skipped. A nil logger discards output.
func New(cfg config.Config, logger *zap.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	// Validate already accepted both names.
	field, _ := routesort.ParseField(cfg.Routes.SortField)
	alg, _ := routesort.ParseAlgorithm(cfg.Routes.SortAlgorithm)

	s := &Service{
		directory:   btree.NewBTreeG[Airport](func(a, b Airport) bool { return a.Code < b.Code }),
		logger:      logger,
		maxLayovers: cfg.Routes.MaxLayovers,
		maxRoutes:   cfg.Routes.MaxRoutes,
		field:       field,
		algorithm:   alg,
		observe:     cfg.Metrics.Enabled,
	}

	var err error
	if s.graph, err = core.NewGraph(cfg.Graph.Capacity); err != nil {
		return nil, fmt.Errorf("airline: graph: %w", err)
	}
	if s.index, err = hashindex.New[string](cfg.Index.Capacity, hashindex.WithOnResize(s.onResize)); err != nil {
		return nil, fmt.Errorf("airline: index: %w", err)
	}
	if cfg.Routes.CacheSize > 0 {
		if s.cache, err = lru.New[cacheKey, []core.Route](cfg.Routes.CacheSize); err != nil {
			return nil, fmt.Errorf("airline: route cache: %w", err)
		}
	}
	if s.observe {
		metrics.IndexCapacity.Set(float64(s.index.Cap()))
	}

	for _, a := range cfg.Airports {
		if err := s.addAirport(a.Code, a.Name); err != nil {
			logger.Warn("seed airport skipped", zap.String("code", a.Code), zap.Error(err))
		}
	}
	for _, e := range cfg.Edges {
		if !s.graph.AddEdge(e.From, e.To, e.Weight) {
			logger.Warn("seed route dropped",
				zap.String("from", e.From), zap.String("to", e.To), zap.Int64("weight", e.Weight))
		}
	}
	logger.Info("airline service ready",
		zap.Int("airports", s.graph.VertexCount()),
		zap.Int("graph_capacity", s.graph.Capacity()),
		zap.Int("routes", s.graph.EdgeCount()),
		zap.Int("index_capacity", s.index.Cap()),
		zap.Int("cache_size", cfg.Routes.CacheSize),
	)

	return s, nil
}

// NewQuery returns a query for origin → destination using the configured
// layover limit, sort field and algorithm.
func (s *Service) NewQuery(origin, destination string) Query {
	return Query{
		Origin:      origin,
		Destination: destination,
		MaxLayovers: s.maxLayovers,
		Field:       s.field,
		Algorithm:   s.algorithm,
	}
}

// AddAirport adds a vertex for code and then indexes name under it. The
// index is only touched when the vertex was added.
func (s *Service) AddAirport(code, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.addAirport(code, name); err != nil {
		s.logger.Warn("add airport rejected", zap.String("code", code), zap.Error(err))
		return err
	}
	s.logger.Info("airport added", zap.String("code", code), zap.String("name", name))

	return nil
}

func (s *Service) addAirport(code, name string) error {
	if err := s.graph.AddVertex(code); err != nil {
		return fmt.Errorf("airline: add %q: %w", code, err)
	}
	s.index.Insert(code, name)
	s.directory.Set(Airport{Code: code, Name: name})
	s.purge()

	return nil
}

// DeleteAirport soft-deletes the vertex for code and removes its index
// entry. Edges into code stay stored and stop resolving.
func (s *Service) DeleteAirport(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.graph.DeleteVertex(code); err != nil {
		s.logger.Warn("delete airport rejected", zap.String("code", code), zap.Error(err))
		return fmt.Errorf("%w: %q", ErrAirportNotFound, code)
	}
	s.index.Delete(code)
	s.directory.Delete(Airport{Code: code})
	s.purge()
	s.logger.Info("airport deleted", zap.String("code", code))

	return nil
}

// AddRoute adds a start → end leg. It reports false, without error, when
// either endpoint is unknown.
func (s *Service) AddRoute(start, end string, weight int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.graph.AddEdge(start, end, weight) {
		s.logger.Warn("route dropped", zap.String("from", start), zap.String("to", end))
		return false
	}
	s.purge()
	s.logger.Info("route added", zap.String("from", start), zap.String("to", end), zap.Int64("weight", weight))

	return true
}

// ImportRoutes reads "origin,destination,weight" records from r.
func (s *Service) ImportRoutes(r io.Reader) (ingest.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := ingest.Edges(s.graph, r)
	if st.Applied > 0 {
		s.purge()
	}
	fields := []zap.Field{zap.Int("applied", st.Applied), zap.Int("dropped", st.Dropped)}
	if err != nil {
		s.logger.Warn("route import aborted", append(fields, zap.Error(err))...)
		return st, err
	}
	s.logger.Info("routes imported", fields...)

	return st, nil
}

// ImportAirports reads "code,name" records from r and adds each airport.
// Airports rejected by the graph (full, duplicate) are counted as dropped;
// an empty code aborts the import.
func (s *Service) ImportAirports(r io.Reader) (ingest.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st ingest.Stats
	_, err := ingest.Airports(r, func(code, name string) error {
		err := s.addAirport(code, name)
		switch {
		case err == nil:
			st.Applied++
			return nil
		case errors.Is(err, core.ErrGraphFull), errors.Is(err, core.ErrVertexExists):
			st.Dropped++
			s.logger.Warn("import airport skipped", zap.String("code", code), zap.Error(err))
			return nil
		default:
			return err
		}
	})
	fields := []zap.Field{zap.Int("applied", st.Applied), zap.Int("dropped", st.Dropped)}
	if err != nil {
		s.logger.Warn("airport import aborted", append(fields, zap.Error(err))...)
		return st, err
	}
	s.logger.Info("airports imported", fields...)

	return st, nil
}

// FindRoutes enumerates the routes matching q and returns them sorted. The
// unsorted enumeration is cached per (origin, destination, layovers); every
// call gets its own sorted copy.
func (s *Service) FindRoutes(ctx context.Context, q Query) ([]core.Route, error) {
	sortFn, err := q.Algorithm.Impl()
	var routes []core.Route
	if err == nil {
		routes, err = s.enumerate(ctx, q)
	}
	if s.observe {
		metrics.ObserveQuery(len(routes), err)
	}
	if err != nil {
		s.logger.Debug("route query failed", zap.String("origin", q.Origin),
			zap.String("destination", q.Destination), zap.Error(err))
		return nil, err
	}

	out := slices.Clone(routes)
	start := time.Now()
	sortFn(out, q.Field)
	if s.observe {
		metrics.ObserveSort(q.Algorithm.String(), time.Since(start))
	}
	s.logger.Debug("route query",
		zap.String("origin", q.Origin),
		zap.String("destination", q.Destination),
		zap.Int("max_layovers", q.MaxLayovers),
		zap.Stringer("field", q.Field),
		zap.Stringer("algorithm", q.Algorithm),
		zap.Int("routes", len(out)),
	)

	return out, nil
}

func (s *Service) enumerate(ctx context.Context, q Query) ([]core.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := cacheKey{origin: q.Origin, destination: q.Destination, maxLayovers: q.MaxLayovers}
	if s.cache != nil {
		routes, ok := s.cache.Get(key)
		if s.observe {
			metrics.ObserveCache(ok)
		}
		if ok {
			return routes, nil
		}
	}

	routes, err := bfs.FindRoutes(s.graph, q.Origin, q.Destination, q.MaxLayovers,
		bfs.WithContext(ctx), bfs.WithMaxRoutes(s.maxRoutes))
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Add(key, routes)
	}

	return routes, nil
}

// Lookup returns the name indexed under code.
func (s *Service) Lookup(code string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.index.Search(code)
}

// IndexSize returns the airport index capacity in slots.
func (s *Service) IndexSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.index.Cap()
}

// IndexEntries returns the airport index contents in slot order.
func (s *Service) IndexEntries() []hashindex.Entry[string] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.index.Entries()
}

// Directory returns every indexed airport ordered by code.
func (s *Service) Directory() []Airport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Airport, 0, s.directory.Len())
	s.directory.Scan(func(a Airport) bool {
		out = append(out, a)
		return true
	})

	return out
}

// GraphDump renders every vertex slot and its outgoing legs.
func (s *Service) GraphDump() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph.String()
}

// purge drops every cached enumeration. Callers hold the write lock.
func (s *Service) purge() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

func (s *Service) onResize(from, to int) {
	s.logger.Info("airport index resized", zap.Int("from", from), zap.Int("to", to))
	if s.observe {
		metrics.ObserveResize(from, to)
	}
}
