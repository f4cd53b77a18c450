package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/airlink/bfs"
	"github.com/katalvlaran/airlink/config"
	"github.com/katalvlaran/airlink/core"
	"github.com/katalvlaran/airlink/routesort"
)

// ErrUnsorted is returned when an algorithm leaves its output out of order.
var ErrUnsorted = errors.New("bench: sort output is not ordered")

// Timing summarises the repeated runs of one algorithm at one point.
type Timing struct {
	Mean   time.Duration
	StdDev time.Duration
}

// Point is one edge count of the sweep.
type Point struct {
	Edges   int
	Routes  float64 // mean routes enumerated per repeat
	Timings map[routesort.Algorithm]Timing
}

// Report is the result of one Run.
type Report struct {
	RunID   string
	Started time.Time
	Config  config.BenchConfig
	Points  []Point
}

// Option configures Run.
type Option func(*runner)

// WithLogger logs one debug line per point.
func WithLogger(l *zap.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithProgress calls fn after every completed point.
func WithProgress(fn func(Point)) Option {
	return func(r *runner) { r.progress = fn }
}

type runner struct {
	cfg      config.BenchConfig
	rng      *rand.Rand
	logger   *zap.Logger
	progress func(Point)
}

// RandomGraph builds a graph over vertices "0".."vertices-1" and adds edges
// random legs between uniformly chosen endpoints, weights in [1, 10].
// Self-loops and parallel legs are kept.
func RandomGraph(rng *rand.Rand, vertices, edges int) (*core.Graph, error) {
	g, err := core.NewGraph(vertices)
	if err != nil {
		return nil, err
	}
	for i := 0; i < vertices; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}
	for i := 0; i < edges; i++ {
		from := strconv.Itoa(rng.Intn(vertices))
		to := strconv.Itoa(rng.Intn(vertices))
		g.AddEdge(from, to, int64(1+rng.Intn(10)))
	}

	return g, nil
}

// Run executes the sweep described by cfg. It stops early with ctx.Err()
// when ctx is cancelled between points.
func Run(ctx context.Context, cfg config.BenchConfig, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &runner{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	rep := &Report{RunID: uuid.New().String(), Started: time.Now(), Config: cfg}
	r.logger.Info("sort benchmark started", zap.String("run_id", rep.RunID),
		zap.Int("vertices", cfg.Vertices), zap.Int("from", cfg.EdgesFrom),
		zap.Int("to", cfg.EdgesTo), zap.Int("step", cfg.EdgesStep))

	for edges := cfg.EdgesFrom; edges <= cfg.EdgesTo; edges += cfg.EdgesStep {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		p, err := r.point(edges)
		if err != nil {
			return rep, err
		}
		rep.Points = append(rep.Points, p)
		r.logger.Debug("sort benchmark point", zap.Int("edges", p.Edges), zap.Float64("routes", p.Routes))
		if r.progress != nil {
			r.progress(p)
		}
	}
	r.logger.Info("sort benchmark finished", zap.String("run_id", rep.RunID),
		zap.Int("points", len(rep.Points)), zap.Duration("elapsed", time.Since(rep.Started)))

	return rep, nil
}

func (r *runner) point(edges int) (Point, error) {
	algs := routesort.Algorithms()
	samples := make(map[routesort.Algorithm][]float64, len(algs))
	routeCounts := make([]float64, 0, r.cfg.Repeats)
	dest := strconv.Itoa(r.cfg.Vertices - 1)

	for rep := 0; rep < r.cfg.Repeats; rep++ {
		g, err := RandomGraph(r.rng, r.cfg.Vertices, edges)
		if err != nil {
			return Point{}, err
		}
		routes, err := bfs.FindRoutes(g, "0", dest, r.cfg.MaxLayovers)
		if err != nil {
			return Point{}, err
		}
		routeCounts = append(routeCounts, float64(len(routes)))

		for _, alg := range algs {
			sortFn, err := alg.Impl()
			if err != nil {
				return Point{}, err
			}
			work := slices.Clone(routes)
			start := time.Now()
			sortFn(work, routesort.ByDistance)
			elapsed := time.Since(start)
			if !routesort.IsSorted(work, routesort.ByDistance) {
				return Point{}, fmt.Errorf("%w: %s at %d edges", ErrUnsorted, alg, edges)
			}
			samples[alg] = append(samples[alg], elapsed.Seconds())
		}
	}

	p := Point{
		Edges:   edges,
		Routes:  stat.Mean(routeCounts, nil),
		Timings: make(map[routesort.Algorithm]Timing, len(algs)),
	}
	for _, alg := range algs {
		p.Timings[alg] = summarise(samples[alg])
	}

	return p, nil
}

// summarise turns per-run seconds into a Timing. A single sample has no
// spread.
func summarise(seconds []float64) Timing {
	if len(seconds) == 1 {
		return Timing{Mean: toDuration(seconds[0])}
	}
	mean, std := stat.MeanStdDev(seconds, nil)

	return Timing{Mean: toDuration(mean), StdDev: toDuration(std)}
}

func toDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// WriteTable prints one row per point: edge count, mean route count, and the
// mean seconds each algorithm took.
func (rep *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "# run %s\n", rep.RunID)
	fmt.Fprint(tw, "Edges\tRoutes")
	for _, alg := range routesort.Algorithms() {
		fmt.Fprintf(tw, "\t%sSort", titled(alg.String()))
	}
	fmt.Fprintln(tw)
	for _, p := range rep.Points {
		fmt.Fprintf(tw, "%d\t%.1f", p.Edges, p.Routes)
		for _, alg := range routesort.Algorithms() {
			fmt.Fprintf(tw, "\t%.6f", p.Timings[alg].Mean.Seconds())
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func titled(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
