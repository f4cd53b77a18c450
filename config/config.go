// Package config holds the airlink runtime configuration: defaults matching
// the reference five-airport network, strict YAML loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/airlink/routesort"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Graph    GraphConfig   `yaml:"graph"`
	Index    IndexConfig   `yaml:"index"`
	Routes   RoutesConfig  `yaml:"routes"`
	Airports []Airport     `yaml:"airports"`
	Edges    []Edge        `yaml:"edges"`
	Log      LogConfig     `yaml:"log"`
	Metrics  MetricsConfig `yaml:"metrics"`
	Bench    BenchConfig   `yaml:"bench"`
}

// GraphConfig sizes the route graph.
type GraphConfig struct {
	Capacity int `yaml:"capacity"` // fixed vertex slots
}

// IndexConfig sizes the airport index.
type IndexConfig struct {
	Capacity int `yaml:"capacity"` // initial slots; the table resizes itself
}

// RoutesConfig sets route query defaults.
type RoutesConfig struct {
	MaxLayovers   int    `yaml:"max_layovers"`
	SortField     string `yaml:"sort_field"`     // distance | layovers | hops
	SortAlgorithm string `yaml:"sort_algorithm"` // heap | quick | merge
	CacheSize     int    `yaml:"cache_size"`     // 0 disables the query cache
	MaxRoutes     int    `yaml:"max_routes"`     // 0 = unlimited
}

// Airport seeds one vertex and one index entry.
type Airport struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Edge seeds one route leg.
type Edge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"` // debug | info | warn | error
	Development bool   `yaml:"development"`
}

// MetricsConfig toggles Prometheus instrumentation.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// BenchConfig drives the sort comparison harness.
type BenchConfig struct {
	Vertices    int   `yaml:"vertices"`
	EdgesFrom   int   `yaml:"edges_from"`
	EdgesTo     int   `yaml:"edges_to"`
	EdgesStep   int   `yaml:"edges_step"`
	Repeats     int   `yaml:"repeats"`
	MaxLayovers int   `yaml:"max_layovers"`
	Seed        int64 `yaml:"seed"`
}

// Default returns the reference setup: five airports in a five-slot graph,
// a six-slot index, and the sort harness sweep of 10..1000 edges.
func Default() Config {
	return Config{
		Graph: GraphConfig{Capacity: 5},
		Index: IndexConfig{Capacity: 6},
		Routes: RoutesConfig{
			MaxLayovers:   1,
			SortField:     routesort.ByDistance.String(),
			SortAlgorithm: routesort.Heap.String(),
			CacheSize:     128,
		},
		Airports: []Airport{
			{Code: "MEL", Name: "Melbourne Tullamarine (MEL)"},
			{Code: "JFK", Name: "John F. Kennedy International Airport"},
			{Code: "LAX", Name: "Los Angeles International Airport"},
			{Code: "LHR", Name: "London Heathrow Airport"},
			{Code: "BKK", Name: "Bangkok Suvarnabhumi Airport"},
		},
		Log:     LogConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true},
		Bench: BenchConfig{
			Vertices:    10,
			EdgesFrom:   10,
			EdgesTo:     1000,
			EdgesStep:   10,
			Repeats:     1,
			MaxLayovers: 0,
			Seed:        1,
		},
	}
}

// Load reads the YAML file at path over Default(). Unknown keys are errors.
// An empty path returns the defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	switch {
	case c.Graph.Capacity < 1:
		return fmt.Errorf("%w: graph.capacity must be >= 1, got %d", ErrInvalidConfig, c.Graph.Capacity)
	case c.Index.Capacity < 1:
		return fmt.Errorf("%w: index.capacity must be >= 1, got %d", ErrInvalidConfig, c.Index.Capacity)
	case c.Routes.MaxLayovers < 0:
		return fmt.Errorf("%w: routes.max_layovers must be >= 0, got %d", ErrInvalidConfig, c.Routes.MaxLayovers)
	case c.Routes.CacheSize < 0:
		return fmt.Errorf("%w: routes.cache_size must be >= 0, got %d", ErrInvalidConfig, c.Routes.CacheSize)
	case c.Routes.MaxRoutes < 0:
		return fmt.Errorf("%w: routes.max_routes must be >= 0, got %d", ErrInvalidConfig, c.Routes.MaxRoutes)
	}
	if _, err := routesort.ParseField(c.Routes.SortField); err != nil {
		return fmt.Errorf("%w: routes.sort_field: %v", ErrInvalidConfig, err)
	}
	if _, err := routesort.ParseAlgorithm(c.Routes.SortAlgorithm); err != nil {
		return fmt.Errorf("%w: routes.sort_algorithm: %v", ErrInvalidConfig, err)
	}
	for i, a := range c.Airports {
		if a.Code == "" {
			return fmt.Errorf("%w: airports[%d].code is empty", ErrInvalidConfig, i)
		}
	}
	if err := c.Bench.Validate(); err != nil {
		return err
	}

	return nil
}

// Validate checks the sweep bounds.
func (b BenchConfig) Validate() error {
	switch {
	case b.Vertices < 1:
		return fmt.Errorf("%w: bench.vertices must be >= 1, got %d", ErrInvalidConfig, b.Vertices)
	case b.EdgesFrom < 0 || b.EdgesTo < b.EdgesFrom:
		return fmt.Errorf("%w: bench edges range [%d, %d] is empty", ErrInvalidConfig, b.EdgesFrom, b.EdgesTo)
	case b.EdgesStep < 1:
		return fmt.Errorf("%w: bench.edges_step must be >= 1, got %d", ErrInvalidConfig, b.EdgesStep)
	case b.Repeats < 1:
		return fmt.Errorf("%w: bench.repeats must be >= 1, got %d", ErrInvalidConfig, b.Repeats)
	case b.MaxLayovers < 0:
		return fmt.Errorf("%w: bench.max_layovers must be >= 0, got %d", ErrInvalidConfig, b.MaxLayovers)
	}

	return nil
}
