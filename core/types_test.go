package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/airlink/core"
)

// TestNewRoute derives hop and layover counts from the path length.
func TestNewRoute(t *testing.T) {
	cases := []struct {
		name     string
		path     []string
		hops     int
		layovers int
	}{
		{"empty", nil, 0, 0},
		{"origin only", []string{"MEL"}, 0, 0},
		{"direct", []string{"MEL", "JFK"}, 1, 0},
		{"one stop", []string{"MEL", "BKK", "JFK"}, 2, 1},
		{"two stops", []string{"MEL", "LAX", "LHR", "JFK"}, 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := core.NewRoute(tc.path, 11)
			assert.Equal(t, tc.hops, r.Hops)
			assert.Equal(t, tc.layovers, r.Layovers)
			assert.Equal(t, int64(11), r.Distance)
		})
	}
}

func TestRoute_Endpoints(t *testing.T) {
	r := core.NewRoute([]string{"MEL", "BKK", "JFK"}, 6)
	assert.Equal(t, "MEL", r.Origin())
	assert.Equal(t, "JFK", r.Destination())
	assert.Equal(t, "Route: MEL->BKK->JFK, Layovers: 1, Distance: 6", r.String())

	var empty core.Route
	assert.Empty(t, empty.Origin())
	assert.Empty(t, empty.Destination())
}

func TestWithEdgeHint(t *testing.T) {
	g, err := core.NewGraph(2, core.WithEdgeHint(8), core.WithEdgeHint(-1))
	assert.NoError(t, err)
	assert.Equal(t, 8, cap(g.Neighbors(0)))
}
