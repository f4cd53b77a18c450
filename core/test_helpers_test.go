// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for airlink/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by core tests.
//   - Keep airport codes and weights out of test bodies as magic strings.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airlink/core"
)

// Airport codes used across core tests.
const (
	CodeEmpty = ""

	CodeMEL = "MEL"
	CodeJFK = "JFK"
	CodeLAX = "LAX"
	CodeLHR = "LHR"
	CodeBKK = "BKK"

	CodeUnknown = "ZZZ"
)

// Leg weights of the reference network.
const (
	WeightMELLAX = 5
	WeightLAXJFK = 3
	WeightMELBKK = 2
	WeightBKKJFK = 4
)

// ReferenceCodes is the vertex order of the reference network.
var ReferenceCodes = []string{CodeMEL, CodeJFK, CodeLAX, CodeLHR, CodeBKK}

// NewReferenceGraph builds the five-airport reference network:
//
//	MEL→LAX(5) LAX→JFK(3) MEL→BKK(2) BKK→JFK(4)
//
// and fails the test on any construction error.
func NewReferenceGraph(t testing.TB) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(len(ReferenceCodes))
	require.NoError(t, err)
	for _, code := range ReferenceCodes {
		require.NoError(t, g.AddVertex(code), "AddVertex(%s)", code)
	}
	require.True(t, g.AddEdge(CodeMEL, CodeLAX, WeightMELLAX))
	require.True(t, g.AddEdge(CodeLAX, CodeJFK, WeightLAXJFK))
	require.True(t, g.AddEdge(CodeMEL, CodeBKK, WeightMELBKK))
	require.True(t, g.AddEdge(CodeBKK, CodeJFK, WeightBKKJFK))

	return g
}
