// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexX = "X"
)

// buildSquare returns the 4-cycle A–B, A–C, B–D, C–D with edges added in
// that order.
func buildSquare(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []string{VertexA, VertexB, VertexC, VertexD} {
		require.True(t, g.AddVertex(v))
	}
	for _, e := range [][2]string{{VertexA, VertexB}, {VertexA, VertexC}, {VertexB, VertexD}, {VertexC, VertexD}} {
		require.True(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// count returns how many times x occurs in s.
func count(s []string, x string) int {
	n := 0
	for _, v := range s {
		if v == x {
			n++
		}
	}

	return n
}

// requireSymmetric asserts that every u→v occurrence is matched by a v→u
// occurrence and no label is dangling.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	adj := g.AdjacencyList()
	for u, nbrs := range adj {
		for _, v := range nbrs {
			other, ok := adj[v]
			require.Truef(t, ok, "dangling neighbor %q of %q", v, u)
			if u == v {
				continue
			}
			require.Equalf(t, count(nbrs, v), count(other, u), "multiplicity %q–%q", u, v)
		}
	}
}
