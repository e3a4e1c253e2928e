// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// helpers.go - shared vertex/edge emitters for constructors.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ugraph/core"
)

// centerVertexID is the fixed hub label used by Star and Wheel.
const centerVertexID = "Center"

// addVertices inserts ids in order. Existing labels are kept as they are,
// which lets constructors compose over shared IDs.
func addVertices(g *core.Graph, ids ...string) {
	for _, id := range ids {
		g.AddVertex(id)
	}
}

// addEdge connects u and v, reporting a missing endpoint as ErrConstructFailed.
func addEdge(g *core.Graph, method, u, v string) error {
	if !g.AddEdge(u, v) {
		return fmt.Errorf("%s: AddEdge(%s, %s): endpoint missing: %w", method, u, v, ErrConstructFailed)
	}

	return nil
}

// makeIDs returns idFn(from..to-1). A scheme that panics on an index (e.g.
// SymbolIDFn past "Z") is reported as ErrIDScheme before g is touched.
func makeIDs(method string, idFn IDFn, from, to int) ([]string, error) {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		id, err := callIDFn(idFn, i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// callIDFn evaluates idFn(i), converting a panic into ErrIDScheme.
func callIDFn(idFn IDFn, i int) (id string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("idFn(%d): %v: %w", i, r, ErrIDScheme)
		}
	}()

	return idFn(i), nil
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
