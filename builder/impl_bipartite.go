// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left IDs are leftPrefix+i, right IDs rightPrefix+j (defaults "L"/"R");
//     cfg.idFn is not used.
//   - Adds all left vertices, then all right vertices.
//   - Emits L_i–R_j for i asc, then j asc.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ugraph/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left, err := makeIDs(methodCompleteBipartite, func(i int) string { return cfg.leftPrefix + strconv.Itoa(i) }, 0, n1)
		if err != nil {
			return err
		}
		right, err := makeIDs(methodCompleteBipartite, func(i int) string { return cfg.rightPrefix + strconv.Itoa(i) }, 0, n2)
		if err != nil {
			return err
		}
		addVertices(g, left...)
		addVertices(g, right...)

		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
