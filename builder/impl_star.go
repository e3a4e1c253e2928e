// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the hub with fixed ID "Center", then leaves cfg.idFn(1..n-1).
//   - Emits spokes Center–leaf[i] in increasing leaf index, so the hub's
//     neighbor sequence lists leaves in index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		leaves, err := makeIDs(methodStar, cfg.idFn, 1, n)
		if err != nil {
			return err
		}

		addVertices(g, centerVertexID)
		for _, leafID := range leaves {
			addVertices(g, leafID)
			if err := addEdge(g, methodStar, centerVertexID, leafID); err != nil {
				return err
			}
		}

		return nil
	}
}
