// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i–(i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(n) extra space for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids, err := makeIDs(methodCycle, cfg.idFn, 0, n)
		if err != nil {
			return err
		}
		addVertices(g, ids...)

		// Close the ring on the last step.
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
