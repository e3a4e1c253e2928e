// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); the rim is C_{n-1}.
//   - Builds the rim via Cycle(n-1), then adds hub "Center" and spokes
//     Center–rim[i] for i=0..n-2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim must be a cycle of at least 3
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		rim, err := makeIDs(methodWheel, cfg.idFn, 0, n-1)
		if err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}

		addVertices(g, centerVertexID)
		for _, rimID := range rim {
			if err := addEdge(g, methodWheel, centerVertexID, rimID); err != nil {
				return err
			}
		}

		return nil
	}
}
