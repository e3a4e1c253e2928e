// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Implementations attach context with %w, e.g.
//     "Cycle: n=2 < min=3: builder: parameter too small".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrIDScheme indicates the configured IDFn panicked for an index the
// constructor needed, e.g. SymbolIDFn beyond 26 vertices.
var ErrIDScheme = errors.New("builder: ID scheme out of range")

// ErrConstructFailed indicates the graph rejected a mutation the constructor
// depended on, or a nil constructor/graph was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")
