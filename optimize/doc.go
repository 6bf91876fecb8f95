// SPDX-License-Identifier: MIT

// Package optimize holds small unconstrained minimizers for low-dimensional
// objectives such as the two equating constants of a Stocking–Lord fit.
//
// Methods:
//   - NelderMead: derivative-free downhill simplex
//   - BFGS:       quasi-Newton with Armijo backtracking; needs a gradient
//   - MultiStart: runs either method from several start points concurrently
//
// All methods are deterministic for a given start and honour context
// cancellation and a soft TimeLimit. Per-iteration progress is logged at
// Debug level when Options.Logger is set.
package optimize
