// SPDX-License-Identifier: MIT

// Package quadrature builds discrete ability distributions that satisfy
// equating.Distribution: explicit (point, weight) lists, a normal density
// on an even grid, and a uniform grid.
//
// Weights are treated as unnormalized densities by the equating criteria,
// so Rescale(c) for any c > 0 leaves F1 and F2 unchanged.
package quadrature
