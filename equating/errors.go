// SPDX-License-Identifier: MIT
// Package equating: sentinel and typed errors.
//
// All construction failures are reported through the values below and are
// matched with errors.Is / errors.As. Evaluation (Value, F1, F2, Gradient)
// never returns an error: degenerate quadrature weights surface as ±Inf/NaN.

package equating

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is matched by every *DimensionMismatchError.
	ErrDimensionMismatch = errors.New("equating: dimension mismatch")

	// ErrNilItems indicates that a nil *ItemSet was passed to a constructor.
	ErrNilItems = errors.New("equating: item set is nil")

	// ErrNilDistribution indicates that a required quadrature distribution is nil.
	ErrNilDistribution = errors.New("equating: distribution is nil")
)

// DimensionMismatchError reports that Form X and Form Y do not share the
// same common-item key set.
//
// Two shapes are produced by the validator:
//   - size mismatch:    Got = |X|, Want = |Y|
//   - content mismatch: Got = size of the symmetric difference, Want = 0
type DimensionMismatchError struct {
	Got  int
	Want int
}

// Error implements error.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("equating: dimension mismatch: %d != %d", e.Got, e.Want)
}

// Is makes errors.Is(err, ErrDimensionMismatch) true.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
