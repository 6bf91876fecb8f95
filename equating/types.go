// SPDX-License-Identifier: MIT

package equating

import (
	"fmt"
	"strings"
)

// ItemModel is the capability the objective needs from a calibrated item.
//
//   - ExpectedValue:        expected item score at theta on the item's own scale.
//   - TStarExpectedValue:   expected score of a Form X item after its
//     parameters are placed on the Form Y scale by (intercept, slope).
//   - TSharpExpectedValue:  expected score of a Form Y item after its
//     parameters are placed on the Form X scale by (intercept, slope).
//
// Implementations live in package irt; any type with these methods works.
type ItemModel interface {
	ExpectedValue(theta float64) float64
	TStarExpectedValue(theta, intercept, slope float64) float64
	TSharpExpectedValue(theta, intercept, slope float64) float64
}

// Distribution is an ordered quadrature approximation of an ability density.
// PointAt and DensityAt are called with 0 <= i < NumberOfPoints().
type Distribution interface {
	NumberOfPoints() int
	PointAt(i int) float64
	DensityAt(i int) float64
}

// Criterion selects which discrepancy the objective minimizes.
type Criterion int

const (
	// Q1 minimizes F1 only: Form Y true scores vs. transformed Form X (T-star),
	// integrated over the Y distribution.
	Q1 Criterion = iota

	// Q2 minimizes F2 only: Form X true scores vs. transformed Form Y (T-sharp),
	// integrated over the X distribution.
	Q2

	// Q1Q2 minimizes F1 + F2 (symmetric criterion, no joint renormalization).
	Q1Q2
)

// String returns the canonical name of the criterion.
func (c Criterion) String() string {
	switch c {
	case Q1:
		return "Q1"
	case Q2:
		return "Q2"
	case Q1Q2:
		return "Q1Q2"
	default:
		return fmt.Sprintf("Criterion(%d)", int(c))
	}
}

// ParseCriterion maps "q1", "q2" or "q1q2" (case-insensitive) to a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Q1":
		return Q1, nil
	case "Q2":
		return Q2, nil
	case "Q1Q2":
		return Q1Q2, nil
	}

	return Q1, fmt.Errorf("equating: unknown criterion %q", s)
}
