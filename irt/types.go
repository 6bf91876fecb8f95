// SPDX-License-Identifier: MIT

package irt

import (
	"errors"

	"github.com/katalvlaran/equate/equating"
)

// Scaling constants for the logistic models.
const (
	// LogisticScale keeps the model on the logistic metric.
	LogisticScale = 1.0

	// NormalScale approximates the normal-ogive metric.
	NormalScale = 1.7
)

// ErrBadParameter is returned when an item parameter is out of its domain.
var ErrBadParameter = errors.New("irt: invalid item parameter")

var (
	_ equating.ItemModel = Logistic3PL{}
	_ equating.ItemModel = GradedResponse{}
)
