// SPDX-License-Identifier: MIT

// Package irt provides item response models that satisfy equating.ItemModel.
//
// Models:
//   - Logistic3PL: 3PL, and by restriction 2PL and 1PL/Rasch
//   - GradedResponse: Samejima's graded response model for polytomous items
//
// Every model knows how to evaluate itself after a linear change of the
// ability scale θ' = A·θ + B:
//
//	TStarExpectedValue   a → a/A,  b → A·b + B   (Form X item on the Y scale)
//	TSharpExpectedValue  a → a·A,  b → (b − B)/A (Form Y item on the X scale)
//
// Guessing parameters are scale-free and are left unchanged.
package irt
