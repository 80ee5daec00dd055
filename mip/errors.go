// SPDX-License-Identifier: MIT
// Package: lvlopt/mip
//
// errors.go — sentinel errors for the modeling substrate.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w` when re-raising.
//   • Model-building APIs MUST NOT panic on user input; they return these
//     sentinels instead.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • Wrap with call context when forwarding: fmt.Errorf("AddConstraint(%q): %w", label, err).
//   • Do NOT stringify parameters into sentinel definitions.
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package mip

import "errors"

// ErrVarBounds indicates a variable declaration with lb > ub, or a NaN bound.
// Classification: Validation error (declaration).
// Usage: if errors.Is(err, ErrVarBounds) { /* reject the declaration */ }.
var ErrVarBounds = errors.New("mip: variable bounds invalid")

// ErrForeignVar indicates an expression term referencing a Var handle that the
// target model never issued (out-of-range index).
// Usage: if errors.Is(err, ErrForeignVar) { /* expression built against wrong model */ }.
var ErrForeignVar = errors.New("mip: variable does not belong to model")

// ErrEmptyExpr indicates a constraint or objective whose expression carries no
// variable terms. Constant-only rows are always a formulation bug here.
var ErrEmptyExpr = errors.New("mip: expression has no terms")

// ErrNoObjective indicates a model submitted to a solver before Minimize was
// called. Solvers return it rather than guessing a zero objective.
var ErrNoObjective = errors.New("mip: model has no objective")

// ErrShapeMismatch indicates paired slices of different lengths, e.g. flows
// and capacity bounds handed to LinkActivation.
var ErrShapeMismatch = errors.New("mip: paired slice lengths differ")

// ErrNilModel indicates a nil *Model passed where a model is required.
var ErrNilModel = errors.New("mip: model is nil")
