// SPDX-License-Identifier: MIT

// Package mip — shared numeric policy and status headlines for solution
// extraction.
//
// Both allocation reports reconcile extracted totals against declared
// targets, and both render a fixed headline per solver verdict. Keeping the
// tolerance and the headline table here guarantees the two report layers can
// never drift apart on either.
package mip

import "math"

// Tolerance is the absolute tolerance for reconciling extracted totals
// against declared targets. It absorbs solver floating-point residue on
// integer-constrained variables; a violation beyond it indicates an
// extraction defect, not rounding.
const Tolerance = 0.01

// ActiveThreshold is the cut-off above which a solved binary variable is read
// as set. Solvers return values like 0.9999999 or 1e-12 on binaries; 0.5 is
// the midpoint and is safe for any residue below 0.5.
const ActiveThreshold = 0.5

// Reconciled reports whether actual matches target within Tolerance.
func Reconciled(actual, target float64) bool {
	return math.Abs(actual-target) <= Tolerance
}

// IsActive reads a binary variable out of sol, true when it is set.
func IsActive(sol Solution, v Var) bool {
	return sol.Value(v) > ActiveThreshold
}

// StatusSummary returns the fixed one-line headline for a verdict. The
// problem-specific diagnosis layers attach their own cause lists and counts
// beneath it; the headline itself never varies per problem.
func StatusSummary(s Status) string {
	switch s {
	case Optimal:
		return "optimal allocation found"
	case Infeasible:
		return "the constraints cannot be satisfied simultaneously"
	case Unbounded:
		return "the objective can be improved without limit; the formulation is missing a restraining constraint"
	case NotSolved:
		return "the solver returned before reaching a verdict"
	case Undefined:
		return "the solver reached an undefined state"
	default:
		return "the solver reported a status this tool does not recognize"
	}
}
