// SPDX-License-Identifier: MIT

// Package mip — solver verdicts and solved variable assignments.
package mip

// Status is the solver's verdict on a model.
//
// The zero value is NotSolved so that a freshly constructed Solution reports
// "no verdict" rather than accidentally reporting optimality.
type Status int

const (
	// NotSolved means the solver returned without reaching a verdict
	// (budget exhausted, or it never ran).
	NotSolved Status = iota
	// Optimal means a provably optimal assignment was found; Solution values
	// are valid.
	Optimal
	// Infeasible means no assignment satisfies all constraints.
	Infeasible
	// Unbounded means the objective can be driven below any bound; this
	// always indicates a formulation defect, never a business outcome.
	Unbounded
	// Undefined means the solver failed internally (numerical breakdown).
	Undefined
)

// String names the status; values outside the declared set render as
// Unrecognized so that a foreign solver's exotic code is never mistaken for
// a known verdict.
func (s Status) String() string {
	switch s {
	case NotSolved:
		return "NotSolved"
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	case Undefined:
		return "Undefined"
	default:
		return "Unrecognized"
	}
}

// Solution is a solver's answer: a verdict, the objective value, and one
// value per declared variable. Values and Objective are meaningful only when
// Status == Optimal; extraction code must branch on the status first.
type Solution struct {
	Status    Status
	Objective float64

	values []float64
}

// NewSolution builds a Solution from raw parts. values is indexed by Var in
// declaration order; it is retained, not copied. Tests use this to inject
// canned solver outcomes.
func NewSolution(status Status, objective float64, values []float64) Solution {
	return Solution{Status: status, Objective: objective, values: values}
}

// Value returns the solved value of v, or 0 when v is out of range or the
// solution carries no values. Out-of-range reads return 0 rather than
// panicking so that partial mock solutions stay convenient in tests.
func (s Solution) Value(v Var) float64 {
	if v < 0 || int(v) >= len(s.values) {
		return 0
	}

	return s.values[v]
}

// NumValues returns how many variable values the solution carries.
func (s Solution) NumValues() int { return len(s.values) }

// IsOptimal reports whether the verdict is Optimal.
func (s Solution) IsOptimal() bool { return s.Status == Optimal }

// Solver is the hand-off contract between a formulation and an optimizer.
// Solve blocks until the optimizer returns; the model must be treated as
// read-only. Implementations must return a Solution with a non-Optimal
// status for every business outcome (infeasible, unbounded, budget
// exhausted) and reserve the error return for invalid input such as a nil
// or objective-less model.
type Solver interface {
	Solve(m *Model) (Solution, error)
}
