// Package mip provides the small modeling substrate shared by the lvlopt
// allocation formulations: decision variables with bounds and integrality,
// linear expressions, relational constraints, a minimization objective, and
// the Solver contract through which a model is handed to an optimizer.
//
// It is deliberately not a general-purpose modeling layer. It carries exactly
// what the shipment-allocation problems need:
//
//   - Var — an opaque handle into the owning Model. Formulations keep their
//     own dense, typed indexes (period × source × tier × destination) over
//     these handles; nothing in this module ever encodes identity in a
//     variable label or parses one back.
//
//   - LinearExpr — a term list plus constant, built incrementally:
//
//     expr := mip.NewExpr().AddTerm(x, 5).AddTerm(y, 4.5)
//
//   - Model — variable declarations, constraints, and one Minimize objective.
//     Models are write-then-solve: a Solver must treat the model as
//     read-only, and a Model never changes as a result of being solved.
//
//   - LinkActivation — the shared "binary gate × flow" constraint block used
//     by every allocation pattern in this repository: each flow is forced to
//     zero unless its gate is set, and an optional minimum total is imposed
//     whenever the gate is set.
//
//   - Solution / Status — the solver's verdict plus a value for every
//     declared variable, valid only when Status == Optimal.
//
// # Solver contract
//
// Anything that can take a *Model and return a Solution satisfies Solver:
//
//	type Solver interface {
//	    Solve(m *Model) (Solution, error)
//	}
//
// The bundled implementation lives in package simplex. Tests inject canned
// Solutions instead of running a real optimizer; see NewSolution.
//
// # Errors
//
//	ErrVarBounds     - variable declared with lb > ub or a NaN bound.
//	ErrForeignVar    - expression references a handle the model never issued.
//	ErrEmptyExpr     - constraint or objective with no terms.
//	ErrNoObjective   - model handed to a solver without Minimize being called.
//	ErrShapeMismatch - LinkActivation called with mismatched flow/cap lists.
//
// All errors are sentinels; branch with errors.Is.
package mip
