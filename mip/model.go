// SPDX-License-Identifier: MIT

// Package mip — the Model: variable declarations, constraints, objective.
//
// Lifecycle contract:
//   - Build: AddVar/AddBinary/AddInteger, AddConstraint, Minimize — any order,
//     single goroutine.
//   - Solve: hand the model to a Solver; the solver reads, never writes.
//   - Discard: models are per-run throwaways; there is no reset.
//
// Complexity: every Add operation is amortized O(1) (slice append); accessors
// are O(1).
package mip

import (
	"fmt"
	"math"
)

// VarKind declares the integrality class of a variable.
type VarKind uint8

const (
	// Continuous variables take any value within their bounds.
	Continuous VarKind = iota
	// Integer variables are restricted to whole values within their bounds.
	Integer
	// Binary variables are integer variables with bounds fixed to [0, 1].
	Binary
)

// String returns the kind name used in dumps and error text.
func (k VarKind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Integer:
		return "integer"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Var is an opaque handle to a declared variable. Handles are dense indexes
// issued in declaration order, valid only for the model that issued them.
type Var int

// varInfo carries one variable's declaration.
type varInfo struct {
	label string
	lb    float64
	ub    float64
	kind  VarKind
}

// Model is a mixed-integer linear program under construction: declared
// variables, relational constraints, and a single minimization objective.
// The zero value is unusable; create models with NewModel.
type Model struct {
	name   string
	vars   []varInfo
	cons   []Constraint
	obj    LinearExpr
	hasObj bool
}

// NewModel returns an empty model with the given (cosmetic) name.
func NewModel(name string) *Model {
	return &Model{name: name}
}

// Name returns the model's name.
func (m *Model) Name() string { return m.name }

// AddVar declares a variable with the given bounds and kind and returns its
// handle. The label is cosmetic (LP dumps, diagnostics); identity is the
// returned handle, never the label.
//
// Errors: ErrVarBounds if lb > ub, either bound is NaN, or lb == +Inf.
func (m *Model) AddVar(label string, lb, ub float64, kind VarKind) (Var, error) {
	if math.IsNaN(lb) || math.IsNaN(ub) || lb > ub || math.IsInf(lb, 1) {
		return -1, fmt.Errorf("AddVar(%q) [%g, %g]: %w", label, lb, ub, ErrVarBounds)
	}
	m.vars = append(m.vars, varInfo{label: label, lb: lb, ub: ub, kind: kind})

	return Var(len(m.vars) - 1), nil
}

// AddBinary declares a {0,1} variable. It cannot fail.
func (m *Model) AddBinary(label string) Var {
	m.vars = append(m.vars, varInfo{label: label, lb: 0, ub: 1, kind: Binary})

	return Var(len(m.vars) - 1)
}

// AddInteger declares an integer variable on [lb, ub].
//
// Errors: as AddVar.
func (m *Model) AddInteger(label string, lb, ub float64) (Var, error) {
	return m.AddVar(label, lb, ub, Integer)
}

// AddConstraint appends the row "expr rel rhs". The expression is captured by
// value; the builder may be reused afterwards.
//
// Errors: ErrEmptyExpr for a term-less expression, ErrForeignVar if any term
// references a handle this model never issued, ErrVarBounds if rhs or any
// coefficient is NaN/±Inf.
func (m *Model) AddConstraint(expr *LinearExpr, rel Relation, rhs float64, label string) error {
	if err := m.checkExpr(expr, label); err != nil {
		return err
	}
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return fmt.Errorf("AddConstraint(%q): rhs: %w", label, ErrVarBounds)
	}
	m.cons = append(m.cons, Constraint{Expr: *expr, Rel: rel, RHS: rhs, Label: label})

	return nil
}

// Minimize installs the objective. Calling it again replaces the previous
// objective; the last call wins.
//
// Errors: as AddConstraint (ErrEmptyExpr, ErrForeignVar, ErrVarBounds).
func (m *Model) Minimize(expr *LinearExpr) error {
	if err := m.checkExpr(expr, "objective"); err != nil {
		return err
	}
	m.obj = *expr
	m.hasObj = true

	return nil
}

// checkExpr validates one incoming expression against this model.
func (m *Model) checkExpr(expr *LinearExpr, label string) error {
	if expr == nil || expr.Len() == 0 {
		return fmt.Errorf("%q: %w", label, ErrEmptyExpr)
	}
	if !expr.finite() {
		return fmt.Errorf("%q: %w", label, ErrVarBounds)
	}
	var i int
	for i = 0; i < len(expr.terms); i++ {
		if v := expr.terms[i].Var; v < 0 || int(v) >= len(m.vars) {
			return fmt.Errorf("%q: var %d: %w", label, v, ErrForeignVar)
		}
	}

	return nil
}

// NumVars returns the number of declared variables.
func (m *Model) NumVars() int { return len(m.vars) }

// NumConstraints returns the number of constraint rows.
func (m *Model) NumConstraints() int { return len(m.cons) }

// Bounds returns [lb, ub] for v. It panics on a foreign handle: reading a
// handle the model never issued is a programming error, not an input error.
func (m *Model) Bounds(v Var) (lb, ub float64) {
	info := m.vars[v]

	return info.lb, info.ub
}

// Kind returns the integrality class of v.
func (m *Model) Kind(v Var) VarKind { return m.vars[v].kind }

// Label returns the cosmetic label of v.
func (m *Model) Label(v Var) string { return m.vars[v].label }

// Constraints exposes the constraint rows. Callers must treat the slice and
// everything it references as read-only.
func (m *Model) Constraints() []Constraint { return m.cons }

// Objective returns the minimization objective and whether one was installed.
func (m *Model) Objective() (LinearExpr, bool) { return m.obj, m.hasObj }
