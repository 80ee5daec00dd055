// SPDX-License-Identifier: MIT

// Package mip — linear expressions and relational constraints.
//
// A LinearExpr is an append-only term list; building one performs no
// deduplication (solvers accumulate coefficients per variable when they
// densify a row, so repeated AddTerm calls on the same Var are legal and
// additive). All builder methods return the receiver for chaining.
package mip

import "math"

// Term is one coefficient×variable product inside a linear expression.
type Term struct {
	Var  Var
	Coef float64
}

// LinearExpr is a linear form  Σ Coef_i·Var_i + Const.
// The zero value is an empty expression ready for use.
type LinearExpr struct {
	terms []Term
	konst float64
}

// NewExpr returns an empty expression.
func NewExpr() *LinearExpr { return &LinearExpr{} }

// AddTerm appends coef·v to the expression and returns the receiver.
// Zero coefficients are kept; they are harmless and keep emission code
// branch-free.
func (e *LinearExpr) AddTerm(v Var, coef float64) *LinearExpr {
	e.terms = append(e.terms, Term{Var: v, Coef: coef})

	return e
}

// AddVar appends 1·v to the expression and returns the receiver.
func (e *LinearExpr) AddVar(v Var) *LinearExpr { return e.AddTerm(v, 1) }

// AddConst adds c to the expression's constant part and returns the receiver.
func (e *LinearExpr) AddConst(c float64) *LinearExpr {
	e.konst += c

	return e
}

// Add appends every term and the constant of other onto e and returns e.
// other is not modified.
func (e *LinearExpr) Add(other *LinearExpr) *LinearExpr {
	if other == nil {
		return e
	}
	e.terms = append(e.terms, other.terms...)
	e.konst += other.konst

	return e
}

// Terms exposes the term list. Callers must treat it as read-only.
func (e *LinearExpr) Terms() []Term { return e.terms }

// Const returns the constant part of the expression.
func (e *LinearExpr) Const() float64 { return e.konst }

// Len returns the number of (non-collapsed) terms.
func (e *LinearExpr) Len() int { return len(e.terms) }

// finite reports whether every coefficient and the constant are finite.
func (e *LinearExpr) finite() bool {
	if math.IsNaN(e.konst) || math.IsInf(e.konst, 0) {
		return false
	}
	var i int
	for i = 0; i < len(e.terms); i++ {
		if math.IsNaN(e.terms[i].Coef) || math.IsInf(e.terms[i].Coef, 0) {
			return false
		}
	}

	return true
}

// Relation is the comparison operator of a constraint row.
type Relation uint8

const (
	// LE constrains the expression to be ≤ RHS.
	LE Relation = iota
	// GE constrains the expression to be ≥ RHS.
	GE
	// EQ constrains the expression to equal RHS exactly.
	EQ
)

// String returns the operator in LP-file notation.
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// Constraint is one relational row: Expr Rel RHS.
// Label is cosmetic (LP dumps, logs); nothing ever parses it back.
type Constraint struct {
	Expr  LinearExpr
	Rel   Relation
	RHS   float64
	Label string
}
