// Package simplex_test shared helpers: tiny model builders, sentinel and
// status assertions, deterministic repetition.
package simplex_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlopt/mip"
)

// valEps is the value-comparison tolerance for solved points. Looser than
// the solver's LP tolerance because assertions compare post-pivot floats.
const valEps = 1e-6

// mustErrIs fails unless errors.Is(err, want).
func mustErrIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("want %v, got %v", want, err)
	}
}

// mustStatus fails unless the solution carries the wanted verdict.
func mustStatus(t *testing.T, sol mip.Solution, want mip.Status) {
	t.Helper()
	if sol.Status != want {
		t.Fatalf("want status %v, got %v (objective %.12f)", want, sol.Status, sol.Objective)
	}
}

// mustValue fails unless the solved value of v is within valEps of want.
func mustValue(t *testing.T, sol mip.Solution, v mip.Var, want float64) {
	t.Helper()
	if got := sol.Value(v); math.Abs(got-want) > valEps {
		t.Fatalf("var %d: want %.9f, got %.9f", v, want, got)
	}
}

// mustObjective fails unless the objective is within valEps of want.
func mustObjective(t *testing.T, sol mip.Solution, want float64) {
	t.Helper()
	if math.Abs(sol.Objective-want) > valEps {
		t.Fatalf("objective: want %.9f, got %.9f", want, sol.Objective)
	}
}

// Repeat runs fn n times under the same t; used for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}

// expectPanic fails unless fn panics.
func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// mustVar adds a continuous variable or fails the test.
func mustVar(t *testing.T, m *mip.Model, label string, lb, ub float64) mip.Var {
	t.Helper()
	v, err := m.AddVar(label, lb, ub, mip.Continuous)
	if err != nil {
		t.Fatalf("AddVar(%s): %v", label, err)
	}

	return v
}

// mustCons adds a constraint or fails the test.
func mustCons(t *testing.T, m *mip.Model, e *mip.LinearExpr, rel mip.Relation, rhs float64) {
	t.Helper()
	if err := m.AddConstraint(e, rel, rhs, ""); err != nil {
		t.Fatalf("AddConstraint: %v", err)
	}
}

// mustMin installs the objective or fails the test.
func mustMin(t *testing.T, m *mip.Model, e *mip.LinearExpr) {
	t.Helper()
	if err := m.Minimize(e); err != nil {
		t.Fatalf("Minimize: %v", err)
	}
}
