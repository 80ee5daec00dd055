// Package simplex_test validates the branch-and-bound layer on models with
// integer and binary variables.
// Focus:
//  1. Correctness on tiny instances with hand-checked integer optima.
//  2. Gated-flow models (the shape the allocation formulations emit).
//  3. Verdicts: integer-infeasible bounds, exhausted node/time budgets.
//  4. Determinism under identical options.
//  5. Strict sentinels on malformed input.
package simplex_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/lvlopt/mip"
	"github.com/katalvlaran/lvlopt/simplex"
)

// mkGatedModel builds the miniature allocation used by several tests: two
// gated lanes feeding one demand of 60 units.
//
//	min  f1 + 2·f2 + 10·g1 + 10·g2
//	s.t. f1 + f2 = 60
//	     f_i ≤ 100·g_i, f1 + … ≥ 40·g_i (per-lane activation minimum)
//
// Unique optimum: lane 1 only — f1=60, g1=1, f2=0, g2=0, objective 70.
func mkGatedModel(t *testing.T) (*mip.Model, [4]mip.Var) {
	t.Helper()
	m := mip.NewModel("gated-lanes")
	g1 := m.AddBinary("g1")
	g2 := m.AddBinary("g2")
	f1 := mustVar(t, m, "f1", 0, 100)
	f2 := mustVar(t, m, "f2", 0, 100)

	if err := mip.LinkActivation(m, g1, []mip.Var{f1}, []float64{100}, 40); err != nil {
		t.Fatalf("LinkActivation(g1): %v", err)
	}
	if err := mip.LinkActivation(m, g2, []mip.Var{f2}, []float64{100}, 40); err != nil {
		t.Fatalf("LinkActivation(g2): %v", err)
	}
	mustCons(t, m, mip.NewExpr().AddVar(f1).AddVar(f2), mip.EQ, 60)
	mustMin(t, m, mip.NewExpr().
		AddVar(f1).AddTerm(f2, 2).
		AddTerm(g1, 10).AddTerm(g2, 10))

	return m, [4]mip.Var{g1, g2, f1, f2}
}

// ---------------------------
// 1) Integer optima.
// ---------------------------

func TestBnB_BinaryKnapsack(t *testing.T) {
	// min −3x − 2y  s.t.  2x + 2y ≤ 3, x,y binary.
	// Relaxation wants (1, 0.5); the integer optimum is (1, 0) at −3.
	m := mip.NewModel("knapsack")
	x := m.AddBinary("x")
	y := m.AddBinary("y")
	mustCons(t, m, mip.NewExpr().AddTerm(x, 2).AddTerm(y, 2), mip.LE, 3)
	mustMin(t, m, mip.NewExpr().AddTerm(x, -3).AddTerm(y, -2))

	sol, stats, err := simplex.New().SolveWithStats(m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	mustStatus(t, sol, mip.Optimal)
	mustObjective(t, sol, -3)
	mustValue(t, sol, x, 1)
	mustValue(t, sol, y, 0)
	if stats.Nodes < 2 {
		t.Fatalf("expected branching (≥2 nodes), got %d", stats.Nodes)
	}
}

func TestBnB_IntegerVariableRounding(t *testing.T) {
	// min −x  s.t.  2x ≤ 7, x integer in [0, 10] → x = 3, not 3.5.
	m := mip.NewModel("floor")
	x, err := m.AddInteger("x", 0, 10)
	if err != nil {
		t.Fatalf("AddInteger: %v", err)
	}
	mustCons(t, m, mip.NewExpr().AddTerm(x, 2), mip.LE, 7)
	mustMin(t, m, mip.NewExpr().AddTerm(x, -1))

	sol, err := simplex.New().Solve(m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	mustStatus(t, sol, mip.Optimal)
	mustObjective(t, sol, -3)
	mustValue(t, sol, x, 3)
	// The incumbent snaps integers exactly; activation checks downstream
	// rely on this.
	if got := sol.Value(x); got != math.Round(got) {
		t.Fatalf("integer value not snapped: %v", got)
	}
}

// ---------------------------
// 2) Gated flows.
// ---------------------------

func TestBnB_GatedLanes(t *testing.T) {
	m, vars := mkGatedModel(t)

	sol, err := simplex.New().Solve(m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	mustStatus(t, sol, mip.Optimal)
	mustObjective(t, sol, 70)
	mustValue(t, sol, vars[2], 60) // f1 carries everything
	mustValue(t, sol, vars[3], 0)  // f2 idle
	if !mip.IsActive(sol, vars[0]) {
		t.Fatalf("g1 should be active")
	}
	if mip.IsActive(sol, vars[1]) {
		t.Fatalf("g2 should be idle")
	}
}

// ---------------------------
// 3) Verdicts and budgets.
// ---------------------------

func TestBnB_IntegerInfeasibleBounds(t *testing.T) {
	// No integer fits in [0.3, 0.7]; detected before any search runs.
	m := mip.NewModel("no-integer-point")
	x, err := m.AddVar("x", 0.3, 0.7, mip.Integer)
	if err != nil {
		t.Fatalf("AddVar: %v", err)
	}
	mustMin(t, m, mip.NewExpr().AddVar(x))

	sol, stats, err := simplex.New().SolveWithStats(m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	mustStatus(t, sol, mip.Infeasible)
	if stats.Nodes != 0 {
		t.Fatalf("bound prepass should fire before search, got %d nodes", stats.Nodes)
	}
}

func TestBnB_NodeBudgetExhausted(t *testing.T) {
	// The knapsack needs branching; one node cannot finish it.
	m := mip.NewModel("budget")
	x := m.AddBinary("x")
	y := m.AddBinary("y")
	mustCons(t, m, mip.NewExpr().AddTerm(x, 2).AddTerm(y, 2), mip.LE, 3)
	mustMin(t, m, mip.NewExpr().AddTerm(x, -3).AddTerm(y, -2))

	sol, stats, err := simplex.New(simplex.WithMaxNodes(1)).SolveWithStats(m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	mustStatus(t, sol, mip.NotSolved)
	if stats.Nodes != 1 {
		t.Fatalf("node budget of 1 should expand exactly 1 node, got %d", stats.Nodes)
	}
}

func TestBnB_TimeLimit_TinyBudget(t *testing.T) {
	m, _ := mkGatedModel(t)

	// A nanosecond is over before the root check runs.
	sol, err := simplex.New(simplex.WithTimeLimit(time.Nanosecond)).Solve(m)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	mustStatus(t, sol, mip.NotSolved)
}

// -------------------------------------------
// 4) Determinism — identical runs are equal.
// -------------------------------------------

func TestBnB_Determinism_Repeat4(t *testing.T) {
	m, vars := mkGatedModel(t)
	s := simplex.New()

	var (
		first  mip.Solution
		seeded bool
	)
	Repeat(t, 4, func(t *testing.T) {
		sol, err := s.Solve(m)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		mustStatus(t, sol, mip.Optimal)
		if !seeded {
			first = sol
			seeded = true

			return
		}
		if sol.Objective != first.Objective {
			t.Fatalf("nondeterministic objective: %.12f vs %.12f", sol.Objective, first.Objective)
		}
		for _, v := range vars {
			if sol.Value(v) != first.Value(v) {
				t.Fatalf("nondeterministic value for var %d: %.12f vs %.12f",
					v, sol.Value(v), first.Value(v))
			}
		}
	})
}

// ---------------------------
// 5) Strict sentinels.
// ---------------------------

func TestSolve_StrictSentinels(t *testing.T) {
	s := simplex.New()

	// Nil model.
	_, err := s.Solve(nil)
	mustErrIs(t, err, simplex.ErrNilModel)

	// Objective never installed.
	m := mip.NewModel("no-objective")
	mustVar(t, m, "x", 0, 1)
	_, err = s.Solve(m)
	mustErrIs(t, err, simplex.ErrNoObjective)

	// Free variable (lower bound −Inf).
	m2 := mip.NewModel("free-var")
	x, aerr := m2.AddVar("x", math.Inf(-1), 5, mip.Continuous)
	if aerr != nil {
		t.Fatalf("AddVar: %v", aerr)
	}
	mustMin(t, m2, mip.NewExpr().AddVar(x))
	_, err = s.Solve(m2)
	mustErrIs(t, err, simplex.ErrFreeVar)
}
