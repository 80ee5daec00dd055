// Package simplex - public entry points for the bundled MILP solver.
//
// This file provides the canonical way to run the optimizer:
//
//   - New: build a Solver from DefaultOptions plus functional overrides.
//   - Solver.Solve: the mip.Solver contract — business verdicts inside the
//     Solution, errors reserved for invalid input.
//   - Solver.SolveWithStats: Solve plus node/pivot/depth counters.
//
// Design principles:
//   - Deterministic: Bland pivoting, index-ordered branching, no
//     randomness, no concurrency inside a solve.
//   - Strict sentinels: only errors from types.go, wrapped with the
//     offending variable where that helps.
//   - Stable cost: returned objectives are rounded to 1e−9 to prevent FP
//     drift across platforms.
package simplex

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvlopt/mip"
)

// roundScale controls final objective stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Solver runs MILP models through two-phase simplex relaxations under a
// branch-and-bound search. The zero value solves with DefaultOptions; New
// applies functional overrides. A Solver holds no per-solve state, so one
// instance may be reused across models (one call at a time per model —
// Solve treats the model as read-only but shares no locks).
type Solver struct {
	opts Options
}

// New constructs a Solver from DefaultOptions overridden by opts.
// Invalid option values panic with the matching sentinel message; see the
// Option constructors in types.go.
func New(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return &Solver{opts: o}
}

// Solve implements mip.Solver.
//
// Verdicts land in the Solution status: Optimal carries values and the
// stabilized objective; Infeasible, Unbounded, NotSolved (budget
// exhausted), and Undefined (numerical breakdown) carry no values.
//
// Errors: ErrNilModel, ErrNoObjective, ErrFreeVar (wrapped with the
// variable index).
func (s *Solver) Solve(m *mip.Model) (mip.Solution, error) {
	sol, _, err := s.SolveWithStats(m)

	return sol, err
}

// SolveWithStats runs the search and additionally reports effort counters.
//
// Contracts:
//   - m is treated as read-only; it may be solved again afterwards.
//   - Every variable needs a finite lower bound (ErrFreeVar otherwise);
//     +Inf upper bounds are fine.
//
// Complexity: see the package documentation; budget options bound the
// worst case.
func (s *Solver) SolveWithStats(m *mip.Model) (mip.Solution, Stats, error) {
	started := time.Now()
	opts := s.opts.withDefaults()

	// Stage 1 - validation.
	if m == nil {
		return mip.Solution{}, Stats{}, ErrNilModel
	}
	if _, ok := m.Objective(); !ok {
		return mip.Solution{}, Stats{}, ErrNoObjective
	}

	// Stage 2 - working bounds, integer roster, integral-bound tightening.
	var (
		nS     = m.NumVars()
		lb     = make([]float64, nS)
		ub     = make([]float64, nS)
		intIdx []int
		j      int
	)
	for j = 0; j < nS; j++ {
		v := mip.Var(j)
		l, u := m.Bounds(v)
		if math.IsInf(l, -1) {
			return mip.Solution{}, Stats{}, fmt.Errorf("variable %d (%q): %w", j, m.Label(v), ErrFreeVar)
		}
		lb[j], ub[j] = l, u
		if m.Kind(v) == mip.Continuous {
			continue
		}
		intIdx = append(intIdx, j)
		lb[j] = math.Ceil(l - opts.IntEps)
		if !math.IsInf(u, 1) {
			ub[j] = math.Floor(u + opts.IntEps)
		}
		if lb[j] > ub[j] {
			// No integer point inside [l, u]: the model is infeasible
			// before any search runs.
			sol := mip.NewSolution(mip.Infeasible, 0, nil)

			return sol, Stats{Elapsed: time.Since(started)}, nil
		}
	}

	// Stage 3 - engine initialization (no anonymous closures).
	var e bnbEngine
	e.mdl = m
	e.eps = opts.Eps
	e.intEps = opts.IntEps
	e.maxPivots = opts.MaxPivots
	e.maxNodes = opts.MaxNodes
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = started.Add(opts.TimeLimit)
	}
	e.lb, e.ub = lb, ub
	e.intIdx = intIdx
	e.bestObj = math.Inf(1)

	// Stage 4 - search.
	e.dfs(0)

	// Stage 5 - verdict mapping. Unbounded outranks everything (it is a
	// root-level formulation defect); numeric breakdown voids any proof;
	// a tripped budget means "no verdict"; otherwise the exhausted search
	// proves either the incumbent or infeasibility.
	st := Stats{Nodes: e.nodes, Pivots: e.pivots, MaxDepth: e.maxDepth, Elapsed: time.Since(started)}
	switch {
	case e.sawUnbounded:
		return mip.NewSolution(mip.Unbounded, 0, nil), st, nil
	case e.sawNumeric:
		return mip.NewSolution(mip.Undefined, 0, nil), st, nil
	case e.hitBudget:
		return mip.NewSolution(mip.NotSolved, 0, nil), st, nil
	case e.foundAny:
		return mip.NewSolution(mip.Optimal, round1e9(e.bestObj), e.bestVals), st, nil
	default:
		return mip.NewSolution(mip.Infeasible, 0, nil), st, nil
	}
}
