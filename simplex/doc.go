// Package simplex implements the bundled MILP optimizer behind the
// mip.Solver contract: linear relaxations are solved by a two-phase dense
// simplex, and integrality is restored by a depth-first branch-and-bound
// search over variable bounds.
//
// The two layers are:
//
//   - Two-phase simplex (tableau.go, lp.go)
//
//   - Method: textbook dense tableau; phase 1 minimizes artificial
//     infeasibility, phase 2 minimizes the model objective. Entering and
//     leaving columns follow Bland's rule, so pivoting terminates and runs
//     are reproducible.
//
//   - Time:   O(pivots · m · n) with m rows and n columns; finite upper
//     bounds are emitted as rows, which keeps the tableau simple at the
//     cost of extra rows.
//
//   - Memory: O(m · n) for the tableau.
//
//   - Branch and bound (branch.go, solve.go)
//
//   - Method: DFS over integer variables. Each node re-solves the
//     relaxation under the node's working bounds; subtrees are pruned
//     when the relaxation bound cannot beat the incumbent. Branching
//     picks the most fractional integer variable (index tiebreak) and
//     descends the floor side first.
//
//   - Time:   worst case exponential in the number of integer variables;
//     practical speed comes from pruning.
//
//   - Memory: O(vars) for working bounds plus recursion depth.
//
// # Determinism
//
// Same model, same options, same answer: Bland's rule fixes the pivot
// sequence, branching order is fractionality with index tiebreak, and no
// randomized or concurrent state exists anywhere in the search.
//
// # API
//
// Options configures the solver; DefaultOptions() returns production-safe
// defaults and functional options override individual fields:
//
//	s := simplex.New(
//	    simplex.WithTimeLimit(30 * time.Second),
//	    simplex.WithMaxNodes(100_000),
//	)
//	sol, err := s.Solve(model)
//
// Solve returns business verdicts (Infeasible, Unbounded, NotSolved on an
// exhausted budget, Undefined on numerical breakdown) inside the
// mip.Solution; the error return is reserved for invalid input.
// SolveWithStats additionally reports node, pivot, and depth counters.
//
// # Errors
//
//	ErrNilModel    - the model pointer is nil.
//	ErrNoObjective - Minimize was never called on the model.
//	ErrFreeVar     - a variable has no finite lower bound; shift to a
//	                 bounded formulation before solving.
//
// # Integration
//
//   - Consumes github.com/katalvlaran/lvlopt/mip models and produces
//     mip.Solution values; carrier and warehouse formulations plug in
//     through the mip.Solver interface.
package simplex
