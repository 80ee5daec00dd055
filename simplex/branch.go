// Package simplex — branch and bound over the LP relaxation.
//
// The engine enumerates integer assignments via a depth-first search over
// variable-bound splits, with relaxation-bound pruning and a soft time
// budget.
//
// Rationale (succinct):
//  1. Each node re-solves the LP relaxation under the node's working
//     bounds. The formulations this solver serves stay small, so a fresh
//     dense solve per node costs less than maintaining warm-start state.
//  2. Pruning: a node whose relaxation objective cannot beat the incumbent
//     by more than eps is abandoned — the relaxation is a valid lower
//     bound on every completion below the node.
//  3. Branching: the most fractional integer variable (distance to the
//     nearest integer, index tiebreak), split into floor and ceiling
//     children. The floor side runs first: allocation flows sit at the low
//     side of their splits in most optima, so the down branch tends to
//     tighten the incumbent sooner.
//  4. Budgets: wall-clock deadline and node cap, checked once per node —
//     already sparse next to the LP solve each node performs.
//
// Complexity:
//   - Worst case exponential in the number of integer variables.
//   - Per node: one relaxation solve + O(1) state updates.
//   - Memory: O(vars) working bounds + O(depth) recursion.
package simplex

import (
	"math"
	"time"

	"github.com/katalvlaran/lvlopt/mip"
)

// bnbEngine holds all search data and policies.
// A dedicated engine struct (instead of anonymous closures) keeps
// dependencies explicit, testing simpler, and hot-path state predictable.
type bnbEngine struct {
	// Configuration / policy
	mdl       *mip.Model
	eps       float64
	intEps    float64
	maxPivots int

	// Budgets
	useDeadline bool
	deadline    time.Time
	maxNodes    int

	// Working bounds; branching tightens these in place and restores them
	// on backtrack. intIdx lists integer/binary variables in index order.
	lb, ub []float64
	intIdx []int

	// Incumbent
	bestVals []float64
	bestObj  float64
	foundAny bool

	// Outcome flags for verdict mapping
	hitBudget    bool
	sawUnbounded bool
	sawNumeric   bool

	// Stats
	nodes    int
	pivots   int
	maxDepth int
}

// budgetCheck reports whether a budget tripped, latching hitBudget.
func (e *bnbEngine) budgetCheck() bool {
	if e.maxNodes > 0 && e.nodes >= e.maxNodes {
		e.hitBudget = true

		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.hitBudget = true

		return true
	}

	return false
}

// record commits a new incumbent. Integer variables are snapped to the
// integers they already sit within intEps of, so downstream activation
// checks never see 0.9999999.
func (e *bnbEngine) record(res lpResult) {
	if e.bestVals == nil {
		e.bestVals = make([]float64, len(res.x))
	}
	copy(e.bestVals, res.x)
	for _, j := range e.intIdx {
		e.bestVals[j] = math.Round(e.bestVals[j])
	}
	e.bestObj = res.obj
	e.foundAny = true
}

// branchVar picks the most fractional integer variable of res, or -1 when
// every integer variable is integral within intEps. Ties resolve to the
// smallest index, keeping the search deterministic.
func (e *bnbEngine) branchVar(res lpResult) int {
	var (
		br   = -1
		most float64
		f, d float64
	)
	for _, j := range e.intIdx {
		f = res.x[j] - math.Floor(res.x[j])
		d = math.Min(f, 1-f)
		if d <= e.intEps {
			continue
		}
		if d > most {
			most = d
			br = j
		}
	}

	return br
}

// dfs performs the core search: solve the node relaxation, prune against
// the incumbent, then branch on the most fractional integer variable.
func (e *bnbEngine) dfs(depth int) {
	if e.budgetCheck() {
		return
	}
	e.nodes++
	if depth > e.maxDepth {
		e.maxDepth = depth
	}

	res := solveRelaxation(e.mdl, e.lb, e.ub, e.eps, e.maxPivots)
	e.pivots += res.pivots
	switch res.status {
	case lpInfeasible:
		return
	case lpUnbounded:
		// Bounds only tighten down the tree, so an unbounded relaxation can
		// only surface at the root; the caller maps it to mip.Unbounded.
		e.sawUnbounded = true

		return
	case lpNumeric:
		e.sawNumeric = true

		return
	}

	// Prune: the relaxation bounds every completion below this node.
	if e.foundAny && res.obj >= e.bestObj-e.eps {
		return
	}

	br := e.branchVar(res)
	if br < 0 {
		e.record(res)

		return
	}

	// Branch on br: floor side first, then ceiling; restore bounds on the
	// way out so siblings see the parent's box.
	var (
		fl           = math.Floor(res.x[br])
		oldLB, oldUB = e.lb[br], e.ub[br]
	)

	e.ub[br] = fl
	e.dfs(depth + 1)
	e.ub[br] = oldUB

	e.lb[br] = fl + 1
	e.dfs(depth + 1)
	e.lb[br] = oldLB
}
