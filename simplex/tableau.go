// Package simplex — dense tableau and pivoting primitives.
//
// This file provides the mechanical core shared by both simplex phases: a
// dense row-major tableau, the pivot operation, objective-row installation,
// and the Bland-rule iteration loop. Formulation-specific work (standard
// form, artificials, verdicts) lives in lp.go.
//
// Design:
//   - Dense [][]float64 rows; the formulations in this module stay in the
//     hundreds of rows, where dense beats sparse bookkeeping.
//   - Bland's rule for both entering and leaving choices: anti-cycling and
//     fully deterministic.
//   - The RHS column sits at a fixed index n; the cost row carries the
//     negated objective value there, so pivoting maintains the objective
//     for free.
//
// Complexity:
//   - pivot: O(m · n) per call.
//   - iterate: O(pivots · m · n) overall, pivot count capped by the caller.
package simplex

import "math"

// iterStatus classifies the outcome of one iteration loop.
type iterStatus uint8

const (
	// iterOptimal means no entering column remains: the basis is optimal.
	iterOptimal iterStatus = iota
	// iterUnbounded means an entering column has no blocking row.
	iterUnbounded
	// iterStalled means the pivot cap was hit before optimality.
	iterStalled
)

// tableau is a dense simplex tableau. Columns [0, n) hold variables; column
// n holds the RHS. cost is the reduced-cost row in the same layout, with
// cost[n] = −(objective of the current basis). basis[i] names the column
// basic in row i; the tableau invariant is cost[basis[i]] == 0 and
// identity structure in the basic columns.
type tableau struct {
	m      int // rows
	n      int // variable columns (RHS lives at index n)
	a      [][]float64
	cost   []float64
	basis  []int
	eps    float64
	pivots int
}

// pivot makes column c basic in row r: scales row r so a[r][c] == 1, then
// eliminates column c from every other row and from the cost row.
func (t *tableau) pivot(r, c int) {
	var (
		i, j int
		f    float64
		pr   = t.a[r]
	)

	// Scale the pivot row.
	f = pr[c]
	for j = 0; j <= t.n; j++ {
		pr[j] /= f
	}

	// Eliminate from all other rows.
	for i = 0; i < t.m; i++ {
		if i == r {
			continue
		}
		f = t.a[i][c]
		if f == 0 {
			continue
		}
		row := t.a[i]
		for j = 0; j <= t.n; j++ {
			row[j] -= f * pr[j]
		}
	}

	// Eliminate from the cost row (this also advances −z in cost[n]).
	f = t.cost[c]
	if f != 0 {
		for j = 0; j <= t.n; j++ {
			t.cost[j] -= f * pr[j]
		}
	}

	t.basis[r] = c
	t.pivots++
}

// priceOut installs obj (length n) as the new objective and cancels the
// reduced costs of the current basis, restoring the tableau invariant.
func (t *tableau) priceOut(obj []float64) {
	var (
		i, j int
		f    float64
	)

	t.cost = make([]float64, t.n+1)
	copy(t.cost, obj)
	for i = 0; i < t.m; i++ {
		f = t.cost[t.basis[i]]
		if f == 0 {
			continue
		}
		row := t.a[i]
		for j = 0; j <= t.n; j++ {
			t.cost[j] -= f * row[j]
		}
	}
}

// iterate pivots until optimality, unboundedness, or the pivot cap.
//
// Entering: smallest column index in [0, enterMax) with reduced cost below
// −eps (Bland). lp.go passes the real-column bound so artificial columns
// never enter. Leaving: minimum ratio over rows with a positive pivot
// entry; ties resolve to the row whose basic column index is smallest
// (Bland again). Together the two choices exclude cycling.
func (t *tableau) iterate(enterMax, maxPivots int) iterStatus {
	var (
		i, c, lv    int
		ratio, best float64
	)

	for {
		if t.pivots >= maxPivots {
			return iterStalled
		}

		// Entering column.
		c = -1
		for i = 0; i < enterMax; i++ {
			if t.cost[i] < -t.eps {
				c = i
				break
			}
		}
		if c < 0 {
			return iterOptimal
		}

		// Leaving row by minimum ratio.
		lv = -1
		best = math.Inf(1)
		for i = 0; i < t.m; i++ {
			piv := t.a[i][c]
			if piv <= t.eps {
				continue
			}
			ratio = t.a[i][t.n] / piv
			if ratio < best || (ratio == best && lv >= 0 && t.basis[i] < t.basis[lv]) {
				best = ratio
				lv = i
			}
		}
		if lv < 0 {
			return iterUnbounded
		}

		t.pivot(lv, c)
	}
}

// dropRow removes row r by swapping in the last row. Phase 1 uses this for
// redundant rows whose artificial cannot be pivoted out.
func (t *tableau) dropRow(r int) {
	last := t.m - 1
	t.a[r] = t.a[last]
	t.basis[r] = t.basis[last]
	t.a = t.a[:last]
	t.basis = t.basis[:last]
	t.m = last
}

// objValue returns the objective of the current basis.
func (t *tableau) objValue() float64 { return -t.cost[t.n] }
