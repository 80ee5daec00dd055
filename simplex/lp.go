// Package simplex — LP relaxation in standard form and the two-phase driver.
//
// solveRelaxation turns a mip.Model plus working bounds into the standard
// form the tableau wants, runs phase 1 (artificial infeasibility) and
// phase 2 (model objective), and maps the solved point back to model space.
//
// Standard-form transformation, in order:
//  1. Shift every variable by its finite lower bound: y = x − lb, y ≥ 0.
//     Constraint constants fold into the RHS during the same pass.
//  2. Emit finite upper bounds as rows y_j ≤ ub_j − lb_j.
//  3. Normalize every row to a non-negative RHS (negate and flip ≤/≥).
//  4. Add a slack (+1) per ≤ row, a surplus (−1) per ≥ row, and an
//     artificial (+1) per ≥/= row. Slacks seed the basis for ≤ rows,
//     artificials for the rest.
//
// Artificial columns sit in the trailing block [nReal, nTot) and are barred
// from entering, so after phase 1 drives them out they are inert.
package simplex

import (
	"math"

	"github.com/katalvlaran/lvlopt/mip"
)

// lpStatus classifies one relaxation solve.
type lpStatus uint8

const (
	lpOptimal lpStatus = iota
	lpInfeasible
	lpUnbounded
	// lpNumeric covers pivot-cap exhaustion and ratio-test breakdowns;
	// the search maps it to mip.Undefined.
	lpNumeric
)

// lpResult carries the relaxation verdict, the objective, and the solved
// point mapped back to model space (lower-bound shift undone).
type lpResult struct {
	status lpStatus
	obj    float64
	x      []float64
	pivots int
}

// rowBuf is one constraint row mid-transformation: dense coefficients over
// the structural variables, already shifted to y-space.
type rowBuf struct {
	coef []float64
	rel  mip.Relation
	rhs  float64
}

// solveRelaxation solves min cᵀx subject to the model's rows under the
// working bounds lb/ub (branching tightens these around the model's own
// bounds). All lower bounds must be finite; Solve validates that upfront.
func solveRelaxation(mdl *mip.Model, lb, ub []float64, eps float64, maxPivots int) lpResult {
	var (
		nS   = mdl.NumVars()
		i, j int
		bufs = make([]rowBuf, 0, mdl.NumConstraints()+nS)
	)

	// Stage 1 — gather rows in y-space.
	for _, c := range mdl.Constraints() {
		rb := rowBuf{coef: make([]float64, nS), rel: c.Rel, rhs: c.RHS - c.Expr.Const()}
		for _, tm := range c.Expr.Terms() {
			rb.coef[tm.Var] += tm.Coef // duplicate terms accumulate
		}
		for j = 0; j < nS; j++ {
			if rb.coef[j] != 0 {
				rb.rhs -= rb.coef[j] * lb[j]
			}
		}
		bufs = append(bufs, rb)
	}
	for j = 0; j < nS; j++ {
		if math.IsInf(ub[j], 1) {
			continue
		}
		rb := rowBuf{coef: make([]float64, nS), rel: mip.LE, rhs: ub[j] - lb[j]}
		rb.coef[j] = 1
		bufs = append(bufs, rb)
	}

	// Stage 2 — normalize to non-negative RHS.
	scale := 1.0
	for i = range bufs {
		if bufs[i].rhs < 0 {
			for j = range bufs[i].coef {
				bufs[i].coef[j] = -bufs[i].coef[j]
			}
			bufs[i].rhs = -bufs[i].rhs
			switch bufs[i].rel {
			case mip.LE:
				bufs[i].rel = mip.GE
			case mip.GE:
				bufs[i].rel = mip.LE
			}
		}
		if bufs[i].rhs > scale {
			scale = bufs[i].rhs
		}
	}

	// Stage 3 — column layout and tableau fill.
	var nSlack, nArt int
	for i = range bufs {
		switch bufs[i].rel {
		case mip.LE:
			nSlack++
		case mip.GE:
			nSlack++
			nArt++
		case mip.EQ:
			nArt++
		}
	}

	var (
		m     = len(bufs)
		nReal = nS + nSlack
		nTot  = nReal + nArt
		t     = tableau{m: m, n: nTot, eps: eps, a: make([][]float64, m), basis: make([]int, m)}
	)
	slackAt, artAt := nS, nReal
	for i = range bufs {
		row := make([]float64, nTot+1)
		copy(row, bufs[i].coef)
		row[nTot] = bufs[i].rhs
		switch bufs[i].rel {
		case mip.LE:
			row[slackAt] = 1
			t.basis[i] = slackAt
			slackAt++
		case mip.GE:
			row[slackAt] = -1
			slackAt++
			row[artAt] = 1
			t.basis[i] = artAt
			artAt++
		case mip.EQ:
			row[artAt] = 1
			t.basis[i] = artAt
			artAt++
		}
		t.a[i] = row
	}

	pivCap := maxPivots
	if pivCap <= 0 {
		pivCap = 1000 + 50*(m+nTot)
	}

	// Stage 4 — phase 1: drive artificial infeasibility to zero.
	if nArt > 0 {
		phase1 := make([]float64, nTot)
		for j = nReal; j < nTot; j++ {
			phase1[j] = 1
		}
		t.priceOut(phase1)
		switch t.iterate(nReal, pivCap) {
		case iterStalled, iterUnbounded:
			// Phase 1 is bounded below by zero; "unbounded" here means the
			// ratio test broke down numerically.
			return lpResult{status: lpNumeric, pivots: t.pivots}
		}
		if t.objValue() > eps*scale {
			return lpResult{status: lpInfeasible, pivots: t.pivots}
		}
		t.evictArtificials(nReal)
	}

	// Stage 5 — phase 2: minimize the model objective over y.
	var (
		obj      = make([]float64, nTot)
		shift    float64
		objExpr  mip.LinearExpr
		objKonst float64
	)
	objExpr, _ = mdl.Objective()
	objKonst = objExpr.Const()
	for _, tm := range objExpr.Terms() {
		obj[tm.Var] += tm.Coef
	}
	for j = 0; j < nS; j++ {
		shift += obj[j] * lb[j]
	}
	t.priceOut(obj)
	switch t.iterate(nReal, pivCap) {
	case iterStalled:
		return lpResult{status: lpNumeric, pivots: t.pivots}
	case iterUnbounded:
		return lpResult{status: lpUnbounded, pivots: t.pivots}
	}

	// Stage 6 — map the solved point back to model space.
	x := make([]float64, nS)
	copy(x, lb)
	for i = 0; i < t.m; i++ {
		if b := t.basis[i]; b < nS {
			if v := t.a[i][t.n]; v > 0 {
				x[b] = lb[b] + v
			}
		}
	}

	return lpResult{
		status: lpOptimal,
		obj:    t.objValue() + shift + objKonst,
		x:      x,
		pivots: t.pivots,
	}
}

// evictArtificials removes leftover basic artificials after phase 1. Each
// one is pivoted onto any usable real column (a degenerate pivot, since the
// artificial's value is already zero); rows offering no usable column carry
// a redundant constraint and are dropped. Without this sweep, an artificial
// left basic at zero could creep positive during phase 2 and silently break
// primal feasibility.
func (t *tableau) evictArtificials(nReal int) {
	var i, j int
	for i = 0; i < t.m; {
		if t.basis[i] < nReal {
			i++
			continue
		}
		piv := -1
		for j = 0; j < nReal; j++ {
			if math.Abs(t.a[i][j]) > t.eps {
				piv = j
				break
			}
		}
		if piv < 0 {
			t.dropRow(i)
			continue
		}
		t.pivot(i, piv)
		i++
	}
}
