// SPDX-License-Identifier: MIT
// Package: lvlopt/warehouse
//
// formulate.go — translation of a Problem into a mip.Model.
//
// Rationale (succinct):
//  1. Variables live in dense [warehouse][destination] slices; extraction
//     reads any route in O(1) and nothing is recovered from labels.
//  2. Activation gating goes through mip.LinkActivation with a zero group
//     minimum: the capacity row is the natural big-M, and an activated
//     warehouse is allowed to ship nothing (the fixed cost then keeps the
//     optimizer from activating it gratuitously).
//  3. Lateness is resolved here, once, via Problem.Late; the tolerance row
//     carries (late − Tolerance) coefficients so the whole service-level
//     rule is a single ≤ 0 row per destination.
//
// Complexity:
//   W·D integer variables, W binaries, W·D gating rows + D target rows +
//   D tolerance rows. Formulation time and memory are linear in all of it.

package warehouse

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/mip"
)

// Formulation couples the built model with the variable handles needed to
// read a solution back. It keeps a reference to the Problem it was built
// from; callers must not mutate that Problem between Formulate and Extract.
type Formulation struct {
	// Model is the complete MILP, ready for any mip.Solver.
	Model *mip.Model
	// Flow[w][d] is the shipment-count variable for route w→d.
	Flow [][]mip.Var
	// Active[w] is the binary that is 1 when warehouse w is used.
	Active []mip.Var

	prob *Problem
}

// Formulate validates p and builds the fixed-activation network MILP.
//
// Contracts:
//   - Returns the first Validate sentinel unchanged on structural defects.
//   - A negative capacity surfaces as a wrapped mip.ErrVarBounds; no partial
//     model escapes.
//   - Variable labels follow ship_<warehouse>_<dest> and use_<warehouse>;
//     they are cosmetic and never parsed.
//   - The tolerance row is emitted for every destination, late routes or
//     not; with no late routes it is vacuous and costs one slack column.
func Formulate(p *Problem) (*Formulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var (
		m  = mip.NewModel("warehouse_shipments")
		nW = len(p.Warehouses)
		nD = len(p.Destinations)
		f  = &Formulation{Model: m, prob: p}

		w, d int
		late float64
		expr *mip.LinearExpr
		err  error
	)

	// Stage 1: decision variables.
	f.Flow = make([][]mip.Var, nW)
	f.Active = make([]mip.Var, nW)
	for w = 0; w < nW; w++ {
		f.Active[w] = m.AddBinary(fmt.Sprintf("use_%s", p.Warehouses[w]))
		f.Flow[w] = make([]mip.Var, nD)
		for d = 0; d < nD; d++ {
			f.Flow[w][d], err = m.AddInteger(
				fmt.Sprintf("ship_%s_%s", p.Warehouses[w], p.Destinations[d]),
				0, p.Capacity[w][d])
			if err != nil {
				return nil, fmt.Errorf("warehouse: route %s→%s: %w",
					p.Warehouses[w], p.Destinations[d], err)
			}
		}
	}

	// Stage 2: activation gating, one linked block per warehouse.
	for w = 0; w < nW; w++ {
		if err = mip.LinkActivation(m, f.Active[w], f.Flow[w], p.Capacity[w], 0); err != nil {
			return nil, err
		}
	}

	// Stage 3: every destination target is met exactly.
	for d = 0; d < nD; d++ {
		expr = mip.NewExpr()
		for w = 0; w < nW; w++ {
			expr.AddVar(f.Flow[w][d])
		}
		if err = m.AddConstraint(expr, mip.EQ, p.Target[d],
			fmt.Sprintf("target_%s", p.Destinations[d])); err != nil {
			return nil, err
		}
	}

	// Stage 4: per-destination lateness cap,
	// Σ_w (late_w_d − Tolerance)·ship_w_d ≤ 0.
	for d = 0; d < nD; d++ {
		expr = mip.NewExpr()
		for w = 0; w < nW; w++ {
			late = 0
			if p.Late(w, d) {
				late = 1
			}
			expr.AddTerm(f.Flow[w][d], late-p.Tolerance)
		}
		if err = m.AddConstraint(expr, mip.LE, 0,
			fmt.Sprintf("late_%s", p.Destinations[d])); err != nil {
			return nil, err
		}
	}

	// Stage 5: minimize variable cost plus fixed activation cost.
	expr = mip.NewExpr()
	for w = 0; w < nW; w++ {
		for d = 0; d < nD; d++ {
			expr.AddTerm(f.Flow[w][d], p.UnitCost[w][d])
		}
		expr.AddTerm(f.Active[w], p.FixedCost[w])
	}
	if err = m.Minimize(expr); err != nil {
		return nil, err
	}

	return f, nil
}
