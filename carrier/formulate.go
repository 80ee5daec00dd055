// SPDX-License-Identifier: MIT
// Package: lvlopt/carrier
//
// formulate.go — translation of a Problem into a mip.Model.
//
// Rationale (succinct):
//  1. Variables are held in dense slices indexed [period][carrier][tier][dest]
//     so extraction reads any lane in O(1); nothing is ever recovered by
//     parsing a variable label back apart.
//  2. The per-tier gating and minimum rows go through mip.LinkActivation, the
//     one place in the repository that knows the linked-activation algebra.
//  3. Flow upper bounds double as the big-M coefficients: a lane can never
//     carry more than its destination's target, so Target[y][d] disables the
//     lane exactly when its tier is not held.
//
// Complexity:
//   P·C·T·D integer variables, P·C·T binaries,
//   P·C exclusivity rows + P·C·T·D gating rows + up to P·C·T minimum rows
//   + P·D target rows. Formulation time and memory are linear in all of it.

package carrier

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
	// Flow[y][c][t][d] is the shipment-count variable for period y, carrier
	// c, tier t, destination d.
	Flow [][][][]mip.Var
	// TierActive[y][c][t] is the binary that is 1 when carrier c holds tier
	// t in period y.
	TierActive [][][]mip.Var

	prob *Problem
}

// Formulate validates p and builds the tiered-discount MILP.
//
// Contracts:
//   - Returns the first Validate sentinel unchanged on structural defects.
//   - A negative target surfaces as a wrapped mip.ErrVarBounds (the flow
//     variable's bounds invert); no partial model escapes.
//   - Variable labels follow ship_y<y>_<carrier>_t<t>_<dest> and
//     tier_y<y>_<carrier>_t<t>; they are cosmetic (LP dumps, logs) and
//     never parsed.
func Formulate(p *Problem) (*Formulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var (
		m  = mip.NewModel("carrier_earned_discount")
		nC = len(p.Carriers)
		nD = len(p.Destinations)
		nT = len(p.TierMin)
		f  = &Formulation{Model: m, prob: p}

		y, c, t, d int
		expr       *mip.LinearExpr
		err        error
	)

	// Stage 1: decision variables.
	f.Flow = make([][][][]mip.Var, p.Periods)
	f.TierActive = make([][][]mip.Var, p.Periods)
	for y = 0; y < p.Periods; y++ {
		f.Flow[y] = make([][][]mip.Var, nC)
		f.TierActive[y] = make([][]mip.Var, nC)
		for c = 0; c < nC; c++ {
			f.Flow[y][c] = make([][]mip.Var, nT)
			f.TierActive[y][c] = make([]mip.Var, nT)
			for t = 0; t < nT; t++ {
				f.TierActive[y][c][t] = m.AddBinary(
					fmt.Sprintf("tier_y%d_%s_t%d", y, p.Carriers[c], t))
				f.Flow[y][c][t] = make([]mip.Var, nD)
				for d = 0; d < nD; d++ {
					f.Flow[y][c][t][d], err = m.AddInteger(
						fmt.Sprintf("ship_y%d_%s_t%d_%s", y, p.Carriers[c], t, p.Destinations[d]),
						0, p.Target[y][d])
					if err != nil {
						return nil, fmt.Errorf("carrier: period %d destination %q: %w",
							y, p.Destinations[d], err)
					}
				}
			}
		}
	}

	// Stage 2: exactly one tier per (period, carrier).
	for y = 0; y < p.Periods; y++ {
		for c = 0; c < nC; c++ {
			expr = mip.NewExpr()
			for t = 0; t < nT; t++ {
				expr.AddVar(f.TierActive[y][c][t])
			}
			if err = m.AddConstraint(expr, mip.EQ, 1,
				fmt.Sprintf("one_tier_y%d_%s", y, p.Carriers[c])); err != nil {
				return nil, err
			}
		}
	}

	// Stage 3: tier gating and tier minimum, one linked-activation block per
	// (period, carrier, tier). The period's target row is the cap vector.
	for y = 0; y < p.Periods; y++ {
		for c = 0; c < nC; c++ {
			for t = 0; t < nT; t++ {
				if err = mip.LinkActivation(m, f.TierActive[y][c][t],
					f.Flow[y][c][t], p.Target[y], p.TierMin[t]); err != nil {
					return nil, err
				}
			}
		}
	}

	// Stage 4: every destination target is met exactly, per period.
	for y = 0; y < p.Periods; y++ {
		for d = 0; d < nD; d++ {
			expr = mip.NewExpr()
			for c = 0; c < nC; c++ {
				for t = 0; t < nT; t++ {
					expr.AddVar(f.Flow[y][c][t][d])
				}
			}
			if err = m.AddConstraint(expr, mip.EQ, p.Target[y][d],
				fmt.Sprintf("target_y%d_%s", y, p.Destinations[d])); err != nil {
				return nil, err
			}
		}
	}

	// Stage 5: minimize total discounted cost.
	expr = mip.NewExpr()
	for y = 0; y < p.Periods; y++ {
		for c = 0; c < nC; c++ {
			for t = 0; t < nT; t++ {
				for d = 0; d < nD; d++ {
					expr.AddTerm(f.Flow[y][c][t][d], p.UnitCost[c][d]*p.Discount[c][t])
				}
			}
		}
	}
	if err = m.Minimize(expr); err != nil {
		return nil, err
	}

	return f, nil
}
