// SPDX-License-Identifier: MIT

// Package carrier formulates tiered earned-discount shipping allocation as a
// mixed-integer linear program and turns an optimal assignment back into a
// verifiable allocation report.
//
// # What it models
//
// A shipper must move a per-period, per-destination shipment target through a
// set of carriers. Each carrier publishes a discount schedule: volume tiers
// with minimum quantities, each granting a cost multiplier once the carrier's
// total volume in a period reaches the tier minimum. The model decides, for
// every period, how much each carrier ships to each destination and which
// discount tier each carrier earns, minimizing total discounted cost.
//
// # Formulation
//
// Decision variables, per period y, carrier c, tier t, destination d:
//
//	ship_y_c_t_d ∈ {0, 1, …, Target[y][d]}   shipments routed on that lane
//	tier_y_c_t   ∈ {0, 1}                    carrier c sits at tier t in y
//
// Constraints, per period:
//
//	Σ_t tier_y_c_t = 1                        exactly one tier per carrier
//	ship_y_c_t_d ≤ Target[y][d]·tier_y_c_t    flow only through the held tier
//	Σ_d ship_y_c_t_d ≥ TierMin[t]·tier_y_c_t  a held tier must be earned
//	Σ_c Σ_t ship_y_c_t_d = Target[y][d]       every target is met exactly
//
// Objective:
//
//	min Σ ship_y_c_t_d · UnitCost[c][d] · Discount[c][t]
//
// The gating and minimum rows are emitted through mip.LinkActivation, so the
// big-M coefficient is always the flow's own target bound.
//
// Method: pure model construction over lvlopt/mip; any mip.Solver solves the
// result. Time: O(P·C·T·D) to formulate and to extract. Memory: O(P·C·T·D).
//
// # API
//
//	p := carrier.Problem{ ... }
//	f, err := carrier.Formulate(&p)
//	if err != nil { ... }                    // configuration defect, fatal
//	sol, err := simplex.New().Solve(f.Model)
//	if err != nil { ... }
//	if !sol.IsOptimal() {
//	    diag := carrier.Diagnose(sol, &p)    // business outcome, reported
//	    ...
//	}
//	rep, err := f.Extract(sol)
//
// # Errors
//
// Formulate validates the problem first and returns the sentinel for the
// first structural violation (ErrNoPeriods, ErrTargetShape, ErrTierOrder, …).
// Extract returns ErrNotOptimal for any non-optimal status; non-optimal
// verdicts are business outcomes and flow through Diagnose instead.
//
// See also: package warehouse for the fixed-activation network variant, and
// package scenario for loading Problem values from YAML.
package carrier
