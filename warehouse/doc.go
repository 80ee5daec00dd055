// SPDX-License-Identifier: MIT

// Package warehouse formulates fixed-activation network allocation as a
// mixed-integer linear program and turns an optimal assignment back into a
// verifiable routing and delivery report.
//
// # What it models
//
// A distributor must route per-destination shipment targets out of a set of
// warehouses. Each warehouse charges a fixed activation cost if used at all,
// plus a per-shipment cost per destination, and each (warehouse, destination)
// route has a delivery-day estimate. A route is late when its estimate
// exceeds the configured target days; per destination, late volume may not
// exceed a tolerance fraction of that destination's total volume. The model
// decides which warehouses to activate and how to route, minimizing fixed
// plus variable cost.
//
// # Formulation
//
// Decision variables, per warehouse w and destination d:
//
//	ship_w_d ∈ {0, 1, …, Capacity[w][d]}   shipments on that route
//	use_w    ∈ {0, 1}                      warehouse w is activated
//
// Constraints:
//
//	ship_w_d ≤ Capacity[w][d]·use_w                 routes need activation
//	Σ_w ship_w_d = Target[d]                        every target met exactly
//	Σ_w (late_w_d − Tolerance)·ship_w_d ≤ 0         per-destination lateness
//
// with late_w_d precomputed as 1 when EstimateDays[w][d] > TargetDays, else
// 0. Lateness is a fixed property of the route, never a solved quantity.
// Tolerance = 0 degenerates the last row to "late routes carry nothing",
// which is exactly the on-time-only special case.
//
// Objective:
//
//	min Σ ship_w_d·UnitCost[w][d] + Σ use_w·FixedCost[w]
//
// Method: pure model construction over lvlopt/mip via mip.LinkActivation
// (with a zero group minimum). Time: O(W·D) to formulate and extract.
// Memory: O(W·D).
//
// # API
//
//	p := warehouse.Problem{ ... }
//	f, err := warehouse.Formulate(&p)
//	if err != nil { ... }                     // configuration defect, fatal
//	sol, err := simplex.New().Solve(f.Model)
//	if err != nil { ... }
//	if !sol.IsOptimal() {
//	    diag := warehouse.Diagnose(sol, &p)   // capacity-shortfall context
//	    ...
//	}
//	rep, err := f.Extract(sol)
//
// # Errors
//
// Formulate validates shapes first and returns the sentinel for the first
// violation (ErrNoWarehouses, ErrCapacityShape, …). Extract returns
// ErrNotOptimal for any non-optimal status.
//
// See also: package carrier for the tiered-discount variant, and package
// scenario for loading Problem values from YAML.
package warehouse
