// SPDX-License-Identifier: MIT
// Package: lvlopt/carrier
//
// extract.go — deterministic aggregation of an optimal assignment into a
// Report.
//
// Extraction policy:
//   • Optimal solutions only. Every other verdict is a business outcome and
//     belongs to Diagnose; Extract refuses it with ErrNotOptimal so that no
//     caller ever renders numbers from an unproven assignment.
//   • All reads go through the stored variable handles in O(1); route costs
//     are summed per tier so the report stays correct even if a foreign
//     solver leaves residue on a non-active tier's lanes.
//   • Reconciliation uses mip.Reconciled: a destination whose extracted
//     total drifts from its declared target beyond mip.Tolerance is flagged,
//     never silently absorbed.

package carrier

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/mip"
)

// RouteLine is one carrier's shipments into one destination within a period.
// Cost is the discounted cost of those shipments.
type RouteLine struct {
	Destination string
	Shipments   float64
	Target      float64
	Cost        float64
}

// CarrierPeriod is one carrier's allocation within one period: the tier it
// earned, the discount that tier grants, and its non-zero route lines.
type CarrierPeriod struct {
	Carrier string
	Period  int
	// Tier is the held tier's index, or -1 if the assignment activates no
	// tier for this carrier (possible only for hand-built solutions that
	// violate exclusivity; a solved optimum always holds exactly one).
	Tier int
	// Multiplier is Discount[c][Tier]; DiscountPct is (1−Multiplier)·100.
	Multiplier  float64
	DiscountPct float64
	// MinRequired is TierMin[Tier], the volume that earned the tier.
	MinRequired float64
	Routes      []RouteLine
	Shipments   float64
	Cost        float64
}

// PeriodSummary aggregates one period across all carriers.
type PeriodSummary struct {
	Period    int
	Carriers  []CarrierPeriod
	Shipments float64
	Cost      float64
}

// DestinationTotal reconciles one destination's extracted flow against its
// declared target, summed across all periods.
type DestinationTotal struct {
	Destination string
	Actual      float64
	Target      float64
	// Match is true when |Actual − Target| ≤ mip.Tolerance. A false Match on
	// an optimal solution indicates an extraction defect and is treated as
	// fatal in tests.
	Match bool
}

// PerformanceRow is one (carrier, period) line of the carrier performance
// summary, ordered carrier-major.
type PerformanceRow struct {
	Carrier     string
	Period      int
	Tier        int
	Shipments   float64
	DiscountPct float64
}

// Report is the full extracted allocation. TotalCost equals the solution's
// objective value; the per-period costs sum to it within mip.Tolerance.
type Report struct {
	Periods        []PeriodSummary
	Destinations   []DestinationTotal
	Performance    []PerformanceRow
	TotalShipments float64
	TotalCost      float64
}

// Extract aggregates an optimal solution into a Report.
//
// Contracts:
//   - sol.Status must be Optimal; anything else returns ErrNotOptimal
//     wrapped with the actual status.
//   - Route lines carry only destinations with non-zero shipments, matching
//     how the allocation is read in practice.
//   - Extract never re-verifies feasibility; it reads and aggregates.
//
// Complexity: O(P·C·T·D) reads, no allocation beyond the report itself.
func (f *Formulation) Extract(sol mip.Solution) (*Report, error) {
	if !sol.IsOptimal() {
		return nil, fmt.Errorf("status %s: %w", sol.Status, ErrNotOptimal)
	}

	var (
		p   = f.prob
		rep = &Report{
			Periods:      make([]PeriodSummary, 0, p.Periods),
			Destinations: make([]DestinationTotal, 0, len(p.Destinations)),
			Performance:  make([]PerformanceRow, 0, p.Periods*len(p.Carriers)),
			TotalCost:    sol.Objective,
		}

		y, c, t, d    int
		v, ship, cost float64
	)

	// Stage 1: per-period, per-carrier breakdown.
	for y = 0; y < p.Periods; y++ {
		ps := PeriodSummary{Period: y}
		for c = range p.Carriers {
			cp := CarrierPeriod{Carrier: p.Carriers[c], Period: y, Tier: -1}
			for t = range p.TierMin {
				if mip.IsActive(sol, f.TierActive[y][c][t]) {
					cp.Tier = t
					cp.Multiplier = p.Discount[c][t]
					cp.DiscountPct = (1 - p.Discount[c][t]) * 100
					cp.MinRequired = p.TierMin[t]
					break
				}
			}
			for d = range p.Destinations {
				ship, cost = 0, 0
				for t = range p.TierMin {
					v = sol.Value(f.Flow[y][c][t][d])
					ship += v
					cost += v * p.UnitCost[c][d] * p.Discount[c][t]
				}
				if ship > 0 {
					cp.Routes = append(cp.Routes, RouteLine{
						Destination: p.Destinations[d],
						Shipments:   ship,
						Target:      p.Target[y][d],
						Cost:        cost,
					})
					cp.Shipments += ship
					cp.Cost += cost
				}
			}
			ps.Carriers = append(ps.Carriers, cp)
			ps.Shipments += cp.Shipments
			ps.Cost += cp.Cost
		}
		rep.Periods = append(rep.Periods, ps)
		rep.TotalShipments += ps.Shipments
	}

	// Stage 2: all-period destination reconciliation.
	for d = range p.Destinations {
		var actual float64
		for y = 0; y < p.Periods; y++ {
			for c = range p.Carriers {
				for t = range p.TierMin {
					actual += sol.Value(f.Flow[y][c][t][d])
				}
			}
		}
		target := p.DestinationDemand(d)
		rep.Destinations = append(rep.Destinations, DestinationTotal{
			Destination: p.Destinations[d],
			Actual:      actual,
			Target:      target,
			Match:       mip.Reconciled(actual, target),
		})
	}

	// Stage 3: carrier performance rows, carrier-major.
	for c = range p.Carriers {
		for y = 0; y < p.Periods; y++ {
			cp := rep.Periods[y].Carriers[c]
			rep.Performance = append(rep.Performance, PerformanceRow{
				Carrier:     cp.Carrier,
				Period:      y,
				Tier:        cp.Tier,
				Shipments:   cp.Shipments,
				DiscountPct: cp.DiscountPct,
			})
		}
	}

	return rep, nil
}
