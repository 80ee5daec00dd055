// SPDX-License-Identifier: MIT
// Package: lvlopt/warehouse
//
// extract.go — deterministic aggregation of an optimal assignment into a
// Report.
//
// Extraction policy:
//   • Optimal solutions only; every other verdict belongs to Diagnose and is
//     refused with ErrNotOptimal.
//   • All reads go through the stored variable handles in O(1).
//   • Every percentage guards its denominator: an all-zero-target instance
//     reports 0% shares and 0 average days instead of NaN.
//   • Reconciliation uses mip.Reconciled; a mismatch on an optimal solution
//     indicates an extraction defect, never rounding.

package warehouse

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/mip"
)

// WarehouseUsage is one warehouse's activation state and its declared fixed
// cost. The fixed cost is charged only when Active.
type WarehouseUsage struct {
	Warehouse string
	Active    bool
	FixedCost float64
}

// RouteLine is one non-zero route with its cost contribution.
type RouteLine struct {
	Warehouse   string
	Destination string
	Shipments   float64
	UnitCost    float64
	Cost        float64
	Late        bool
}

// DestinationStat reconciles one destination against its target and reports
// its share of the grand total.
type DestinationStat struct {
	Destination string
	Actual      float64
	Target      float64
	// Share is Actual as a percentage of total shipments, 0 when nothing
	// ships at all.
	Share float64
	// Match is true when |Actual − Target| ≤ mip.Tolerance.
	Match bool
}

// WarehouseStat is one warehouse's outbound volume and share of the total.
type WarehouseStat struct {
	Warehouse string
	Shipments float64
	Share     float64
}

// DestinationDelivery is one destination's delivery performance:
// volume-weighted average days and the on-time/late split.
type DestinationDelivery struct {
	Destination string
	AverageDays float64
	OnTime      float64
	Late        float64
	LatePct     float64
}

// DeliveryStats aggregates delivery performance over the whole allocation.
type DeliveryStats struct {
	TargetDays  float64
	AverageDays float64
	OnTime      float64
	Late        float64
	OnTimePct   float64
	LatePct     float64
	// PerDestination holds one row per destination, in declaration order.
	PerDestination []DestinationDelivery
}

// Report is the full extracted allocation. TotalCost equals the solution's
// objective; FixedTotal + VariableTotal sums to it within mip.Tolerance.
type Report struct {
	Usage         []WarehouseUsage
	FixedTotal    float64
	Routes        []RouteLine
	VariableTotal float64
	Destinations  []DestinationStat
	Warehouses    []WarehouseStat
	Delivery      DeliveryStats

	TotalShipments float64
	TotalCost      float64
}

// pct returns part/total·100, or 0 when total is 0.
func pct(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return part / total * 100
}

// Extract aggregates an optimal solution into a Report.
//
// Contracts:
//   - sol.Status must be Optimal; anything else returns ErrNotOptimal
//     wrapped with the actual status.
//   - Routes carry only non-zero shipments, ordered warehouse-major in
//     declaration order.
//   - Extract never re-verifies feasibility; it reads and aggregates.
//
// Complexity: O(W·D) reads, no allocation beyond the report itself.
func (f *Formulation) Extract(sol mip.Solution) (*Report, error) {
	if !sol.IsOptimal() {
		return nil, fmt.Errorf("status %s: %w", sol.Status, ErrNotOptimal)
	}

	var (
		p   = f.prob
		nW  = len(p.Warehouses)
		nD  = len(p.Destinations)
		rep = &Report{
			Usage:        make([]WarehouseUsage, 0, nW),
			Destinations: make([]DestinationStat, 0, nD),
			Warehouses:   make([]WarehouseStat, 0, nW),
			TotalCost:    sol.Objective,
		}

		w, d      int
		v         float64
		perW      = make([]float64, nW)
		perD      = make([]float64, nD)
		lateD     = make([]float64, nD)
		daysD     = make([]float64, nD) // Σ shipments·estimate per destination
		totalLate float64
		totalDays float64
	)

	// Stage 1: usage, routes, and the running volume aggregates.
	for w = 0; w < nW; w++ {
		active := mip.IsActive(sol, f.Active[w])
		rep.Usage = append(rep.Usage, WarehouseUsage{
			Warehouse: p.Warehouses[w],
			Active:    active,
			FixedCost: p.FixedCost[w],
		})
		if active {
			rep.FixedTotal += p.FixedCost[w]
		}
		for d = 0; d < nD; d++ {
			v = sol.Value(f.Flow[w][d])
			if v <= 0 {
				continue
			}
			late := p.Late(w, d)
			rep.Routes = append(rep.Routes, RouteLine{
				Warehouse:   p.Warehouses[w],
				Destination: p.Destinations[d],
				Shipments:   v,
				UnitCost:    p.UnitCost[w][d],
				Cost:        v * p.UnitCost[w][d],
				Late:        late,
			})
			rep.VariableTotal += v * p.UnitCost[w][d]
			perW[w] += v
			perD[d] += v
			daysD[d] += v * p.EstimateDays[w][d]
			if late {
				lateD[d] += v
			}
		}
		rep.TotalShipments += perW[w]
	}

	// Stage 2: destination and warehouse distributions.
	for d = 0; d < nD; d++ {
		rep.Destinations = append(rep.Destinations, DestinationStat{
			Destination: p.Destinations[d],
			Actual:      perD[d],
			Target:      p.Target[d],
			Share:       pct(perD[d], rep.TotalShipments),
			Match:       mip.Reconciled(perD[d], p.Target[d]),
		})
	}
	for w = 0; w < nW; w++ {
		rep.Warehouses = append(rep.Warehouses, WarehouseStat{
			Warehouse: p.Warehouses[w],
			Shipments: perW[w],
			Share:     pct(perW[w], rep.TotalShipments),
		})
	}

	// Stage 3: delivery statistics, overall and per destination.
	rep.Delivery.TargetDays = p.TargetDays
	for d = 0; d < nD; d++ {
		dd := DestinationDelivery{
			Destination: p.Destinations[d],
			OnTime:      perD[d] - lateD[d],
			Late:        lateD[d],
			LatePct:     pct(lateD[d], perD[d]),
		}
		if perD[d] > 0 {
			dd.AverageDays = daysD[d] / perD[d]
		}
		rep.Delivery.PerDestination = append(rep.Delivery.PerDestination, dd)
		totalLate += lateD[d]
		totalDays += daysD[d]
	}
	rep.Delivery.Late = totalLate
	rep.Delivery.OnTime = rep.TotalShipments - totalLate
	rep.Delivery.OnTimePct = pct(rep.Delivery.OnTime, rep.TotalShipments)
	rep.Delivery.LatePct = pct(totalLate, rep.TotalShipments)
	if rep.TotalShipments > 0 {
		rep.Delivery.AverageDays = totalDays / rep.TotalShipments
	}

	return rep, nil
}
