// SPDX-License-Identifier: MIT
// Package: lvlopt/warehouse
//
// types.go — problem declaration, sentinel errors, structural validation.
//
// Validation policy:
//   • Validate checks shapes only. Value screening (negative capacity, a
//     tolerance outside [0,1]) belongs to the configuration layer; a
//     negative capacity still fails fast at Formulate through the variable
//     bounds.
//   • The first violation wins; callers branch with errors.Is.
//
// AI-Hints:
//   • All matrices are row-major by warehouse: Capacity[w][d],
//     UnitCost[w][d], EstimateDays[w][d]. Target is per destination.
//   • Late(w, d) is the single source of truth for route lateness; the
//     formulation, the diagnosis, and the report all call it.

package warehouse

import "errors"

// Sentinel errors returned by Validate and Formulate. All are configuration
// defects: fatal at construction, never produced by solving.
var (
	// ErrNilProblem indicates a nil *Problem.
	ErrNilProblem = errors.New("warehouse: problem is nil")
	// ErrNoWarehouses indicates an empty warehouse set.
	ErrNoWarehouses = errors.New("warehouse: problem needs at least one warehouse")
	// ErrNoDestinations indicates an empty destination set.
	ErrNoDestinations = errors.New("warehouse: problem needs at least one destination")
	// ErrTargetShape indicates Target is not [len(Destinations)].
	ErrTargetShape = errors.New("warehouse: target vector shape mismatch")
	// ErrCapacityShape indicates Capacity is not [len(Warehouses)][len(Destinations)].
	ErrCapacityShape = errors.New("warehouse: capacity matrix shape mismatch")
	// ErrCostShape indicates UnitCost is not [len(Warehouses)][len(Destinations)].
	ErrCostShape = errors.New("warehouse: unit cost matrix shape mismatch")
	// ErrFixedCostShape indicates FixedCost is not [len(Warehouses)].
	ErrFixedCostShape = errors.New("warehouse: fixed cost vector shape mismatch")
	// ErrEstimateShape indicates EstimateDays is not [len(Warehouses)][len(Destinations)].
	ErrEstimateShape = errors.New("warehouse: delivery estimate matrix shape mismatch")
	// ErrNotOptimal indicates Extract was handed a non-optimal solution.
	ErrNotOptimal = errors.New("warehouse: solution is not optimal")
)

// Problem declares a fixed-activation network allocation instance. Indexing
// is positional throughout: Warehouses[w] and Destinations[d] name the rows
// and columns of the dense matrices.
type Problem struct {
	// Warehouses names the supply nodes; len ≥ 1.
	Warehouses []string
	// Destinations names the demand nodes; len ≥ 1.
	Destinations []string
	// Target[d] is the shipment count destination d must receive. A zero
	// target is valid and forces zero flow on that column.
	Target []float64
	// Capacity[w][d] caps the shipments warehouse w can route to d.
	Capacity [][]float64
	// FixedCost[w] is charged once if warehouse w ships anything at all.
	FixedCost []float64
	// UnitCost[w][d] is the cost per shipment from w to d.
	UnitCost [][]float64
	// TargetDays is the delivery-day threshold; routes estimated above it
	// count as late.
	TargetDays float64
	// Tolerance is the admissible late fraction per destination, in [0,1].
	// 0 forbids late volume entirely.
	Tolerance float64
	// EstimateDays[w][d] is the delivery-day estimate of route w→d.
	EstimateDays [][]float64
}

// Validate reports the first structural violation, or nil. Shapes only; see
// the sentinel docs for the individual checks.
func (p *Problem) Validate() error {
	if p == nil {
		return ErrNilProblem
	}
	if len(p.Warehouses) == 0 {
		return ErrNoWarehouses
	}
	if len(p.Destinations) == 0 {
		return ErrNoDestinations
	}
	if len(p.Target) != len(p.Destinations) {
		return ErrTargetShape
	}
	if len(p.Capacity) != len(p.Warehouses) {
		return ErrCapacityShape
	}
	for _, row := range p.Capacity {
		if len(row) != len(p.Destinations) {
			return ErrCapacityShape
		}
	}
	if len(p.UnitCost) != len(p.Warehouses) {
		return ErrCostShape
	}
	for _, row := range p.UnitCost {
		if len(row) != len(p.Destinations) {
			return ErrCostShape
		}
	}
	if len(p.FixedCost) != len(p.Warehouses) {
		return ErrFixedCostShape
	}
	if len(p.EstimateDays) != len(p.Warehouses) {
		return ErrEstimateShape
	}
	for _, row := range p.EstimateDays {
		if len(row) != len(p.Destinations) {
			return ErrEstimateShape
		}
	}

	return nil
}

// Late reports whether route w→d counts as late: its delivery estimate
// strictly exceeds the target days.
func (p *Problem) Late(w, d int) bool {
	return p.EstimateDays[w][d] > p.TargetDays
}

// TotalDemand returns the summed shipment target across destinations.
func (p *Problem) TotalDemand() float64 {
	var total float64
	for _, v := range p.Target {
		total += v
	}

	return total
}

// TotalCapacity returns the summed capacity across all routes.
func (p *Problem) TotalCapacity() float64 {
	var total float64
	for _, row := range p.Capacity {
		for _, v := range row {
			total += v
		}
	}

	return total
}

// DestinationCapacity returns the summed capacity into destination d.
func (p *Problem) DestinationCapacity(d int) float64 {
	var total float64
	for w := range p.Warehouses {
		total += p.Capacity[w][d]
	}

	return total
}

// OnTimeCapacity returns the summed capacity into destination d over on-time
// routes only. With Tolerance = 0 this is the binding supply bound.
func (p *Problem) OnTimeCapacity(d int) float64 {
	var total float64
	for w := range p.Warehouses {
		if !p.Late(w, d) {
			total += p.Capacity[w][d]
		}
	}

	return total
}
