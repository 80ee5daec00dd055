// SPDX-License-Identifier: MIT
// Package: lvlopt/carrier
//
// types.go — problem declaration, sentinel errors, structural validation.
//
// Validation policy:
//   • Validate checks structure only: non-empty sets, shape agreement, tier
//     ordering, base-tier multiplier. Value-level screening (negative
//     targets, absurd costs) belongs to the configuration layer; a negative
//     target still fails fast at Formulate through the variable bounds.
//   • The first violation wins; callers branch with errors.Is.
//
// AI-Hints:
//   • Target is [period][destination]; UnitCost and Discount are row-major
//     by carrier. Keep those orientations when populating from config.
//   • TierMin[0] must be 0 and Discount[c][0] must be 1: tier 0 is the
//     always-reachable list-price tier that keeps every instance feasible
//     for a zero target.

package carrier

import "errors"

// Sentinel errors returned by Validate and Formulate. All are configuration
// defects: fatal at construction, never produced by solving.
var (
	// ErrNilProblem indicates a nil *Problem.
	ErrNilProblem = errors.New("carrier: problem is nil")
	// ErrNoPeriods indicates Periods < 1.
	ErrNoPeriods = errors.New("carrier: problem needs at least one period")
	// ErrNoCarriers indicates an empty carrier set.
	ErrNoCarriers = errors.New("carrier: problem needs at least one carrier")
	// ErrNoDestinations indicates an empty destination set.
	ErrNoDestinations = errors.New("carrier: problem needs at least one destination")
	// ErrTargetShape indicates Target is not [Periods][len(Destinations)].
	ErrTargetShape = errors.New("carrier: target matrix shape mismatch")
	// ErrCostShape indicates UnitCost is not [len(Carriers)][len(Destinations)].
	ErrCostShape = errors.New("carrier: unit cost matrix shape mismatch")
	// ErrTierOrder indicates TierMin is empty, does not start at 0, or is not
	// strictly increasing.
	ErrTierOrder = errors.New("carrier: tier minimums must start at 0 and increase strictly")
	// ErrDiscountShape indicates Discount is not [len(Carriers)][len(TierMin)].
	ErrDiscountShape = errors.New("carrier: discount matrix shape mismatch")
	// ErrBaseTier indicates some carrier's tier-0 multiplier is not exactly 1.
	ErrBaseTier = errors.New("carrier: tier-0 discount multiplier must be 1")
	// ErrNotOptimal indicates Extract was handed a non-optimal solution.
	ErrNotOptimal = errors.New("carrier: solution is not optimal")
)

// Problem declares a tiered earned-discount allocation instance. Indexing is
// positional throughout: Carriers[c] and Destinations[d] name the rows and
// columns of the dense matrices.
type Problem struct {
	// Periods is the number of planning periods (period 0, 1, …).
	Periods int
	// Carriers names the carriers; len ≥ 1.
	Carriers []string
	// Destinations names the destinations; len ≥ 1.
	Destinations []string
	// Target[y][d] is the shipment count destination d must receive in
	// period y. A zero target is valid and forces zero flow on that column.
	Target [][]float64
	// UnitCost[c][d] is carrier c's undiscounted cost per shipment to d.
	UnitCost [][]float64
	// TierMin lists tier minimum quantities in tier order. TierMin[0] == 0
	// (the list-price tier) and the sequence increases strictly.
	TierMin []float64
	// Discount[c][t] is the cost multiplier carrier c grants at tier t.
	// Discount[c][0] == 1; deeper tiers are typically < 1.
	Discount [][]float64
}

// Validate reports the first structural violation, or nil. See the sentinel
// docs for the individual checks; Validate never inspects numeric ranges
// beyond the tier ordering.
func (p *Problem) Validate() error {
	if p == nil {
		return ErrNilProblem
	}
	if p.Periods < 1 {
		return ErrNoPeriods
	}
	if len(p.Carriers) == 0 {
		return ErrNoCarriers
	}
	if len(p.Destinations) == 0 {
		return ErrNoDestinations
	}
	if len(p.Target) != p.Periods {
		return ErrTargetShape
	}
	for _, row := range p.Target {
		if len(row) != len(p.Destinations) {
			return ErrTargetShape
		}
	}
	if len(p.UnitCost) != len(p.Carriers) {
		return ErrCostShape
	}
	for _, row := range p.UnitCost {
		if len(row) != len(p.Destinations) {
			return ErrCostShape
		}
	}
	if len(p.TierMin) == 0 || p.TierMin[0] != 0 {
		return ErrTierOrder
	}
	for t := 1; t < len(p.TierMin); t++ {
		if p.TierMin[t] <= p.TierMin[t-1] {
			return ErrTierOrder
		}
	}
	if len(p.Discount) != len(p.Carriers) {
		return ErrDiscountShape
	}
	for _, row := range p.Discount {
		if len(row) != len(p.TierMin) {
			return ErrDiscountShape
		}
		if row[0] != 1 {
			return ErrBaseTier
		}
	}

	return nil
}

// NumTiers returns the number of discount tiers, including tier 0.
func (p *Problem) NumTiers() int { return len(p.TierMin) }

// PeriodDemand returns the summed shipment target of period y.
func (p *Problem) PeriodDemand(y int) float64 {
	var total float64
	for _, v := range p.Target[y] {
		total += v
	}

	return total
}

// DestinationDemand returns destination d's summed target across all periods.
func (p *Problem) DestinationDemand(d int) float64 {
	var total float64
	for y := 0; y < p.Periods; y++ {
		total += p.Target[y][d]
	}

	return total
}

// TotalDemand returns the summed shipment target across all periods and
// destinations.
func (p *Problem) TotalDemand() float64 {
	var total float64
	for y := 0; y < p.Periods; y++ {
		total += p.PeriodDemand(y)
	}

	return total
}
