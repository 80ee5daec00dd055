// SPDX-License-Identifier: MIT
// Package: lvlopt/scenario
//
// convert.go — validated scenario → dense core problem.
//
// Conversion policy:
//   • Declared order IS the index order: Carriers[i]/Destinations[j] in the
//     YAML become row i / column j of every dense matrix, so two loads of
//     the same document always produce the identical problem.
//   • Tier 0 is materialized here: minimum 0 prepended to tier_minimums,
//     multiplier 1.0 prepended to every discount list.
//   • Converters refuse invalid scenarios with the full FieldErrors list;
//     nothing half-converted escapes.

package scenario

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/carrier"
	"github.com/katalvlaran/lvlopt/warehouse"
)

// CarrierProblem converts a carrier scenario into the dense core problem.
// Errors: ErrWrongProblem when the scenario declares another kind, or the
// FieldErrors list when validation fails.
func (s *Scenario) CarrierProblem() (*carrier.Problem, error) {
	if s.Problem != KindCarrier {
		return nil, fmt.Errorf("problem is %q: %w", s.Problem, ErrWrongProblem)
	}
	if errs := s.Validate(); len(errs) > 0 {
		return nil, errs
	}

	var (
		c = s.Carrier
		p = &carrier.Problem{
			Periods:      c.Years,
			Carriers:     append([]string(nil), c.Carriers...),
			Destinations: append([]string(nil), c.Destinations...),
			TierMin:      append([]float64{0}, c.TierMinimums...),
		}
		y, i, j int
	)

	p.Target = make([][]float64, c.Years)
	for y = 0; y < c.Years; y++ {
		p.Target[y] = make([]float64, len(c.Destinations))
		for j = range c.Destinations {
			p.Target[y][j] = c.Targets[y][c.Destinations[j]]
		}
	}

	p.UnitCost = make([][]float64, len(c.Carriers))
	p.Discount = make([][]float64, len(c.Carriers))
	for i = range c.Carriers {
		p.UnitCost[i] = make([]float64, len(c.Destinations))
		for j = range c.Destinations {
			p.UnitCost[i][j] = c.Costs[c.Carriers[i]][c.Destinations[j]]
		}
		p.Discount[i] = append([]float64{1}, c.Discounts[c.Carriers[i]]...)
	}

	return p, nil
}

// WarehouseProblem converts a warehouse scenario into the dense core
// problem. Errors: ErrWrongProblem when the scenario declares another kind,
// or the FieldErrors list when validation fails.
func (s *Scenario) WarehouseProblem() (*warehouse.Problem, error) {
	if s.Problem != KindWarehouse {
		return nil, fmt.Errorf("problem is %q: %w", s.Problem, ErrWrongProblem)
	}
	if errs := s.Validate(); len(errs) > 0 {
		return nil, errs
	}

	var (
		w = s.Warehouse
		p = &warehouse.Problem{
			Warehouses:   append([]string(nil), w.Warehouses...),
			Destinations: append([]string(nil), w.Destinations...),
			TargetDays:   w.TargetDeliveryDays,
			Tolerance:    w.DeliveryTolerance,
		}
		i, j int
	)

	p.Target = make([]float64, len(w.Destinations))
	for j = range w.Destinations {
		p.Target[j] = w.Targets[w.Destinations[j]]
	}

	p.Capacity = make([][]float64, len(w.Warehouses))
	p.UnitCost = make([][]float64, len(w.Warehouses))
	p.EstimateDays = make([][]float64, len(w.Warehouses))
	p.FixedCost = make([]float64, len(w.Warehouses))
	for i = range w.Warehouses {
		p.Capacity[i] = make([]float64, len(w.Destinations))
		p.UnitCost[i] = make([]float64, len(w.Destinations))
		p.EstimateDays[i] = make([]float64, len(w.Destinations))
		p.FixedCost[i] = w.FixedCosts[w.Warehouses[i]]
		for j = range w.Destinations {
			p.Capacity[i][j] = w.Capacities[w.Warehouses[i]][w.Destinations[j]]
			p.UnitCost[i][j] = w.Costs[w.Warehouses[i]][w.Destinations[j]]
			p.EstimateDays[i][j] = w.Estimates[w.Warehouses[i]][w.Destinations[j]]
		}
	}

	return p, nil
}
