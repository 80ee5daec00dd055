// SPDX-License-Identifier: MIT
// Package: lvlopt/scenario
//
// validate.go — full value-range validation as a field-error list.
//
// Validation policy:
//   • Collect EVERY violation in one pass; the caller renders the whole
//     list instead of fixing errors one re-prompt at a time.
//   • Field paths follow the YAML structure: block.key, map keys by name,
//     list indices in brackets.
//   • Map completeness runs over the DECLARED name slices, so a missing
//     entry is reported under the name that should have been there; unknown
//     map keys are reported sorted for deterministic output.
//
// The ranges mirror the prompt rules of the original console flow: targets,
// capacities, and costs non-negative, tier minimums positive and strictly
// increasing, discounts in (0, 1], delivery estimates and target days at
// least 1, tolerance within [0, 1].

package scenario

import (
	"fmt"
	"sort"
)

// Validate screens the scenario's values and shapes, returning every
// violation found. An empty result means the scenario converts cleanly.
func (s *Scenario) Validate() FieldErrors {
	var errs FieldErrors

	switch s.Problem {
	case KindCarrier:
		if s.Warehouse != nil {
			errs = append(errs, FieldError{"warehouse", fmt.Sprintf("unexpected block for problem %q", s.Problem)})
		}
		if s.Carrier == nil {
			errs = append(errs, FieldError{"carrier", fmt.Sprintf("block is required for problem %q", s.Problem)})
			return errs
		}
		errs = append(errs, s.Carrier.validate()...)
	case KindWarehouse:
		if s.Carrier != nil {
			errs = append(errs, FieldError{"carrier", fmt.Sprintf("unexpected block for problem %q", s.Problem)})
		}
		if s.Warehouse == nil {
			errs = append(errs, FieldError{"warehouse", fmt.Sprintf("block is required for problem %q", s.Problem)})
			return errs
		}
		errs = append(errs, s.Warehouse.validate()...)
	default:
		errs = append(errs, FieldError{"problem", fmt.Sprintf("unknown problem %q", s.Problem)})
	}

	return errs
}

// uniqueNames flags empty and duplicated entries of a declared name list.
func uniqueNames(field string, names []string) FieldErrors {
	var errs FieldErrors
	if len(names) == 0 {
		errs = append(errs, FieldError{field, "at least one name is required"})
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" {
			errs = append(errs, FieldError{field, "empty name"})
			continue
		}
		if seen[n] {
			errs = append(errs, FieldError{field, fmt.Sprintf("duplicate name %q", n)})
		}
		seen[n] = true
	}

	return errs
}

// unknownKeys reports map keys that are not declared names, sorted.
func unknownKeys[V any](field string, m map[string]V, declared []string) FieldErrors {
	var (
		errs  FieldErrors
		extra []string
		ok    bool
	)
	for k := range m {
		ok = false
		for _, n := range declared {
			if k == n {
				ok = true
				break
			}
		}
		if !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		errs = append(errs, FieldError{field + "." + k, "unknown name"})
	}

	return errs
}

func (c *CarrierConfig) validate() FieldErrors {
	var errs FieldErrors

	if c.Years < 1 {
		errs = append(errs, FieldError{"carrier.years", "must be at least 1"})
	}
	errs = append(errs, uniqueNames("carrier.carriers", c.Carriers)...)
	errs = append(errs, uniqueNames("carrier.destinations", c.Destinations)...)

	// Targets: one complete row per year, non-negative values.
	if c.Years >= 1 && len(c.Targets) != c.Years {
		errs = append(errs, FieldError{"carrier.targets",
			fmt.Sprintf("want %d rows (one per year), have %d", c.Years, len(c.Targets))})
	}
	for y, row := range c.Targets {
		for _, dest := range c.Destinations {
			v, ok := row[dest]
			if !ok {
				errs = append(errs, FieldError{fmt.Sprintf("carrier.targets[%d].%s", y, dest), "missing"})
				continue
			}
			if v < 0 {
				errs = append(errs, FieldError{fmt.Sprintf("carrier.targets[%d].%s", y, dest), "must be non-negative"})
			}
		}
		errs = append(errs, unknownKeys(fmt.Sprintf("carrier.targets[%d]", y), row, c.Destinations)...)
	}

	// Costs: complete carrier × destination, non-negative.
	for _, name := range c.Carriers {
		row, ok := c.Costs[name]
		if !ok {
			errs = append(errs, FieldError{"carrier.costs." + name, "missing"})
			continue
		}
		for _, dest := range c.Destinations {
			v, ok := row[dest]
			if !ok {
				errs = append(errs, FieldError{fmt.Sprintf("carrier.costs.%s.%s", name, dest), "missing"})
				continue
			}
			if v < 0 {
				errs = append(errs, FieldError{fmt.Sprintf("carrier.costs.%s.%s", name, dest), "must be non-negative"})
			}
		}
		errs = append(errs, unknownKeys("carrier.costs."+name, row, c.Destinations)...)
	}
	errs = append(errs, unknownKeys("carrier.costs", c.Costs, c.Carriers)...)

	// Tier minimums: earned tiers only, positive and strictly increasing.
	for t, v := range c.TierMinimums {
		if v <= 0 {
			errs = append(errs, FieldError{fmt.Sprintf("carrier.tier_minimums[%d]", t), "must be positive"})
			continue
		}
		if t > 0 && v <= c.TierMinimums[t-1] {
			errs = append(errs, FieldError{fmt.Sprintf("carrier.tier_minimums[%d]", t), "must increase strictly"})
		}
	}

	// Discounts: complete per carrier, aligned to tier_minimums, in (0, 1].
	for _, name := range c.Carriers {
		rates, ok := c.Discounts[name]
		if !ok {
			errs = append(errs, FieldError{"carrier.discounts." + name, "missing"})
			continue
		}
		if len(rates) != len(c.TierMinimums) {
			errs = append(errs, FieldError{"carrier.discounts." + name,
				fmt.Sprintf("want %d rates (one per tier minimum), have %d", len(c.TierMinimums), len(rates))})
			continue
		}
		for t, v := range rates {
			if v <= 0 || v > 1 {
				errs = append(errs, FieldError{fmt.Sprintf("carrier.discounts.%s[%d]", name, t), "must be in (0, 1]"})
			}
		}
	}
	errs = append(errs, unknownKeys("carrier.discounts", c.Discounts, c.Carriers)...)

	return errs
}

func (w *WarehouseConfig) validate() FieldErrors {
	var errs FieldErrors

	errs = append(errs, uniqueNames("warehouse.warehouses", w.Warehouses)...)
	errs = append(errs, uniqueNames("warehouse.destinations", w.Destinations)...)

	// Targets: complete over destinations, non-negative.
	for _, dest := range w.Destinations {
		v, ok := w.Targets[dest]
		if !ok {
			errs = append(errs, FieldError{"warehouse.targets." + dest, "missing"})
			continue
		}
		if v < 0 {
			errs = append(errs, FieldError{"warehouse.targets." + dest, "must be non-negative"})
		}
	}
	errs = append(errs, unknownKeys("warehouse.targets", w.Targets, w.Destinations)...)

	// The three warehouse × destination matrices share one completeness and
	// range rule each.
	matrix := func(field string, m map[string]map[string]float64, min float64, msg string) {
		for _, name := range w.Warehouses {
			row, ok := m[name]
			if !ok {
				errs = append(errs, FieldError{field + "." + name, "missing"})
				continue
			}
			for _, dest := range w.Destinations {
				v, ok := row[dest]
				if !ok {
					errs = append(errs, FieldError{fmt.Sprintf("%s.%s.%s", field, name, dest), "missing"})
					continue
				}
				if v < min {
					errs = append(errs, FieldError{fmt.Sprintf("%s.%s.%s", field, name, dest), msg})
				}
			}
			errs = append(errs, unknownKeys(field+"."+name, row, w.Destinations)...)
		}
		errs = append(errs, unknownKeys(field, m, w.Warehouses)...)
	}
	matrix("warehouse.capacities", w.Capacities, 0, "must be non-negative")
	matrix("warehouse.costs", w.Costs, 0, "must be non-negative")
	matrix("warehouse.estimates", w.Estimates, 1, "must be at least 1 day")

	// Fixed costs: complete over warehouses, non-negative.
	for _, name := range w.Warehouses {
		v, ok := w.FixedCosts[name]
		if !ok {
			errs = append(errs, FieldError{"warehouse.fixed_costs." + name, "missing"})
			continue
		}
		if v < 0 {
			errs = append(errs, FieldError{"warehouse.fixed_costs." + name, "must be non-negative"})
		}
	}
	errs = append(errs, unknownKeys("warehouse.fixed_costs", w.FixedCosts, w.Warehouses)...)

	if w.TargetDeliveryDays < 1 {
		errs = append(errs, FieldError{"warehouse.target_delivery_days", "must be at least 1"})
	}
	if w.DeliveryTolerance < 0 || w.DeliveryTolerance > 1 {
		errs = append(errs, FieldError{"warehouse.delivery_tolerance", "must be within [0, 1]"})
	}

	return errs
}
