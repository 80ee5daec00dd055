// SPDX-License-Identifier: MIT
// Package: lvlopt/scenario
//
// types.go — YAML schema types, problem-kind registry, field-level errors.
//
// Schema policy:
//   • Names are the YAML keys; all matrices are maps keyed by declared
//     names, converted to dense positional form only at the converter
//     boundary. Nothing in the core packages ever sees a map.
//   • Exactly one problem block may be present, and it must match the
//     declared kind.

package scenario

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names a supported problem formulation.
type Kind string

// The problem registry. Kinds double as the YAML discriminator values and
// the CLI's -list output.
const (
	// KindCarrier is the tiered earned-discount carrier allocation.
	KindCarrier Kind = "carrier_earned_discount"
	// KindWarehouse is the fixed-activation warehouse network allocation.
	KindWarehouse Kind = "warehouse_shipments"
)

// Kinds returns the supported problem kinds in registry order.
func Kinds() []Kind { return []Kind{KindCarrier, KindWarehouse} }

// ErrWrongProblem is returned by a converter when the scenario declares a
// different problem kind.
var ErrWrongProblem = errors.New("scenario: scenario declares a different problem kind")

// Scenario is one YAML document: a problem kind plus its matching block.
type Scenario struct {
	Problem   Kind             `yaml:"problem"`
	Carrier   *CarrierConfig   `yaml:"carrier,omitempty"`
	Warehouse *WarehouseConfig `yaml:"warehouse,omitempty"`
}

// CarrierConfig is the YAML form of a carrier.Problem. Targets is one map
// per year; Costs and Discounts are keyed by carrier name. TierMinimums
// lists earned tiers only — tier 0 is implicit.
type CarrierConfig struct {
	Years        int                           `yaml:"years"`
	Carriers     []string                      `yaml:"carriers"`
	Destinations []string                      `yaml:"destinations"`
	Targets      []map[string]float64          `yaml:"targets"`
	Costs        map[string]map[string]float64 `yaml:"costs"`
	TierMinimums []float64                     `yaml:"tier_minimums"`
	Discounts    map[string][]float64          `yaml:"discounts"`
}

// WarehouseConfig is the YAML form of a warehouse.Problem. All matrices are
// keyed warehouse → destination.
type WarehouseConfig struct {
	Warehouses         []string                      `yaml:"warehouses"`
	Destinations       []string                      `yaml:"destinations"`
	Targets            map[string]float64            `yaml:"targets"`
	Capacities         map[string]map[string]float64 `yaml:"capacities"`
	FixedCosts         map[string]float64            `yaml:"fixed_costs"`
	Costs              map[string]map[string]float64 `yaml:"costs"`
	TargetDeliveryDays float64                       `yaml:"target_delivery_days"`
	DeliveryTolerance  float64                       `yaml:"delivery_tolerance"`
	Estimates          map[string]map[string]float64 `yaml:"estimates"`
}

// FieldError is one validation violation, tagged with the dotted path of
// the offending field (e.g. "carrier.discounts.UPS[2]").
type FieldError struct {
	Field string
	Msg   string
}

// Error renders "field: message".
func (e FieldError) Error() string { return e.Field + ": " + e.Msg }

// FieldErrors is a Validate result. A nil/empty list means valid; a
// non-empty list is itself an error that renders every violation.
type FieldErrors []FieldError

// Error joins all violations with "; ".
func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, e := range fe {
		parts[i] = e.Error()
	}

	return fmt.Sprintf("scenario: %s", strings.Join(parts, "; "))
}
