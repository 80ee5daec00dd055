// SPDX-License-Identifier: MIT
// Package: lvlopt/scenario
//
// demo.go — canned demo scenarios.
//
// The carrier demo carries the classic planning defaults: a 40000-shipment
// base year split 50/35/15 across destinations A/B/C, grown 30% into year
// 1 (targets are the truncated products of that law), with the UPS and
// FedEx tier schedules. The warehouse demo is a three-warehouse network
// sized so every destination keeps enough on-time capacity under the 10%
// tolerance — it solves to Optimal as shipped.

package scenario

// DemoCarrier returns the canned two-year tiered-discount scenario.
func DemoCarrier() *Scenario {
	return &Scenario{
		Problem: KindCarrier,
		Carrier: &CarrierConfig{
			Years:        2,
			Carriers:     []string{"UPS", "FedEx"},
			Destinations: []string{"A", "B", "C"},
			Targets: []map[string]float64{
				{"A": 20000, "B": 14000, "C": 6000},
				{"A": 26000, "B": 18200, "C": 7800},
			},
			Costs: map[string]map[string]float64{
				"UPS":   {"A": 5, "B": 8, "C": 10},
				"FedEx": {"A": 6, "B": 9, "C": 8},
			},
			TierMinimums: []float64{5000, 50000, 100000},
			Discounts: map[string][]float64{
				"UPS":   {0.97, 0.96, 0.95},
				"FedEx": {0.96, 0.94, 0.93},
			},
		},
	}
}

// DemoWarehouse returns the canned three-warehouse network scenario.
func DemoWarehouse() *Scenario {
	return &Scenario{
		Problem: KindWarehouse,
		Warehouse: &WarehouseConfig{
			Warehouses:   []string{"W1", "W2", "W3"},
			Destinations: []string{"X", "Y", "Z"},
			Targets:      map[string]float64{"X": 5000, "Y": 3000, "Z": 2000},
			Capacities: map[string]map[string]float64{
				"W1": {"X": 5000, "Y": 3000, "Z": 2000},
				"W2": {"X": 3000, "Y": 2000, "Z": 2000},
				"W3": {"X": 2000, "Y": 2000, "Z": 1000},
			},
			FixedCosts: map[string]float64{"W1": 5000, "W2": 3000, "W3": 2000},
			Costs: map[string]map[string]float64{
				"W1": {"X": 3.5, "Y": 4.2, "Z": 5.0},
				"W2": {"X": 4.0, "Y": 3.8, "Z": 4.5},
				"W3": {"X": 5.0, "Y": 4.0, "Z": 3.2},
			},
			TargetDeliveryDays: 3,
			DeliveryTolerance:  0.1,
			Estimates: map[string]map[string]float64{
				"W1": {"X": 2, "Y": 3, "Z": 5},
				"W2": {"X": 4, "Y": 2, "Z": 3},
				"W3": {"X": 5, "Y": 4, "Z": 2},
			},
		},
	}
}
