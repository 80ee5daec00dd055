package scenario_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlopt/scenario"
)

////////////////////////////////////////////////////////////////////////////////
// Parse / Convert Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleParse decodes a warehouse document from any reader and converts it
// into the dense core problem.
func ExampleParse() {
	doc := `
problem: warehouse_shipments
warehouse:
  warehouses: [W1, W2]
  destinations: [D1, D2]
  targets: {D1: 60, D2: 40}
  capacities:
    W1: {D1: 100, D2: 100}
    W2: {D1: 100, D2: 100}
  fixed_costs: {W1: 100, W2: 200}
  costs:
    W1: {D1: 2, D2: 3}
    W2: {D1: 4, D2: 5}
  target_delivery_days: 3
  delivery_tolerance: 0.5
  estimates:
    W1: {D1: 2, D2: 5}
    W2: {D1: 4, D2: 1}
`
	sc, err := scenario.Parse(strings.NewReader(doc))
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	p, err := sc.WarehouseProblem()
	if err != nil {
		fmt.Println("convert:", err)
		return
	}

	fmt.Println(sc.Problem)
	fmt.Println(p.Warehouses, p.Target)
	// Output:
	// warehouse_shipments
	// [W1 W2] [60 40]
}

////////////////////////////////////////////////////////////////////////////////
// Validate Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleScenario_Validate collects every violation of a document in one
// pass, each keyed by the dotted path of the offending field.
func ExampleScenario_Validate() {
	sc := scenario.Scenario{
		Problem: scenario.KindCarrier,
		Carrier: &scenario.CarrierConfig{
			Years:        0,
			Carriers:     []string{"Apex"},
			Destinations: []string{"D1"},
			Costs:        map[string]map[string]float64{"Apex": {"D1": -2}},
			TierMinimums: []float64{50, 40},
			Discounts:    map[string][]float64{"Apex": {0.9, 0.8}},
		},
	}

	for _, fe := range sc.Validate() {
		fmt.Println(fe)
	}
	// Output:
	// carrier.years: must be at least 1
	// carrier.costs.Apex.D1: must be non-negative
	// carrier.tier_minimums[1]: must increase strictly
}
