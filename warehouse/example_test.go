package warehouse_test

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/simplex"
	"github.com/katalvlaran/lvlopt/warehouse"
)

////////////////////////////////////////////////////////////////////////////////
// Formulate / Extract Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleFormulate builds a two-warehouse instance where W1's low unit cost
// cannot pay for its fixed cost, solves it, and reads the activation
// decision back.
func ExampleFormulate() {
	p := warehouse.Problem{
		Warehouses:   []string{"W1", "W2"},
		Destinations: []string{"D1"},
		Target:       []float64{100},
		Capacity:     [][]float64{{100}, {100}},
		FixedCost:    []float64{1000, 50},
		UnitCost:     [][]float64{{1}, {2}},
		TargetDays:   3,
		Tolerance:    1,
		EstimateDays: [][]float64{{2}, {2}},
	}

	f, err := warehouse.Formulate(&p)
	if err != nil {
		fmt.Println("formulate:", err)
		return
	}
	sol, err := simplex.New().Solve(f.Model)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	rep, err := f.Extract(sol)
	if err != nil {
		fmt.Println("extract:", err)
		return
	}

	fmt.Println(sol.Status, rep.TotalCost)
	for _, u := range rep.Usage {
		if u.Active {
			fmt.Printf("%s active (fixed %.0f)\n", u.Warehouse, u.FixedCost)
		} else {
			fmt.Printf("%s inactive\n", u.Warehouse)
		}
	}
	// Output:
	// Optimal 250
	// W1 inactive
	// W2 active (fixed 50)
}

////////////////////////////////////////////////////////////////////////////////
// Diagnose Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleDiagnose solves an instance whose single destination wants more
// than the network can carry, then renders the shortfall context.
func ExampleDiagnose() {
	p := warehouse.Problem{
		Warehouses:   []string{"W1"},
		Destinations: []string{"D1"},
		Target:       []float64{100},
		Capacity:     [][]float64{{50}},
		FixedCost:    []float64{10},
		UnitCost:     [][]float64{{2}},
		TargetDays:   3,
		Tolerance:    1,
		EstimateDays: [][]float64{{2}},
	}

	f, _ := warehouse.Formulate(&p)
	sol, _ := simplex.New().Solve(f.Model)
	diag := warehouse.Diagnose(sol, &p)

	fmt.Println(diag.Status)
	fmt.Println(diag.Summary)
	for _, sh := range diag.Shortfalls {
		if sh.Short {
			fmt.Printf("%s: capacity %.0f < target %.0f\n",
				sh.Destination, sh.Capacity, sh.Target)
		}
	}
	// Output:
	// Infeasible
	// the constraints cannot be satisfied simultaneously
	// D1: capacity 50 < target 100
}
