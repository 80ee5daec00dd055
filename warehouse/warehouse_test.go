package warehouse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlopt/mip"
	"github.com/katalvlaran/lvlopt/simplex"
	"github.com/katalvlaran/lvlopt/warehouse"
)

const tol = 1e-6

// twoByTwo is the canonical small instance. W1 is cheap but late into D2,
// W2 is expensive but late into D1; tolerance 0.5 forces D2 to split.
// The unique optimum is W1→D1 60, W1→D2 20, W2→D2 20 for a total of 580
// (variable 280 + fixed 300).
func twoByTwo() warehouse.Problem {
	return warehouse.Problem{
		Warehouses:   []string{"W1", "W2"},
		Destinations: []string{"D1", "D2"},
		Target:       []float64{60, 40},
		Capacity:     [][]float64{{100, 100}, {100, 100}},
		FixedCost:    []float64{100, 200},
		UnitCost:     [][]float64{{2, 3}, {4, 5}},
		TargetDays:   3,
		Tolerance:    0.5,
		EstimateDays: [][]float64{{2, 5}, {4, 1}},
	}
}

// WarehouseSuite exercises validation, formulation, solving, and extraction
// of the fixed-activation network model.
type WarehouseSuite struct {
	suite.Suite
}

// solve formulates p and runs the in-repo solver, failing the suite on any
// construction or solver error.
func (s *WarehouseSuite) solve(p *warehouse.Problem) (*warehouse.Formulation, mip.Solution) {
	f, err := warehouse.Formulate(p)
	require.NoError(s.T(), err)
	sol, err := simplex.New().Solve(f.Model)
	require.NoError(s.T(), err)

	return f, sol
}

// TestValidateSentinels walks every structural defect to its sentinel.
func (s *WarehouseSuite) TestValidateSentinels() {
	cases := []struct {
		name   string
		mutate func(*warehouse.Problem)
		want   error
	}{
		{"no warehouses", func(p *warehouse.Problem) { p.Warehouses = nil }, warehouse.ErrNoWarehouses},
		{"no destinations", func(p *warehouse.Problem) { p.Destinations = nil }, warehouse.ErrNoDestinations},
		{"target len", func(p *warehouse.Problem) { p.Target = []float64{60} }, warehouse.ErrTargetShape},
		{"capacity rows", func(p *warehouse.Problem) { p.Capacity = [][]float64{{100, 100}} }, warehouse.ErrCapacityShape},
		{"capacity cols", func(p *warehouse.Problem) { p.Capacity = [][]float64{{100}, {100, 100}} }, warehouse.ErrCapacityShape},
		{"cost rows", func(p *warehouse.Problem) { p.UnitCost = [][]float64{{2, 3}} }, warehouse.ErrCostShape},
		{"cost cols", func(p *warehouse.Problem) { p.UnitCost = [][]float64{{2, 3}, {4}} }, warehouse.ErrCostShape},
		{"fixed len", func(p *warehouse.Problem) { p.FixedCost = []float64{100} }, warehouse.ErrFixedCostShape},
		{"estimate rows", func(p *warehouse.Problem) { p.EstimateDays = [][]float64{{2, 5}} }, warehouse.ErrEstimateShape},
		{"estimate cols", func(p *warehouse.Problem) { p.EstimateDays = [][]float64{{2}, {4, 1}} }, warehouse.ErrEstimateShape},
	}
	for _, tc := range cases {
		p := twoByTwo()
		tc.mutate(&p)
		require.ErrorIs(s.T(), p.Validate(), tc.want, tc.name)

		_, ferr := warehouse.Formulate(&p)
		require.ErrorIs(s.T(), ferr, tc.want, tc.name)
	}

	_, nerr := warehouse.Formulate(nil)
	require.ErrorIs(s.T(), nerr, warehouse.ErrNilProblem)

	ok := twoByTwo()
	require.NoError(s.T(), ok.Validate())
}

// TestFormulateShape checks the variable and constraint counts of the built
// model against the formulation algebra.
func (s *WarehouseSuite) TestFormulateShape() {
	p := twoByTwo()
	f, err := warehouse.Formulate(&p)
	require.NoError(s.T(), err)

	// 2·2 flows + 2 activation binaries.
	require.Equal(s.T(), 6, f.Model.NumVars())
	// 4 gating + 2 target + 2 tolerance.
	require.Equal(s.T(), 8, f.Model.NumConstraints())

	lb, ub := f.Model.Bounds(f.Flow[1][0])
	require.Equal(s.T(), 0.0, lb)
	require.Equal(s.T(), 100.0, ub)
	require.Equal(s.T(), mip.Integer, f.Model.Kind(f.Flow[1][0]))
	require.Equal(s.T(), mip.Binary, f.Model.Kind(f.Active[1]))
	require.Equal(s.T(), "ship_W2_D1", f.Model.Label(f.Flow[1][0]))
	require.Equal(s.T(), "use_W2", f.Model.Label(f.Active[1]))
}

// TestFormulateNegativeCapacity confirms a negative capacity fails at
// variable declaration with the bounds sentinel.
func (s *WarehouseSuite) TestFormulateNegativeCapacity() {
	p := twoByTwo()
	p.Capacity[0][0] = -5
	_, err := warehouse.Formulate(&p)
	require.ErrorIs(s.T(), err, mip.ErrVarBounds)
}

// TestLateness pins the strict-inequality reading of route lateness: a
// route estimated exactly at the target days is on time.
func (s *WarehouseSuite) TestLateness() {
	p := twoByTwo()
	require.False(s.T(), p.Late(0, 0)) // 2 ≤ 3
	require.True(s.T(), p.Late(0, 1))  // 5 > 3
	require.True(s.T(), p.Late(1, 0))  // 4 > 3
	require.False(s.T(), p.Late(1, 1)) // 1 ≤ 3

	p.EstimateDays[0][0] = 3 // exactly on target
	require.False(s.T(), p.Late(0, 0))
}

// TestToleranceSplitsRouting solves the canonical instance: D2's cheap route
// is late, so tolerance 0.5 caps it at half the volume and pulls W2 in.
func (s *WarehouseSuite) TestToleranceSplitsRouting() {
	p := twoByTwo()
	f, sol := s.solve(&p)

	require.Equal(s.T(), mip.Optimal, sol.Status)
	require.InDelta(s.T(), 580.0, sol.Objective, tol)
	require.InDelta(s.T(), 60.0, sol.Value(f.Flow[0][0]), tol)
	require.InDelta(s.T(), 20.0, sol.Value(f.Flow[0][1]), tol)
	require.InDelta(s.T(), 0.0, sol.Value(f.Flow[1][0]), tol)
	require.InDelta(s.T(), 20.0, sol.Value(f.Flow[1][1]), tol)

	rep, err := f.Extract(sol)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 300.0, rep.FixedTotal, tol)
	require.InDelta(s.T(), 280.0, rep.VariableTotal, tol)
	require.InDelta(s.T(), 580.0, rep.TotalCost, tol)
	require.InDelta(s.T(), 100.0, rep.TotalShipments, tol)
	require.True(s.T(), rep.Usage[0].Active)
	require.True(s.T(), rep.Usage[1].Active)
	require.InDelta(s.T(), 80.0, rep.Warehouses[0].Share, tol)
	require.InDelta(s.T(), 20.0, rep.Warehouses[1].Share, tol)
	for _, ds := range rep.Destinations {
		require.True(s.T(), ds.Match, ds.Destination)
	}
	require.InDelta(s.T(), 2.4, rep.Delivery.AverageDays, tol)
	require.InDelta(s.T(), 20.0, rep.Delivery.Late, tol)
	require.InDelta(s.T(), 80.0, rep.Delivery.OnTimePct, tol)
	require.InDelta(s.T(), 50.0, rep.Delivery.PerDestination[1].LatePct, tol)
}

// TestToleranceBindsLateShare: with a cheap late route and a dear on-time
// one, the optimum rides the tolerance boundary exactly.
func (s *WarehouseSuite) TestToleranceBindsLateShare() {
	p := warehouse.Problem{
		Warehouses:   []string{"LATE", "NEAR"},
		Destinations: []string{"D1"},
		Target:       []float64{100},
		Capacity:     [][]float64{{100}, {100}},
		FixedCost:    []float64{0, 0},
		UnitCost:     [][]float64{{1}, {10}},
		TargetDays:   3,
		Tolerance:    0.5,
		EstimateDays: [][]float64{{9}, {1}},
	}
	f, sol := s.solve(&p)

	require.Equal(s.T(), mip.Optimal, sol.Status)
	require.InDelta(s.T(), 550.0, sol.Objective, tol)
	require.InDelta(s.T(), 50.0, sol.Value(f.Flow[0][0]), tol)
	require.InDelta(s.T(), 50.0, sol.Value(f.Flow[1][0]), tol)
}

// TestFixedCostDrivesActivation: a high fixed cost keeps the cheap-per-unit
// warehouse closed when a modest rival can carry everything.
func (s *WarehouseSuite) TestFixedCostDrivesActivation() {
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
	f, sol := s.solve(&p)

	require.Equal(s.T(), mip.Optimal, sol.Status)
	require.InDelta(s.T(), 250.0, sol.Objective, tol)
	require.False(s.T(), mip.IsActive(sol, f.Active[0]))
	require.True(s.T(), mip.IsActive(sol, f.Active[1]))

	rep, err := f.Extract(sol)
	require.NoError(s.T(), err)
	require.False(s.T(), rep.Usage[0].Active)
	require.True(s.T(), rep.Usage[1].Active)
	require.InDelta(s.T(), 50.0, rep.FixedTotal, tol)
	require.Len(s.T(), rep.Routes, 1)
	require.Equal(s.T(), "W2", rep.Routes[0].Warehouse)
}

// TestCapacityShortfallInfeasible: a destination wanting more than the whole
// network can ship yields Infeasible, and the diagnosis carries the
// shortfall figures.
func (s *WarehouseSuite) TestCapacityShortfallInfeasible() {
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
	_, sol := s.solve(&p)
	require.Equal(s.T(), mip.Infeasible, sol.Status)

	diag := warehouse.Diagnose(sol, &p)
	require.Equal(s.T(), mip.Infeasible, diag.Status)
	require.Len(s.T(), diag.Causes, 3)
	require.Len(s.T(), diag.Suggestions, 3)
	require.Equal(s.T(), 100.0, diag.TotalDemand)
	require.Equal(s.T(), 50.0, diag.TotalCapacity)
	require.Equal(s.T(),
		warehouse.DestShortfall{Destination: "D1", Target: 100, Capacity: 50, OnTimeCapacity: 50, Short: true},
		diag.Shortfalls[0])
}

// TestZeroToleranceForbidsLateRoutes: with tolerance 0 and only late routes
// into a demanded destination, the instance is infeasible; with the target
// dropped to zero it becomes trivially optimal.
func (s *WarehouseSuite) TestZeroToleranceForbidsLateRoutes() {
	p := warehouse.Problem{
		Warehouses:   []string{"W1"},
		Destinations: []string{"D1"},
		Target:       []float64{50},
		Capacity:     [][]float64{{100}},
		FixedCost:    []float64{10},
		UnitCost:     [][]float64{{2}},
		TargetDays:   3,
		Tolerance:    0,
		EstimateDays: [][]float64{{5}},
	}
	_, sol := s.solve(&p)
	require.Equal(s.T(), mip.Infeasible, sol.Status)

	diag := warehouse.Diagnose(sol, &p)
	require.Equal(s.T(), 0.0, diag.Shortfalls[0].OnTimeCapacity)
	require.True(s.T(), diag.Shortfalls[0].Short)

	p.Target = []float64{0}
	f, sol2 := s.solve(&p)
	require.Equal(s.T(), mip.Optimal, sol2.Status)
	require.InDelta(s.T(), 0.0, sol2.Objective, tol)

	rep, err := f.Extract(sol2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, rep.TotalShipments)
	require.Equal(s.T(), 0.0, rep.FixedTotal)
	require.Equal(s.T(), 0.0, rep.Delivery.AverageDays)
	require.True(s.T(), rep.Destinations[0].Match)
}

// TestExtractCannedSolution feeds a hand-built assignment through Extract
// and checks every aggregate, independent of any solver.
func (s *WarehouseSuite) TestExtractCannedSolution() {
	p := twoByTwo()
	f, err := warehouse.Formulate(&p)
	require.NoError(s.T(), err)

	vals := make([]float64, f.Model.NumVars())
	vals[f.Active[0]] = 1
	vals[f.Active[1]] = 1
	vals[f.Flow[0][0]] = 40
	vals[f.Flow[0][1]] = 10
	vals[f.Flow[1][0]] = 20
	vals[f.Flow[1][1]] = 30
	rep, err := f.Extract(mip.NewSolution(mip.Optimal, 640, vals))
	require.NoError(s.T(), err)

	require.Equal(s.T(), 640.0, rep.TotalCost)
	require.Equal(s.T(), 300.0, rep.FixedTotal)
	require.Equal(s.T(), 340.0, rep.VariableTotal)
	require.Equal(s.T(), 100.0, rep.TotalShipments)

	require.Len(s.T(), rep.Routes, 4)
	require.Equal(s.T(),
		warehouse.RouteLine{Warehouse: "W1", Destination: "D1", Shipments: 40, UnitCost: 2, Cost: 80, Late: false},
		rep.Routes[0])
	require.Equal(s.T(),
		warehouse.RouteLine{Warehouse: "W1", Destination: "D2", Shipments: 10, UnitCost: 3, Cost: 30, Late: true},
		rep.Routes[1])
	require.Equal(s.T(),
		warehouse.RouteLine{Warehouse: "W2", Destination: "D1", Shipments: 20, UnitCost: 4, Cost: 80, Late: true},
		rep.Routes[2])
	require.Equal(s.T(),
		warehouse.RouteLine{Warehouse: "W2", Destination: "D2", Shipments: 30, UnitCost: 5, Cost: 150, Late: false},
		rep.Routes[3])

	require.True(s.T(), rep.Destinations[0].Match)
	require.True(s.T(), rep.Destinations[1].Match)
	require.InDelta(s.T(), 60.0, rep.Destinations[0].Share, tol)
	require.InDelta(s.T(), 50.0, rep.Warehouses[0].Share, tol)
	require.InDelta(s.T(), 50.0, rep.Warehouses[1].Share, tol)

	require.InDelta(s.T(), 2.4, rep.Delivery.AverageDays, tol)
	require.InDelta(s.T(), 70.0, rep.Delivery.OnTime, tol)
	require.InDelta(s.T(), 30.0, rep.Delivery.Late, tol)
	require.InDelta(s.T(), 30.0, rep.Delivery.LatePct, tol)

	d1 := rep.Delivery.PerDestination[0]
	require.InDelta(s.T(), 160.0/60.0, d1.AverageDays, tol)
	require.InDelta(s.T(), 40.0, d1.OnTime, tol)
	require.InDelta(s.T(), 20.0, d1.Late, tol)
	require.InDelta(s.T(), 100.0/3.0, d1.LatePct, tol)

	d2 := rep.Delivery.PerDestination[1]
	require.InDelta(s.T(), 2.0, d2.AverageDays, tol)
	require.InDelta(s.T(), 25.0, d2.LatePct, tol)
}

// TestExtractRejectsNonOptimal: every non-optimal verdict is refused with
// the sentinel, regardless of any values attached.
func (s *WarehouseSuite) TestExtractRejectsNonOptimal() {
	p := twoByTwo()
	f, err := warehouse.Formulate(&p)
	require.NoError(s.T(), err)

	for _, st := range []mip.Status{mip.NotSolved, mip.Infeasible, mip.Unbounded, mip.Undefined} {
		_, xerr := f.Extract(mip.NewSolution(st, 0, nil))
		require.ErrorIs(s.T(), xerr, warehouse.ErrNotOptimal, st.String())
	}
}

// TestCostMonotonicity: raising one unit cost can never cheapen the optimum.
func (s *WarehouseSuite) TestCostMonotonicity() {
	p1 := twoByTwo()
	_, before := s.solve(&p1)

	p2 := twoByTwo()
	p2.UnitCost[0][0] = 4
	_, after := s.solve(&p2)

	require.Equal(s.T(), mip.Optimal, before.Status)
	require.Equal(s.T(), mip.Optimal, after.Status)
	require.GreaterOrEqual(s.T(), after.Objective, before.Objective-tol)
}

// TestIdempotence: formulating and solving the same problem twice yields the
// identical objective.
func (s *WarehouseSuite) TestIdempotence() {
	p1 := twoByTwo()
	_, first := s.solve(&p1)
	p2 := twoByTwo()
	_, second := s.solve(&p2)

	require.Equal(s.T(), first.Status, second.Status)
	require.Equal(s.T(), first.Objective, second.Objective)
}

func TestWarehouseSuite(t *testing.T) {
	suite.Run(t, new(WarehouseSuite))
}
