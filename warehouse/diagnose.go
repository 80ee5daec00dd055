// SPDX-License-Identifier: MIT
// Package: lvlopt/warehouse
//
// diagnose.go — structured guidance for non-optimal verdicts.
//
// Infeasibility in this formulation is almost always a supply question: some
// destination's target exceeds its reachable capacity, or the tolerance
// excludes the only routes with room. The diagnosis therefore leads with a
// per-destination capacity table split into total and on-time-capable, so an
// operator can spot the shortfall without re-deriving it.

package warehouse

import "github.com/katalvlaran/lvlopt/mip"

// DestShortfall compares one destination's target against its reachable
// capacity. Short is true when either capacity figure is below the target
// (the on-time figure binds only when Tolerance is 0).
type DestShortfall struct {
	Destination    string
	Target         float64
	Capacity       float64
	OnTimeCapacity float64
	Short          bool
}

// Diagnosis explains a solver verdict in business terms: a fixed headline,
// likely causes, remediation suggestions, and the supply-side figures an
// operator needs to judge whether the instance was ever satisfiable.
type Diagnosis struct {
	Status  mip.Status
	Summary string
	// Causes lists likely reasons for the verdict; empty for Optimal.
	Causes []string
	// Suggestions lists remediation steps; empty when none apply.
	Suggestions []string

	TotalDemand   float64
	TotalCapacity float64
	Warehouses    int
	Destinations  int
	TargetDays    float64
	Tolerance     float64
	Shortfalls    []DestShortfall
}

// Fixed per-status guidance.
var (
	infeasibleCauses = []string{
		"total or per-destination capacity may be below the shipment target",
		"the delivery tolerance may exclude the only routes with enough capacity",
		"warehouse capacities may conflict with the target distribution",
	}
	infeasibleSuggestions = []string{
		"compare each destination's target against its reachable capacity",
		"review the delivery tolerance against the route delivery estimates",
		"consider raising capacities or relaxing the tolerance",
	}
	unboundedCauses = []string{
		"missing constraints",
		"incorrect cost coefficients",
		"variables that should be bounded",
	}
	notSolvedCauses = []string{
		"problem too large for the solver budget",
		"numerical difficulties",
		"time limit reached",
		"node limit reached",
	}
	undefinedCauses = []string{
		"solver failure",
		"numerical instability",
		"invalid problem formulation",
	}
)

// Diagnose builds the Diagnosis for sol's status. It is valid for any
// status, including Optimal (which carries only the headline and figures).
// p must have passed Validate; Diagnose reads its shapes unchecked.
func Diagnose(sol mip.Solution, p *Problem) Diagnosis {
	diag := Diagnosis{
		Status:        sol.Status,
		Summary:       mip.StatusSummary(sol.Status),
		TotalDemand:   p.TotalDemand(),
		TotalCapacity: p.TotalCapacity(),
		Warehouses:    len(p.Warehouses),
		Destinations:  len(p.Destinations),
		TargetDays:    p.TargetDays,
		Tolerance:     p.Tolerance,
	}

	var capD, onTimeD float64
	for d := range p.Destinations {
		capD = p.DestinationCapacity(d)
		onTimeD = p.OnTimeCapacity(d)
		diag.Shortfalls = append(diag.Shortfalls, DestShortfall{
			Destination:    p.Destinations[d],
			Target:         p.Target[d],
			Capacity:       capD,
			OnTimeCapacity: onTimeD,
			Short:          capD < p.Target[d] || (p.Tolerance == 0 && onTimeD < p.Target[d]),
		})
	}

	switch sol.Status {
	case mip.Infeasible:
		diag.Causes = infeasibleCauses
		diag.Suggestions = infeasibleSuggestions
	case mip.Unbounded:
		diag.Causes = unboundedCauses
	case mip.NotSolved:
		diag.Causes = notSolvedCauses
	case mip.Undefined:
		diag.Causes = undefinedCauses
	}

	return diag
}
