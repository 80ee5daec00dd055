// SPDX-License-Identifier: MIT
// Package: lvlopt/carrier
//
// diagnose.go — structured guidance for non-optimal verdicts.
//
// Non-optimal solver verdicts are expected business outcomes here, not
// programming defects; they are converted into a Diagnosis at this boundary
// instead of propagating as errors. The cause and suggestion lists are fixed
// per status so operators see stable wording; the counts are recomputed from
// the problem so the numbers are always current.

package carrier

import "github.com/katalvlaran/lvlopt/mip"

// DestTarget pairs a destination with its declared target in one period.
type DestTarget struct {
	Destination string
	Target      float64
}

// PeriodDemand is one period's demand: its total and the per-destination
// breakdown.
type PeriodDemand struct {
	Period  int
	Total   float64
	Targets []DestTarget
}

// Diagnosis explains a solver verdict in business terms: a fixed headline,
// likely causes, remediation suggestions, and the demand figures an operator
// needs to judge whether the instance was ever satisfiable.
type Diagnosis struct {
	Status  mip.Status
	Summary string
	// Causes lists likely reasons for the verdict; empty for Optimal.
	Causes []string
	// Suggestions lists remediation steps; empty when none apply.
	Suggestions []string

	TotalDemand  float64
	Carriers     int
	Destinations int
	Periods      int
	TierMin      []float64
	PeriodTotals []PeriodDemand
}

// Fixed per-status guidance. Infeasibility in this formulation almost always
// traces back to the interplay of tier minimums and targets, so those lead.
var (
	infeasibleCauses = []string{
		"tier minimum quantities may be too high relative to shipment targets",
		"targets may be impossible to meet with the given constraints",
		"tier requirements may conflict with shipment targets",
		"the exactly-one-tier rule may conflict with minimum quantities",
	}
	infeasibleSuggestions = []string{
		"review tier minimum quantities",
		"check that shipment targets are achievable",
		"consider relaxing some constraints",
		"verify that tier structures align with expected volumes",
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
// status, including Optimal (which carries only the headline and counts).
// p must have passed Validate; Diagnose reads its shapes unchecked.
func Diagnose(sol mip.Solution, p *Problem) Diagnosis {
	diag := Diagnosis{
		Status:       sol.Status,
		Summary:      mip.StatusSummary(sol.Status),
		TotalDemand:  p.TotalDemand(),
		Carriers:     len(p.Carriers),
		Destinations: len(p.Destinations),
		Periods:      p.Periods,
		TierMin:      append([]float64(nil), p.TierMin...),
	}

	var (
		y, d int
		pd   PeriodDemand
	)
	for y = 0; y < p.Periods; y++ {
		pd = PeriodDemand{Period: y, Total: p.PeriodDemand(y)}
		for d = range p.Destinations {
			pd.Targets = append(pd.Targets, DestTarget{
				Destination: p.Destinations[d],
				Target:      p.Target[y][d],
			})
		}
		diag.PeriodTotals = append(diag.PeriodTotals, pd)
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
