// SPDX-License-Identifier: MIT

// Package scenario loads, validates, and converts allocation scenarios
// declared in YAML into the core carrier and warehouse problems.
//
// A scenario document names its problem kind and carries exactly one
// matching block:
//
//	problem: carrier_earned_discount
//	carrier:
//	  years: 2
//	  carriers: [UPS, FedEx]
//	  destinations: [A, B, C]
//	  targets:
//	    - {A: 20000, B: 14000, C: 6000}
//	    - {A: 26000, B: 18200, C: 7800}
//	  costs:
//	    UPS:   {A: 5, B: 8, C: 10}
//	    FedEx: {A: 6, B: 9, C: 8}
//	  tier_minimums: [5000, 50000, 100000]
//	  discounts:
//	    UPS:   [0.97, 0.96, 0.95]
//	    FedEx: [0.96, 0.94, 0.93]
//
// tier_minimums lists only the earned tiers: tier 0 (minimum 0, multiplier
// 1.0) is implicit and prepended during conversion, so discount lists align
// to tier_minimums entry by entry.
//
// Decoding is strict: unknown YAML fields are rejected, so a typo like
// `tolerence:` fails at load rather than silently defaulting.
//
// Validation is a field-level error list, never an exception and never a
// re-prompt: Validate returns every violation at once, each tagged with its
// dotted field path (`carrier.discounts.UPS[2]`). Converters refuse invalid
// scenarios with that same list as the error.
//
// # API
//
//	s, err := scenario.Load("plan.yaml")
//	if err != nil { ... }                  // I/O or YAML shape defect
//	if errs := s.Validate(); len(errs) > 0 {
//	    for _, fe := range errs { fmt.Println(fe) }
//	    ...
//	}
//	p, err := s.CarrierProblem()           // dense Problem, declared order
//
// DemoCarrier and DemoWarehouse return ready-made scenarios: the canned
// two-year UPS/FedEx discount plan and a three-warehouse network sized to
// solve cleanly.
//
// See also: packages carrier and warehouse for what the converted problems
// mean, and cmd/lvlopt for the CLI that drives this package.
package scenario
