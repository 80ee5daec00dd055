// Package lvlopt is your in-memory toolkit for modeling, solving and
// explaining small mixed-integer logistics plans — from raw constraint
// rows to business-ready allocation reports.
//
// 🚀 What is lvlopt?
//
//	A compact optimization suite that brings together:
//		• Model building: variables, bounds, linear ≤ / ≥ / = rows
//		• Solving: dense simplex + branch-and-bound over integer vars
//		• Carrier planning: multi-year tiered earned-discount allocation
//		• Warehouse planning: fixed-cost activation under delivery tolerances
//		• Scenarios: YAML inputs, strict validation, canned demo data
//
// ✨ Why choose lvlopt?
//
//   - Business verdicts – infeasible or unbounded runs explain themselves
//   - Deterministic – fixed variable order, reproducible branching
//   - Pure Go solver – no cgo, no external LP binaries
//   - Inspectable – every model writes itself out in LP format
//
// Under the hood, everything is organized under five subpackages and a CLI:
//
//	mip/        — model, solution, status diagnosis & LP writer
//	simplex/    — dense simplex with bounded branch-and-bound
//	carrier/    — tiered earned-discount carrier allocation
//	warehouse/  — fixed-cost warehouse activation & routing
//	scenario/   — YAML scenarios, validation, demo data
//	cmd/lvlopt/ — the command-line front end
//
// Quick ASCII example:
//
//	    [W1]────X
//	       \   /
//	        \ /
//	    [W2]────Y
//
//	two candidate warehouses feeding two destinations; the solver picks
//	which warehouse opens and which routes carry the flow.
//
// Dive into examples/ for runnable walkthroughs of both planning problems.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
