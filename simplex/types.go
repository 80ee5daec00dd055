// Package simplex defines configuration options, sentinel errors, and
// search statistics for the bundled MILP solver.
//
// Options:
//
//	– Eps:       LP feasibility/optimality tolerance. Reduced costs above
//	             −Eps read as optimal; phase-1 residuals below Eps (scaled
//	             by the largest RHS) read as feasible.
//	– IntEps:    integrality tolerance; a relaxation value within IntEps of
//	             an integer counts as integral.
//	– TimeLimit: soft wall-clock budget for the whole search; 0 disables.
//	– MaxNodes:  cap on branch-and-bound nodes; 0 disables.
//	– MaxPivots: cap on simplex pivots per relaxation; 0 picks a bound from
//	             the tableau shape.
//
// Errors (sentinel):
//
//	– ErrNilModel     if the model pointer is nil.
//	– ErrNoObjective  if the model has no objective.
//	– ErrFreeVar      if a variable has no finite lower bound.
//	– ErrBadEps / ErrBadIntEps / ErrBadTimeLimit / ErrBadMaxNodes /
//	  ErrBadMaxPivots if a functional option receives an invalid value.
package simplex

import (
	"errors"
	"time"
)

// Sentinel errors returned by the solver and its option constructors.
var (
	// ErrNilModel indicates that a nil *mip.Model was passed to Solve.
	ErrNilModel = errors.New("simplex: model is nil")

	// ErrNoObjective indicates that the model carries no objective; Solve
	// requires mip.Model.Minimize to have been called.
	ErrNoObjective = errors.New("simplex: model has no objective")

	// ErrFreeVar indicates a variable with lower bound −Inf. The tableau
	// works in shifted non-negative space, so every variable needs a finite
	// lower bound.
	ErrFreeVar = errors.New("simplex: variable lower bound must be finite")

	// ErrBadEps indicates a non-positive or non-finite Eps.
	ErrBadEps = errors.New("simplex: Eps must be positive and finite")

	// ErrBadIntEps indicates an IntEps outside (0, 0.5); at 0.5 every value
	// would read as integral.
	ErrBadIntEps = errors.New("simplex: IntEps must be in (0, 0.5)")

	// ErrBadTimeLimit indicates a negative TimeLimit.
	ErrBadTimeLimit = errors.New("simplex: TimeLimit must be non-negative")

	// ErrBadMaxNodes indicates a negative MaxNodes.
	ErrBadMaxNodes = errors.New("simplex: MaxNodes must be non-negative")

	// ErrBadMaxPivots indicates a negative MaxPivots.
	ErrBadMaxPivots = errors.New("simplex: MaxPivots must be non-negative")
)

// Default tolerances. Eps is the LP pivot/feasibility tolerance; IntEps is
// deliberately looser because branching re-solves push relaxation values
// slightly off their integers.
const (
	defaultEps    = 1e-7
	defaultIntEps = 1e-6
)

// Options configures the solver.
//
// Eps       – LP tolerance. Must be positive. Default 1e-7.
// IntEps    – integrality tolerance. Must be in (0, 0.5). Default 1e-6.
// TimeLimit – soft wall-clock budget; exceeding it yields mip.NotSolved.
//
//	Must be ≥ 0. Default 0 (no limit).
//
// MaxNodes  – branch-and-bound node budget; exceeding it yields
//
//	mip.NotSolved. Must be ≥ 0. Default 0 (no limit).
//
// MaxPivots – per-relaxation pivot cap; exceeding it yields mip.Undefined.
//
//	Must be ≥ 0. Default 0 (derived from the tableau shape).
type Options struct {
	Eps       float64       // LP feasibility/optimality tolerance
	IntEps    float64       // integrality tolerance
	TimeLimit time.Duration // soft wall-clock budget for the whole search
	MaxNodes  int           // branch-and-bound node budget
	MaxPivots int           // simplex pivot cap per relaxation
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithEps sets the LP tolerance.
// Must pass a positive finite value; others panic with ErrBadEps.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || eps > 1 {
			// Panic to signal invalid configuration early; panics in Option
			// constructors follow the same policy as the rest of the module.
			panic(ErrBadEps.Error())
		}
		o.Eps = eps
	}
}

// WithIntEps sets the integrality tolerance.
// Must pass a value in (0, 0.5); others panic with ErrBadIntEps.
func WithIntEps(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || eps >= 0.5 {
			panic(ErrBadIntEps.Error())
		}
		o.IntEps = eps
	}
}

// WithTimeLimit sets the soft wall-clock budget for the whole search.
// A zero budget disables the deadline. Negative values panic with
// ErrBadTimeLimit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadTimeLimit.Error())
		}
		o.TimeLimit = d
	}
}

// WithMaxNodes caps the number of branch-and-bound nodes.
// Zero disables the cap. Negative values panic with ErrBadMaxNodes.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxNodes.Error())
		}
		o.MaxNodes = n
	}
}

// WithMaxPivots caps simplex pivots per relaxation solve.
// Zero derives the cap from the tableau shape. Negative values panic with
// ErrBadMaxPivots.
func WithMaxPivots(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxPivots.Error())
		}
		o.MaxPivots = n
	}
}

// DefaultOptions returns an Options struct initialized with production-safe
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Eps:       1e-7 (LP tolerance).
//   - IntEps:    1e-6 (integrality tolerance).
//   - TimeLimit: 0 (no wall-clock budget).
//   - MaxNodes:  0 (no node budget).
//   - MaxPivots: 0 (derived per relaxation from the tableau shape).
func DefaultOptions() Options {
	return Options{
		Eps:       defaultEps,
		IntEps:    defaultIntEps,
		TimeLimit: 0,
		MaxNodes:  0,
		MaxPivots: 0,
	}
}

// withDefaults fills unset (zero or invalid) fields so that a zero-value
// Solver still behaves; New applies the same normalization.
func (o Options) withDefaults() Options {
	if !(o.Eps > 0) {
		o.Eps = defaultEps
	}
	if !(o.IntEps > 0) || o.IntEps >= 0.5 {
		o.IntEps = defaultIntEps
	}
	if o.TimeLimit < 0 {
		o.TimeLimit = 0
	}
	if o.MaxNodes < 0 {
		o.MaxNodes = 0
	}
	if o.MaxPivots < 0 {
		o.MaxPivots = 0
	}

	return o
}

// Stats reports search effort for one Solve call.
type Stats struct {
	Nodes    int           // branch-and-bound nodes expanded
	Pivots   int           // simplex pivots summed over all relaxations
	MaxDepth int           // deepest branching level reached
	Elapsed  time.Duration // wall-clock time of the whole search
}
