// SPDX-License-Identifier: MIT

// Package mip — the shared linked-activation constraint block.
//
// Every allocation pattern in this repository couples a binary gate to a
// group of flow variables the same way:
//
//  1. flow_i ≤ cap_i·gate        for every flow in the group
//     (flows are forced to zero unless the gate is set; cap_i is the
//     natural big-M — the flow's own capacity or demand bound, never an
//     arbitrary large constant), and
//
//  2. Σ_i flow_i ≥ min·gate      when min > 0
//     (a set gate must carry at least the group minimum, so a gate can
//     never be set "for free" below its threshold).
//
// Emitting the block from one place keeps the gating algebra identical
// across formulations and makes the sign conventions testable once.
package mip

import "fmt"

// LinkActivation emits the linked-activation block for one gate over its
// flow group. caps[i] is the upper bound that disables flows[i] when the
// gate is 0; minIfActive ≤ 0 skips the group-minimum row.
//
// Row shapes (all constants moved left, RHS 0):
//
//	flow_i − cap_i·gate ≤ 0
//	Σ flow_i − min·gate ≥ 0
//
// Labels derive from the gate's label; they are cosmetic.
//
// Errors: ErrNilModel, ErrShapeMismatch when len(flows) != len(caps), and
// the model's own sentinels for foreign handles.
//
// Complexity: O(len(flows)) rows of O(1) terms plus one row of
// O(len(flows)) terms.
func LinkActivation(m *Model, gate Var, flows []Var, caps []float64, minIfActive float64) error {
	if m == nil {
		return ErrNilModel
	}
	if len(flows) != len(caps) {
		return fmt.Errorf("LinkActivation: %d flows vs %d caps: %w", len(flows), len(caps), ErrShapeMismatch)
	}
	if gate < 0 || int(gate) >= m.NumVars() {
		return fmt.Errorf("LinkActivation: gate %d: %w", gate, ErrForeignVar)
	}

	var (
		i     int
		gname = m.Label(gate)
	)

	// 1) Per-flow gating rows.
	for i = 0; i < len(flows); i++ {
		row := NewExpr().AddVar(flows[i]).AddTerm(gate, -caps[i])
		if err := m.AddConstraint(row, LE, 0, fmt.Sprintf("gate_%s_%d", gname, i)); err != nil {
			return err
		}
	}

	// 2) Group minimum, only when a positive threshold exists.
	if minIfActive > 0 {
		total := NewExpr()
		for i = 0; i < len(flows); i++ {
			total.AddVar(flows[i])
		}
		total.AddTerm(gate, -minIfActive)
		if err := m.AddConstraint(total, GE, 0, fmt.Sprintf("min_%s", gname)); err != nil {
			return err
		}
	}

	return nil
}
