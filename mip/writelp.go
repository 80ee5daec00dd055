// SPDX-License-Identifier: MIT

// Package mip — human-readable model dumps in LP format.
//
// WriteLP exists for eyeballing and for cross-checking a formulation against
// an external solver; nothing in this repository parses the output back.
// The dialect is the widely understood CPLEX-LP subset: Minimize /
// Subject To / Bounds / Generals / Binaries / End.
package mip

import (
	"fmt"
	"io"
	"strings"
)

// WriteLP writes the model to w in LP format. Variable labels are sanitized
// to the LP identifier alphabet; an empty label renders as x<i>. For a
// meaningful dump, labels should be unique — the model does not enforce
// this, since labels are cosmetic.
//
// Errors: ErrNilModel, ErrNoObjective, or the writer's error.
func (m *Model) WriteLP(w io.Writer) error {
	if m == nil {
		return ErrNilModel
	}
	if !m.hasObj {
		return ErrNoObjective
	}

	var (
		i   int
		err error
	)

	names := make([]string, len(m.vars))
	for i = 0; i < len(m.vars); i++ {
		names[i] = lpName(m.vars[i].label, i)
	}

	if _, err = fmt.Fprintf(w, "\\ %s\nMinimize\n obj:", m.name); err != nil {
		return err
	}
	if err = writeExpr(w, &m.obj, names, true); err != nil {
		return err
	}
	if _, err = io.WriteString(w, "\nSubject To\n"); err != nil {
		return err
	}

	for i = 0; i < len(m.cons); i++ {
		c := &m.cons[i]
		label := c.Label
		if label == "" {
			label = fmt.Sprintf("c%d", i)
		}
		if _, err = fmt.Fprintf(w, " %s:", lpName(label, i)); err != nil {
			return err
		}
		// The expression constant folds into the right-hand side, so the
		// printed row keeps the original row's meaning.
		if err = writeExpr(w, &c.Expr, names, false); err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, " %s %g\n", c.Rel, c.RHS-c.Expr.konst); err != nil {
			return err
		}
	}

	if _, err = io.WriteString(w, "Bounds\n"); err != nil {
		return err
	}
	for i = 0; i < len(m.vars); i++ {
		v := &m.vars[i]
		if v.kind == Binary {
			continue // implied by the Binaries section
		}
		if _, err = fmt.Fprintf(w, " %g <= %s <= %g\n", v.lb, names[i], v.ub); err != nil {
			return err
		}
	}

	if err = writeKindSection(w, m, names, Integer, "Generals"); err != nil {
		return err
	}
	if err = writeKindSection(w, m, names, Binary, "Binaries"); err != nil {
		return err
	}
	_, err = io.WriteString(w, "End\n")

	return err
}

// writeExpr renders " + c x" / " - c x" terms, plus the constant when
// withConst is set (objective only; constraint constants live on the RHS).
func writeExpr(w io.Writer, e *LinearExpr, names []string, withConst bool) error {
	var (
		i   int
		err error
	)
	for i = 0; i < len(e.terms); i++ {
		t := e.terms[i]
		sign, mag := " +", t.Coef
		if mag < 0 {
			sign, mag = " -", -mag
		}
		if _, err = fmt.Fprintf(w, "%s %g %s", sign, mag, names[t.Var]); err != nil {
			return err
		}
	}
	if withConst && e.konst != 0 {
		sign, mag := " +", e.konst
		if mag < 0 {
			sign, mag = " -", -mag
		}
		if _, err = fmt.Fprintf(w, "%s %g", sign, mag); err != nil {
			return err
		}
	}

	return nil
}

// writeKindSection lists all variables of one kind under a section header,
// omitting the section entirely when the model has none of that kind.
func writeKindSection(w io.Writer, m *Model, names []string, kind VarKind, header string) error {
	var (
		i     int
		err   error
		found bool
	)
	for i = 0; i < len(m.vars); i++ {
		if m.vars[i].kind != kind {
			continue
		}
		if !found {
			if _, err = fmt.Fprintf(w, "%s\n", header); err != nil {
				return err
			}
			found = true
		}
		if _, err = fmt.Fprintf(w, " %s\n", names[i]); err != nil {
			return err
		}
	}

	return nil
}

// lpName maps an arbitrary label onto the LP identifier alphabet.
func lpName(label string, idx int) string {
	if label == "" {
		return fmt.Sprintf("x%d", idx)
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}
