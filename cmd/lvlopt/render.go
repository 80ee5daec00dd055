// SPDX-License-Identifier: MIT
// Package: lvlopt/cmd/lvlopt
//
// render.go — console report and diagnosis rendering.
//
// The layouts reproduce the classic optimization-toolkit console output:
// banner-framed sections, fixed-width columns, thousands separators, and
// ✓/✗ reconciliation marks. Optimal solutions render the full report;
// every other verdict renders its diagnosis (headline, causes, demand or
// capacity figures, suggestions) instead.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlopt/carrier"
	"github.com/katalvlaran/lvlopt/mip"
	"github.com/katalvlaran/lvlopt/scenario"
	"github.com/katalvlaran/lvlopt/warehouse"
)

// Report width bounds. Columns are fixed; only the banners scale.
const (
	minReportWidth     = 40
	defaultReportWidth = 80
)

// Renderer prints reports and diagnoses in the classic console layout.
type Renderer struct {
	w     io.Writer
	width int
}

// NewRenderer builds a Renderer writing to w. Widths below the minimum fall
// back to the default, so a zero-value config still renders.
func NewRenderer(w io.Writer, width int) *Renderer {
	if width < minReportWidth {
		width = defaultReportWidth
	}

	return &Renderer{w: w, width: width}
}

// commaF renders v in fixed-point form with prec decimals and thousands
// separators in the integer part.
func commaF(v float64, prec int) string {
	var (
		s    = strconv.FormatFloat(v, 'f', prec, 64)
		neg  = strings.HasPrefix(s, "-")
		frac string
		b    strings.Builder
		i    int
	)
	if neg {
		s = s[1:]
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s, frac = s[:dot], s[dot:]
	}
	for i = 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	if neg {
		return "-" + b.String() + frac
	}

	return b.String() + frac
}

// centerPad centers s within width characters, filling both sides with fill;
// odd leftovers go to the right.
func centerPad(s string, width int, fill byte) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2

	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), width-len(s)-left)
}

// verdictHeadline maps a non-optimal status to its banner headline.
func verdictHeadline(st mip.Status) string {
	switch st {
	case mip.Infeasible:
		return "PROBLEM IS INFEASIBLE"
	case mip.Unbounded:
		return "PROBLEM IS UNBOUNDED"
	case mip.NotSolved:
		return "PROBLEM NOT SOLVED"
	case mip.Undefined:
		return "SOLVER RETURNED UNDEFINED STATUS"
	default:
		return fmt.Sprintf("UNRECOGNIZED STATUS: %d", int(st))
	}
}

func (r *Renderer) numbered(items []string) {
	for i, it := range items {
		fmt.Fprintf(r.w, "  %d. %s\n", i+1, it)
	}
}

func (r *Renderer) bullets(items []string) {
	for _, it := range items {
		fmt.Fprintf(r.w, "  • %s\n", it)
	}
}

////////////////////////////////////////////////////////////////////////////////
// Registry
////////////////////////////////////////////////////////////////////////////////

// printRegistry lists the supported problem kinds in the toolkit menu layout.
func printRegistry(w io.Writer, width int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintln(w, centerPad("OPTIMIZATION TOOLKIT", width, ' '))
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available Optimization Problems:")
	fmt.Fprintln(w, strings.Repeat("-", width))
	for i, kind := range scenario.Kinds() {
		fmt.Fprintf(w, "\n  %d. %s\n", i, kind)
	}
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("-", width))
}

////////////////////////////////////////////////////////////////////////////////
// Carrier
////////////////////////////////////////////////////////////////////////////////

// CarrierReport renders an optimal carrier allocation: per-year carrier
// tables, the all-years destination summary, and the performance summary.
func (r *Renderer) CarrierReport(rep *carrier.Report) {
	var (
		line = strings.Repeat("=", r.width)
		thin = strings.Repeat("-", r.width)
		rule = fmt.Sprintf("    %s %s %s %s",
			strings.Repeat("-", 15), strings.Repeat("-", 12),
			strings.Repeat("-", 12), strings.Repeat("-", 15))
	)

	fmt.Fprintf(r.w, "\n%s\n", line)
	fmt.Fprintln(r.w, "SHIPMENT OPTIMIZATION RESULTS")
	fmt.Fprintln(r.w, line)
	fmt.Fprintf(r.w, "\nSolver Status: %s\n", mip.Optimal)
	fmt.Fprintf(r.w, "Optimal Total Cost: $%s\n", commaF(rep.TotalCost, 2))

	fmt.Fprintf(r.w, "\n%s\n", thin)
	fmt.Fprintln(r.w, "SHIPMENT ALLOCATION BY YEAR")
	fmt.Fprintln(r.w, thin)

	for _, period := range rep.Periods {
		fmt.Fprintf(r.w, "\n%s\n", centerPad(fmt.Sprintf("Year %d", period.Period), r.width, '='))

		for _, cp := range period.Carriers {
			fmt.Fprintf(r.w, "\n  %s:\n", cp.Carrier)
			if cp.Tier >= 0 {
				fmt.Fprintf(r.w, "    Active Tier: %d (Discount: %.1f%%, Multiplier: %.3f)\n",
					cp.Tier, cp.DiscountPct, cp.Multiplier)
				fmt.Fprintf(r.w, "    Min Required: %s shipments\n", commaF(cp.MinRequired, 0))
			}

			fmt.Fprintf(r.w, "\n    %-15s %12s %12s %15s\n", "Destination", "Shipments", "Target", "Cost")
			fmt.Fprintln(r.w, rule)
			for _, route := range cp.Routes {
				fmt.Fprintf(r.w, "    %-15s %12s %12s $%14s\n",
					route.Destination, commaF(route.Shipments, 0),
					commaF(route.Target, 0), commaF(route.Cost, 2))
			}
			fmt.Fprintln(r.w, rule)
			fmt.Fprintf(r.w, "    %-15s %12s %12s $%14s\n",
				"CARRIER TOTAL", commaF(cp.Shipments, 0), "", commaF(cp.Cost, 2))
		}

		fmt.Fprintf(r.w, "\n  %-17s %12s %12s $%14s\n",
			"YEAR TOTAL", commaF(period.Shipments, 0), "", commaF(period.Cost, 2))
	}

	fmt.Fprintf(r.w, "\n%s\n", thin)
	fmt.Fprintln(r.w, "DESTINATION SUMMARY (All Years)")
	fmt.Fprintln(r.w, thin)
	fmt.Fprintf(r.w, "\n%-15s %18s %18s %10s\n", "Destination", "Total Shipments", "Total Target", "Status")
	fmt.Fprintf(r.w, "%s %s %s %s\n",
		strings.Repeat("-", 15), strings.Repeat("-", 18),
		strings.Repeat("-", 18), strings.Repeat("-", 10))
	for _, dt := range rep.Destinations {
		mark := "✓"
		if !dt.Match {
			mark = "✗"
		}
		fmt.Fprintf(r.w, "%-15s %18s %18s %10s\n",
			dt.Destination, commaF(dt.Actual, 0), commaF(dt.Target, 0), mark)
	}

	fmt.Fprintf(r.w, "\n%s\n", thin)
	fmt.Fprintln(r.w, "CARRIER PERFORMANCE SUMMARY")
	fmt.Fprintln(r.w, thin)
	fmt.Fprintf(r.w, "\n%-15s %-8s %-8s %15s %12s\n", "Carrier", "Year", "Tier", "Shipments", "Discount")
	fmt.Fprintf(r.w, "%s %s %s %s %s\n",
		strings.Repeat("-", 15), strings.Repeat("-", 8), strings.Repeat("-", 8),
		strings.Repeat("-", 15), strings.Repeat("-", 12))
	for _, row := range rep.Performance {
		if row.Tier < 0 {
			continue
		}
		fmt.Fprintf(r.w, "%-15s %-8d %-8d %15s %11.1f%%\n",
			row.Carrier, row.Period, row.Tier, commaF(row.Shipments, 0), row.DiscountPct)
	}

	fmt.Fprintf(r.w, "\n%s\n\n", line)
}

// CarrierDiagnosis renders a non-optimal carrier verdict. Infeasibility gets
// the full demand breakdown; other verdicts get their cause bullets.
func (r *Renderer) CarrierDiagnosis(d carrier.Diagnosis) {
	line := strings.Repeat("=", r.width)

	fmt.Fprintf(r.w, "\n%s\n", line)
	fmt.Fprintln(r.w, "SHIPMENT OPTIMIZATION RESULTS")
	fmt.Fprintln(r.w, line)
	fmt.Fprintf(r.w, "\nSolver Status: %s\n", d.Status)
	fmt.Fprintf(r.w, "\n⚠ %s ⚠\n", verdictHeadline(d.Status))
	fmt.Fprintf(r.w, "\n%s\n", d.Summary)

	if d.Status != mip.Infeasible {
		r.bullets(d.Causes)
		return
	}

	fmt.Fprintln(r.w, "\nPossible reasons:")
	r.numbered(d.Causes)

	fmt.Fprintln(r.w, "\nDiagnostic Information:")
	fmt.Fprintf(r.w, "  Total shipments needed (all years): %s\n", commaF(d.TotalDemand, 0))
	fmt.Fprintf(r.w, "  Number of carriers: %d\n", d.Carriers)
	fmt.Fprintf(r.w, "  Number of destinations: %d\n", d.Destinations)
	fmt.Fprintf(r.w, "  Number of years: %d\n", d.Periods)

	fmt.Fprintln(r.w, "\n  Tier minimum quantities:")
	for t, q := range d.TierMin {
		fmt.Fprintf(r.w, "    Tier %d: %s shipments\n", t, commaF(q, 0))
	}

	fmt.Fprintln(r.w, "\n  Yearly shipment targets:")
	for _, pd := range d.PeriodTotals {
		fmt.Fprintf(r.w, "    Year %d: %s total\n", pd.Period, commaF(pd.Total, 0))
		for _, dt := range pd.Targets {
			fmt.Fprintf(r.w, "      %s: %s\n", dt.Destination, commaF(dt.Target, 0))
		}
	}

	fmt.Fprintln(r.w, "\nSuggestions:")
	r.bullets(d.Suggestions)
}

////////////////////////////////////////////////////////////////////////////////
// Warehouse
////////////////////////////////////////////////////////////////////////////////

// WarehouseReport renders an optimal warehouse allocation: usage, routing,
// the two distributions, and delivery statistics.
func (r *Renderer) WarehouseReport(rep *warehouse.Report) {
	var (
		line  = strings.Repeat("=", r.width)
		thin  = strings.Repeat("-", r.width)
		inner = "  " + strings.Repeat("-", r.width-4)
	)

	fmt.Fprintln(r.w, line)
	fmt.Fprintln(r.w, "SHIPMENT OPTIMIZATION SOLUTION")
	fmt.Fprintln(r.w, line)
	fmt.Fprintf(r.w, "Status: %s\n", mip.Optimal)
	fmt.Fprintf(r.w, "Total Cost: $%s\n\n", commaF(rep.TotalCost, 2))

	fmt.Fprintln(r.w, "WAREHOUSE USAGE:")
	fmt.Fprintln(r.w, thin)
	for _, u := range rep.Usage {
		var (
			status = "INACTIVE"
			cost   float64
		)
		if u.Active {
			status = "ACTIVE"
			cost = u.FixedCost
		}
		fmt.Fprintf(r.w, "  Warehouse %s: %-8s  Fixed Cost: $%s\n", u.Warehouse, status, commaF(cost, 2))
	}
	fmt.Fprintf(r.w, "  Total Fixed Costs: $%s\n\n", commaF(rep.FixedTotal, 2))

	fmt.Fprintln(r.w, "SHIPMENT ROUTING:")
	fmt.Fprintln(r.w, thin)
	fmt.Fprintf(r.w, "  %-8s -> %-8s | %10s | %10s | %12s\n", "From", "To", "Shipments", "Unit Cost", "Total Cost")
	fmt.Fprintln(r.w, inner)
	for _, route := range rep.Routes {
		fmt.Fprintf(r.w, "  %-8s -> %-8s | %10.0f | $%9.2f | $%11.2f\n",
			route.Warehouse, route.Destination, route.Shipments, route.UnitCost, route.Cost)
	}
	fmt.Fprintln(r.w, inner)
	fmt.Fprintf(r.w, "  %-32s $%11s\n\n", "Total Variable Costs:", commaF(rep.VariableTotal, 2))

	fmt.Fprintln(r.w, "DESTINATION DISTRIBUTION:")
	fmt.Fprintln(r.w, thin)
	fmt.Fprintf(r.w, "  %-12s | %10s | %10s | %11s\n", "Destination", "Actual", "Target", "% of Total")
	fmt.Fprintln(r.w, inner)
	for _, ds := range rep.Destinations {
		fmt.Fprintf(r.w, "  %-12s | %10.0f | %10.0f | %10.2f%%\n", ds.Destination, ds.Actual, ds.Target, ds.Share)
	}
	fmt.Fprintln(r.w, inner)
	fmt.Fprintf(r.w, "  %-12s | %10.0f | %10.0f | %10.2f%%\n\n", "TOTAL", rep.TotalShipments, rep.TotalShipments, 100.0)

	fmt.Fprintln(r.w, "WAREHOUSE DISTRIBUTION:")
	fmt.Fprintln(r.w, thin)
	fmt.Fprintf(r.w, "  %-12s | %10s | %11s\n", "Warehouse", "Shipments", "% of Total")
	fmt.Fprintln(r.w, inner)
	for _, ws := range rep.Warehouses {
		fmt.Fprintf(r.w, "  %-12s | %10.0f | %10.2f%%\n", ws.Warehouse, ws.Shipments, ws.Share)
	}
	fmt.Fprintln(r.w, inner)
	fmt.Fprintf(r.w, "  %-12s | %10.0f | %10.2f%%\n\n", "TOTAL", rep.TotalShipments, 100.0)

	fmt.Fprintln(r.w, "DELIVERY TIME STATISTICS:")
	fmt.Fprintln(r.w, thin)
	fmt.Fprintf(r.w, "  Target Delivery Days: %g\n\n", rep.Delivery.TargetDays)
	fmt.Fprintln(r.w, "  Overall:")
	fmt.Fprintf(r.w, "    Average Delivery Time: %.2f days\n", rep.Delivery.AverageDays)
	fmt.Fprintf(r.w, "    On-Time Shipments:     %s (%.2f%%)\n", commaF(rep.Delivery.OnTime, 0), rep.Delivery.OnTimePct)
	fmt.Fprintf(r.w, "    Late Shipments:        %s (%.2f%%)\n\n", commaF(rep.Delivery.Late, 0), rep.Delivery.LatePct)

	fmt.Fprintf(r.w, "  %-12s | %9s | %10s | %10s | %9s\n", "Destination", "Avg Days", "On-Time", "Late", "Late %")
	fmt.Fprintln(r.w, inner)
	for _, dd := range rep.Delivery.PerDestination {
		if dd.OnTime+dd.Late == 0 {
			continue
		}
		fmt.Fprintf(r.w, "  %-12s | %9.2f | %10s | %10s | %8.2f%%\n",
			dd.Destination, dd.AverageDays, commaF(dd.OnTime, 0), commaF(dd.Late, 0), dd.LatePct)
	}

	fmt.Fprintln(r.w, line)
}

// WarehouseDiagnosis renders a non-optimal warehouse verdict. Infeasibility
// gets the capacity-vs-target table; other verdicts get their cause bullets.
func (r *Renderer) WarehouseDiagnosis(d warehouse.Diagnosis) {
	var (
		line  = strings.Repeat("=", r.width)
		inner = "  " + strings.Repeat("-", r.width-4)
	)

	fmt.Fprintln(r.w, line)
	fmt.Fprintln(r.w, "SHIPMENT OPTIMIZATION SOLUTION")
	fmt.Fprintln(r.w, line)
	fmt.Fprintf(r.w, "Solution Status: %s\n", d.Status)
	fmt.Fprintln(r.w, "No optimal solution found.")
	fmt.Fprintf(r.w, "\n⚠ %s ⚠\n", verdictHeadline(d.Status))
	fmt.Fprintf(r.w, "\n%s\n", d.Summary)

	if d.Status != mip.Infeasible {
		r.bullets(d.Causes)
		return
	}

	fmt.Fprintln(r.w, "\nPossible reasons:")
	r.numbered(d.Causes)

	fmt.Fprintln(r.w, "\nDiagnostic Information:")
	fmt.Fprintf(r.w, "  Total shipments needed: %s\n", commaF(d.TotalDemand, 0))
	fmt.Fprintf(r.w, "  Total capacity: %s\n", commaF(d.TotalCapacity, 0))
	fmt.Fprintf(r.w, "  Number of warehouses: %d\n", d.Warehouses)
	fmt.Fprintf(r.w, "  Number of destinations: %d\n", d.Destinations)
	fmt.Fprintf(r.w, "  Target delivery days: %g\n", d.TargetDays)
	fmt.Fprintf(r.w, "  Delivery tolerance: %g\n", d.Tolerance)

	fmt.Fprintf(r.w, "\n  %-12s | %10s | %10s | %12s | %6s\n", "Destination", "Target", "Capacity", "On-Time Cap", "Status")
	fmt.Fprintln(r.w, inner)
	for _, sf := range d.Shortfalls {
		mark := "✓"
		if sf.Short {
			mark = "✗"
		}
		fmt.Fprintf(r.w, "  %-12s | %10s | %10s | %12s | %6s\n",
			sf.Destination, commaF(sf.Target, 0), commaF(sf.Capacity, 0), commaF(sf.OnTimeCapacity, 0), mark)
	}

	fmt.Fprintln(r.w, "\nSuggestions:")
	r.bullets(d.Suggestions)
}
