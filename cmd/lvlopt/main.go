// SPDX-License-Identifier: MIT
// Package: lvlopt/cmd/lvlopt
//
// main.go — non-interactive CLI entry point.
//
// Pipeline: flags → .env → config → logger → scenario → formulate → solve →
// render. Reports go to stdout, logs to stderr. Non-optimal verdicts are
// business outcomes: they render a diagnosis and exit with a distinct code,
// they never crash.

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvlopt/carrier"
	"github.com/katalvlaran/lvlopt/scenario"
	"github.com/katalvlaran/lvlopt/simplex"
	"github.com/katalvlaran/lvlopt/warehouse"
)

// Exit codes.
const (
	ExitSuccess     = 0
	ExitConfigError = 1
	ExitNotOptimal  = 2
)

// Version information (set by build).
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to optional config file")
	scenarioPath := flag.String("scenario", "", "Path to a scenario YAML document")
	demo := flag.String("demo", "", "Run a canned demo: carrier|warehouse")
	list := flag.Bool("list", false, "List supported problem kinds and exit")
	lpDump := flag.Bool("lp", false, "Write the model in LP format instead of solving")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("lvlopt %s (built %s)\n", Version, BuildTime)
		return ExitSuccess
	}

	// Best-effort .env bootstrap; absence of the file is the normal case.
	_ = godotenv.Load()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}

	logger := SetupLogger(cfg).With("run", "run_"+uuid.New().String()[:8])

	if *list {
		printRegistry(os.Stdout, cfg.Output.Width)
		return ExitSuccess
	}

	var sc *scenario.Scenario
	switch {
	case *scenarioPath != "" && *demo != "":
		fmt.Fprintln(os.Stderr, "use either -scenario or -demo, not both")
		return ExitConfigError
	case *scenarioPath != "":
		if sc, err = scenario.Load(*scenarioPath); err != nil {
			fmt.Fprintf(os.Stderr, "scenario error: %v\n", err)
			return ExitConfigError
		}
	case *demo == "carrier":
		sc = scenario.DemoCarrier()
	case *demo == "warehouse":
		sc = scenario.DemoWarehouse()
	case *demo != "":
		fmt.Fprintf(os.Stderr, "unknown demo %q (want carrier or warehouse)\n", *demo)
		return ExitConfigError
	default:
		flag.Usage()
		return ExitConfigError
	}

	logger.Info("scenario loaded", "problem", string(sc.Problem))
	render := NewRenderer(os.Stdout, cfg.Output.Width)

	switch sc.Problem {
	case scenario.KindCarrier:
		return runCarrier(sc, cfg, logger, render, *lpDump)
	case scenario.KindWarehouse:
		return runWarehouse(sc, cfg, logger, render, *lpDump)
	default:
		fmt.Fprintf(os.Stderr, "scenario error: %v\n", sc.Validate())
		return ExitConfigError
	}
}

func runCarrier(sc *scenario.Scenario, cfg *Config, logger *slog.Logger, render *Renderer, lpDump bool) int {
	p, err := sc.CarrierProblem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scenario error: %v\n", err)
		return ExitConfigError
	}
	f, err := carrier.Formulate(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "formulation error: %v\n", err)
		return ExitConfigError
	}
	logger.Info("model built",
		"variables", f.Model.NumVars(),
		"constraints", f.Model.NumConstraints(),
	)

	if lpDump {
		if err = f.Model.WriteLP(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "lp write error: %v\n", err)
			return ExitConfigError
		}
		return ExitSuccess
	}

	sol, stats, err := simplex.New(cfg.SolverOptions()...).SolveWithStats(f.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve error: %v\n", err)
		return ExitConfigError
	}
	logger.Info("search finished",
		"status", sol.Status.String(),
		"nodes", stats.Nodes,
		"pivots", stats.Pivots,
		"elapsed", stats.Elapsed,
	)

	if !sol.IsOptimal() {
		render.CarrierDiagnosis(carrier.Diagnose(sol, p))
		return ExitNotOptimal
	}
	rep, err := f.Extract(sol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract error: %v\n", err)
		return ExitConfigError
	}
	render.CarrierReport(rep)

	return ExitSuccess
}

func runWarehouse(sc *scenario.Scenario, cfg *Config, logger *slog.Logger, render *Renderer, lpDump bool) int {
	p, err := sc.WarehouseProblem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scenario error: %v\n", err)
		return ExitConfigError
	}
	f, err := warehouse.Formulate(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "formulation error: %v\n", err)
		return ExitConfigError
	}
	logger.Info("model built",
		"variables", f.Model.NumVars(),
		"constraints", f.Model.NumConstraints(),
	)

	if lpDump {
		if err = f.Model.WriteLP(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "lp write error: %v\n", err)
			return ExitConfigError
		}
		return ExitSuccess
	}

	sol, stats, err := simplex.New(cfg.SolverOptions()...).SolveWithStats(f.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve error: %v\n", err)
		return ExitConfigError
	}
	logger.Info("search finished",
		"status", sol.Status.String(),
		"nodes", stats.Nodes,
		"pivots", stats.Pivots,
		"elapsed", stats.Elapsed,
	)

	if !sol.IsOptimal() {
		render.WarehouseDiagnosis(warehouse.Diagnose(sol, p))
		return ExitNotOptimal
	}
	rep, err := f.Extract(sol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract error: %v\n", err)
		return ExitConfigError
	}
	render.WarehouseReport(rep)

	return ExitSuccess
}
