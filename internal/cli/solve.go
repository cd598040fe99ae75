package cli

import (
	"fmt"
	"net/http"
	"os"
	"runtime/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/satcore/cdcl/internal/dimacs"
	"github.com/satcore/cdcl/internal/sat"
	"github.com/satcore/cdcl/internal/telemetry"
)

// Exit codes for the solve subcommand, per spec section 6: 10/20/0 are
// fixed by the spec, 1 is this module's own usage/parse-error convention.
const (
	exitSat     = 10
	exitUnsat   = 20
	exitUnknown = 0
	exitError   = 1
)

func newSolveCmd() *cobra.Command {
	var (
		timeout     time.Duration
		verbose     bool
		printCore   bool
		metricsAddr string
		cpuProfile  string
		memProfile  string
	)

	cmd := &cobra.Command{
		Use:   "solve <file.cnf>",
		Short: "Decide satisfiability of a DIMACS CNF instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(args[0], timeout, verbose, printCore, metricsAddr, cpuProfile, memProfile)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "stop and report unknown after this long (0 disables)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log every decision, conflict, and learned clause")
	cmd.Flags().BoolVar(&printCore, "core", false, "on UNSAT, print the refutation core's clause names")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090); empty disables")
	cmd.Flags().StringVar(&cpuProfile, "cpu-profile", "", "save a pprof CPU profile to this file")
	cmd.Flags().StringVar(&memProfile, "mem-profile", "", "save a pprof heap profile to this file")

	return cmd
}

// solveFile parses the DIMACS instance at path and solves it, wiring metrics
// and logging but performing no printing or process control. Split out from
// runSolve so it can be exercised directly by tests, which cannot observe an
// os.Exit call.
func solveFile(path string, timeout time.Duration, verbose bool, metricsAddr string) (*sat.Solver, sat.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sat.Result{}, fmt.Errorf("cdclsat: %w", err)
	}
	defer f.Close()

	instance, err := dimacs.Parse(f)
	if err != nil {
		return nil, sat.Result{}, fmt.Errorf("cdclsat: could not parse instance: %w", err)
	}

	metrics := telemetry.NewMetrics()
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics.Register(reg)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				log.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	logger := log.New()
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	sink := telemetry.NewSink(logger, metrics)

	opts := sat.DefaultOptions
	opts.Trace = sink
	if timeout > 0 {
		opts.Timeout = timeout
	}

	solver := sat.NewSolver(opts)
	if err := instance.Load(solver); err != nil {
		return nil, sat.Result{}, fmt.Errorf("cdclsat: %w", err)
	}

	result := solver.Solve()
	return solver, result, nil
}

func runSolve(path string, timeout time.Duration, verbose bool, printCore bool, metricsAddr string, cpuProfile, memProfile string) error {
	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("cdclsat: %w", err)
		}
		pprof.StartCPUProfile(f)
	}

	start := time.Now()
	solver, result, err := solveFile(path, timeout, verbose, metricsAddr)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Printf("c variables: %d\n", solver.NumVariables())
	fmt.Printf("c clauses:   %d\n", solver.NumConstraints())
	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d\n", solver.TotalConflicts)
	fmt.Printf("c decisions:  %d\n", solver.TotalDecisions)
	fmt.Printf("c status:     %s\n", result.Status)

	exitCode := exitUnknown
	switch result.Status {
	case sat.StatusSat:
		printModel(result.Model, solver.NumVariables())
		exitCode = exitSat
	case sat.StatusUnsat:
		if printCore {
			printCoreClauses(result.Core)
		}
		exitCode = exitUnsat
	}

	finishProfiles(cpuProfile, memProfile)
	os.Exit(exitCode)
	return nil
}

// finishProfiles stops the CPU profile and writes the heap profile, if
// either was requested. Must run before os.Exit, which skips deferred
// functions.
func finishProfiles(cpuProfile, memProfile string) {
	if cpuProfile != "" {
		pprof.StopCPUProfile()
	}
	if memProfile != "" {
		f, err := os.Create(memProfile)
		if err != nil {
			log.WithError(err).Error("could not create memory profile")
			return
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.WithError(err).Error("could not write memory profile")
		}
	}
}

func printModel(model map[sat.VarID]bool, numVars int) {
	fmt.Print("v")
	for i := 0; i < numVars; i++ {
		v := sat.VarID(i)
		lit := i + 1
		if !model[v] {
			lit = -lit
		}
		fmt.Printf(" %d", lit)
	}
	fmt.Println(" 0")
}

func printCoreClauses(core []*sat.Clause) {
	fmt.Printf("c core size: %d\n", len(core))
	for _, c := range core {
		fmt.Printf("c core clause: %s\n", c.Name)
	}
}
