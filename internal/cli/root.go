// Package cli wires the solver, the DIMACS parser, and the telemetry sinks
// into a cobra command tree, the CLI front-end spec section 6 leaves to this
// module's discretion.
package cli

import "github.com/spf13/cobra"

// NewRootCommand returns the cdclsat root command, with solve registered as
// its only subcommand.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cdclsat",
		Short: "A CDCL SAT solver",
		Long:  "cdclsat reads a DIMACS CNF file and decides satisfiability by conflict-driven clause learning.",
	}
	root.AddCommand(newSolveCmd())
	return root
}
