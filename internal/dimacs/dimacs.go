// Package dimacs implements the external DIMACS CNF parser the core solver
// treats as a collaborator, per spec section 6: it produces the initial
// variable set and clause set but is not itself part of the CDCL core.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/satcore/cdcl/internal/sat"
)

// Instance is the parsed form of a DIMACS CNF file: the declared variable
// count and the clauses, each a slice of signed non-zero integers exactly as
// they appeared in the file (1-indexed, negative for a negated literal).
type Instance struct {
	Variables int
	Clauses   [][]int
}

// Parse reads a DIMACS CNF file per spec section 6: lines beginning with 'c'
// are comments, a single header line "p cnf <vars> <clauses>" precedes the
// clause data, and a clause may span multiple lines, terminated by a literal
// 0. The header's clause count is advisory and is never checked against the
// number of clauses actually read.
func Parse(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	inst := &Instance{}
	headerFound := false
	var clause []int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		if !headerFound {
			fields := strings.Fields(line)
			if len(fields) < 3 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("dimacs: malformed header line %q", line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: malformed variable count: %w", err)
			}
			inst.Variables = n
			headerFound = true
			continue
		}

		for _, f := range strings.Fields(line) {
			lit, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("dimacs: malformed literal %q: %w", f, err)
			}
			if lit == 0 {
				inst.Clauses = append(inst.Clauses, clause)
				clause = nil
				continue
			}
			clause = append(clause, lit)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	if !headerFound {
		return nil, fmt.Errorf("dimacs: missing header line")
	}
	if len(clause) > 0 {
		// A final clause with no terminating 0: accepted, consistent with
		// the spec's leniency about the advisory clause count.
		inst.Clauses = append(inst.Clauses, clause)
	}
	return inst, nil
}

// VariableName returns the display name the spec assigns variable v:
// v1..v{num_vars}, 1-indexed.
func VariableName(v sat.VarID) string {
	return fmt.Sprintf("v%d", v+1)
}

// Load registers inst's variables and clauses on s, in file order. Clause
// names record the clause's 1-based position in the file, which makes an
// UNSAT core's clause list traceable back to the input.
func (inst *Instance) Load(s *sat.Solver) error {
	for i := 0; i < inst.Variables; i++ {
		s.AddVariable()
	}

	for i, raw := range inst.Clauses {
		lits := make([]sat.Literal, len(raw))
		for j, lit := range raw {
			v := lit
			if v < 0 {
				v = -v
			}
			if v > inst.Variables {
				return fmt.Errorf("dimacs: clause %d references undeclared variable v%d", i+1, v)
			}
			varID := sat.VarID(v - 1)
			if lit < 0 {
				lits[j] = sat.NegativeLiteral(varID)
			} else {
				lits[j] = sat.PositiveLiteral(varID)
			}
		}
		if err := s.AddClause(lits, fmt.Sprintf("%d", i+1)); err != nil {
			return err
		}
	}
	return nil
}
