package dimacs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/satcore/cdcl/internal/sat"
)

func TestParse(t *testing.T) {
	input := `c a comment line
p cnf 3 2
1 2 0
-1 -2
3 0
`
	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse(): want no error, got %v", err)
	}

	want := &Instance{
		Variables: 3,
		Clauses: [][]int{
			{1, 2},
			{-1, -2, 3},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_trailingClauseWithoutZero(t *testing.T) {
	input := "p cnf 1 1\n1"
	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse(): want no error, got %v", err)
	}
	if len(got.Clauses) != 1 || len(got.Clauses[0]) != 1 || got.Clauses[0][0] != 1 {
		t.Errorf("Parse(): want one clause [1], got %v", got.Clauses)
	}
}

func TestParse_missingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 0\n"))
	if err == nil {
		t.Errorf("Parse() without a header: want error, got none")
	}
}

func TestParse_malformedHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf notanumber 2\n"))
	if err == nil {
		t.Errorf("Parse() with a malformed header: want error, got none")
	}
}

func TestParse_malformedLiteral(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 x 0\n"))
	if err == nil {
		t.Errorf("Parse() with a malformed literal: want error, got none")
	}
}

func TestInstance_Load(t *testing.T) {
	inst := &Instance{
		Variables: 2,
		Clauses:   [][]int{{1, 2}, {-1}},
	}
	s := sat.NewDefaultSolver()
	if err := inst.Load(s); err != nil {
		t.Fatalf("Load(): want no error, got %v", err)
	}
	if s.NumVariables() != 2 {
		t.Errorf("NumVariables(): want 2, got %d", s.NumVariables())
	}
	if s.NumConstraints() != 2 {
		t.Errorf("NumConstraints(): want 2, got %d", s.NumConstraints())
	}
}

func TestInstance_Load_undeclaredVariable(t *testing.T) {
	inst := &Instance{Variables: 1, Clauses: [][]int{{5}}}
	s := sat.NewDefaultSolver()
	if err := inst.Load(s); err == nil {
		t.Errorf("Load() with an out-of-range literal: want error, got none")
	}
}

func TestVariableName(t *testing.T) {
	if got := VariableName(0); got != "v1" {
		t.Errorf("VariableName(0): want %q, got %q", "v1", got)
	}
}
