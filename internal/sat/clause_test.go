package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewClause_dedup(t *testing.T) {
	v0, v1 := VarID(0), VarID(1)
	lits := []Literal{
		PositiveLiteral(v0), PositiveLiteral(v1), PositiveLiteral(v0),
	}

	c, isTautology := NewClause(lits, "c1", false)
	if isTautology {
		t.Fatalf("NewClause(%v): want isTautology=false, got true", lits)
	}
	want := []Literal{PositiveLiteral(v0), PositiveLiteral(v1)}
	if diff := cmp.Diff(want, c.Literals); diff != "" {
		t.Errorf("NewClause(%v).Literals: mismatch (-want +got):\n%s", lits, diff)
	}
}

func TestNewClause_tautology(t *testing.T) {
	v0 := VarID(0)
	lits := []Literal{PositiveLiteral(v0), NegativeLiteral(v0)}

	c, isTautology := NewClause(lits, "c1", false)
	if !isTautology {
		t.Fatalf("NewClause(%v): want isTautology=true, got false", lits)
	}
	if c != nil {
		t.Errorf("NewClause(%v): want nil clause, got %v", lits, c)
	}
}

func TestNewClause_empty(t *testing.T) {
	c, isTautology := NewClause(nil, "empty", false)
	if isTautology {
		t.Fatalf("NewClause(nil): want isTautology=false, got true")
	}
	if c == nil || len(c.Literals) != 0 {
		t.Errorf("NewClause(nil): want a clause with zero literals, got %v", c)
	}
}

func TestClause_Status(t *testing.T) {
	v0, v1, v2 := VarID(0), VarID(1), VarID(2)
	c, _ := NewClause([]Literal{
		PositiveLiteral(v0), PositiveLiteral(v1), PositiveLiteral(v2),
	}, "c", false)

	tests := []struct {
		name     string
		vals     func() []LBool
		wantStat ClauseStatus
	}{
		{
			name: "all unknown",
			vals: func() []LBool {
				vals := make([]LBool, 6)
				return vals
			},
			wantStat: StatusConsistent,
		},
		{
			name: "satisfied",
			vals: func() []LBool {
				vals := make([]LBool, 6)
				vals[PositiveLiteral(v0)] = True
				vals[NegativeLiteral(v0)] = False
				return vals
			},
			wantStat: StatusTrue,
		},
		{
			name: "unit",
			vals: func() []LBool {
				vals := make([]LBool, 6)
				vals[PositiveLiteral(v0)] = False
				vals[NegativeLiteral(v0)] = True
				vals[PositiveLiteral(v1)] = False
				vals[NegativeLiteral(v1)] = True
				return vals
			},
			wantStat: StatusUnit,
		},
		{
			name: "inconsistent",
			vals: func() []LBool {
				vals := make([]LBool, 6)
				for _, v := range []VarID{v0, v1, v2} {
					vals[PositiveLiteral(v)] = False
					vals[NegativeLiteral(v)] = True
				}
				return vals
			},
			wantStat: StatusInconsistent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := c.Status(tc.vals())
			if status != tc.wantStat {
				t.Errorf("Status(): want %s, got %s", tc.wantStat, status)
			}
		})
	}
}

func TestClause_GetUnit_panicsOnNonUnit(t *testing.T) {
	c, _ := NewClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}, "c", false)
	vals := make([]LBool, 4)

	defer func() {
		if recover() == nil {
			t.Errorf("GetUnit() on a consistent clause: want panic, got none")
		}
	}()
	c.GetUnit(vals)
}

func TestResolve(t *testing.T) {
	a, _ := NewClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}, "a", false)
	b, _ := NewClause([]Literal{NegativeLiteral(0), PositiveLiteral(2)}, "b", false)

	got := Resolve(a, b, 0)
	want := []Literal{PositiveLiteral(1), PositiveLiteral(2)}

	if diff := cmp.Diff(want, got.Literals); diff != "" {
		t.Errorf("Resolve(a, b, 0).Literals: mismatch (-want +got):\n%s", diff)
	}
	if !got.Learned {
		t.Errorf("Resolve(a, b, 0).Learned: want true, got false")
	}
}
