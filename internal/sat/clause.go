package sat

import "strings"

// ClauseStatus is the result of evaluating a clause against a partial model,
// as defined by spec section 4.1. Exactly one status holds at a time.
type ClauseStatus uint8

const (
	StatusConsistent ClauseStatus = iota
	StatusTrue
	StatusUnit
	StatusInconsistent
)

func (s ClauseStatus) String() string {
	switch s {
	case StatusTrue:
		return "true"
	case StatusUnit:
		return "unit"
	case StatusInconsistent:
		return "inconsistent"
	default:
		return "consistent"
	}
}

// Clause is an unordered disjunction of literals with deterministic
// (insertion order) iteration. A clause never contains a literal and its
// negation, never repeats a literal, and never mentions the same variable
// twice once built via NewClause.
type Clause struct {
	// Name is an optional, human-readable identifier, e.g. for clauses
	// loaded from a DIMACS file or synthesized by the CNF converter.
	Name string

	// Literals holds the clause's disjuncts in insertion order.
	Literals []Literal

	// Learned is true for clauses produced by conflict analysis.
	Learned bool

	// ResolutionSteps records, for a learned clause, the antecedent clauses
	// that were resolved together to produce it, in the order they were
	// consumed. Nil for original (non-learned) clauses.
	ResolutionSteps []*Clause
}

// NewClause builds a clause from literals, rejecting tautologies (a literal
// and its negation both present) and deduplicating repeated literals. It
// returns (nil, true) for a tautology — trivially true, nothing to store,
// mirroring the teacher's "nil clause, ok bool" idiom for clauses that need
// not be added to the database. A literals slice that reduces to nothing
// (the empty input) is not a tautology: it yields the empty clause, always
// false, used to represent the boundary case of spec section 8 ("clause set
// containing the empty clause").
func NewClause(literals []Literal, name string, learned bool) (c *Clause, isTautology bool) {
	seen := map[Literal]bool{}
	out := make([]Literal, 0, len(literals))
	for _, l := range literals {
		if seen[l] {
			continue // duplicate literal, drop it
		}
		if seen[l.Opposite()] {
			return nil, true // tautology, always true: reject at construction
		}
		seen[l] = true
		out = append(out, l)
	}
	return &Clause{
		Name:     name,
		Literals: out,
		Learned:  learned,
	}, false
}

// newResolvent builds the result of resolving two clauses on a pivot
// variable without re-checking for tautologies (resolution cannot introduce
// one when the single-pivot precondition holds).
func newResolvent(literals []Literal, steps []*Clause) *Clause {
	return &Clause{
		Literals:        literals,
		Learned:         true,
		ResolutionSteps: steps,
	}
}

// Status evaluates the clause against vals, a dense per-literal assignment
// slice indexed by Literal (see Trail.values), in a single pass as specified
// in section 4.1.
func (c *Clause) Status(vals []LBool) (ClauseStatus, Literal) {
	unassignedCount := 0
	var unit Literal
	for _, l := range c.Literals {
		switch vals[l] {
		case True:
			return StatusTrue, -1
		case Unknown:
			unassignedCount++
			unit = l
		}
	}
	switch {
	case unassignedCount == 0:
		return StatusInconsistent, -1
	case unassignedCount == 1:
		return StatusUnit, unit
	default:
		return StatusConsistent, -1
	}
}

// IsUnit reports whether the clause is UNIT under vals.
func (c *Clause) IsUnit(vals []LBool) bool {
	s, _ := c.Status(vals)
	return s == StatusUnit
}

// IsConsistent reports whether the clause is CONSISTENT (undetermined, at
// least two unassigned literals) under vals.
func (c *Clause) IsConsistent(vals []LBool) bool {
	s, _ := c.Status(vals)
	return s == StatusConsistent
}

// GetUnit returns the clause's unit literal under vals. It panics if the
// clause is not UNIT — querying the unit literal of a non-unit clause is a
// programming error per spec section 7.
func (c *Clause) GetUnit(vals []LBool) Literal {
	s, l := c.Status(vals)
	if s != StatusUnit {
		panic("sat: GetUnit called on a non-unit clause")
	}
	return l
}

func (c *Clause) String() string {
	if len(c.Literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.Literals[0].String())
	for _, l := range c.Literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
