package sat

import (
	"fmt"
	"time"
)

// Status is the outcome of a solve, the explicit result type mandated by
// Design Note 9 in place of exceptions or a sentinel error for UNSAT.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusSat
	StatusUnsat
)

func (s Status) String() string {
	switch s {
	case StatusSat:
		return "SAT"
	case StatusUnsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Result is the solver's return value: Sat carries a total assignment, Unsat
// carries a resolution-proof core (a subset of the original clauses
// sufficient to derive the empty clause). Unknown carries neither, and only
// occurs when a stop condition (MaxConflicts/Timeout) fires.
type Result struct {
	Status Status
	Model  map[VarID]bool
	Core   []*Clause
}

// Trace receives solver lifecycle events for observability. Implementations
// must be safe to call synchronously from the single-threaded solve loop;
// the solver never calls a Trace method concurrently with another. Injected
// via Options rather than a package-level singleton (Design Note 9).
type Trace interface {
	OnDecision(level int, lit Literal)
	OnConflict(level int, totalConflicts int64)
	OnLearn(clause *Clause, backjumpLevel int)
}

type nopTrace struct{}

func (nopTrace) OnDecision(int, Literal) {}
func (nopTrace) OnConflict(int, int64)   {}
func (nopTrace) OnLearn(*Clause, int)    {}

// Options configures a Solver. The zero value is not directly usable; start
// from DefaultOptions.
type Options struct {
	// VariableDecay is the VSIDS activity decay factor, in (0, 1]. 1
	// disables decay.
	VariableDecay float64

	// PhaseSaving makes the decision heuristic reuse a variable's last
	// assigned value instead of always choosing false.
	PhaseSaving bool

	// MaxConflicts stops the search and returns StatusUnknown once reached.
	// Negative disables the limit.
	MaxConflicts int64

	// Timeout stops the search and returns StatusUnknown once elapsed.
	// Negative disables the limit.
	Timeout time.Duration

	// Trace receives lifecycle events. Nil disables tracing.
	Trace Trace
}

// DefaultOptions mirrors the teacher's own defaults (no decay disabling, no
// phase saving, no stop conditions).
var DefaultOptions = Options{
	VariableDecay: 0.95,
	PhaseSaving:   false,
	MaxConflicts:  -1,
	Timeout:       -1,
}

// Solver is the CDCL engine: clause database, trail, and decision order.
// It is strictly single-threaded and synchronous (spec section 5) — no
// method may be called concurrently with another.
type Solver struct {
	trail *Trail
	db    *ClauseDB
	order *Order
	trace Trace

	// backjumpSeen is scratch space for Backjump's trail-membership test,
	// reused across conflicts instead of reallocated.
	backjumpSeen ResetSet

	maxConflicts int64
	timeout      time.Duration
	startTime    time.Time

	// unsat latches a root-level contradiction discovered by AddClause so
	// that Solve can short-circuit without re-deriving it.
	unsat     bool
	unsatCore *Clause

	TotalConflicts int64
	TotalDecisions int64
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NewSolver returns a Solver configured with the given options.
func NewSolver(opts Options) *Solver {
	trace := opts.Trace
	if trace == nil {
		trace = nopTrace{}
	}
	return &Solver{
		trail:        NewTrail(),
		db:           &ClauseDB{},
		order:        NewOrder(opts.VariableDecay, opts.PhaseSaving),
		trace:        trace,
		maxConflicts: opts.MaxConflicts,
		timeout:      opts.Timeout,
	}
}

// NumVariables returns the number of variables registered via AddVariable.
func (s *Solver) NumVariables() int {
	return s.trail.NumVariables()
}

// NumConstraints returns the number of clauses in the database, original and
// learned.
func (s *Solver) NumConstraints() int {
	return s.db.Len()
}

// AddVariable registers a new, initially unassigned boolean variable and
// returns its id.
func (s *Solver) AddVariable() VarID {
	v := s.trail.AddVariable()
	got := s.order.AddVariable()
	if got != v {
		panic("sat: trail and order variable ids diverged")
	}
	s.backjumpSeen.Expand()
	return v
}

// AddClause adds a clause to the database. It may only be called at decision
// level 0 (spec section 6). A tautological clause is silently dropped (it
// imposes no constraint); the empty clause latches the solver as permanently
// UNSAT.
func (s *Solver) AddClause(literals []Literal, name string) error {
	if s.trail.DecisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, must be 0", s.trail.DecisionLevel())
	}

	c, isTautology := NewClause(literals, name, false)
	if isTautology {
		return nil
	}

	s.db.Add(c)
	if len(c.Literals) == 0 {
		s.unsat = true
		s.unsatCore = c
	}
	return nil
}

func (s *Solver) shouldStop() bool {
	if s.maxConflicts >= 0 && s.TotalConflicts >= s.maxConflicts {
		return true
	}
	if s.timeout >= 0 && time.Since(s.startTime) >= s.timeout {
		return true
	}
	return false
}

// reinsert resynchronizes the decision order after trail steps were popped
// by Analyze or Backjump, restoring each unassigned variable as a candidate.
func (s *Solver) reinsert(popped []Step) {
	for _, step := range popped {
		s.order.Reinsert(step.Literal.VarID(), Lift(step.Literal.IsPositive()))
	}
}

// bumpClause bumps the activity of every variable mentioned in c and decays
// the increment, the VSIDS substitution spec section 4.4 permits for the
// baseline "first unassigned" decision policy.
func (s *Solver) bumpClause(c *Clause) {
	for _, l := range c.Literals {
		s.order.Bump(l.VarID())
	}
	s.order.Decay()
}

// Solve runs the CDCL search loop (spec section 4.6) to completion, or until
// a configured stop condition fires. Solve does not reset the trail when it
// returns: a later call after UNSAT returns the same latched result, a later
// call after SAT resumes from the complete assignment left on the trail, and
// AddClause rejects new clauses while that trail holds any decision.
func (s *Solver) Solve() Result {
	if s.unsat {
		return Result{Status: StatusUnsat, Core: UnsatCore(s.unsatCore)}
	}

	s.startTime = time.Now()

	for {
		if s.shouldStop() {
			return Result{Status: StatusUnknown}
		}

		conflict := Propagate(s.db, s.trail)
		if conflict != nil {
			s.TotalConflicts++
			s.trace.OnConflict(s.trail.DecisionLevel(), s.TotalConflicts)

			learned, popped, ok := Analyze(s.trail, conflict)
			s.reinsert(popped)
			if !ok {
				s.unsat = true
				s.unsatCore = learned
				return Result{Status: StatusUnsat, Core: UnsatCore(learned)}
			}

			popped, ok = Backjump(s.trail, learned, &s.backjumpSeen)
			s.reinsert(popped)
			if !ok {
				s.unsat = true
				s.unsatCore = learned
				return Result{Status: StatusUnsat, Core: UnsatCore(learned)}
			}

			s.db.Add(learned)
			s.bumpClause(learned)
			s.trace.OnLearn(learned, s.trail.DecisionLevel())
			continue
		}

		if s.trail.NumAssigned() == s.trail.NumVariables() {
			return Result{Status: StatusSat, Model: s.trail.ModelMap()}
		}

		lit, ok := s.order.Next(s.trail)
		if !ok {
			// Every variable is assigned but the count check above disagreed
			// with the order's view — should be unreachable on a well-formed
			// trail/order pair.
			return Result{Status: StatusSat, Model: s.trail.ModelMap()}
		}

		s.trail.AddDecision(lit)
		s.TotalDecisions++
		s.trace.OnDecision(s.trail.DecisionLevel(), lit)
	}
}

// BlockModel returns a clause that forbids the exact assignment in model
// (indexed by VarID), for enumerating distinct models one at a time. This is
// not part of the core algorithm; it mirrors the blocking-clause idiom the
// teacher's own test suite uses to enumerate all solutions of an instance.
func BlockModel(model map[VarID]bool) []Literal {
	out := make([]Literal, 0, len(model))
	for v, val := range model {
		if val {
			out = append(out, NegativeLiteral(v))
		} else {
			out = append(out, PositiveLiteral(v))
		}
	}
	return out
}
