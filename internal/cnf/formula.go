// Package cnf provides a small tagged-variant Boolean formula type and a
// Tseitin transform into clauses, for callers that want to state a problem
// as an arbitrary formula instead of hand-clausified CNF.
package cnf

import (
	"fmt"

	"github.com/satcore/cdcl/internal/sat"
)

// kind tags which variant a Formula node is.
type kind uint8

const (
	kindConst kind = iota
	kindVar
	kindNot
	kindAnd
	kindOr
)

// Formula is a Boolean formula tree: a constant, a variable, a negation, or
// an and/or of two subformulas. A single tagged-variant type stands in for
// the class-per-node-kind hierarchy a formula language is usually built
// with; the kind field picks which of the struct's fields are meaningful.
type Formula struct {
	kind kind

	constVal bool
	varID    sat.VarID

	arg      *Formula // Not
	lhs, rhs *Formula // And, Or
}

// Const returns the constant formula true or false.
func Const(b bool) *Formula { return &Formula{kind: kindConst, constVal: b} }

// Var returns a formula that is exactly the value of variable v.
func Var(v sat.VarID) *Formula { return &Formula{kind: kindVar, varID: v} }

// Not returns ¬f.
func Not(f *Formula) *Formula { return &Formula{kind: kindNot, arg: f} }

// And returns f ∧ g.
func And(f, g *Formula) *Formula { return &Formula{kind: kindAnd, lhs: f, rhs: g} }

// Or returns f ∨ g.
func Or(f, g *Formula) *Formula { return &Formula{kind: kindOr, lhs: f, rhs: g} }

// AndAll folds And across fs, returning Const(true) for an empty fs.
func AndAll(fs ...*Formula) *Formula {
	out := Const(true)
	for _, f := range fs {
		out = And(out, f)
	}
	return out
}

// OrAll folds Or across fs, returning Const(false) for an empty fs.
func OrAll(fs ...*Formula) *Formula {
	out := Const(false)
	for _, f := range fs {
		out = Or(out, f)
	}
	return out
}

// tseitin is the state threaded through a Tseitin transform: a solver to
// allocate fresh auxiliary variables on, and the accumulated clauses.
type tseitin struct {
	solver  *sat.Solver
	clauses [][]sat.Literal
}

func (t *tseitin) add(lits ...sat.Literal) {
	t.clauses = append(t.clauses, lits)
}

func (t *tseitin) fresh() sat.VarID {
	return t.solver.AddVariable()
}

// tseitinVar returns a literal that is equisatisfiable with f: a fresh
// auxiliary variable for every constant and every And/Or node, def-clausified
// against its children (the standard Tseitin encoding, one gate at a time,
// each introducing at most 3 clauses). A negation introduces no variable; it
// returns its argument's literal, negated.
func (t *tseitin) tseitinVar(f *Formula) sat.Literal {
	switch f.kind {
	case kindConst:
		aux := t.fresh()
		lit := sat.PositiveLiteral(aux)
		if f.constVal {
			t.add(lit)
		} else {
			t.add(lit.Opposite())
		}
		return lit

	case kindVar:
		return sat.PositiveLiteral(f.varID)

	case kindNot:
		return t.tseitinVar(f.arg).Opposite()

	case kindAnd:
		a, b := t.tseitinVar(f.lhs), t.tseitinVar(f.rhs)
		aux := sat.PositiveLiteral(t.fresh())
		// aux <-> (a ^ b)
		t.add(aux.Opposite(), a)
		t.add(aux.Opposite(), b)
		t.add(aux, a.Opposite(), b.Opposite())
		return aux

	case kindOr:
		a, b := t.tseitinVar(f.lhs), t.tseitinVar(f.rhs)
		aux := sat.PositiveLiteral(t.fresh())
		// aux <-> (a v b)
		t.add(aux, a.Opposite())
		t.add(aux, b.Opposite())
		t.add(aux.Opposite(), a, b)
		return aux

	default:
		panic(fmt.Sprintf("cnf: unknown formula kind %d", f.kind))
	}
}

// ToCNF Tseitin-transforms f into a set of clauses equisatisfiable with f,
// allocating any auxiliary variables it needs on solver. The top-level
// formula is additionally asserted true via a unit clause on its Tseitin
// variable.
func ToCNF(solver *sat.Solver, f *Formula) [][]sat.Literal {
	t := &tseitin{solver: solver}
	top := t.tseitinVar(f)
	t.add(top)
	return t.clauses
}

// AddTo Tseitin-transforms f and adds the resulting clauses to solver,
// naming each one by its position in the generated set.
func AddTo(solver *sat.Solver, f *Formula) error {
	for i, lits := range ToCNF(solver, f) {
		if err := solver.AddClause(lits, fmt.Sprintf("tseitin-%d", i)); err != nil {
			return err
		}
	}
	return nil
}
