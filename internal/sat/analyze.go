package sat

// Resolve computes the binary resolvent of learned and antecedent on pivot:
// (learned \ {lit(pivot)}) ∪ (antecedent \ {lit(pivot)}), deduplicating any
// literal the two clauses share, per spec section 4.5. It panics unless
// pivot appears in learned and its negation appears in antecedent (or vice
// versa), and it panics if the clauses share a second complementary pair on
// another variable — resolving clauses that do not share exactly one
// complementary pair is a programming error per spec section 7. Literal order is
// learned's literals first, then antecedent's, skipping the pivot and any
// duplicate, so that resolution is itself deterministic.
func Resolve(learned, antecedent *Clause, pivot VarID) *Clause {
	var lp, ap Literal = -1, -1
	for _, l := range learned.Literals {
		if l.VarID() == pivot {
			lp = l
			break
		}
	}
	for _, l := range antecedent.Literals {
		if l.VarID() == pivot {
			ap = l
			break
		}
	}
	if lp == -1 || ap == -1 || lp != ap.Opposite() {
		panic("sat: Resolve requires exactly one complementary pair on the pivot variable")
	}

	seen := make(map[Literal]bool, len(learned.Literals)+len(antecedent.Literals))
	out := make([]Literal, 0, len(learned.Literals)+len(antecedent.Literals)-2)
	for _, l := range learned.Literals {
		if l.VarID() == pivot || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	for _, l := range antecedent.Literals {
		if l.VarID() == pivot || seen[l] {
			continue
		}
		if seen[l.Opposite()] {
			panic("sat: Resolve requires exactly one complementary pair, found a second one")
		}
		seen[l] = true
		out = append(out, l)
	}
	return newResolvent(out, nil)
}

// unionMinusComplementary implements the source's looser fallback — union of
// both clauses' literals minus every complementary pair found, rather than
// just the single named pivot — purely to document the behavior this module
// deliberately does not take. It is unreachable from Resolve; see
// SPEC_FULL.md Open Question 2.
func unionMinusComplementary(c1, c2 *Clause) []Literal {
	seen := make(map[Literal]bool, len(c1.Literals)+len(c2.Literals))
	for _, l := range c1.Literals {
		seen[l] = true
	}
	for _, l := range c2.Literals {
		seen[l] = true
	}
	out := make([]Literal, 0, len(seen))
	for l := range seen {
		if seen[l.Opposite()] {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Analyze implements the specified "decision criterion" conflict analysis
// (section 4.5): starting from the conflict clause, pop unit-propagation
// steps off the top of the trail, stopping as soon as the trail's top step
// is a decision. Each popped step whose variable occurs in the current
// learned clause is resolved against its antecedent; a popped step on any
// other variable is discarded without resolving and its antecedent is not
// added to the proof. It mutates trail by popping every unit-propagation
// step it passes over; popped reports each
// such step, in pop order, so the caller can resynchronize any structure
// (e.g. the decision order heap) that tracks assigned variables. The
// returned clause always carries its ResolutionSteps (the proof). ok is
// false if resolution derived the empty clause, meaning the formula is
// UNSAT and learned is the refutation witness (use UnsatCore to extract the
// original-clause core).
func Analyze(trail *Trail, conflict *Clause) (learned *Clause, popped []Step, ok bool) {
	learned = conflict
	proof := []*Clause{conflict}

	for {
		step, exists := trail.LastStep()
		if !exists || step.Kind != StepUnitPropagation {
			break
		}
		s := trail.Pop()
		popped = append(popped, s)
		relevant := false
		for _, l := range learned.Literals {
			if l.VarID() == s.Literal.VarID() {
				relevant = true
				break
			}
		}
		if !relevant {
			continue
		}
		learned = Resolve(learned, s.Antecedent, s.Literal.VarID())
		proof = append(proof, s.Antecedent)

		if len(learned.Literals) == 0 {
			learned.ResolutionSteps = proof
			return learned, popped, false
		}
	}

	learned.ResolutionSteps = proof
	return learned, popped, true
}

// Backjump implements the precise backjump loop of spec section 4.5: unwind
// trail until learned first becomes UNIT, stopping one step before popping
// the second trail entry whose variable appears in learned. seen is a
// scratch ResetSet (caller-owned, cleared here) used to test trail-variable
// membership in learned in O(1). popped reports each step actually removed
// from trail, in pop order (see Analyze). ok is false (UNSAT) if the unwind
// runs off decision level 0 before learned ever becomes UNIT.
func Backjump(trail *Trail, learned *Clause, seen *ResetSet) (popped []Step, ok bool) {
	seen.Clear()
	for _, l := range learned.Literals {
		seen.Add(l.VarID())
	}

	learnedIsUnit := false
	for trail.NumAssigned() > 0 {
		if trail.DecisionLevel() == 0 {
			return popped, learnedIsUnit
		}
		step, _ := trail.LastStep()
		if seen.Contains(step.Literal.VarID()) {
			if !learnedIsUnit {
				learnedIsUnit = true
			} else {
				break
			}
		}
		popped = append(popped, trail.Pop())
	}
	return popped, learnedIsUnit
}
