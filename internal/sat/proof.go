package sat

// UnsatCore reduces a refutation witness (a clause derived by resolution, or
// an original clause found directly inconsistent at decision level 0) to the
// set of original-formula clauses sufficient to derive the empty clause, per
// spec section 7. Learned clauses may themselves have been resolved from
// other learned clauses (spec section 9, Open Question 3 — "the source
// permits this"); UnsatCore expands that ancestry recursively, deduplicating
// by clause identity so a clause reused across the proof DAG is reported
// once.
func UnsatCore(witness *Clause) []*Clause {
	seen := map[*Clause]bool{}
	var core []*Clause

	var visit func(c *Clause)
	visit = func(c *Clause) {
		if c == nil || seen[c] {
			return
		}
		seen[c] = true
		if !c.Learned {
			core = append(core, c)
			return
		}
		for _, a := range c.ResolutionSteps {
			visit(a)
		}
	}

	visit(witness)
	return core
}
