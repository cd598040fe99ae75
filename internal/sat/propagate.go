package sat

// ClauseDB is the clause database: the original clauses plus any learned
// clauses, in insertion order. Propagate scans it in this order so that a
// solve's trace is reproducible given the same inputs.
type ClauseDB struct {
	clauses []*Clause
}

// Add appends c to the database.
func (db *ClauseDB) Add(c *Clause) {
	db.clauses = append(db.clauses, c)
}

// Len returns the number of clauses currently in the database.
func (db *ClauseDB) Len() int {
	return len(db.clauses)
}

// Clauses exposes the database's clauses in insertion order.
func (db *ClauseDB) Clauses() []*Clause {
	return db.clauses
}

// Propagate runs unit propagation to a fixed point against trail, per spec
// section 4.3: in each round, scan clauses in insertion order for the first
// one that is UNIT, assign its unit literal, then rescan for the first clause
// that has become INCONSISTENT. It returns the conflicting clause, or nil if
// propagation reached quiescence with no conflict.
//
// This implements the specification's own deterministic contract literally
// (first-match by insertion order) rather than the watched-literal
// acceleration the spec explicitly permits as a substitute: see SPEC_FULL.md
// section 4.3 and DESIGN.md for why that substitution was not made here.
func Propagate(db *ClauseDB, trail *Trail) *Clause {
	for {
		progressed := false

		for _, c := range db.clauses {
			status, unit := c.Status(trail.Values())
			if status != StatusUnit {
				continue
			}
			trail.AddUnit(unit, c)
			progressed = true
			break
		}

		if !progressed {
			return nil
		}

		for _, c := range db.clauses {
			if status, _ := c.Status(trail.Values()); status == StatusInconsistent {
				return c
			}
		}
	}
}
