package sat

import "testing"

func TestUnsatCore_expandsLearnedAncestry(t *testing.T) {
	// original_1: (v0), original_2: (!v0 v v1), original_3: (!v1).
	// learned_a = resolve(original_2, original_1, v0) = (v1).
	// learned_b (the witness) = resolve(original_3, learned_a, v1) = ().
	o1, _ := NewClause([]Literal{PositiveLiteral(0)}, "o1", false)
	o2, _ := NewClause([]Literal{NegativeLiteral(0), PositiveLiteral(1)}, "o2", false)
	o3, _ := NewClause([]Literal{NegativeLiteral(1)}, "o3", false)

	learnedA := newResolvent([]Literal{PositiveLiteral(1)}, []*Clause{o2, o1})
	witness := newResolvent(nil, []*Clause{o3, learnedA})

	core := UnsatCore(witness)
	if len(core) != 3 {
		t.Fatalf("UnsatCore(): want 3 original clauses, got %d (%v)", len(core), core)
	}

	names := map[string]bool{}
	for _, c := range core {
		names[c.Name] = true
	}
	for _, want := range []string{"o1", "o2", "o3"} {
		if !names[want] {
			t.Errorf("UnsatCore(): missing original clause %q in %v", want, core)
		}
	}
}

func TestUnsatCore_dedupesSharedAncestor(t *testing.T) {
	shared, _ := NewClause([]Literal{PositiveLiteral(0)}, "shared", false)
	a := newResolvent([]Literal{PositiveLiteral(1)}, []*Clause{shared})
	b := newResolvent(nil, []*Clause{shared, a})

	core := UnsatCore(b)
	count := 0
	for _, c := range core {
		if c.Name == "shared" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("UnsatCore(): want the shared ancestor once, got %d times in %v", count, core)
	}
}

func TestUnsatCore_directOriginalClause(t *testing.T) {
	// Decision-level-0 conflict found directly: the witness is itself an
	// original clause, not a resolvent.
	o, _ := NewClause([]Literal{PositiveLiteral(0)}, "o", false)
	core := UnsatCore(o)
	if len(core) != 1 || core[0] != o {
		t.Errorf("UnsatCore(original clause): want [o], got %v", core)
	}
}
