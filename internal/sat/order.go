package sat

import (
	"github.com/rhartert/yagh"
)

// Order selects the next variable to branch on. It implements the spec's
// section 4.4 decision heuristic: "select one unassigned variable by a
// deterministic policy". The baseline policy described in the spec — first
// unassigned in insertion order, polarity false — is this heap's degenerate
// case when no variable's activity has ever been bumped, since yagh.IntMap
// breaks score ties by insertion index. Bump/Decay implement
// the VSIDS substitution the spec explicitly allows.
type Order struct {
	heap *yagh.IntMap[float64]

	activities []float64 // in [0, 1e100)
	inc        float64   // in (0, 1e100)
	decay      float64   // in (0, 1]

	phases      []LBool
	phaseSaving bool
}

// NewOrder returns an empty Order. decay must be in (0, 1]; 1 disables decay.
func NewOrder(decay float64, phaseSaving bool) *Order {
	return &Order{
		heap:        yagh.New[float64](0),
		inc:         1,
		decay:       decay,
		phaseSaving: phaseSaving,
	}
}

// AddVariable registers a new variable with zero activity and a default
// (false) phase, and makes it a candidate for the next decision.
func (o *Order) AddVariable() VarID {
	v := VarID(len(o.activities))
	o.activities = append(o.activities, 0)
	o.phases = append(o.phases, Unknown)
	o.heap.GrowBy(1)
	o.heap.Put(int(v), 0)
	return v
}

// Reinsert makes v a candidate again after it has been unassigned (e.g. by
// backjumping), recording its last value for phase saving if enabled.
func (o *Order) Reinsert(v VarID, val LBool) {
	if o.phaseSaving {
		o.phases[v] = val
	}
	o.heap.Put(int(v), -o.activities[v])
}

// Bump increases the activity of variable v, which makes it more likely to be picked by Next. Mirrors the teacher's
// BumpVarActivity, including the periodic rescale to avoid float overflow.
func (o *Order) Bump(v VarID) {
	o.activities[v] += o.inc
	if o.heap.Contains(int(v)) {
		o.heap.Put(int(v), -o.activities[v])
	}
	if o.activities[v] > 1e100 {
		o.rescale()
	}
}

// Decay slightly reduces the weight of past Bump calls relative to future
// ones, by inflating the increment rather than touching every activity.
func (o *Order) Decay() {
	o.inc /= o.decay
	if o.inc > 1e100 {
		o.rescale()
	}
}

func (o *Order) rescale() {
	o.inc *= 1e-100
	for v, a := range o.activities {
		na := a * 1e-100
		o.activities[v] = na
		if o.heap.Contains(v) {
			o.heap.Put(v, -na)
		}
	}
}

// Next pops the highest-activity unassigned variable and returns the literal
// to assign it per the saved (or default) phase. ok is false if every
// variable is already assigned.
func (o *Order) Next(trail *Trail) (Literal, bool) {
	for {
		top, ok := o.heap.Pop()
		if !ok {
			return 0, false
		}
		v := VarID(top.Elem)
		if trail.VarValue(v) != Unknown {
			continue // already assigned, skip
		}
		switch o.phases[v] {
		case True:
			return PositiveLiteral(v), true
		default:
			return NegativeLiteral(v), true
		}
	}
}
