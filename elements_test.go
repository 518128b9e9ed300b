package vec

import "errors"

var errBoom = errors.New("boom")

// tracked records its destruction order through a shared sink. It has no
// Cloner/Mover, so copies and moves are plain assignment.
type tracked struct {
	id  int
	rec *[]int
}

func (t tracked) Destroy() {
	if t.rec != nil {
		*t.rec = append(*t.rec, t.id)
	}
}

// failPlan scripts element-operation failures: the Nth clone or move
// (1-based, counted across all elements sharing the plan) returns errBoom.
type failPlan struct {
	cloneCalls  int
	moveCalls   int
	failCloneAt int
	failMoveAt  int
	destroyed   []int
}

// flaky has fallible clone and move plus a destruction recorder. Because
// its move can fail and it is copyable, relocation must take the clone
// path.
type flaky struct {
	id   int
	plan *failPlan
}

func (f flaky) Clone() (flaky, error) {
	p := f.plan
	if p == nil {
		return f, nil
	}
	p.cloneCalls++
	if p.failCloneAt != 0 && p.cloneCalls >= p.failCloneAt {
		return flaky{}, errBoom
	}
	return flaky{id: f.id, plan: p}, nil
}

func (f flaky) Move() (flaky, error) {
	p := f.plan
	if p == nil {
		return f, nil
	}
	p.moveCalls++
	if p.failMoveAt != 0 && p.moveCalls >= p.failMoveAt {
		return flaky{}, errBoom
	}
	return flaky{id: f.id, plan: p}, nil
}

func (f flaky) Destroy() {
	if f.plan != nil {
		f.plan.destroyed = append(f.plan.destroyed, f.id)
	}
}

// moveOnlyElem cannot be copied; its move is fallible, so relocation must
// still move it (there is no safer path).
type moveOnlyElem struct {
	id int
}

func (moveOnlyElem) MoveOnly() {}

func (m moveOnlyElem) Move() (moveOnlyElem, error) {
	return m, nil
}

func collect[T any](v *Vector[T]) []T {
	out := make([]T, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}

func ids(v *Vector[flaky]) []int {
	out := make([]int, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x.id)
	}
	return out
}
