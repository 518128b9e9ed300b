package vec

// Optional element capability interfaces. All hooks use value receivers:
// elements are stored by value, and the container invokes hooks on the
// stored value directly. A type sharing mutable state across copies should
// do so through an interior pointer.

// Cloner is implemented by element types whose copy construction can fail.
// Clone must return an independent value; on error the source is unchanged.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Mover is implemented by element types whose move construction can fail.
// On success the container zeroes the source slot; on error the source is
// unchanged. Types without Mover are moved by assignment, which cannot
// fail.
type Mover[T any] interface {
	Move() (T, error)
}

// Destroyer is implemented by element types that need teardown when the
// container kills a live slot (PopBack, Erase, shrinking Resize, copy-path
// relocation, teardown of partially built storage). The slot is zeroed
// after the hook runs.
type Destroyer interface {
	Destroy()
}

// MoveOnly marks element types that must never be copied. Clone-requiring
// operations (Clone, Assign, PushBack-by-copy of such types) are invalid
// and panic; relocation always moves.
type MoveOnly interface {
	MoveOnly()
}

// ops is the capability table for an element type, probed once per vector
// rather than per element, so the move-vs-copy safety decision is made at
// the type level.
type ops[T any] struct {
	clone   func(T) (T, error)
	move    func(*T) (T, error)
	destroy func(*T)

	copyable bool // T does not implement MoveOnly
	moveSafe bool // T does not implement Mover: moves cannot fail

	// relocateByMove: move the batch when the move cannot fail, or when
	// copying is impossible; otherwise copy so a failing move can never
	// destroy the only extant value.
	relocateByMove bool
}

func opsOf[T any]() *ops[T] {
	var probe T
	o := &ops[T]{copyable: true, moveSafe: true}

	if _, ok := any(probe).(MoveOnly); ok {
		o.copyable = false
	}

	if _, ok := any(probe).(Cloner[T]); ok {
		o.clone = func(x T) (T, error) { return any(x).(Cloner[T]).Clone() }
	} else {
		o.clone = func(x T) (T, error) { return x, nil }
	}
	if !o.copyable {
		o.clone = func(T) (T, error) { panic("vec: copy of move-only element type") }
	}

	if _, ok := any(probe).(Mover[T]); ok {
		o.moveSafe = false
		o.move = func(src *T) (T, error) {
			out, err := any(*src).(Mover[T]).Move()
			if err != nil {
				return out, err
			}
			var zero T
			*src = zero
			return out, nil
		}
	} else {
		o.move = func(src *T) (T, error) {
			out := *src
			var zero T
			*src = zero
			return out, nil
		}
	}

	if _, ok := any(probe).(Destroyer); ok {
		o.destroy = func(p *T) {
			any(*p).(Destroyer).Destroy()
			var zero T
			*p = zero
		}
	} else {
		o.destroy = func(p *T) {
			var zero T
			*p = zero
		}
	}

	o.relocateByMove = o.moveSafe || !o.copyable
	return o
}

// moveAssign overwrites dst with the value moved out of src. The old dst
// value is replaced without a Destroy hook, matching element-level
// assignment semantics during shifts.
func (o *ops[T]) moveAssign(dst, src *T) error {
	out, err := o.move(src)
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

// destroyRange tears down live slots [from, to) in order.
func (o *ops[T]) destroyRange(slots []T, from, to int) {
	for i := from; i < to; i++ {
		o.destroy(&slots[i])
	}
}

// relocateInto copy- or move-constructs src into dst per the type-level
// relocation policy. It returns the count of slots constructed in dst;
// on error the constructed prefix dst[:n] is still live and the caller
// owns its teardown. The copy path leaves src untouched; the move path
// consumes src as it goes.
func (o *ops[T]) relocateInto(dst, src []T) (int, error) {
	if o.relocateByMove {
		for i := range src {
			out, err := o.move(&src[i])
			if err != nil {
				return i, err
			}
			dst[i] = out
		}
		return len(src), nil
	}
	for i := range src {
		out, err := o.clone(src[i])
		if err != nil {
			return i, err
		}
		dst[i] = out
	}
	return len(src), nil
}
