package vec

import (
	"fmt"
	"iter"
)

// Vector is an ordered, index-addressable, growable sequence of T. It owns
// exactly one Arena; slots [0, Len()) hold live elements in order and the
// remainder of the block is reserved, zeroed storage. The zero Vector is
// ready to use, but like Arena it must not be copied by value — Clone makes
// a deep copy, Move and TakeFrom transfer ownership. Not goroutine-safe.
type Vector[T any] struct {
	data Arena[T]
	size int
	ops  *ops[T]
}

// New returns an empty vector. No storage is allocated.
func New[T any]() *Vector[T] {
	return &Vector[T]{ops: opsOf[T]()}
}

// NewWithLen returns a vector of n default-constructed (zero-valued)
// elements with capacity exactly n. Negative n panics.
func NewWithLen[T any](n int) (*Vector[T], error) {
	if n < 0 {
		panic("vec: negative length")
	}
	v := New[T]()
	if err := v.data.alloc(n); err != nil {
		return nil, err
	}
	v.size = n
	return v, nil
}

// Move constructs a vector that adopts src's storage and length. src is
// left valid and logically empty: length 0, capacity 0. O(1), no element
// work.
func Move[T any](src *Vector[T]) *Vector[T] {
	dst := &Vector[T]{ops: src.lazyInit()}
	dst.data.Swap(&src.data)
	dst.size = src.size
	src.size = 0
	return dst
}

func (v *Vector[T]) lazyInit() *ops[T] {
	if v.ops == nil {
		v.ops = opsOf[T]()
	}
	return v.ops
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the element capacity of the current storage.
func (v *Vector[T]) Cap() int { return v.data.Capacity() }

// At returns the address of element i. Panics when i is out of range.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	return &v.data.slots[i]
}

// Get returns element i by value. Panics when i is out of range.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// All returns an iterator over (index, element) pairs of the live range.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.slots[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.slots[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy with capacity exactly Len(). Elements
// are copy-constructed in order; if one copy fails, everything built so
// far is torn down and the error is returned with v unchanged.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	o := v.lazyInit()
	dst := &Vector[T]{ops: o}
	if err := dst.data.alloc(v.size); err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		out, err := o.clone(v.data.slots[i])
		if err != nil {
			o.destroyRange(dst.data.slots, 0, i)
			dst.data.Release()
			return nil, fmt.Errorf("vec: clone element %d: %w", i, err)
		}
		dst.data.slots[i] = out
	}
	dst.size = v.size
	return dst, nil
}

// Assign replaces v's contents with a copy of src.
//
// When src does not fit in v's current storage, a full temporary copy is
// built first and swapped in, so a failure mid-copy leaves v completely
// unmodified. When src fits, the existing storage is reused: the
// overlapping prefix is copy-assigned, then either the excess trailing
// elements are destroyed or the missing ones are copy-constructed.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	o := v.lazyInit()
	if src.size > v.data.Capacity() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		o.destroyRange(tmp.data.slots, 0, tmp.size)
		tmp.size = 0
		tmp.data.Release()
		return nil
	}
	n := min(v.size, src.size)
	for i := 0; i < n; i++ {
		out, err := o.clone(src.data.slots[i])
		if err != nil {
			return fmt.Errorf("vec: assign element %d: %w", i, err)
		}
		v.data.slots[i] = out
	}
	switch {
	case src.size < v.size:
		o.destroyRange(v.data.slots, src.size, v.size)
	case src.size > v.size:
		for i := v.size; i < src.size; i++ {
			out, err := o.clone(src.data.slots[i])
			if err != nil {
				v.size = i // keep already-built tail slots accounted for
				return fmt.Errorf("vec: assign element %d: %w", i, err)
			}
			v.data.slots[i] = out
		}
	}
	v.size = src.size
	return nil
}

// TakeFrom is move assignment: v and src exchange storage and length in
// O(1). No element is copied, moved or destroyed.
func (v *Vector[T]) TakeFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.lazyInit()
	src.lazyInit()
	v.Swap(src)
}

// Swap exchanges storage and length with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Reserve grows capacity to at least n, relocating live elements into the
// new storage. A no-op when n does not exceed the current capacity: the
// storage identity is unchanged. On relocation failure the new block is
// torn down and v is left exactly as it was.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		panic("vec: negative capacity")
	}
	if n <= v.data.Capacity() {
		return nil
	}
	o := v.lazyInit()
	var next Arena[T]
	if err := next.alloc(n); err != nil {
		return err
	}
	built, err := o.relocateInto(next.slots[:v.size], v.data.slots[:v.size])
	if err != nil {
		o.destroyRange(next.slots, 0, built)
		next.Release()
		return fmt.Errorf("vec: reserve: %w", err)
	}
	v.adopt(&next)
	return nil
}

// adopt commits fully built replacement storage. After the swap the old
// block sits in next: the copy relocation path left its elements live, so
// they are destroyed here; the move path already consumed them.
func (v *Vector[T]) adopt(next *Arena[T]) {
	v.data.Swap(next)
	if !v.ops.relocateByMove {
		v.ops.destroyRange(next.slots, 0, v.size)
	}
	next.Release()
}

// Resize sets the length to n. Shrinking destroys the dropped trailing
// elements; growing reserves capacity and default-constructs the new tail
// (reserved slots are kept zeroed, so zero values appear in place).
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vec: negative length")
	}
	if n == v.size {
		return nil
	}
	o := v.lazyInit()
	if n < v.size {
		o.destroyRange(v.data.slots, n, v.size)
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	v.size = n
	return nil
}

// PushBack appends x.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.Emplace(v.size, x)
	return err
}

// EmplaceBack appends x and returns the address of the new element.
func (v *Vector[T]) EmplaceBack(x T) (*T, error) {
	i, err := v.Emplace(v.size, x)
	if err != nil {
		return nil, err
	}
	return &v.data.slots[i], nil
}

// Insert places x at position i, shifting elements [i, Len()) one slot
// toward the end. Returns the position of the inserted element. Valid
// positions are 0 through Len() inclusive; out-of-range positions panic.
func (v *Vector[T]) Insert(i int, x T) (int, error) {
	return v.Emplace(i, x)
}

// Emplace constructs x at position i. Three cases:
//
//  1. Storage exhausted: capacity doubles (from 1 when empty) and the
//     whole vector relocates transactionally around the new element; on
//     failure v is unchanged.
//  2. i == Len() with spare capacity: x is placed in the next free slot.
//  3. Middle with spare capacity: the last element moves into the fresh
//     slot, [i, Len()-1) shifts right by backward move-assignment, and x
//     lands in the vacated slot. A mid-shift move failure leaves the
//     shifted range partially updated (no rollback is attempted).
func (v *Vector[T]) Emplace(i int, x T) (int, error) {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vec: position %d out of range [0, %d]", i, v.size))
	}
	o := v.lazyInit()
	if v.size == v.data.Capacity() {
		return v.emplaceGrow(i, x)
	}
	if i == v.size {
		v.data.slots[i] = x
		v.size++
		return i, nil
	}
	tmp := x
	last := v.size - 1
	out, err := o.move(&v.data.slots[last])
	if err != nil {
		return 0, fmt.Errorf("vec: emplace: %w", err)
	}
	v.data.slots[v.size] = out
	for j := last; j > i; j-- {
		if err := o.moveAssign(&v.data.slots[j], &v.data.slots[j-1]); err != nil {
			v.size++ // the one-past-end slot is live; keep it accounted for
			return 0, fmt.Errorf("vec: emplace: %w", err)
		}
	}
	if err := o.moveAssign(&v.data.slots[i], &tmp); err != nil {
		v.size++
		return 0, fmt.Errorf("vec: emplace: %w", err)
	}
	v.size++
	return i, nil
}

// emplaceGrow is the exhausted-capacity path of Emplace: a two-phase
// commit over storage. The new element goes directly into its final slot
// in the replacement block, the prefix and suffix are relocated around
// it, and only then does the vector adopt the block. Any failure tears
// down everything built in the replacement, new element included, and
// leaves the original storage untouched.
func (v *Vector[T]) emplaceGrow(i int, x T) (int, error) {
	o := v.ops
	newCap := 1
	if c := v.data.Capacity(); c > 0 {
		newCap = 2 * c
	}
	var next Arena[T]
	if err := next.alloc(newCap); err != nil {
		return 0, err
	}
	next.slots[i] = x
	built, err := o.relocateInto(next.slots[:i], v.data.slots[:i])
	if err != nil {
		o.destroy(&next.slots[i])
		o.destroyRange(next.slots, 0, built)
		next.Release()
		return 0, fmt.Errorf("vec: emplace: %w", err)
	}
	built, err = o.relocateInto(next.slots[i+1:v.size+1], v.data.slots[i:v.size])
	if err != nil {
		o.destroy(&next.slots[i])
		o.destroyRange(next.slots, 0, i)
		o.destroyRange(next.slots, i+1, i+1+built)
		next.Release()
		return 0, fmt.Errorf("vec: emplace: %w", err)
	}
	v.adopt(&next)
	v.size++
	return i, nil
}

// PopBack destroys the last element. No-op when empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	o := v.lazyInit()
	v.size--
	o.destroy(&v.data.slots[v.size])
}

// Erase removes the element at position i by move-assigning each later
// element one slot toward the front, then popping the trailing duplicate.
// Valid positions are 0 through Len()-1; out-of-range positions panic.
func (v *Vector[T]) Erase(i int) error {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: position %d out of range [0, %d)", i, v.size))
	}
	o := v.lazyInit()
	for j := i; j < v.size-1; j++ {
		if err := o.moveAssign(&v.data.slots[j], &v.data.slots[j+1]); err != nil {
			return fmt.Errorf("vec: erase: %w", err)
		}
	}
	v.PopBack()
	return nil
}

// Release destroys all live elements and drops the storage, leaving the
// vector valid and empty. Useful for deterministic teardown of Destroyer
// elements; otherwise the GC reclaims the storage whenever the vector
// itself becomes unreachable.
func (v *Vector[T]) Release() {
	o := v.lazyInit()
	o.destroyRange(v.data.slots, 0, v.size)
	v.size = 0
	v.data.Release()
}
