package vec

import (
	"errors"
	"math"
	"unsafe"
)

// ErrCapacityOverflow is returned when a requested capacity would overflow
// the addressable byte size of a single allocation.
var ErrCapacityOverflow = errors.New("vec: requested capacity overflows allocation size")

// noCopy triggers go vet's copylocks check on value copies of the types
// embedding it. Arena and Vector own their storage exclusively; a shallow
// copy would alias the buffer and double-run element teardown.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Arena owns one contiguous block of raw slots sized for a fixed element
// capacity. It knows nothing about which slots hold live values: it never
// constructs elements and Release never destroys them — that is entirely
// the owner's job. Not goroutine-safe, and not copyable (vet flags value
// copies); transfer ownership with Move or Swap.
type Arena[T any] struct {
	noCopy noCopy
	slots  []T
}

// NewArena allocates raw storage for capacity elements without constructing
// any. Capacity 0 performs no allocation. Negative capacity panics.
func NewArena[T any](capacity int) (*Arena[T], error) {
	a := &Arena[T]{}
	if err := a.alloc(capacity); err != nil {
		return nil, err
	}
	return a, nil
}

// alloc replaces the arena's block with a fresh one of the given capacity.
// The previous block, if any, is dropped without element teardown.
func (a *Arena[T]) alloc(capacity int) error {
	if capacity < 0 {
		panic("vec: negative arena capacity")
	}
	if capacity == 0 {
		a.slots = nil
		return nil
	}
	var zero T
	if size := uintptr(unsafe.Sizeof(zero)); size > 0 && capacity > math.MaxInt/int(size) {
		return ErrCapacityOverflow
	}
	a.slots = make([]T, capacity)
	return nil
}

// Release drops the block. No-op when empty. Elements are never destroyed
// here; the owner must tear down all live slots first.
func (a *Arena[T]) Release() {
	a.slots = nil
}

// Move transfers the block to a fresh arena, leaving a empty (capacity 0)
// so the storage has exactly one owner.
func (a *Arena[T]) Move() *Arena[T] {
	out := &Arena[T]{slots: a.slots}
	a.slots = nil
	return out
}

// Swap exchanges the blocks of two arenas in constant time. No element is
// touched.
func (a *Arena[T]) Swap(other *Arena[T]) {
	a.slots, other.slots = other.slots, a.slots
}

// At returns the address of slot i. The only range check is the runtime
// bounds check against capacity; the caller must guarantee the slot is
// live before reading through the pointer.
func (a *Arena[T]) At(i int) *T {
	return &a.slots[i]
}

// Capacity returns the number of element slots the block can hold.
func (a *Arena[T]) Capacity() int {
	return len(a.slots)
}
