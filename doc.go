// Package vec implements a generic resizable contiguous-storage container
// with hand-managed element lifetime.
//
// # Overview
//
// A Vector is an ordered, index-addressable, dynamically growable sequence
// of values built on two pieces:
//
//   - Arena: one contiguous block of raw slots sized for a fixed capacity,
//     with no knowledge of which slots hold live values
//   - Vector: the logical array — an Arena plus a live-element count,
//     implementing growth, insertion, removal, and copy/move semantics
//
// Unlike a plain Go slice, construction and destruction of elements are
// decoupled from memory allocation: reserved-but-unused slots hold no live
// value, and element teardown runs at a well-defined point rather than
// whenever the GC gets around to it. This is useful for:
//
//   - Elements owning external resources that need deterministic teardown
//   - Types whose copies are expensive or can fail
//   - Building higher-level structures that need amortized O(1) append
//     with explicit control over reallocation
//
// # Basic Usage
//
//	v := vec.New[int]()
//	for i := 0; i < 100; i++ {
//		if err := v.PushBack(i); err != nil {
//			// only fallible element types can fail here
//		}
//	}
//	v.PopBack()
//	_, _ = v.Insert(0, 42)
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifetime Hooks
//
// Element types may opt into explicit lifetime management by implementing
// any of the optional interfaces, probed once per vector:
//
//   - Cloner: copy construction that can fail
//   - Mover: move construction that can fail
//   - Destroyer: teardown hook run when a live slot dies
//   - MoveOnly: marker forbidding copies entirely
//
// Plain types (implementing none of these) are copied and moved by
// assignment, which never fails, and destroyed by zeroing their slot.
//
// # Growth and Safety Guarantees
//
// Capacity doubles on exhaustion, starting from 1, giving amortized
// constant-time append. Growth is transactional: the replacement storage
// is built completely before the vector adopts it, and if any element
// relocation fails the replacement is torn down and the vector is left
// exactly as it was. Relocation moves elements only when the move cannot
// fail (or the type cannot be copied at all); otherwise it copies, so a
// failing move can never destroy the only copy of a value.
//
// # Performance Characteristics
//
//   - Append: O(1) amortized
//   - Insert/Erase at position i: O(n-i) element moves
//   - Move construction, move assignment, Swap: O(1), no element work
//   - Reserve, Clone: O(n)
//
// # Important Notes
//
//   - Not goroutine-safe; callers provide external synchronization
//   - Arena and Vector must not be copied by value (go vet flags it);
//     use Clone for a deep copy and Move/TakeFrom for ownership transfer
//   - Positions passed to Insert, Emplace and Erase must be in range;
//     violations panic
//
// # Metrics
//
// Stats returns a snapshot of the container's storage usage:
//
//	stats := v.Stats()
//	fmt.Printf("utilization: %.2f%%\n", stats.Utilization*100)
//	fmt.Println(stats)
package vec
