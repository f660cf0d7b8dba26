// Package vector provides a generic growable array with explicit storage
// lifecycle and a configurable growth policy.
//
// # Overview
//
// A Vector[T] owns a single block: a small header (element count and
// capacity) bundled with contiguous element storage. The storage is exposed
// directly, both as a slice (Data) and through comparable iterator positions
// (Begin, End), so callers can walk it the way they would walk a raw array.
//
// # Lifecycle
//
//	Empty (no block) -> Allocated(cap) -> Allocated(cap') -> ... -> Released
//
// The zero Vector is Empty. The first PushBack allocates a block, later
// appends reuse capacity or grow the block, and Release frees it. Released is
// terminal: mutations return ErrReleased until Reset returns the vector to
// Empty. Read-only accessors treat Empty and Released vectors as holding zero
// elements.
//
// # Growth Policy
//
// The policy is chosen once, when the vector is constructed:
//
//	Multiplicative (default): 0 -> MinCapacity (8), n -> max(MinCapacity, n*Factor (2))
//	Linear:                   0 -> 1,               n -> n+Factor (1)
//
// Multiplicative growth gives amortized O(1) appends. Linear growth bounds
// the slack to Factor elements at the cost of a copy on almost every append.
//
//	v, err := vector.New[int](&vector.Options{Policy: vector.PolicyLinear})
//	if err != nil {
//	    return err
//	}
//
// # Allocation
//
// Every block is charged HeaderSize + Cap()*sizeof(T) bytes against an
// alloc.Allocator. When the allocator refuses, or the size does not fit in an
// int, the operation fails with ErrAllocationFailure and the vector keeps its
// previous contents.
//
// # Errors
//
//   - ErrAllocationFailure: growth was refused
//   - ErrEmpty: PopBack or Back on an empty vector
//   - ErrReleased: mutation after Release
//   - Erase with an index outside [0, Len()) is a silent no-op
//
// # Relocation
//
// Growth moves the elements to new storage. Slices returned by Data, pointers
// returned by Back or Iter.Ptr, and Iter values taken before the growth must
// not be used afterwards. Iter values detect this and panic with
// ErrStaleIterator.
//
// # Thread Safety
//
// Vectors are not thread-safe. Callers must synchronize access externally.
package vector
