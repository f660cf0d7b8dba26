package alloc

// Ref identifies a block handed out by an Allocator. The zero Ref is never valid.
type Ref uint64

// Allocator defines the interface for block allocation and deallocation.
//
// Implementations:
//   - Heap: Default allocator, never refuses
//   - Tracking: Records live blocks and call statistics
//   - Limit: Enforces a byte budget
type Allocator interface {
	// Alloc reserves a block of size bytes.
	Alloc(size int) (Ref, error)

	// Realloc resizes the block ref to size bytes.
	// On error the block keeps its previous size.
	Realloc(ref Ref, size int) error

	// Free releases the block. The reference must not be used afterwards.
	Free(ref Ref) error
}
