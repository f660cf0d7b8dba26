// Package alloc accounts for the backing blocks of growable arrays.
//
// # Overview
//
// The Go runtime owns the memory behind every vector, but each block (header
// plus element storage) is still charged against an Allocator. That keeps the
// block lifecycle explicit: a block is allocated on first append, resized on
// growth and freed exactly once on release. Allocators can refuse a request,
// which is how a vector learns that it cannot grow.
//
// # Allocator Interface
//
//   - Alloc(size): Reserve a new block of size bytes and return its reference
//   - Realloc(ref, size): Resize an existing block in place
//   - Free(ref): Return a block; the reference is dead afterwards
//
// # Implementations
//
// Heap: Default allocator. Hands out references and never refuses a
// well-formed request.
//
// Tracking: Wraps another allocator and records every live block together
// with call counters and peak usage. Tests use it to prove that releasing a
// vector leaks nothing:
//
//	ta := alloc.NewTracking(nil)
//	v, err := vector.New[int](&vector.Options{Allocator: ta})
//	if err != nil {
//	    return err
//	}
//	// ... use v ...
//	_ = v.Release()
//	if ta.Stats().LiveBlocks != 0 {
//	    // leaked
//	}
//
// Limit: Wraps another allocator with a byte budget. Requests that would
// exceed the budget fail with ErrNoSpace and leave the block untouched.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
