package vector

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/growarray/internal/buf"
	"github.com/joshuapare/growarray/vector/alloc"
)

// HeaderSize is the number of bytes charged for the header (count and
// capacity, one machine word each) in front of every block's elements.
const HeaderSize = 16

// header is stored with the element storage it describes.
type header struct {
	count    int       // Elements in [0, count) are valid
	capacity int       // len(data)
	ref      alloc.Ref // Allocator reference for the whole block
}

// block is the single allocation behind a vector: header plus elements.
type block[T any] struct {
	header
	data []T
}

// setCapacity overwrites the recorded capacity. Does not reallocate.
func (b *block[T]) setCapacity(n int) {
	b.capacity = n
}

// setSize overwrites the recorded count. Does not validate against capacity.
func (b *block[T]) setSize(n int) {
	b.count = n
}

// Options configures a vector at construction. A nil *Options means defaults.
type Options struct {
	// Policy is the growth strategy. The zero Policy is DefaultPolicy.
	Policy Policy

	// Allocator accounts for the backing block. Nil means a private Heap.
	Allocator alloc.Allocator
}

// Vector is a growable array of T.
//
// The zero value is an empty, unallocated vector using DefaultPolicy.
// A Vector must not be copied after first use; pass *Vector instead.
type Vector[T any] struct {
	blk      *block[T] // nil until the first allocation and after Release
	policy   Policy
	alloc    alloc.Allocator
	gen      uint64 // bumped on every relocation and on release
	released bool

	// Test hook: called after each successful grow (nil in production)
	onGrow func(oldCap, newCap int)
}

// New creates an empty vector. No storage is allocated until the first append.
func New[T any](opts *Options) (*Vector[T], error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := opts.Policy.Validate(); err != nil {
		return nil, err
	}
	return &Vector[T]{
		policy: opts.Policy.withDefaults(),
		alloc:  opts.Allocator,
	}, nil
}

// Policy returns the growth policy with defaults applied.
func (v *Vector[T]) Policy() Policy {
	return v.policy.withDefaults()
}

func (v *Vector[T]) allocator() alloc.Allocator {
	if v.alloc == nil {
		v.alloc = alloc.NewHeap()
	}
	return v.alloc
}

// Cap returns the number of elements the current block can hold.
// Zero when nothing is allocated.
func (v *Vector[T]) Cap() int {
	if v.blk == nil {
		return 0
	}
	return v.blk.capacity
}

// Len returns the number of elements. Zero when nothing is allocated.
func (v *Vector[T]) Len() int {
	if v.blk == nil {
		return 0
	}
	return v.blk.count
}

// Empty reports whether Len() == 0.
func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// Released reports whether the vector was released and not yet Reset.
func (v *Vector[T]) Released() bool {
	return v.released
}

// blockSize returns the bytes charged for a block of n elements.
func blockSize[T any](n int) (int, error) {
	var zero T
	return buf.BlockSize(HeaderSize, n, int(unsafe.Sizeof(zero)))
}

// grow makes the block hold exactly newCap elements, allocating it if needed.
// Elements [0, count) and count are preserved. newCap must be >= Len().
// Blocks larger than buf.MaxBlockSize are refused before anything is
// allocated. On error the vector and the allocator are unchanged.
func (v *Vector[T]) grow(newCap int) error {
	size, err := blockSize[T](newCap)
	if err != nil {
		return fmt.Errorf("%w: %d elements: %w", ErrAllocationFailure, newCap, err)
	}

	oldCap := v.Cap()
	a := v.allocator()

	// Storage is created before the allocator is asked, so a refusal leaves
	// nothing charged.
	data := make([]T, newCap)

	if v.blk == nil {
		ref, err := a.Alloc(size)
		if err != nil {
			return fmt.Errorf("%w: %d bytes: %w", ErrAllocationFailure, size, err)
		}
		v.blk = &block[T]{
			header: header{ref: ref},
			data:   data,
		}
		v.blk.setCapacity(newCap)
		v.blk.setSize(0)
	} else {
		if err := a.Realloc(v.blk.ref, size); err != nil {
			return fmt.Errorf("%w: %d bytes: %w", ErrAllocationFailure, size, err)
		}
		copy(data, v.blk.data[:v.blk.count])
		v.blk.data = data
		v.blk.setCapacity(newCap)
	}

	v.gen++
	if v.onGrow != nil {
		v.onGrow(oldCap, newCap)
	}
	return nil
}

// Reserve grows the block to exactly n elements when n exceeds Cap().
// It never shrinks.
func (v *Vector[T]) Reserve(n int) error {
	if v.released {
		return ErrReleased
	}
	if n <= v.Cap() {
		return nil
	}
	return v.grow(n)
}

// PushBack appends value, growing the block first when it is full.
// A single call reallocates at most once.
func (v *Vector[T]) PushBack(value T) error {
	if v.released {
		return ErrReleased
	}
	if capacity := v.Cap(); capacity <= v.Len() {
		next, err := v.Policy().Next(capacity)
		if err != nil {
			return err
		}
		if err := v.grow(next); err != nil {
			return err
		}
	}

	b := v.blk
	b.data[b.count] = value
	b.setSize(b.count + 1)
	return nil
}

// PopBack removes the last element. The slot is not cleared and capacity
// does not change.
func (v *Vector[T]) PopBack() error {
	if v.released {
		return ErrReleased
	}
	if v.Empty() {
		return ErrEmpty
	}
	v.blk.setSize(v.blk.count - 1)
	return nil
}

// Back returns a pointer to the last element, valid until the next growth.
func (v *Vector[T]) Back() (*T, error) {
	if v.released {
		return nil, ErrReleased
	}
	if v.Empty() {
		return nil, ErrEmpty
	}
	return &v.blk.data[v.blk.count-1], nil
}

// Erase removes the element at index i, shifting later elements down by one.
// An index outside [0, Len()) is ignored and Erase reports false.
func (v *Vector[T]) Erase(i int) bool {
	n := v.Len()
	if i < 0 || i >= n {
		return false
	}
	copy(v.blk.data[i:n-1], v.blk.data[i+1:n])
	v.blk.setSize(n - 1)
	return true
}

// Data returns the valid elements as a slice sharing the vector's storage.
// The slice is invalidated by any call that grows the vector and is capped at
// Len(), so appending to it never writes into the vector.
func (v *Vector[T]) Data() []T {
	if v.blk == nil {
		return nil
	}
	n := v.blk.count
	return v.blk.data[:n:n]
}

// Release frees the backing block. A vector with no block is left untouched.
// After Release every mutation returns ErrReleased until Reset is called.
func (v *Vector[T]) Release() error {
	if v.blk == nil {
		return nil
	}
	ref := v.blk.ref
	v.blk = nil
	v.gen++
	v.released = true

	if err := v.allocator().Free(ref); err != nil {
		return fmt.Errorf("vector: release: %w", err)
	}
	return nil
}

// Reset returns the vector to the empty, unallocated state, releasing the
// block first if one is held. Policy and allocator are kept.
func (v *Vector[T]) Reset() error {
	err := v.Release()
	v.released = false
	return err
}

func (v *Vector[T]) String() string {
	state := "empty"
	switch {
	case v.released:
		state = "released"
	case v.blk != nil:
		state = "allocated"
	}
	return fmt.Sprintf("vector[%s len=%d cap=%d]", state, v.Len(), v.Cap())
}
