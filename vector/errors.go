package vector

import "errors"

var (
	// ErrAllocationFailure indicates that the backing block could not grow to the
	// requested capacity. The vector keeps its previous contents and capacity.
	ErrAllocationFailure = errors.New("vector: allocation failure")

	// ErrEmpty indicates an operation that needs at least one element
	// (PopBack, Back) was called on an empty vector.
	ErrEmpty = errors.New("vector: empty")

	// ErrReleased indicates a mutation of a vector after Release. Call Reset first.
	ErrReleased = errors.New("vector: use after release")

	// ErrInvalidPolicy indicates a growth policy that can never grow the vector.
	ErrInvalidPolicy = errors.New("vector: invalid growth policy")

	// ErrStaleIterator is the panic value when an iterator taken before a
	// relocation or release is dereferenced.
	ErrStaleIterator = errors.New("vector: iterator used after storage relocation")

	// ErrIteratorRange is the panic value when the end position is dereferenced.
	ErrIteratorRange = errors.New("vector: iterator out of range")
)
