package alloc

import "errors"

var (
	// ErrNoSpace indicates that the allocator refused to provide the requested bytes.
	ErrNoSpace = errors.New("alloc: no space for block")

	// ErrBadRef indicates an unknown, already freed, or zero block reference.
	ErrBadRef = errors.New("alloc: bad block reference")

	// ErrBadSize indicates a non-positive block size.
	ErrBadSize = errors.New("alloc: block size must be positive")
)
