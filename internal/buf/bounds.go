// Package buf contains overflow-safe size arithmetic for backing blocks.
package buf

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a size computation does not fit in an int or
// exceeds MaxBlockSize.
var ErrOverflow = errors.New("buf: size overflow")

// MaxBlockSize is the largest block BlockSize accepts. It stays below the
// runtime's allocation limit so oversized requests fail as errors instead of
// panicking in make.
const MaxBlockSize = min(1<<47, math.MaxInt)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative values, returning ok = false when
// either is negative or the product would overflow int.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// BlockSize returns the number of bytes needed for a block holding count
// elements of elemSize bytes behind a header of headerSize bytes.
//
//	size, err := buf.BlockSize(16, capacity, int(unsafe.Sizeof(v)))
//	if err != nil {
//	    return fmt.Errorf("grow: %w", err)
//	}
func BlockSize(headerSize, count, elemSize int) (int, error) {
	if headerSize < 0 {
		return 0, fmt.Errorf("negative header size: %d", headerSize)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elemSize)
	}

	payload, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("%w: count=%d * elemSize=%d", ErrOverflow, count, elemSize)
	}

	total, ok := AddOverflowSafe(headerSize, payload)
	if !ok {
		return 0, fmt.Errorf("%w: header=%d + payload=%d", ErrOverflow, headerSize, payload)
	}
	if total > MaxBlockSize {
		return 0, fmt.Errorf("%w: %d bytes exceeds %d", ErrOverflow, total, MaxBlockSize)
	}
	return total, nil
}
