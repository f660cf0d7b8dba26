package alloc

import "fmt"

// Limit wraps another allocator with a byte budget shared by all of its blocks.
type Limit struct {
	inner  Allocator
	budget int
	used   int
	sizes  map[Ref]int
}

// NewLimit wraps inner with a budget of budget bytes. A nil inner allocator
// means a fresh Heap.
func NewLimit(inner Allocator, budget int) *Limit {
	if inner == nil {
		inner = NewHeap()
	}
	return &Limit{
		inner:  inner,
		budget: budget,
		sizes:  make(map[Ref]int),
	}
}

// Alloc reserves size bytes if the budget allows it.
func (l *Limit) Alloc(size int) (Ref, error) {
	if size <= 0 {
		return 0, ErrBadSize
	}
	if size > l.budget-l.used {
		return 0, fmt.Errorf("%w: need %d bytes, %d of %d available",
			ErrNoSpace, size, l.budget-l.used, l.budget)
	}
	ref, err := l.inner.Alloc(size)
	if err != nil {
		return 0, err
	}
	l.sizes[ref] = size
	l.used += size
	return ref, nil
}

// Realloc resizes ref if the budget allows the difference.
func (l *Limit) Realloc(ref Ref, size int) error {
	old, ok := l.sizes[ref]
	if !ok {
		return ErrBadRef
	}
	if size <= 0 {
		return ErrBadSize
	}
	if delta := size - old; delta > l.budget-l.used {
		return fmt.Errorf("%w: need %d more bytes, %d of %d available",
			ErrNoSpace, delta, l.budget-l.used, l.budget)
	}
	if err := l.inner.Realloc(ref, size); err != nil {
		return err
	}
	l.sizes[ref] = size
	l.used += size - old
	return nil
}

// Free returns the block's bytes to the budget.
func (l *Limit) Free(ref Ref) error {
	size, ok := l.sizes[ref]
	if !ok {
		return ErrBadRef
	}
	if err := l.inner.Free(ref); err != nil {
		return err
	}
	delete(l.sizes, ref)
	l.used -= size
	return nil
}

// Used returns the number of bytes currently charged against the budget.
func (l *Limit) Used() int {
	return l.used
}

// Budget returns the configured budget in bytes.
func (l *Limit) Budget() int {
	return l.budget
}
