package alloc

// Heap is the default allocator. Storage comes from the Go heap, so the only
// state kept here is the reference counter.
type Heap struct {
	next Ref
}

// NewHeap creates a Heap allocator.
func NewHeap() *Heap {
	return &Heap{}
}

// Alloc hands out a fresh reference.
func (h *Heap) Alloc(size int) (Ref, error) {
	if size <= 0 {
		return 0, ErrBadSize
	}
	h.next++
	return h.next, nil
}

// Realloc validates the request; the block keeps its reference.
func (h *Heap) Realloc(ref Ref, size int) error {
	if ref == 0 || ref > h.next {
		return ErrBadRef
	}
	if size <= 0 {
		return ErrBadSize
	}
	return nil
}

// Free validates the reference.
func (h *Heap) Free(ref Ref) error {
	if ref == 0 || ref > h.next {
		return ErrBadRef
	}
	return nil
}
