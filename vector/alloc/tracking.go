package alloc

// Stats holds counters collected by a Tracking allocator.
type Stats struct {
	AllocCalls     int   // Successful Alloc() calls
	ReallocCalls   int   // Successful Realloc() calls
	FreeCalls      int   // Successful Free() calls
	Failures       int   // Calls rejected by the wrapped allocator or by validation
	LiveBlocks     int   // Blocks allocated and not yet freed
	LiveBytes      int64 // Bytes held by live blocks
	PeakBytes      int64 // High-water mark of LiveBytes
	BytesAllocated int64 // Total bytes requested by Alloc() and growing Realloc()
}

// Tracking wraps another allocator and records every live block.
type Tracking struct {
	inner Allocator
	live  map[Ref]int
	stats Stats
}

// NewTracking wraps inner. A nil inner allocator means a fresh Heap.
func NewTracking(inner Allocator) *Tracking {
	if inner == nil {
		inner = NewHeap()
	}
	return &Tracking{
		inner: inner,
		live:  make(map[Ref]int),
	}
}

// Alloc forwards to the wrapped allocator and records the new block.
func (t *Tracking) Alloc(size int) (Ref, error) {
	ref, err := t.inner.Alloc(size)
	if err != nil {
		t.stats.Failures++
		return 0, err
	}
	t.live[ref] = size
	t.stats.AllocCalls++
	t.stats.LiveBlocks++
	t.stats.BytesAllocated += int64(size)
	t.charge(int64(size))
	return ref, nil
}

// Realloc forwards to the wrapped allocator and updates the recorded size.
func (t *Tracking) Realloc(ref Ref, size int) error {
	old, ok := t.live[ref]
	if !ok {
		t.stats.Failures++
		return ErrBadRef
	}
	if err := t.inner.Realloc(ref, size); err != nil {
		t.stats.Failures++
		return err
	}
	t.live[ref] = size
	t.stats.ReallocCalls++
	if size > old {
		t.stats.BytesAllocated += int64(size - old)
	}
	t.charge(int64(size - old))
	return nil
}

// Free forwards to the wrapped allocator and forgets the block.
// Freeing an unknown or already freed block returns ErrBadRef.
func (t *Tracking) Free(ref Ref) error {
	size, ok := t.live[ref]
	if !ok {
		t.stats.Failures++
		return ErrBadRef
	}
	if err := t.inner.Free(ref); err != nil {
		t.stats.Failures++
		return err
	}
	delete(t.live, ref)
	t.stats.FreeCalls++
	t.stats.LiveBlocks--
	t.charge(-int64(size))
	return nil
}

// Size returns the recorded size of a live block.
func (t *Tracking) Size(ref Ref) (int, bool) {
	size, ok := t.live[ref]
	return size, ok
}

// Stats returns a snapshot of the collected counters.
func (t *Tracking) Stats() Stats {
	return t.stats
}

func (t *Tracking) charge(delta int64) {
	t.stats.LiveBytes += delta
	if t.stats.LiveBytes > t.stats.PeakBytes {
		t.stats.PeakBytes = t.stats.LiveBytes
	}
}
