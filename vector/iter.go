package vector

// Iter is a position in a vector, the counterpart of a raw element pointer.
// Iter values are comparable, so the classic loop works:
//
//	for it := v.Begin(); it != v.End(); it = it.Next() {
//	    fmt.Println(it.Value())
//	}
//
// Iterators are invalidated by any operation that relocates storage
// (growth) and by Release. Dereferencing an invalidated iterator panics
// with ErrStaleIterator instead of reading abandoned storage.
type Iter[T any] struct {
	v   *Vector[T] // nil for the "no elements" sentinel
	gen uint64
	pos int
}

// Begin returns the position of the first element, or the zero Iter when no
// storage is allocated.
func (v *Vector[T]) Begin() Iter[T] {
	if v.blk == nil {
		return Iter[T]{}
	}
	return Iter[T]{v: v, gen: v.gen, pos: 0}
}

// End returns the position one past the last element, or the zero Iter when
// no storage is allocated. It is recomputed on every call.
func (v *Vector[T]) End() Iter[T] {
	if v.blk == nil {
		return Iter[T]{}
	}
	return Iter[T]{v: v, gen: v.gen, pos: v.blk.count}
}

// Next returns the following position. The zero Iter stays where it is.
func (it Iter[T]) Next() Iter[T] {
	if it.v == nil {
		return it
	}
	it.pos++
	return it
}

// Index returns the element index the iterator points at.
func (it Iter[T]) Index() int {
	return it.pos
}

// Stale reports whether the vector relocated or released its storage since
// the iterator was taken.
func (it Iter[T]) Stale() bool {
	return it.v != nil && it.gen != it.v.gen
}

// Ptr returns a pointer to the element for in-place updates.
func (it Iter[T]) Ptr() *T {
	if it.Stale() {
		panic(ErrStaleIterator)
	}
	if it.v == nil || it.v.blk == nil || it.pos < 0 || it.pos >= it.v.blk.count {
		panic(ErrIteratorRange)
	}
	return &it.v.blk.data[it.pos]
}

// Value returns the element.
func (it Iter[T]) Value() T {
	return *it.Ptr()
}
