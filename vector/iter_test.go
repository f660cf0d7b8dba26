package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIter_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 100} {
		v, _ := newTracked[int](t, PolicyDoubling)
		for i := 0; i < n; i++ {
			require.NoError(t, v.PushBack(i*i))
		}

		var got []int
		for it := v.Begin(); it != v.End(); it = it.Next() {
			require.Equal(t, len(got), it.Index())
			got = append(got, it.Value())
		}

		require.Len(t, got, n)
		for i, x := range got {
			require.Equal(t, i*i, x)
			require.Equal(t, v.Data()[i], x, "iteration must match indexed access")
		}
	}
}

func TestIter_EmptyBounds(t *testing.T) {
	var v Vector[int]
	assert.Equal(t, Iter[int]{}, v.Begin(), "no storage yields the sentinel")
	assert.Equal(t, v.Begin(), v.End())
	assert.Equal(t, v.Begin(), v.Begin().Next())

	require.NoError(t, v.PushBack(1))
	require.NoError(t, v.PopBack())
	assert.Equal(t, v.Begin(), v.End(), "allocated but empty")
}

func TestIter_PtrUpdatesInPlace(t *testing.T) {
	var v Vector[int]
	pushAll(t, &v, 1, 2, 3)

	for it := v.Begin(); it != v.End(); it = it.Next() {
		*it.Ptr() *= 10
	}
	assert.Equal(t, []int{10, 20, 30}, v.Data())
}

func TestIter_StaleAfterGrowth(t *testing.T) {
	v, _ := newTracked[int](t, PolicyDoubling)
	pushAll(t, v, 1, 2, 3, 4, 5, 6, 7, 8)

	it := v.Begin()
	require.False(t, it.Stale())

	// Filling capacity does not relocate; the ninth element does.
	require.NoError(t, v.PushBack(9))
	require.True(t, it.Stale())

	require.PanicsWithValue(t, ErrStaleIterator, func() { _ = it.Value() })
	assert.Equal(t, 1, v.Begin().Value(), "fresh iterators are fine")
}

func TestIter_StaleAfterRelease(t *testing.T) {
	var v Vector[int]
	pushAll(t, &v, 1)
	it := v.Begin()

	require.NoError(t, v.Release())
	require.True(t, it.Stale())
	require.PanicsWithValue(t, ErrStaleIterator, func() { _ = it.Ptr() })
}

func TestIter_EndPanics(t *testing.T) {
	var v Vector[int]
	require.PanicsWithValue(t, ErrIteratorRange, func() { _ = v.End().Value() })

	pushAll(t, &v, 1)
	require.PanicsWithValue(t, ErrIteratorRange, func() { _ = v.End().Value() })
}

func TestData_IsCappedView(t *testing.T) {
	var v Vector[int]
	pushAll(t, &v, 1, 2)

	d := v.Data()
	assert.Equal(t, 2, cap(d))

	d = append(d, 3)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []int{1, 2, 3}, d)

	d[0] = 100
	assert.Equal(t, 1, v.Data()[0], "appended copy does not alias the vector")

	v.Data()[0] = 5
	assert.Equal(t, []int{5, 2}, v.Data())
}
