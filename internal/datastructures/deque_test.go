package datastructures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDequePushPop(t *testing.T) {
	d := NewDeque[int](3)
	require.NoError(t, d.PushBack(1))
	require.NoError(t, d.PushBack(2))
	require.NoError(t, d.PushFront(0))
	assert.ErrorIs(t, d.PushBack(3), ErrDequeFull)
	assert.Equal(t, 3, d.Size())
	assert.Equal(t, 3, d.Cap())

	v, err := d.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = d.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = d.Front()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = d.Back()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestDequeEmpty(t *testing.T) {
	d := NewDeque[string](1)
	assert.True(t, d.Empty())

	_, err := d.PopBack()
	assert.ErrorIs(t, err, ErrDequeEmpty)
	_, err = d.PopFront()
	assert.ErrorIs(t, err, ErrDequeEmpty)
	_, err = d.Back()
	assert.ErrorIs(t, err, ErrDequeEmpty)
}

func TestDequeFromBackWraps(t *testing.T) {
	d := NewDeque[int](4)
	for i := 0; i < 4; i++ {
		require.NoError(t, d.PushBack(i))
	}
	_, _ = d.PopFront()
	_, _ = d.PopFront()
	require.NoError(t, d.PushBack(4))
	require.NoError(t, d.PushBack(5))

	for i, want := range []int{5, 4, 3, 2} {
		v, err := d.FromBack(i)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err := d.FromBack(4)
	assert.ErrorIs(t, err, ErrDequeEmpty)
	_, err = d.FromBack(-1)
	assert.ErrorIs(t, err, ErrDequeEmpty)
}

func TestDequeZeroCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { NewDeque[int](0) })
}
