package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestMarshalBinary(t *testing.T) {
	q, a := newTestQueue(t, "a", "", "ccc")
	data, err := q.MarshalBinary()
	require.NoError(t, err)

	var raw []string
	require.NoError(t, msgpack.Unmarshal(data, &raw))
	assert.Equal(t, []string{"a", "", "ccc"}, raw)

	var restored Queue
	require.NoError(t, restored.UnmarshalBinary(data))
	checkLinks(t, &restored, "a", "", "ccc")
	restored.Free()

	freeAndCheck(t, q, a)
}

func TestUnmarshalBinaryAppends(t *testing.T) {
	src, sa := newTestQueue(t, "c", "d")
	data, err := src.MarshalBinary()
	require.NoError(t, err)
	freeAndCheck(t, src, sa)

	q, a := newTestQueue(t, "a", "b")
	require.NoError(t, q.UnmarshalBinary(data))
	checkLinks(t, q, "a", "b", "c", "d")
	freeAndCheck(t, q, a)
}

func TestUnmarshalBinaryAllOrNothing(t *testing.T) {
	data, err := msgpack.Marshal([]string{"x", "y", "z"})
	require.NoError(t, err)

	q, a := newTestQueue(t, "a")
	live := a.Live()
	a.FailAfter(4)
	assert.ErrorIs(t, q.UnmarshalBinary(data), ErrAllocation)
	a.Heal()

	assert.Equal(t, live, a.Live())
	checkLinks(t, q, "a")
	freeAndCheck(t, q, a)
}

func TestUnmarshalBinaryGarbage(t *testing.T) {
	q, a := newTestQueue(t, "a")
	assert.Error(t, q.UnmarshalBinary([]byte{0xc1}))
	checkLinks(t, q, "a")
	freeAndCheck(t, q, a)
}

func TestMarshalEmpty(t *testing.T) {
	var q *Queue
	data, err := q.MarshalBinary()
	require.NoError(t, err)

	var restored Queue
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.Equal(t, 0, restored.Size())
}

func TestUnmarshalBinaryAfterFree(t *testing.T) {
	data, err := msgpack.Marshal([]string{"x", "y", "z"})
	require.NoError(t, err)

	a := NewBudgetAllocator(0, 2)
	q := New(WithAllocator(a))
	require.NotNil(t, q)
	q.Free()

	assert.ErrorIs(t, q.UnmarshalBinary(data), ErrInvalidHandle)
	assert.Equal(t, 0, q.Size())
	assert.False(t, q.InsertTail("x"))
	assert.Equal(t, 0, a.Live())
}
