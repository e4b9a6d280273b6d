package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueue(t *testing.T) {
	rq := NewRingQueue[string](2)
	assert.True(t, rq.IsEmpty())

	require.NoError(t, rq.Enqueue("a"))
	require.NoError(t, rq.Enqueue("b"))
	assert.True(t, rq.IsFull())
	assert.Error(t, rq.Enqueue("c"))
	assert.Equal(t, 2, rq.Len())

	front, err := rq.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", front)

	v, err := rq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	// The buffer wraps around.
	require.NoError(t, rq.Enqueue("c"))
	v, _ = rq.Dequeue()
	assert.Equal(t, "b", v)
	v, _ = rq.Dequeue()
	assert.Equal(t, "c", v)

	_, err = rq.Dequeue()
	assert.Error(t, err)
}
