package container_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/container"
)

func TestQueue(t *testing.T) {
	q := container.NewQueue[int]()
	require.True(t, q.IsEmpty())

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	require.Equal(t, 3, q.Len())

	front, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, 1, front)

	v, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 2, q.Len())
}

func TestQueueDequeueEmpty(t *testing.T) {
	q := container.NewQueue[string]()
	_, ok := q.Dequeue()
	require.False(t, ok)
}

func TestQueueDrainsToEmpty(t *testing.T) {
	q := container.NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)

	_, _ = q.Dequeue()
	_, _ = q.Dequeue()
	require.True(t, q.IsEmpty())

	q.Enqueue(3)
	v, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestQueueEach(t *testing.T) {
	q := container.NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	var visited []int
	q.Each(func(k int) { visited = append(visited, k) })
	require.Equal(t, []int{1, 2, 3}, visited)
}
