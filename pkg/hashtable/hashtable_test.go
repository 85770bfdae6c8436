package hashtable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/hashtable"
	"github.com/flier/algokit/pkg/status"
)

func TestChaining(t *testing.T) {
	c := hashtable.NewChaining[string, int](8)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 11)

	require.Equal(t, 2, c.Len())

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 11, v)

	require.True(t, c.Delete("b"))
	require.False(t, c.Contains("b"))
	require.False(t, c.Delete("b"))
}

func TestLinearProbing(t *testing.T) {
	l := hashtable.NewLinearProbing[string, int](4)

	require.NoError(t, l.Put("a", 0))
	require.NoError(t, l.Put("b", 0))
	require.NoError(t, l.Put("c", 0))
	require.NoError(t, l.Put("d", 0))

	err := l.Put("e", 1)
	require.Error(t, err)
	require.True(t, status.Is(err, status.CapacityExceeded))

	require.True(t, l.Delete("b"))
	require.NoError(t, l.Put("e", 1))

	for _, k := range []string{"a", "c", "d", "e"} {
		require.True(t, l.Contains(k), k)
	}

	v, ok := l.Get("a")
	require.True(t, ok)
	require.Equal(t, 0, v)
}

func TestLinearProbingZeroValueKeyIsNotConfusedWithEmpty(t *testing.T) {
	l := hashtable.NewLinearProbing[int, int](4)

	require.NoError(t, l.Put(0, 0))
	require.True(t, l.Contains(0))

	v, ok := l.Get(0)
	require.True(t, ok)
	require.Equal(t, 0, v)
}
