package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/unionfind"
)

func TestUnionFind(t *testing.T) {
	// spec.md §8 scenario 2.
	uf := unionfind.New(10)

	uf.Union(0, 1)
	uf.Union(2, 3)
	uf.Union(1, 3)
	uf.Union(4, 5)

	require.Equal(t, 6, uf.Count())
	require.True(t, uf.Connected(0, 3))
	require.False(t, uf.Connected(0, 4))
}

func TestUnionFindProperties(t *testing.T) {
	uf := unionfind.New(20)
	joins := 0

	pairs := [][2]int{{0, 1}, {1, 2}, {3, 4}, {0, 2}, {5, 6}, {5, 6}}
	for _, p := range pairs {
		before := uf.Count()
		uf.Union(p[0], p[1])
		if uf.Count() < before {
			joins++
		}
	}

	require.Equal(t, 20-joins, uf.Count())

	for i := 0; i < 20; i++ {
		require.True(t, uf.Connected(i, i))
		for j := 0; j < 20; j++ {
			require.Equal(t, uf.Connected(i, j), uf.Connected(j, i))
		}
	}
}
