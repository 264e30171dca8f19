package pli

import (
	"testing"

	"github.com/BUYT-1/Desbordante/model"
	"github.com/stretchr/testify/require"
)

func TestBuildStripsSingletons(t *testing.T) {
	// values: a, b, a -> rows 0 and 2 agree, row 1 is a singleton
	p := Build([]int64{1, 2, 1}, nil, false)
	require.Equal(t, 1, p.NumCluster())
	c, ok := p.ClusterOf(0)
	require.True(t, ok)
	require.Equal(t, Cluster{0, 2}, c)

	_, ok = p.ClusterOf(1)
	require.False(t, ok)
}

func TestBuildNullPolicy(t *testing.T) {
	keys := []int64{0, 0, 1}
	isNull := []bool{true, true, false}

	withEq := Build(keys, isNull, true)
	require.Equal(t, 1, withEq.NumCluster())

	withoutEq := Build(keys, isNull, false)
	require.Equal(t, 0, withoutEq.NumCluster())
}

func TestIntersectMonotonicity(t *testing.T) {
	// K: a a b   -> cluster {0,1}
	// V: 1 2 1   -> cluster {0,2}
	pK := Build([]int64{10, 10, 20}, nil, false)
	pV := Build([]int64{1, 2, 1}, nil, false)

	inter := pK.Intersect(pV)
	require.LessOrEqual(t, inter.NumCluster(), pK.NumCluster())
	for _, c := range inter.Clusters() {
		found := false
		for _, pc := range pK.Clusters() {
			if isSubset(c, pc) {
				found = true
				break
			}
		}
		require.True(t, found, "every intersection cluster must be a subset of some P cluster")
	}
}

func isSubset(a, b Cluster) bool {
	set := make(map[model.RowID]bool, len(b))
	for _, r := range b {
		set[r] = true
	}
	for _, r := range a {
		if !set[r] {
			return false
		}
	}
	return true
}

func TestUniversal(t *testing.T) {
	u := Universal(5)
	require.Equal(t, 1, u.NumCluster())
	c, ok := u.ClusterOf(3)
	require.True(t, ok)
	require.Len(t, c, 5)

	empty := Universal(1)
	require.Equal(t, 0, empty.NumCluster())
}

func TestIntersectDeterministicOrder(t *testing.T) {
	pK := Build([]int64{10, 10, 20, 20}, nil, false)
	pV := Build([]int64{1, 2, 1, 2}, nil, false)

	a := pK.Intersect(pV)
	b := pK.Intersect(pV)
	require.Equal(t, a.Clusters(), b.Clusters())
}
