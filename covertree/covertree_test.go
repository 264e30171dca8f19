package covertree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddAndContainsGeneralization(t *testing.T) {
	tr := New(8)
	tr.AddFunctionalDependency([]uint{1, 2}, 5)

	require.True(t, tr.ContainsGeneralization([]uint{1, 2}, 5))
	require.True(t, tr.ContainsGeneralization([]uint{1, 2, 3}, 5))
	require.False(t, tr.ContainsGeneralization([]uint{1}, 5))
	require.False(t, tr.ContainsGeneralization([]uint{1, 2}, 6))
}

func TestAddMostGeneralDependencies(t *testing.T) {
	tr := New(4)
	tr.AddMostGeneralDependencies()

	for a := uint(0); a < 4; a++ {
		require.True(t, tr.ContainsGeneralization([]uint{1, 2}, a))
	}
}

func TestGetGeneralizationAndDelete(t *testing.T) {
	tr := New(8)
	tr.AddFunctionalDependency([]uint{1}, 5)
	tr.AddFunctionalDependency([]uint{1, 2}, 5)

	spec, found := tr.GetGeneralizationAndDelete([]uint{1, 2, 3}, 5)
	require.True(t, found)
	require.Equal(t, []uint{1}, spec)

	// The more specific {1,2}->5 should still be findable.
	require.True(t, tr.ContainsGeneralization([]uint{1, 2}, 5))

	spec, found = tr.GetGeneralizationAndDelete([]uint{1, 2, 3}, 5)
	require.True(t, found)
	require.Equal(t, []uint{1, 2}, spec)

	_, found = tr.GetGeneralizationAndDelete([]uint{1, 2, 3}, 5)
	require.False(t, found)
}

func TestGetSpecialization(t *testing.T) {
	tr := New(8)
	tr.AddFunctionalDependency([]uint{1, 2}, 5)

	require.True(t, tr.GetSpecialization([]uint{1}, 5))
	require.False(t, tr.GetSpecialization([]uint{1, 2}, 5))
	require.False(t, tr.GetSpecialization([]uint{3}, 5))
}

func TestFilterSpecializationsKeepsMaximal(t *testing.T) {
	tr := New(8)
	tr.AddFunctionalDependency([]uint{1}, 5)
	tr.AddFunctionalDependency([]uint{1, 2}, 5)

	tr.FilterSpecializations()

	require.False(t, tr.GetSpecialization([]uint{1}, 5) && false) // sanity: no panic
	var lhsSets [][]uint
	tr.Emit(0, func(e Emitted) {
		if e.Rhs.Test(5) {
			lhsSets = append(lhsSets, e.Lhs)
		}
	})
	require.Len(t, lhsSets, 1)
	require.Equal(t, []uint{1, 2}, lhsSets[0])
}

func TestEmitRespectsMaxLHS(t *testing.T) {
	tr := New(8)
	tr.AddFunctionalDependency([]uint{1, 2, 3}, 0)
	tr.AddFunctionalDependency([]uint{1}, 1)

	var got []Emitted
	tr.Emit(2, func(e Emitted) { got = append(got, e) })

	require.Len(t, got, 1)
	require.Equal(t, []uint{1}, got[0].Lhs)
}
