package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BUYT-1/Desbordante/model"
)

func TestRandomTableShape(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.RandomTable(8, 3, 4)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 3, len(v[0]))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.RandomTable(5, 2, 3)

	rng.Reset()
	v2 := rng.RandomTable(5, 2, 3)

	assert.Equal(t, v1, v2)
}

func TestInternStringsAgreement(t *testing.T) {
	rel := InternStrings([][]string{
		{"a", "1"},
		{"a", "2"},
		{"b", "1"},
	})
	require.Equal(t, 3, rel.NumRows())
	require.Equal(t, 2, rel.NumColumns())
	require.Equal(t, rel.CellKey(0, 0), rel.CellKey(1, 0))
	require.NotEqual(t, rel.CellKey(0, 0), rel.CellKey(2, 0))
}

func TestBruteForceHoldsAgreesWithManualCheck(t *testing.T) {
	rel := InternStrings([][]string{
		{"a", "1"},
		{"a", "1"},
		{"b", "2"},
	})
	require.True(t, BruteForceHolds(rel, []model.Index{0}, 1))

	violating := InternStrings([][]string{
		{"a", "1"},
		{"a", "2"},
		{"b", "3"},
	})
	require.False(t, BruteForceHolds(violating, []model.Index{0}, 1))
}
