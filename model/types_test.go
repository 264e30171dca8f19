package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func header() *TableHeader {
	return NewTableHeader("people", []string{"K", "V", "Z"})
}

func TestTableHeaderIndexOf(t *testing.T) {
	h := header()

	idx, ok := h.IndexOf("V")
	require.True(t, ok)
	require.Equal(t, Index(1), idx)

	_, ok = h.IndexOf("missing")
	require.False(t, ok)
}

func TestTableHeaderIndexOfAmbiguous(t *testing.T) {
	h := NewTableHeader("dup", []string{"K", "K"})
	_, ok := h.IndexOf("K")
	require.False(t, ok)
}

func TestNormalizeDedupAndSort(t *testing.T) {
	h := header()
	in := FdInput{
		Lhs: []FdInputElement{ByIndex(2), ByName("K"), ByIndex(2)},
		Rhs: []FdInputElement{ByName("V")},
	}
	got, err := Normalize(in, h)
	require.NoError(t, err)
	require.Equal(t, []Index{0, 2}, got.Lhs)
	require.Equal(t, []Index{1}, got.Rhs)
}

func TestNormalizeIdempotent(t *testing.T) {
	h := header()
	in := FdInput{
		Lhs: []FdInputElement{ByIndex(2), ByIndex(0)},
		Rhs: []FdInputElement{ByIndex(1)},
	}
	first, err := Normalize(in, h)
	require.NoError(t, err)

	asInput := FdInput{
		Lhs: indicesToElements(first.Lhs),
		Rhs: indicesToElements(first.Rhs),
	}
	second, err := Normalize(asInput, h)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func indicesToElements(idx []Index) []FdInputElement {
	out := make([]FdInputElement, len(idx))
	for i, v := range idx {
		out[i] = ByIndex(v)
	}
	return out
}

func TestNormalizeAcceptsEmptyLhs(t *testing.T) {
	h := header()
	got, err := Normalize(FdInput{Lhs: nil, Rhs: []FdInputElement{ByName("V")}}, h)
	require.NoError(t, err)
	require.Empty(t, got.Lhs)
}

func TestNormalizeRejectsEmptyRhs(t *testing.T) {
	h := header()
	_, err := Normalize(FdInput{Lhs: []FdInputElement{ByName("K")}, Rhs: nil}, h)
	require.Error(t, err)
}

func TestNormalizeRejectsUnknownColumn(t *testing.T) {
	h := header()
	_, err := Normalize(FdInput{Lhs: []FdInputElement{ByName("nope")}, Rhs: []FdInputElement{ByName("V")}}, h)
	require.Error(t, err)
}

func TestFunctionalDependencyString(t *testing.T) {
	fd := FunctionalDependency{
		TableName: "people",
		Lhs:       []Attribute{{Name: "K", ID: 0}},
		Rhs:       []Attribute{{Name: "V", ID: 1}},
	}
	require.Equal(t, "people: {K} -> {V}", fd.String())
}
