package verifier

import (
	"testing"

	"github.com/BUYT-1/Desbordante/model"
	"github.com/stretchr/testify/require"
)

type sliceRelation struct {
	rows [][]int64
	cols int
}

func (s *sliceRelation) NumRows() int    { return len(s.rows) }
func (s *sliceRelation) NumColumns() int { return s.cols }
func (s *sliceRelation) CellKey(row model.RowID, col model.Index) int64 {
	return s.rows[row][col]
}

func TestScenarioS1Holds(t *testing.T) {
	rel := &sliceRelation{rows: [][]int64{{1, 10}, {2, 20}, {3, 30}}, cols: 2}
	res, err := Verify(rel, []model.Index{0}, []model.Index{1}, Options{})
	require.NoError(t, err)
	require.True(t, res.Holds)
	require.Equal(t, 0.0, res.Error)
}

func TestScenarioS3Violation(t *testing.T) {
	// rows [[a,1],[a,2],[b,3]]
	rel := &sliceRelation{rows: [][]int64{{1, 10}, {1, 20}, {2, 30}}, cols: 2}
	res, err := Verify(rel, []model.Index{0}, []model.Index{1}, Options{})
	require.NoError(t, err)
	require.False(t, res.Holds)
	require.Len(t, res.Highlights, 1)
	require.Equal(t, 2, res.Highlights[0].NumDistinctRhsValues)
	require.InDelta(t, 0.5, res.Highlights[0].MostFrequentRhsValueProportion, 1e-9)
	require.Equal(t, 1, res.NumErrorRows)
	require.InDelta(t, 1.0/3.0, res.Error, 1e-9)
}

func TestScenarioS6DuplicateRowsHold(t *testing.T) {
	rel := &sliceRelation{rows: [][]int64{{1, 10}, {1, 10}, {2, 20}}, cols: 2}
	res, err := Verify(rel, []model.Index{0}, []model.Index{1}, Options{})
	require.NoError(t, err)
	require.True(t, res.Holds)
}

func TestEmptyLhsConstantColumn(t *testing.T) {
	rel := &sliceRelation{rows: [][]int64{{1, 100}, {2, 100}, {3, 100}}, cols: 2}
	res, err := Verify(rel, nil, []model.Index{1}, Options{})
	require.NoError(t, err)
	require.True(t, res.Holds)
}

func TestVerifyRejectsEmptyRhs(t *testing.T) {
	rel := &sliceRelation{rows: [][]int64{{1, 1}}, cols: 2}
	_, err := Verify(rel, []model.Index{0}, nil, Options{})
	require.Error(t, err)
}

func TestHighlightsSumInvariant(t *testing.T) {
	rel := &sliceRelation{
		rows: [][]int64{
			{1, 10}, {1, 20}, {1, 20}, {2, 30},
		},
		cols: 2,
	}
	res, err := Verify(rel, []model.Index{0}, []model.Index{1}, Options{})
	require.NoError(t, err)
	require.False(t, res.Holds)

	sum := 0
	for _, h := range res.Highlights {
		maxCount := int(h.MostFrequentRhsValueProportion * float64(len(h.Cluster)))
		sum += len(h.Cluster) - maxCount
	}
	require.Equal(t, res.NumErrorRows, sum)
	require.GreaterOrEqual(t, res.Error, 0.0)
	require.LessOrEqual(t, res.Error, 1.0)
}

func TestSortHighlightsByProportion(t *testing.T) {
	rel := &sliceRelation{
		rows: [][]int64{
			{1, 10}, {1, 20}, // cluster {0,1}: 2 distinct, prop 0.5
			{2, 30}, {2, 30}, {2, 40}, // cluster {2,3,4}: prop 2/3
		},
		cols: 2,
	}
	res, err := Verify(rel, []model.Index{0}, []model.Index{1}, Options{})
	require.NoError(t, err)
	require.Len(t, res.Highlights, 2)

	res.SortHighlightsByProportionAscending()
	require.LessOrEqual(t, res.Highlights[0].MostFrequentRhsValueProportion, res.Highlights[1].MostFrequentRhsValueProportion)

	res.SortHighlightsByProportionDescending()
	require.GreaterOrEqual(t, res.Highlights[0].MostFrequentRhsValueProportion, res.Highlights[1].MostFrequentRhsValueProportion)
}
