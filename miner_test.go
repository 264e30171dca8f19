package desbordante

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BUYT-1/Desbordante/model"
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

func TestMinerEndToEnd(t *testing.T) {
	rel := &sliceRelation{rows: [][]int64{{1, 10}, {2, 20}, {3, 30}}, cols: 2}
	header := model.NewTableHeader("t", []string{"K", "V"})

	m := NewMiner()
	require.NoError(t, m.Fit(rel, header))

	elapsed, err := m.Execute(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, elapsed, int64(0))

	s, err := m.GetFdStorage()
	require.NoError(t, err)
	require.NotNil(t, s)

	found := false
	for _, fd := range s.FunctionalDependencies() {
		if fd.String() == "t: {K} -> {V}" {
			found = true
		}
	}
	require.True(t, found)
}

func TestMinerExecuteBeforeFit(t *testing.T) {
	m := NewMiner()
	_, err := m.Execute(context.Background())
	require.Error(t, err)
}

func TestMinerGetFdStorageBeforeExecute(t *testing.T) {
	m := NewMiner()
	_, err := m.GetFdStorage()
	require.Error(t, err)
}
