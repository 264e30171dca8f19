package table

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BUYT-1/Desbordante/model"
)

func load(t *testing.T, csv string, opts LoadOptions) *Table {
	t.Helper()
	tbl, err := loadCSVReader(context.Background(), strings.NewReader(csv), opts)
	require.NoError(t, err)
	return tbl
}

func TestLoadCSVHeaderAndRows(t *testing.T) {
	tbl := load(t, "a,b\n1,x\n2,y\n1,x\n", LoadOptions{HasHeader: true, RelationName: "r"})
	require.Equal(t, 3, tbl.NumRows())
	require.Equal(t, 2, tbl.NumColumns())
	require.Equal(t, "a", tbl.Header().ColumnName(0))
	require.Equal(t, "b", tbl.Header().ColumnName(1))

	// row 0 and row 2 are identical, row 1 differs in both columns.
	require.Equal(t, tbl.CellKey(0, 0), tbl.CellKey(2, 0))
	require.Equal(t, tbl.CellKey(0, 1), tbl.CellKey(2, 1))
	require.NotEqual(t, tbl.CellKey(0, 0), tbl.CellKey(1, 0))
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	tbl := load(t, "1,2\n3,4\n", LoadOptions{HasHeader: false})
	require.Equal(t, "col0", tbl.Header().ColumnName(0))
	require.Equal(t, "col1", tbl.Header().ColumnName(1))
}

func TestNullEqualNullsTrue(t *testing.T) {
	tbl := load(t, "a\n\"\"\nfoo\n\"\"\n", LoadOptions{HasHeader: true, NullLiteral: "", EqualNulls: true})
	require.Equal(t, tbl.CellKey(0, 0), tbl.CellKey(2, 0))
	require.NotEqual(t, tbl.CellKey(0, 0), tbl.CellKey(1, 0))
}

func TestNullEqualNullsFalse(t *testing.T) {
	tbl := load(t, "a\n\"\"\nfoo\n\"\"\n", LoadOptions{HasHeader: true, NullLiteral: "", EqualNulls: false})
	require.NotEqual(t, tbl.CellKey(0, 0), tbl.CellKey(2, 0))
}

func TestLoadCSVRejectsRaggedRows(t *testing.T) {
	_, err := loadCSVReader(context.Background(), strings.NewReader("a,b\n1,2\n3\n"), LoadOptions{HasHeader: true})
	require.Error(t, err)
}

func TestLoadCSVRejectsEmptyFile(t *testing.T) {
	_, err := loadCSVReader(context.Background(), strings.NewReader(""), LoadOptions{HasHeader: false})
	require.Error(t, err)
}

func TestTableSatisfiesRelationInterfaceShape(t *testing.T) {
	tbl := load(t, "a,b\n1,2\n", LoadOptions{HasHeader: true})
	var _ interface {
		NumRows() int
		NumColumns() int
		CellKey(row model.RowID, col model.Index) int64
	} = tbl
}
