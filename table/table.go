package table

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/BUYT-1/Desbordante/model"
)

// nullKey is the interned key shared by every null cell when EqualNulls is
// true. It is chosen outside the range an interner ever assigns (interners
// start at 0 and count up).
const nullKey = int64(-1)

// column is one attribute's interned values plus a roaring bitmap marking
// which rows are null, mirroring the deleted-row bitmap idiom used for
// columnar vector storage: a sparse, compressible presence mask alongside
// a dense value array.
type column struct {
	values []int64
	nulls  *roaring.Bitmap
	intern map[string]int64
}

func newColumn(numRows int) *column {
	return &column{
		values: make([]int64, numRows),
		nulls:  roaring.New(),
		intern: make(map[string]int64),
	}
}

func (c *column) set(row int, raw string, isNull bool) {
	if isNull {
		c.nulls.Add(uint32(row))
		return
	}
	key, ok := c.intern[raw]
	if !ok {
		key = int64(len(c.intern))
		c.intern[raw] = key
	}
	c.values[row] = key
}

// Table is an in-memory, columnar, interned relation plus its header.
// EqualNulls is fixed at load time: it governs how CellKey reports null
// cells, not a per-call option.
type Table struct {
	header     *model.TableHeader
	columns    []*column
	numRows    int
	equalNulls bool
}

// Header returns the table's TableHeader.
func (t *Table) Header() *model.TableHeader {
	return t.header
}

// NumRows implements fdep.Relation / verifier.Relation.
func (t *Table) NumRows() int {
	return t.numRows
}

// NumColumns implements fdep.Relation / verifier.Relation.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// CellKey implements fdep.Relation / verifier.Relation. Under
// EqualNulls=false, a null cell's key is unique to that (row, col) pair so
// it never agrees with anything, including another null.
func (t *Table) CellKey(row model.RowID, col model.Index) int64 {
	c := t.columns[col]
	if c.nulls.Contains(uint32(row)) {
		if t.equalNulls {
			return nullKey
		}
		return uniqueNullKey(row, col)
	}
	return c.values[row]
}

// uniqueNullKey packs (row, col) into a key outside the interner's range
// (interned keys are always >= 0) so that two distinct null cells under
// EqualNulls=false never compare equal.
func uniqueNullKey(row model.RowID, col model.Index) int64 {
	return -2 - int64(row)<<20 - int64(col)
}

// NumDistinctValues returns the number of distinct non-null values interned
// for column col, for diagnostics and test assertions.
func (t *Table) NumDistinctValues(col model.Index) int {
	return len(t.columns[col].intern)
}
