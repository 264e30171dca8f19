package fdep

import "github.com/BUYT-1/Desbordante/model"

// Relation is the typed view the miner needs over a loaded table: interned
// cell keys rather than raw hashes, so that equal keys always mean equal
// values (no false-equality-via-hash-collision, per the preferred option
// in the design notes). Null handling is baked into the key scheme: under
// EqualNulls=false the key for a null cell must be unique to that cell, so
// it never agrees with anything, including another null.
type Relation interface {
	NumRows() int
	NumColumns() int
	// CellKey returns the interned value id of row/col.
	CellKey(row model.RowID, col model.Index) int64
}
