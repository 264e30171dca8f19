// Package table is the relation-reading collaborator: it loads a CSV file
// into an in-memory columnar Table, interning every cell value to a dense
// int64 key so that the mining and verification packages never compare
// raw strings. Null handling is baked into the key scheme at load time, so
// the key comparisons downstream already encode the equal_nulls policy.
//
// Tables satisfy both fdep.Relation and verifier.Relation by structural
// typing (NumRows, NumColumns, CellKey).
package table
