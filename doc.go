// Package desbordante mines and verifies functional dependencies (FDs)
// over a relational table: statements of the form X -> A asserting that
// the values of attribute set X functionally determine attribute A.
//
// This package is the root facade over the mining/verification core
// (model, pli, covertree, fdep, verifier, storage) and the table-loading
// collaborator: it wires them into the Miner and Verifier types, plus the
// ambient error taxonomy, structured logging, and metrics every operation
// reports through.
//
// # Quick Start
//
// Mining:
//
//	ctx := context.Background()
//	tbl, _ := table.LoadCSV(ctx, "relation.csv", table.LoadOptions{HasHeader: true, RelationName: "relation"})
//
//	m := desbordante.NewMiner(desbordante.WithMaxLHS(3))
//	_ = m.Fit(tbl, tbl.Header())
//	elapsedMS, err := m.Execute(ctx)
//	fds, _ := m.GetFdStorage()
//	for _, fd := range fds.FunctionalDependencies() {
//	    fmt.Println(fd) // "relation: {a, b} -> {c}"
//	}
//
// Verification:
//
//	v := desbordante.NewVerifier()
//	_ = v.Fit(tbl, tbl.Header(), model.FdInput{
//	    Lhs: []model.FdInputElement{model.ByName("a")},
//	    Rhs: []model.FdInputElement{model.ByName("c")},
//	})
//	_, err := v.Execute(ctx)
//	if !v.FDHolds() {
//	    for _, h := range v.GetHighlights() {
//	        fmt.Println(h.Cluster, h.NumDistinctRhsValues, h.MostFrequentRhsValueProportion)
//	    }
//	}
//
// # Null Handling
//
// The equal_nulls policy is baked into table.Table's interned cell keys at
// load time (see table.LoadOptions.EqualNulls), not threaded through the
// miner or verifier as a second comparison path.
//
// # Key Features
//
//   - FDep negative-cover/positive-cover mining with a configurable LHS cap
//   - PLI-based exact verification with per-cluster error highlights
//   - CSV and gzip-CSV ingestion with interning and null-position bitmaps
//   - Plain, LHS-capped, and concurrent result-storage builders
//   - Cooperative cancellation via context.Context between mining phases
package desbordante
