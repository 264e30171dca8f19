// Package testutil provides testing utilities shared by this repository's
// test suites: a thread-safe RNG for synthesizing relations, a
// string-interning helper for turning a [][]string relation into a
// SliceRelation satisfying fdep.Relation/verifier.Relation, and a
// brute-force FD oracle used to cross-validate the PLI-based miner and
// verifier.
//
// This package is intended for use in tests and benchmarks only.
//
// # Synthetic relations
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.RandomTable(1000, 5, 20) // 1000 rows, 5 cols, domain size 20
//	rel := testutil.InternStrings(rows)
//
// # Brute-force oracle
//
//	holds := testutil.BruteForceHolds(rel, []model.Index{0, 1}, 2)
package testutil
