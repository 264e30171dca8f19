// Package pli implements the stripped position-list index: the compact
// partition representation of the equivalence classes induced by an
// attribute set, and the intersection operator the miner and verifier use
// to combine per-attribute partitions into partitions over attribute sets.
//
// A PLI never stores singleton classes: a row that agrees with no other row
// on the underlying attribute set contributes nothing to any cluster. This
// keeps memory proportional to the number of rows that actually participate
// in some agreement, not to the row count itself.
package pli
