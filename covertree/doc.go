// Package covertree implements the prefix trie over ascending attribute
// indices that both the FDep miner's negative/positive cover and, in
// principle, any other left-hand-side-indexed FD collection can be built
// on top of.
//
// Each node's path from the root is a left-hand side (LHS) candidate. A
// node's is_fd bitset records the right-hand sides (RHS) a for which the
// tree holds LHS → a (a holding FD in the positive cover, a violation
// witness in the negative cover); its rhs_attributes bitset is the union of is_fd
// over the node and every descendant, and exists purely to prune searches.
//
// The tree is single-threaded and exclusively owned by its builder (the
// miner); it is discarded once the positive cover has been emitted into an
// FdStorage.
package covertree
