// Package fdep implements the FDep mining algorithm: it builds a negative
// cover from every disagreeing row pair, derives the positive cover (the
// minimal FD cover) by repeated specialization, and emits it into a
// storage.Builder.
//
// The miner is single-threaded; cancellation is cooperative and checked
// between phases and between row-pair batches via a context.Context.
package fdep
