// Package bitset provides the two bitset flavors used by the cover tree and
// the FD mining/verification pipeline: a fixed-width bitset sized for the
// maximum supported attribute count, and a dynamic bitset sized per table.
//
// Both flavors wrap github.com/bits-and-blooms/bitset and add an ascending
// ForEachIndex iterator so callers never depend on implementation-specific
// bit-scanning primitives.
//
// Used internally for:
//   - Cover tree node payloads (rhs_attributes, is_fd), fixed width
//   - StrippedFd lhs/rhs sets and verifier attribute sets, dynamic width
package bitset
