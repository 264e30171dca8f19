package bitset

import (
	bbs "github.com/bits-and-blooms/bitset"
)

// FixedWidth is the compile-time upper bound on the number of attributes a
// cover tree node can address. Schemas with more columns than FixedWidth
// are rejected by the miner before any tree is built.
const FixedWidth = 256

// Set is a thin, ascending-iteration-friendly wrapper around
// github.com/bits-and-blooms/bitset.BitSet.
type Set struct {
	bs *bbs.BitSet
}

// NewFixed returns a zero-valued Set sized to FixedWidth, for cover tree
// node payloads.
func NewFixed() *Set {
	return &Set{bs: bbs.New(FixedWidth)}
}

// NewDynamic returns a zero-valued Set sized to width, for StrippedFd
// lhs/rhs sets and other run-time attribute sets.
func NewDynamic(width uint) *Set {
	return &Set{bs: bbs.New(width)}
}

// Len returns the declared width of the set.
func (s *Set) Len() uint {
	return s.bs.Len()
}

// Set sets the bit at i.
func (s *Set) Set(i uint) {
	s.bs.Set(i)
}

// Clear resets the bit at i.
func (s *Set) Clear(i uint) {
	s.bs.Clear(i)
}

// Test reports whether the bit at i is set.
func (s *Set) Test(i uint) bool {
	return s.bs.Test(i)
}

// Count returns the number of set bits.
func (s *Set) Count() uint {
	return s.bs.Count()
}

// Any reports whether any bit is set.
func (s *Set) Any() bool {
	return s.bs.Any()
}

// None reports whether no bit is set.
func (s *Set) None() bool {
	return s.bs.None()
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	return &Set{bs: s.bs.Clone()}
}

// Union sets every bit also set in other.
func (s *Set) Union(other *Set) {
	s.bs.InPlaceUnion(other.bs)
}

// Intersect clears every bit not also set in other.
func (s *Set) Intersect(other *Set) {
	s.bs.InPlaceIntersection(other.bs)
}

// Complement returns a new Set with every bit of s, in [0, Len), flipped.
func (s *Set) Complement() *Set {
	return &Set{bs: s.bs.Complement()}
}

// Equal reports whether s and other have identical set bits.
func (s *Set) Equal(other *Set) bool {
	return s.bs.Equal(other.bs)
}

// IsSubsetOf reports whether every bit set in s is also set in other.
func (s *Set) IsSubsetOf(other *Set) bool {
	tmp := s.bs.Clone()
	tmp.InPlaceIntersection(other.bs)
	return tmp.Equal(s.bs)
}

// ForEachIndex visits every set bit in ascending order, calling f with its
// index. Iteration stops early if f returns false.
func (s *Set) ForEachIndex(f func(i uint) bool) {
	for i, ok := s.bs.NextSet(0); ok; i, ok = s.bs.NextSet(i + 1) {
		if !f(i) {
			return
		}
	}
}

// First returns the lowest set bit and true, or (0, false) if none is set.
func (s *Set) First() (uint, bool) {
	return s.bs.NextSet(0)
}

// Next returns the lowest set bit strictly greater than i, or (0, false).
func (s *Set) Next(i uint) (uint, bool) {
	return s.bs.NextSet(i + 1)
}
