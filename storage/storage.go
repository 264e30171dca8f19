package storage

import (
	ibitset "github.com/BUYT-1/Desbordante/internal/bitset"
	"github.com/BUYT-1/Desbordante/model"
)

// StrippedFd is the bitset-only representation of a functional dependency:
// lhs and rhs are dynamic bitsets of width n. rhs is never empty and
// lhs ∩ rhs = ∅; trivial FDs are never constructed.
type StrippedFd struct {
	Lhs *ibitset.Set
	Rhs *ibitset.Set
}

// FdStorage is the read-only result of a mining run: a TableHeader plus
// the StrippedFds discovered against it. It is safe for concurrent reads
// by multiple goroutines once Build has returned it.
type FdStorage struct {
	header *model.TableHeader
	fds    []StrippedFd
}

// Header returns the TableHeader the stored FDs were mined against.
func (s *FdStorage) Header() *model.TableHeader {
	return s.header
}

// Len returns the number of StrippedFds in the cover.
func (s *FdStorage) Len() int {
	return len(s.fds)
}

// StrippedFds returns the raw cover. Callers must not mutate the result.
func (s *FdStorage) StrippedFds() []StrippedFd {
	return s.fds
}

// Each materializes every StrippedFd into a FunctionalDependency, zipping
// bits with column names, and calls f with it. This is the "lazy
// materialized view" over the raw deque: no FunctionalDependency is built
// until Each is called.
func (s *FdStorage) Each(f func(model.FunctionalDependency)) {
	for _, fd := range s.fds {
		f(s.materialize(fd))
	}
}

// FunctionalDependencies eagerly materializes every StrippedFd. Prefer
// Each for large covers.
func (s *FdStorage) FunctionalDependencies() []model.FunctionalDependency {
	out := make([]model.FunctionalDependency, 0, len(s.fds))
	s.Each(func(fd model.FunctionalDependency) { out = append(out, fd) })
	return out
}

func (s *FdStorage) materialize(fd StrippedFd) model.FunctionalDependency {
	var lhs, rhs []model.Attribute
	fd.Lhs.ForEachIndex(func(i uint) bool {
		lhs = append(lhs, s.header.Attribute(model.Index(i)))
		return true
	})
	fd.Rhs.ForEachIndex(func(i uint) bool {
		rhs = append(rhs, s.header.Attribute(model.Index(i)))
		return true
	})
	return model.FunctionalDependency{
		TableName: s.header.RelationName(),
		Lhs:       lhs,
		Rhs:       rhs,
	}
}
