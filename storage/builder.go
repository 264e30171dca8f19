package storage

import (
	"sync"

	"github.com/BUYT-1/Desbordante/model"
)

// Builder accumulates StrippedFds and produces an FdStorage from them.
// The three implementations below share this contract but differ in
// concurrency and admission policy.
type Builder interface {
	Add(fd StrippedFd)
	Build(header *model.TableHeader) *FdStorage
}

// PlainBuilder appends every StrippedFd it is given, unconditionally.
type PlainBuilder struct {
	fds []StrippedFd
}

// NewPlainBuilder returns an empty PlainBuilder.
func NewPlainBuilder() *PlainBuilder {
	return &PlainBuilder{}
}

// Add appends fd.
func (b *PlainBuilder) Add(fd StrippedFd) {
	b.fds = append(b.fds, fd)
}

// Build returns an FdStorage over everything added so far.
func (b *PlainBuilder) Build(header *model.TableHeader) *FdStorage {
	fds := make([]StrippedFd, len(b.fds))
	copy(fds, b.fds)
	return &FdStorage{header: header, fds: fds}
}

// LhsCappedBuilder rejects any StrippedFd whose LHS popcount exceeds
// MaxLhs at insertion time.
type LhsCappedBuilder struct {
	inner  *PlainBuilder
	maxLhs int
}

// NewLhsCappedBuilder returns a builder that only admits FDs with
// popcount(lhs) <= maxLhs. maxLhs <= 0 means unbounded (admits everything,
// behaving like PlainBuilder).
func NewLhsCappedBuilder(maxLhs int) *LhsCappedBuilder {
	return &LhsCappedBuilder{inner: NewPlainBuilder(), maxLhs: maxLhs}
}

// Add appends fd unless its LHS popcount exceeds the cap, in which case it
// is silently dropped.
func (b *LhsCappedBuilder) Add(fd StrippedFd) {
	if b.maxLhs > 0 && int(fd.Lhs.Count()) > b.maxLhs {
		return
	}
	b.inner.Add(fd)
}

// Build returns an FdStorage over everything admitted so far.
func (b *LhsCappedBuilder) Build(header *model.TableHeader) *FdStorage {
	return b.inner.Build(header)
}

// ConcurrentBuilder appends under a mutex, for a future parallel mining
// variant that feeds one storage from multiple workers. It is the only
// piece of shared-mutable state in the core; Build transfers ownership of
// the accumulated slice and resets the builder to empty.
type ConcurrentBuilder struct {
	mu  sync.Mutex
	fds []StrippedFd
}

// NewConcurrentBuilder returns an empty ConcurrentBuilder.
func NewConcurrentBuilder() *ConcurrentBuilder {
	return &ConcurrentBuilder{}
}

// Add appends fd under the builder's lock. Safe for concurrent callers;
// makes no ordering promise across them.
func (b *ConcurrentBuilder) Add(fd StrippedFd) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fds = append(b.fds, fd)
}

// Build transfers ownership of the accumulated StrippedFds into a new
// FdStorage and resets the builder.
func (b *ConcurrentBuilder) Build(header *model.TableHeader) *FdStorage {
	b.mu.Lock()
	defer b.mu.Unlock()
	fds := b.fds
	b.fds = nil
	return &FdStorage{header: header, fds: fds}
}
