package storage

import (
	"testing"

	ibitset "github.com/BUYT-1/Desbordante/internal/bitset"
	"github.com/BUYT-1/Desbordante/model"
	"github.com/stretchr/testify/require"
)

func makeFd(width uint, lhs, rhs []uint) StrippedFd {
	l := ibitset.NewDynamic(width)
	for _, i := range lhs {
		l.Set(i)
	}
	r := ibitset.NewDynamic(width)
	for _, i := range rhs {
		r.Set(i)
	}
	return StrippedFd{Lhs: l, Rhs: r}
}

func TestPlainBuilder(t *testing.T) {
	b := NewPlainBuilder()
	b.Add(makeFd(3, []uint{0}, []uint{1}))
	b.Add(makeFd(3, []uint{0}, []uint{2}))

	s := b.Build(model.NewTableHeader("t", []string{"K", "V", "Z"}))
	require.Equal(t, 2, s.Len())

	fds := s.FunctionalDependencies()
	require.Len(t, fds, 2)
	require.Equal(t, "t: {K} -> {V}", fds[0].String())
}

func TestLhsCappedBuilderRejectsOversized(t *testing.T) {
	b := NewLhsCappedBuilder(1)
	b.Add(makeFd(4, []uint{0}, []uint{3}))
	b.Add(makeFd(4, []uint{0, 1}, []uint{3}))

	s := b.Build(model.NewTableHeader("t", []string{"a", "b", "c", "d"}))
	require.Equal(t, 1, s.Len())
}

func TestConcurrentBuilderTransfersOwnership(t *testing.T) {
	b := NewConcurrentBuilder()
	b.Add(makeFd(2, []uint{0}, []uint{1}))

	s := b.Build(model.NewTableHeader("t", []string{"a", "b"}))
	require.Equal(t, 1, s.Len())

	b.Add(makeFd(2, []uint{1}, []uint{0}))
	require.Equal(t, 1, s.Len(), "earlier FdStorage must not see fds added after Build")
}
