package fdep

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/BUYT-1/Desbordante/covertree"
	ibitset "github.com/BUYT-1/Desbordante/internal/bitset"
	"github.com/BUYT-1/Desbordante/model"
	"github.com/BUYT-1/Desbordante/storage"
)

// ErrCancelled is returned when the caller's context is done before mining
// completes. It is not an error in the propagation-policy sense: no
// partial FdStorage is ever returned alongside it.
var ErrCancelled = errors.New("fdep: mining cancelled")

// pairBatchSize bounds how many row pairs are compared between
// cancellation checks during negative cover construction.
const pairBatchSize = 4096

// Options configures a mining run.
type Options struct {
	// EqualNulls controls whether two null cells agree. It must match the
	// policy baked into the Relation's CellKey scheme; the miner does not
	// interpret cell keys itself, it only compares them for equality.
	EqualNulls bool
	// MaxLhs caps the LHS size of emitted FDs. Zero means unbounded.
	MaxLhs int
}

// Mine runs the FDep pipeline over rel and returns the resulting minimal
// cover as an FdStorage keyed by header. It returns ErrCancelled if ctx is
// done before completion.
func Mine(ctx context.Context, rel Relation, header *model.TableHeader, opts Options) (*storage.FdStorage, error) {
	n := rel.NumColumns()
	r := rel.NumRows()
	if n == 0 {
		return nil, fmt.Errorf("fdep: relation has zero columns")
	}
	if r == 0 {
		return nil, fmt.Errorf("fdep: relation has zero rows")
	}
	if uint(n) > ibitset.FixedWidth {
		return nil, fmt.Errorf("fdep: %d columns exceeds the %d-attribute cover tree width", n, ibitset.FixedWidth)
	}

	negTree, err := buildNegativeCover(ctx, rel, n, r)
	if err != nil {
		return nil, err
	}
	negTree.FilterSpecializations()

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	posTree := calculatePositiveCover(negTree, uint(n))

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	var builder storage.Builder
	if opts.MaxLhs > 0 {
		builder = storage.NewLhsCappedBuilder(opts.MaxLhs)
	} else {
		builder = storage.NewPlainBuilder()
	}

	posTree.Emit(opts.MaxLhs, func(e covertree.Emitted) {
		builder.Add(toStrippedFd(uint(n), e))
	})

	return builder.Build(header), nil
}

// buildNegativeCover is Phase 2: for every unordered row pair, the
// attributes they agree on witness that that agreement set does not
// determine any attribute they disagree on.
func buildNegativeCover(ctx context.Context, rel Relation, n, r int) (*covertree.Tree, error) {
	negTree := covertree.New(uint(n))

	sinceCheck := 0
	eq := make([]uint, 0, n)
	diff := make([]uint, 0, n)

	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			eq = eq[:0]
			diff = diff[:0]
			for c := 0; c < n; c++ {
				col := model.Index(c)
				if rel.CellKey(model.RowID(i), col) == rel.CellKey(model.RowID(j), col) {
					eq = append(eq, uint(c))
				} else {
					diff = append(diff, uint(c))
				}
			}
			for _, a := range diff {
				negTree.AddFunctionalDependency(eq, a)
			}

			sinceCheck++
			if sinceCheck >= pairBatchSize {
				sinceCheck = 0
				if err := ctx.Err(); err != nil {
					return nil, ErrCancelled
				}
			}
		}
	}
	return negTree, nil
}

// calculatePositiveCover is Phase 3: seed the positive tree with the most
// general dependencies, then specialize it against every RHS bit recorded
// in the (now LHS-maximal) negative cover.
func calculatePositiveCover(negTree *covertree.Tree, width uint) *covertree.Tree {
	posTree := covertree.New(width)
	posTree.AddMostGeneralDependencies()

	negTree.Emit(0, func(e covertree.Emitted) {
		e.Rhs.ForEachIndex(func(a uint) bool {
			specializePositiveCover(posTree, width, e.Lhs, a)
			return true
		})
	})
	return posTree
}

// specializePositiveCover is the classical FDep cover-inversion step:
// repeatedly pull a generalization Y ⊆ X with Y → a out of the positive
// tree, and replace it with every one-attribute specialization of Y that
// is not itself already generalized in the tree.
func specializePositiveCover(posTree *covertree.Tree, width uint, x []uint, a uint) {
	for {
		y, found := posTree.GetGeneralizationAndDelete(x, a)
		if !found {
			return
		}
		for b := uint(0); b < width; b++ {
			if b == a || containsAscending(x, b) {
				continue
			}
			yPrime := insertAscending(y, b)
			if !posTree.ContainsGeneralization(yPrime, a) {
				posTree.AddFunctionalDependency(yPrime, a)
			}
		}
	}
}

func containsAscending(sorted []uint, v uint) bool {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= v })
	return i < len(sorted) && sorted[i] == v
}

// insertAscending inserts b into the ascending-sorted y, which must not
// already contain b, and returns the new ascending-sorted slice.
func insertAscending(y []uint, b uint) []uint {
	out := make([]uint, 0, len(y)+1)
	inserted := false
	for _, v := range y {
		if !inserted && v > b {
			out = append(out, b)
			inserted = true
		}
		out = append(out, v)
	}
	if !inserted {
		out = append(out, b)
	}
	return out
}

func toStrippedFd(width uint, e covertree.Emitted) storage.StrippedFd {
	lhs := ibitset.NewDynamic(width)
	for _, i := range e.Lhs {
		lhs.Set(i)
	}
	rhs := ibitset.NewDynamic(width)
	e.Rhs.ForEachIndex(func(i uint) bool {
		rhs.Set(i)
		return true
	})
	return storage.StrippedFd{Lhs: lhs, Rhs: rhs}
}
