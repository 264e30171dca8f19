package verifier

import (
	"fmt"
	"sort"

	"github.com/BUYT-1/Desbordante/model"
	"github.com/BUYT-1/Desbordante/pli"
)

// Relation is the typed view the verifier needs over a loaded table:
// interned cell keys, with the null policy already baked into the key
// scheme (see fdep.Relation for the same convention).
type Relation interface {
	NumRows() int
	NumColumns() int
	CellKey(row model.RowID, col model.Index) int64
}

// Options configures a single verification run.
type Options struct {
	// EqualNulls documents the null policy the Relation's CellKey scheme
	// was built with; the verifier itself only compares keys for equality.
	EqualNulls bool
}

// Highlight is a per-cluster diagnostic for a candidate FD that does not
// hold: it names one cluster of PLI(LHS) that splits under the RHS, how
// many distinct RHS values appear in it, and the share held by the most
// frequent one.
type Highlight struct {
	Cluster                        []model.RowID
	NumDistinctRhsValues           int
	MostFrequentRhsValueProportion float64
}

// Result is the outcome of verifying one candidate FD.
type Result struct {
	Holds            bool
	Error            float64
	NumErrorClusters int
	NumErrorRows     int
	Highlights       []Highlight
}

// Verify checks whether lhs -> rhs holds on rel. Both lhs and rhs must be
// normalized (ascending, deduplicated, disjoint) index sequences; an empty
// lhs is accepted and denotes the constant-column dependency ∅ → rhs, per
// the alignment with the mining side's support for ∅ → a. rhs must be
// non-empty.
func Verify(rel Relation, lhs, rhs []model.Index, opts Options) (*Result, error) {
	if len(rhs) == 0 {
		return nil, fmt.Errorf("verifier: rhs must be non-empty")
	}
	r := rel.NumRows()

	lhsPli := buildSetPli(rel, lhs, r)
	rhsPli := buildSetPli(rel, rhs, r)
	combined := lhsPli.Intersect(rhsPli)

	// Equal cluster counts alone are not enough: Intersect drops rows whose
	// RHS value is unique, so a split cluster can still leave one bucket.
	// The FD holds only if no clustered row was dropped as well.
	lhsRows, combinedRows := 0, 0
	for _, c := range lhsPli.Clusters() {
		lhsRows += len(c)
	}
	for _, c := range combined.Clusters() {
		combinedRows += len(c)
	}
	result := &Result{
		Holds: lhsPli.NumCluster() == combined.NumCluster() && lhsRows == combinedRows,
	}
	if result.Holds {
		return result, nil
	}

	numErrorRows := 0
	for _, c := range lhsPli.Clusters() {
		h, split := highlightFor(c, combined)
		if !split {
			continue
		}
		numErrorRows += len(c) - maxFrequency(c, combined)
		result.Highlights = append(result.Highlights, h)
	}
	result.NumErrorClusters = len(result.Highlights)
	result.NumErrorRows = numErrorRows
	if r > 0 {
		result.Error = float64(numErrorRows) / float64(r)
	}
	return result, nil
}

func buildSetPli(rel Relation, indices []model.Index, numRows int) *pli.PLI {
	if len(indices) == 0 {
		return pli.Universal(numRows)
	}
	var result *pli.PLI
	for i, idx := range indices {
		keys := make([]int64, numRows)
		for row := 0; row < numRows; row++ {
			keys[row] = rel.CellKey(model.RowID(row), idx)
		}
		p := pli.Build(keys, nil, true)
		if i == 0 {
			result = p
			continue
		}
		result = result.Intersect(p)
	}
	return result
}

// highlightFor reports whether cluster c (from PLI(LHS)) splits under the
// combined PLI(LHS∪RHS), and if so builds the diagnostic record.
func highlightFor(c pli.Cluster, combined *pli.PLI) (Highlight, bool) {
	bucketSize := make(map[int]int)
	nextSingleton := -1
	for _, row := range c {
		id, ok := combined.ProbeID(row)
		if !ok {
			id = nextSingleton
			nextSingleton--
		}
		bucketSize[id]++
	}
	if len(bucketSize) <= 1 {
		return Highlight{}, false
	}
	maxFreq := 0
	for _, sz := range bucketSize {
		if sz > maxFreq {
			maxFreq = sz
		}
	}
	return Highlight{
		Cluster:                        append([]model.RowID{}, c...),
		NumDistinctRhsValues:           len(bucketSize),
		MostFrequentRhsValueProportion: float64(maxFreq) / float64(len(c)),
	}, true
}

func maxFrequency(c pli.Cluster, combined *pli.PLI) int {
	bucketSize := make(map[int]int)
	nextSingleton := -1
	for _, row := range c {
		id, ok := combined.ProbeID(row)
		if !ok {
			id = nextSingleton
			nextSingleton--
		}
		bucketSize[id]++
	}
	maxFreq := 0
	for _, sz := range bucketSize {
		if sz > maxFreq {
			maxFreq = sz
		}
	}
	return maxFreq
}

// SortHighlightsByProportionAscending sorts in place by increasing
// most-frequent-value proportion.
func (r *Result) SortHighlightsByProportionAscending() {
	sort.SliceStable(r.Highlights, func(i, j int) bool {
		return r.Highlights[i].MostFrequentRhsValueProportion < r.Highlights[j].MostFrequentRhsValueProportion
	})
}

// SortHighlightsByProportionDescending sorts in place by decreasing
// most-frequent-value proportion.
func (r *Result) SortHighlightsByProportionDescending() {
	sort.SliceStable(r.Highlights, func(i, j int) bool {
		return r.Highlights[i].MostFrequentRhsValueProportion > r.Highlights[j].MostFrequentRhsValueProportion
	})
}

// SortHighlightsByNumAscending sorts in place by increasing distinct RHS
// value count.
func (r *Result) SortHighlightsByNumAscending() {
	sort.SliceStable(r.Highlights, func(i, j int) bool {
		return r.Highlights[i].NumDistinctRhsValues < r.Highlights[j].NumDistinctRhsValues
	})
}

// SortHighlightsByNumDescending sorts in place by decreasing distinct RHS
// value count.
func (r *Result) SortHighlightsByNumDescending() {
	sort.SliceStable(r.Highlights, func(i, j int) bool {
		return r.Highlights[i].NumDistinctRhsValues > r.Highlights[j].NumDistinctRhsValues
	})
}

// SortHighlightsBySizeAscending sorts in place by increasing cluster size.
func (r *Result) SortHighlightsBySizeAscending() {
	sort.SliceStable(r.Highlights, func(i, j int) bool {
		return len(r.Highlights[i].Cluster) < len(r.Highlights[j].Cluster)
	})
}

// SortHighlightsBySizeDescending sorts in place by decreasing cluster size.
func (r *Result) SortHighlightsBySizeDescending() {
	sort.SliceStable(r.Highlights, func(i, j int) bool {
		return len(r.Highlights[i].Cluster) > len(r.Highlights[j].Cluster)
	})
}

// SortHighlightsByLhsAscending sorts in place by increasing LHS
// representative (the cluster's smallest row id).
func (r *Result) SortHighlightsByLhsAscending() {
	sort.SliceStable(r.Highlights, func(i, j int) bool {
		return representative(r.Highlights[i]) < representative(r.Highlights[j])
	})
}

// SortHighlightsByLhsDescending sorts in place by decreasing LHS
// representative (the cluster's smallest row id).
func (r *Result) SortHighlightsByLhsDescending() {
	sort.SliceStable(r.Highlights, func(i, j int) bool {
		return representative(r.Highlights[i]) > representative(r.Highlights[j])
	})
}

func representative(h Highlight) model.RowID {
	if len(h.Cluster) == 0 {
		return 0
	}
	return h.Cluster[0]
}
