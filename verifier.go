package desbordante

import (
	"context"
	"time"

	"github.com/BUYT-1/Desbordante/model"
	"github.com/BUYT-1/Desbordante/verifier"
)

// Verifier implements the Algorithm capability set for FD verification:
// Fit binds the relation, header, and candidate FdInput; Execute runs the
// check; the FDHolds/GetError/... accessors and SortHighlightsBy*
// passthroughs expose the result, per spec.md §6.
type Verifier struct {
	opts   options
	rel    verifier.Relation
	lhs    []model.Index
	rhs    []model.Index
	result *verifier.Result
	fitted bool
}

// NewVerifier builds a Verifier from functional options. Recognized
// options: WithEqualNulls (documentary, see Miner.Fit), plus the ambient
// WithLogger/WithMetricsCollector.
func NewVerifier(opts ...Option) *Verifier {
	return &Verifier{opts: applyOptions(opts)}
}

// Fit binds the relation and the candidate FD (already resolved against
// header via model.Normalize) this Verifier will check on Execute.
func (v *Verifier) Fit(rel verifier.Relation, header *model.TableHeader, fd model.FdInput) error {
	if rel == nil || header == nil {
		return NewConfigurationError("Fit requires a non-nil relation and header", nil)
	}
	norm, err := model.Normalize(fd, header)
	if err != nil {
		return NewConfigurationError(err.Error(), err)
	}
	v.rel = rel
	v.lhs = norm.Lhs
	v.rhs = norm.Rhs
	v.result = nil
	v.fitted = true
	return nil
}

// Execute runs the PLI-based exactness check and returns the elapsed time
// in milliseconds.
func (v *Verifier) Execute(ctx context.Context) (int64, error) {
	if !v.fitted {
		return 0, NewUsageError("Execute called before Fit")
	}

	start := time.Now()
	res, err := verifier.Verify(v.rel, v.lhs, v.rhs, verifier.Options{EqualNulls: v.opts.equalNulls})
	elapsed := time.Since(start)
	elapsedMS := elapsed.Milliseconds()

	holds := res != nil && res.Holds
	numErrorClusters := 0
	if res != nil {
		numErrorClusters = res.NumErrorClusters
	}
	v.opts.metricsCollector.RecordVerify(holds, elapsed, err)
	v.opts.logger.LogVerify(ctx, holds, numErrorClusters, elapsedMS, err)

	if err != nil {
		return elapsedMS, translateError(err)
	}
	v.result = res
	return elapsedMS, nil
}

// mustResult returns the most recent result, or a zero-value Result if
// Execute has not yet succeeded. spec.md's accessor signatures carry no
// error return, so a caller that queries before Execute observes a
// harmless zero result rather than a panic.
func (v *Verifier) mustResult() *verifier.Result {
	if v.result == nil {
		return &verifier.Result{}
	}
	return v.result
}

// FDHolds returns whether the candidate FD holds exactly on the relation.
func (v *Verifier) FDHolds() bool { return v.mustResult().Holds }

// GetError returns NumErrorRows / r, in [0, 1].
func (v *Verifier) GetError() float64 { return v.mustResult().Error }

// GetNumErrorClusters returns the count of LHS-PLI clusters that split
// under the RHS.
func (v *Verifier) GetNumErrorClusters() int { return v.mustResult().NumErrorClusters }

// GetNumErrorRows returns Σ(|cluster| - size of its most frequent RHS
// value subgroup) over all error clusters.
func (v *Verifier) GetNumErrorRows() int { return v.mustResult().NumErrorRows }

// GetHighlights returns the per-cluster diagnostics for a violated
// candidate FD.
func (v *Verifier) GetHighlights() []verifier.Highlight { return v.mustResult().Highlights }

// SortHighlightsByProportionAscending sorts the result's highlights in
// place by increasing most-frequent-value proportion.
func (v *Verifier) SortHighlightsByProportionAscending() {
	v.mustResult().SortHighlightsByProportionAscending()
}

// SortHighlightsByProportionDescending sorts the result's highlights in
// place by decreasing most-frequent-value proportion.
func (v *Verifier) SortHighlightsByProportionDescending() {
	v.mustResult().SortHighlightsByProportionDescending()
}

// SortHighlightsByNumAscending sorts the result's highlights in place by
// increasing distinct RHS value count.
func (v *Verifier) SortHighlightsByNumAscending() {
	v.mustResult().SortHighlightsByNumAscending()
}

// SortHighlightsByNumDescending sorts the result's highlights in place by
// decreasing distinct RHS value count.
func (v *Verifier) SortHighlightsByNumDescending() {
	v.mustResult().SortHighlightsByNumDescending()
}

// SortHighlightsBySizeAscending sorts the result's highlights in place by
// increasing cluster size.
func (v *Verifier) SortHighlightsBySizeAscending() {
	v.mustResult().SortHighlightsBySizeAscending()
}

// SortHighlightsBySizeDescending sorts the result's highlights in place
// by decreasing cluster size.
func (v *Verifier) SortHighlightsBySizeDescending() {
	v.mustResult().SortHighlightsBySizeDescending()
}

// SortHighlightsByLhsAscending sorts the result's highlights in place by
// increasing LHS representative.
func (v *Verifier) SortHighlightsByLhsAscending() {
	v.mustResult().SortHighlightsByLhsAscending()
}

// SortHighlightsByLhsDescending sorts the result's highlights in place by
// decreasing LHS representative.
func (v *Verifier) SortHighlightsByLhsDescending() {
	v.mustResult().SortHighlightsByLhsDescending()
}
