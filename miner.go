package desbordante

import (
	"context"
	"time"

	"github.com/BUYT-1/Desbordante/fdep"
	"github.com/BUYT-1/Desbordante/model"
	"github.com/BUYT-1/Desbordante/storage"
)

// Miner implements the Algorithm capability set for FD mining:
// SetOption-equivalents as functional Options, Fit, Execute, and
// GetFdStorage as the result accessor.
type Miner struct {
	opts   options
	rel    fdep.Relation
	header *model.TableHeader
	result *storage.FdStorage
	fitted bool
}

// NewMiner builds a Miner from functional options. Recognized options:
// WithEqualNulls, WithMaxLHS (spec.md §6's equal_nulls/max_lhs), plus the
// ambient WithLogger/WithMetricsCollector/WithResourceController.
func NewMiner(opts ...Option) *Miner {
	return &Miner{opts: applyOptions(opts)}
}

// Fit binds the relation and header this Miner will mine on Execute.
// equal_nulls is expected to already be baked into rel's CellKey scheme
// (see table.Table); WithEqualNulls is only forwarded to fdep.Options,
// and neither the Miner nor fdep re-derives the policy from it.
func (m *Miner) Fit(rel fdep.Relation, header *model.TableHeader) error {
	if rel == nil || header == nil {
		return NewConfigurationError("Fit requires a non-nil relation and header", nil)
	}
	m.rel = rel
	m.header = header
	m.result = nil
	m.fitted = true
	return nil
}

// Execute runs the FDep pipeline and returns the elapsed time in
// milliseconds. The resulting FdStorage is retrieved via GetFdStorage.
func (m *Miner) Execute(ctx context.Context) (int64, error) {
	if !m.fitted {
		return 0, NewUsageError("Execute called before Fit")
	}

	if m.opts.resources != nil {
		if err := m.opts.resources.AcquireBackground(ctx); err != nil {
			return 0, translateError(err)
		}
		defer m.opts.resources.ReleaseBackground()
	}

	start := time.Now()
	s, err := fdep.Mine(ctx, m.rel, m.header, fdep.Options{
		EqualNulls: m.opts.equalNulls,
		MaxLhs:     m.opts.maxLhs,
	})
	elapsed := time.Since(start)
	elapsedMS := elapsed.Milliseconds()

	numFds := 0
	if s != nil {
		numFds = s.Len()
	}
	m.opts.metricsCollector.RecordMine(m.rel.NumRows(), m.rel.NumColumns(), numFds, elapsed, err)
	m.opts.logger.LogMine(ctx, numFds, elapsedMS, err)

	if err != nil {
		return elapsedMS, translateError(err)
	}
	m.result = s
	return elapsedMS, nil
}

// GetFdStorage returns the FdStorage built by the most recent successful
// Execute. It returns a UsageError if Execute has not yet succeeded.
func (m *Miner) GetFdStorage() (*storage.FdStorage, error) {
	if m.result == nil {
		return nil, NewUsageError("GetFdStorage called before a successful Execute")
	}
	return m.result, nil
}
