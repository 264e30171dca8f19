package testutil

import (
	"math/rand"
	"strconv"
	"sync"

	"github.com/BUYT-1/Desbordante/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// RandomTable generates a rows x cols relation of strings, each column's
// values drawn from a domain of domainSize distinct values.
func (r *RNG) RandomTable(rows, cols, domainSize int) [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if domainSize < 1 {
		domainSize = 1
	}
	out := make([][]string, rows)
	for i := range out {
		out[i] = make([]string, cols)
		for j := range out[i] {
			out[i][j] = strconv.Itoa(r.rand.Intn(domainSize))
		}
	}
	return out
}

// SliceRelation is an in-memory Relation backed by a [][]int64 of
// pre-interned cell keys, satisfying both fdep.Relation and
// verifier.Relation by structural typing. Tests build it directly or via
// InternStrings.
type SliceRelation struct {
	Rows [][]int64
	Cols int
}

// NumRows implements fdep.Relation / verifier.Relation.
func (s *SliceRelation) NumRows() int { return len(s.Rows) }

// NumColumns implements fdep.Relation / verifier.Relation.
func (s *SliceRelation) NumColumns() int { return s.Cols }

// CellKey implements fdep.Relation / verifier.Relation.
func (s *SliceRelation) CellKey(row model.RowID, col model.Index) int64 {
	return s.Rows[row][col]
}

// InternStrings converts a [][]string relation (as produced by
// RNG.RandomTable) into a SliceRelation by interning each column
// independently, so equal strings within a column map to equal keys.
func InternStrings(rows [][]string) *SliceRelation {
	if len(rows) == 0 {
		return &SliceRelation{}
	}
	cols := len(rows[0])
	interns := make([]map[string]int64, cols)
	for c := range interns {
		interns[c] = make(map[string]int64)
	}
	out := make([][]int64, len(rows))
	for r, row := range rows {
		out[r] = make([]int64, cols)
		for c, raw := range row {
			key, ok := interns[c][raw]
			if !ok {
				key = int64(len(interns[c]))
				interns[c][raw] = key
			}
			out[r][c] = key
		}
	}
	return &SliceRelation{Rows: out, Cols: cols}
}

// BruteForceHolds decides X -> {a} by direct pairwise row comparison,
// without PLIs. It exists as an independent reference implementation for
// cross-validating fdep.Mine's soundness and verifier.Verify's duality:
// agreement with the PLI-based implementations on random relations is
// strong evidence neither has a latent bug the literal S1-S6 scenarios
// miss.
func BruteForceHolds(rel interface {
	NumRows() int
	CellKey(row model.RowID, col model.Index) int64
}, lhs []model.Index, rhs model.Index) bool {
	n := rel.NumRows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !agreesOn(rel, model.RowID(i), model.RowID(j), lhs) {
				continue
			}
			if rel.CellKey(model.RowID(i), rhs) != rel.CellKey(model.RowID(j), rhs) {
				return false
			}
		}
	}
	return true
}

func agreesOn(rel interface {
	CellKey(row model.RowID, col model.Index) int64
}, a, b model.RowID, attrs []model.Index) bool {
	for _, idx := range attrs {
		if rel.CellKey(a, idx) != rel.CellKey(b, idx) {
			return false
		}
	}
	return true
}
