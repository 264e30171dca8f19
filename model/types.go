package model

import (
	"fmt"
	"sort"
)

// Index is a zero-based attribute ordinal within a TableHeader.
type Index uint32

// RowID is a zero-based row ordinal within a loaded relation.
type RowID uint32

// Attribute pairs a column name with its ordinal position.
type Attribute struct {
	Name string
	ID   Index
}

// TableHeader describes the schema of a loaded relation. It is immutable
// once constructed.
type TableHeader struct {
	name    string
	columns []string
}

// NewTableHeader builds a TableHeader from a relation name and an ordered
// list of column names.
func NewTableHeader(name string, columns []string) *TableHeader {
	cp := make([]string, len(columns))
	copy(cp, columns)
	return &TableHeader{name: name, columns: cp}
}

// RelationName returns the name of the relation this header describes.
func (h *TableHeader) RelationName() string {
	return h.name
}

// NumColumns returns n, the number of attributes in the relation.
func (h *TableHeader) NumColumns() int {
	return len(h.columns)
}

// ColumnName returns the name of the attribute at i.
func (h *TableHeader) ColumnName(i Index) string {
	return h.columns[i]
}

// Attribute returns the Attribute value for index i.
func (h *TableHeader) Attribute(i Index) Attribute {
	return Attribute{Name: h.columns[i], ID: i}
}

// IndexOf resolves a column name to its Index. ok is false if the name is
// absent or ambiguous (appears more than once).
func (h *TableHeader) IndexOf(name string) (idx Index, ok bool) {
	found := -1
	for i, c := range h.columns {
		if c == name {
			if found != -1 {
				return 0, false // ambiguous
			}
			found = i
		}
	}
	if found == -1 {
		return 0, false
	}
	return Index(found), true
}

// FdInputElement is one entry on a side (LHS or RHS) of an un-normalized
// FdInput: either a column name or a raw index, as supplied by a caller
// before resolution against a TableHeader.
type FdInputElement struct {
	name   string
	index  Index
	byName bool
}

// ByName builds an FdInputElement that resolves by column name.
func ByName(name string) FdInputElement {
	return FdInputElement{name: name, byName: true}
}

// ByIndex builds an FdInputElement that resolves by raw index.
func ByIndex(i Index) FdInputElement {
	return FdInputElement{index: i, byName: false}
}

// FdInput is a (lhs, rhs) pair whose elements are either column names or
// indices, as supplied by a caller before normalization.
type FdInput struct {
	Lhs []FdInputElement
	Rhs []FdInputElement
}

// NormalizedFdInput is an FdInput after resolution: both sides are
// deduplicated, ascending-sorted Index sequences.
type NormalizedFdInput struct {
	Lhs []Index
	Rhs []Index
}

// Normalize resolves every element of in against header, then deduplicates
// and ascending-sorts both sides. Normalize is idempotent:
// Normalize(Normalize(x)) == Normalize(x).
//
// It returns a ConfigurationError-class error (unresolved/ambiguous column
// name, out-of-range index, or an empty rhs) wrapped by the caller's error
// taxonomy; this package only reports the condition via a plain error.
func Normalize(in FdInput, header *TableHeader) (NormalizedFdInput, error) {
	lhs, err := normalizeSide(in.Lhs, header, "lhs")
	if err != nil {
		return NormalizedFdInput{}, err
	}
	if len(in.Rhs) == 0 {
		return NormalizedFdInput{}, fmt.Errorf("rhs: must be non-empty")
	}
	rhs, err := normalizeSide(in.Rhs, header, "rhs")
	if err != nil {
		return NormalizedFdInput{}, err
	}
	return NormalizedFdInput{Lhs: lhs, Rhs: rhs}, nil
}

// normalizeSide resolves elems against header. An empty lhs is accepted and
// denotes the constant-column dependency ∅ → rhs; Normalize itself rejects
// an empty rhs before calling here.
func normalizeSide(elems []FdInputElement, header *TableHeader, side string) ([]Index, error) {
	n := header.NumColumns()
	out := make([]Index, 0, len(elems))
	for _, e := range elems {
		if e.byName {
			idx, ok := header.IndexOf(e.name)
			if !ok {
				return nil, fmt.Errorf("%s: column %q does not resolve to a unique index", side, e.name)
			}
			out = append(out, idx)
			continue
		}
		if int(e.index) >= n {
			return nil, fmt.Errorf("%s: index %d out of range for %d columns", side, e.index, n)
		}
		out = append(out, e.index)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	out = dedupSorted(out)
	return out, nil
}

func dedupSorted(s []Index) []Index {
	if len(s) == 0 {
		return s
	}
	w := 1
	for r := 1; r < len(s); r++ {
		if s[r] != s[w-1] {
			s[w] = s[r]
			w++
		}
	}
	return s[:w]
}

// FunctionalDependency is the materialized, human-readable form of a mined
// or verified FD, tied to a TableHeader.
type FunctionalDependency struct {
	TableName string
	Lhs       []Attribute
	Rhs       []Attribute
}

// String renders the FD as "table: {a, b} -> {c}".
func (fd FunctionalDependency) String() string {
	names := func(attrs []Attribute) string {
		s := "{"
		for i, a := range attrs {
			if i > 0 {
				s += ", "
			}
			s += a.Name
		}
		return s + "}"
	}
	return fmt.Sprintf("%s: %s -> %s", fd.TableName, names(fd.Lhs), names(fd.Rhs))
}
