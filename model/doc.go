// Package model defines the core data types shared by the mining and
// verification algorithms: table headers, attributes, row indices, and the
// heterogeneous FD input used to describe a left/right-hand side pair.
//
// # Identity Types
//
//   - Index: zero-based attribute ordinal
//   - RowID: zero-based row ordinal within the loaded relation
//   - Attribute: a column name paired with its Index
//
// # FD Types
//
//   - FdInput: a (lhs, rhs) pair whose elements are either column names or
//     indices, as supplied by a caller before normalization
//   - FunctionalDependency: the materialized, human-readable form of a mined
//     or verified FD, tied to a TableHeader
package model
