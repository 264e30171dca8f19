// Package verifier implements the PLI-based exactness check for a single
// candidate functional dependency, plus the diagnostic highlights produced
// when the candidate does not hold.
package verifier
