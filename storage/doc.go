// Package storage holds the mined functional dependency cover once a
// mining run completes: FdStorage is the read-only, shareable result
// container, and the three builder variants describe how StrippedFds
// accumulate into one on the way there.
package storage
