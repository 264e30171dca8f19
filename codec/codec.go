// Package codec centralizes result encoding for exchanging FdStorage and
// FunctionalDependency values with a collaborator (CLI output, an embedding
// caller, a downstream report). This is the "serialization for result
// exchange, not persistence" boundary named by the core specification — no
// codec here is involved in the mining or verification algorithms
// themselves, which never serialize anything.
package codec

import "fmt"

// Codec encodes/decodes values. Implementations must be safe for
// concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name. Used by cmd/fdctl's
// --format flag.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "lz4json":
		return LZ4JSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for tests and benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
