package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomTableShape(t *testing.T) {
	rng := NewRNG(4711)

	rows := rng.RandomTable(8, 3, 4)

	assert.Len(t, rows, 8)
	assert.Len(t, rows[0], 3)
}

func TestFunctionalTableKeyDeterminesOtherColumns(t *testing.T) {
	rng := NewRNG(42)

	rows := rng.FunctionalTable(50, 3, 5)

	seen := make(map[string][2]string)
	for _, row := range rows {
		key := row[0]
		got := [2]string{row[1], row[2]}
		if prior, ok := seen[key]; ok {
			assert.Equal(t, prior, got, "rows sharing a key must agree on the functionally-determined columns")
		} else {
			seen[key] = got
		}
	}
}
