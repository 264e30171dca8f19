package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fdPayload struct {
	TableName string   `json:"table_name"`
	Lhs       []string `json:"lhs"`
	Rhs       []string `json:"rhs"`
}

func TestJSONRoundTrip(t *testing.T) {
	in := fdPayload{TableName: "r", Lhs: []string{"a", "b"}, Rhs: []string{"c"}}
	data, err := JSON{}.Marshal(in)
	require.NoError(t, err)

	var out fdPayload
	require.NoError(t, JSON{}.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestLZ4JSONRoundTrip(t *testing.T) {
	in := fdPayload{TableName: "r", Lhs: []string{"a", "b", "c"}, Rhs: []string{"d"}}
	data, err := LZ4JSON{}.Marshal(in)
	require.NoError(t, err)

	var out fdPayload
	require.NoError(t, LZ4JSON{}.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestByName(t *testing.T) {
	_, ok := ByName("json")
	require.True(t, ok)
	_, ok = ByName("lz4json")
	require.True(t, ok)
	_, ok = ByName("nope")
	require.False(t, ok)
}
