package codec

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4JSON is a JSON codec whose wire bytes are LZ4-framed. FdStorage dumps
// for wide schemas can carry thousands of StrippedFds; cmd/fdctl selects
// this codec via --format lz4json to shrink result files written to disk.
type LZ4JSON struct{}

// Marshal JSON-encodes v, then compresses the result with an LZ4 frame
// writer.
func (LZ4JSON) Marshal(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decompresses an LZ4 frame and JSON-decodes the result into v.
func (LZ4JSON) Unmarshal(data []byte, v any) error {
	zr := lz4.NewReader(bytes.NewReader(data))
	raw, err := io.ReadAll(zr)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// Name returns the unique name of the codec ("lz4json").
func (LZ4JSON) Name() string { return "lz4json" }
