package table

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/BUYT-1/Desbordante/model"
	"github.com/BUYT-1/Desbordante/resource"
)

// LoadOptions configures CSV ingestion.
type LoadOptions struct {
	// Separator is the field delimiter. Defaults to ',' when zero.
	Separator rune
	// HasHeader indicates the first row names the columns. If false,
	// columns are named col0, col1, ...
	HasHeader bool
	// NullLiteral is the string that denotes a null cell, e.g. "" or "NULL".
	NullLiteral string
	// EqualNulls governs CellKey's behaviour on null cells (see Table).
	EqualNulls bool
	// RelationName labels the resulting TableHeader.
	RelationName string
	// Controller, if non-nil, is used to budget memory and read throughput
	// while the file is ingested.
	Controller *resource.Controller
	// BytesPerRowEstimate sizes the memory reservation requested from
	// Controller after each row is read; 0 picks a modest default.
	BytesPerRowEstimate int64
}

const defaultBytesPerRowEstimate = 256

// LoadCSV reads a CSV file (optionally gzip-compressed, detected by a
// ".gz" suffix) into a columnar Table.
func LoadCSV(ctx context.Context, path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if opts.Controller != nil {
		r = resource.NewRateLimitedReader(r, opts.Controller, ctx)
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("table: gzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	return loadCSVReader(ctx, bufio.NewReader(r), opts)
}

func loadCSVReader(ctx context.Context, r io.Reader, opts LoadOptions) (*Table, error) {
	cr := csv.NewReader(r)
	if opts.Separator != 0 {
		cr.Comma = opts.Separator
	}
	cr.ReuseRecord = false

	var columnNames []string
	if opts.HasHeader {
		header, err := cr.Read()
		if err != nil {
			return nil, fmt.Errorf("table: read header: %w", err)
		}
		columnNames = append([]string{}, header...)
	}

	bytesPerRow := opts.BytesPerRowEstimate
	if bytesPerRow <= 0 {
		bytesPerRow = defaultBytesPerRowEstimate
	}

	var records [][]string
	numCols := -1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: read row %d: %w", len(records), err)
		}
		if numCols == -1 {
			numCols = len(record)
		} else if len(record) != numCols {
			return nil, fmt.Errorf("table: row %d has %d fields, want %d", len(records), len(record), numCols)
		}

		if opts.Controller != nil {
			if err := opts.Controller.AcquireMemory(ctx, bytesPerRow); err != nil {
				return nil, fmt.Errorf("table: acquire memory: %w", err)
			}
		}

		records = append(records, record)
	}

	if numCols == -1 {
		return nil, fmt.Errorf("table: no rows read")
	}
	if columnNames == nil {
		columnNames = make([]string, numCols)
		for i := range columnNames {
			columnNames[i] = fmt.Sprintf("col%d", i)
		}
	}

	header := model.NewTableHeader(opts.RelationName, columnNames)

	t := &Table{
		header:     header,
		columns:    make([]*column, numCols),
		numRows:    len(records),
		equalNulls: opts.EqualNulls,
	}
	for c := 0; c < numCols; c++ {
		t.columns[c] = newColumn(len(records))
	}
	for row, record := range records {
		for c, raw := range record {
			isNull := raw == opts.NullLiteral
			t.columns[c].set(row, raw, isNull)
		}
	}
	return t, nil
}
