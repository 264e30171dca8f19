package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BUYT-1/Desbordante/table"
)

func loadTable(ctx context.Context) (*table.Table, error) {
	if flagInput == "" {
		return nil, fmt.Errorf("fdctl: --input is required")
	}
	sep := ','
	if len(flagSeparator) > 0 {
		sep = []rune(flagSeparator)[0]
	}
	return table.LoadCSV(ctx, flagInput, table.LoadOptions{
		Separator:    sep,
		HasHeader:    flagHasHeader,
		NullLiteral:  flagNullLiteral,
		EqualNulls:   flagEqualNulls,
		RelationName: flagInput,
	})
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	if flagOutput == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(flagOutput, data, 0o644)
}
