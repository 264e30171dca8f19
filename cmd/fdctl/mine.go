package main

import (
	"fmt"

	"github.com/spf13/cobra"

	desbordante "github.com/BUYT-1/Desbordante"
	"github.com/BUYT-1/Desbordante/codec"
)

var (
	flagMaxLHS int
	flagFormat string
	flagOutput string
)

func newMineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine a minimal cover of functional dependencies from --input",
		RunE:  runMine,
	}
	cmd.Flags().IntVar(&flagMaxLHS, "max-lhs", 0, "cap LHS size of emitted FDs (0 = unbounded)")
	cmd.Flags().StringVar(&flagFormat, "format", "json", "output codec: json or lz4json")
	cmd.Flags().StringVar(&flagOutput, "output", "", "write result to this path instead of stdout")
	return cmd
}

func runMine(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	tbl, err := loadTable(ctx)
	if err != nil {
		return err
	}

	m := desbordante.NewMiner(
		desbordante.WithEqualNulls(flagEqualNulls),
		desbordante.WithMaxLHS(flagMaxLHS),
		desbordante.WithLogLevel(logLevel()),
	)
	if err := m.Fit(tbl, tbl.Header()); err != nil {
		return err
	}
	elapsedMS, err := m.Execute(ctx)
	if err != nil {
		return err
	}

	s, err := m.GetFdStorage()
	if err != nil {
		return err
	}

	c, ok := codec.ByName(flagFormat)
	if !ok {
		return fmt.Errorf("fdctl: unknown --format %q", flagFormat)
	}

	fds := s.FunctionalDependencies()
	data, err := c.Marshal(fds)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "mined %d functional dependencies in %dms\n", len(fds), elapsedMS)
	return writeOutput(cmd, data)
}
