package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	desbordante "github.com/BUYT-1/Desbordante"
	"github.com/BUYT-1/Desbordante/model"
	"github.com/BUYT-1/Desbordante/queue"
	"github.com/BUYT-1/Desbordante/verifier"
)

var (
	flagLhs  string
	flagRhs  string
	flagTopK int
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify whether --lhs determines --rhs over --input",
		RunE:  runVerify,
	}
	cmd.Flags().StringVar(&flagLhs, "lhs", "", "comma-separated LHS column names")
	cmd.Flags().StringVar(&flagRhs, "rhs", "", "comma-separated RHS column names")
	cmd.Flags().IntVar(&flagTopK, "top-k", 0, "print only the k worst highlights (0 = all)")
	cmd.MarkFlagRequired("lhs")
	cmd.MarkFlagRequired("rhs")
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	tbl, err := loadTable(ctx)
	if err != nil {
		return err
	}

	v := desbordante.NewVerifier(
		desbordante.WithEqualNulls(flagEqualNulls),
		desbordante.WithLogLevel(logLevel()),
	)
	fd := model.FdInput{
		Lhs: byNames(strings.Split(flagLhs, ",")),
		Rhs: byNames(strings.Split(flagRhs, ",")),
	}
	if err := v.Fit(tbl, tbl.Header(), fd); err != nil {
		return err
	}
	elapsedMS, err := v.Execute(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "holds=%v error=%.4f num_error_clusters=%d num_error_rows=%d elapsed_ms=%d\n",
		v.FDHolds(), v.GetError(), v.GetNumErrorClusters(), v.GetNumErrorRows(), elapsedMS)

	if v.FDHolds() {
		return nil
	}

	v.SortHighlightsByProportionAscending()
	highlights := v.GetHighlights()
	if flagTopK > 0 {
		highlights = queue.TopK(highlights, flagTopK, func(h verifier.Highlight) float64 {
			return 1 - h.MostFrequentRhsValueProportion
		})
	}
	for _, h := range highlights {
		fmt.Fprintf(out, "cluster=%v distinct_rhs=%d most_frequent_proportion=%.4f\n",
			h.Cluster, h.NumDistinctRhsValues, h.MostFrequentRhsValueProportion)
	}
	return nil
}

func byNames(names []string) []model.FdInputElement {
	out := make([]model.FdInputElement, len(names))
	for i, n := range names {
		out[i] = model.ByName(strings.TrimSpace(n))
	}
	return out
}
