// Command fdctl mines and verifies functional dependencies over a CSV
// relation from the shell, exposing the desbordante package's Miner and
// Verifier as subcommands.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagInput       string
	flagHasHeader   bool
	flagSeparator   string
	flagNullLiteral string
	flagEqualNulls  bool
	flagVerbose     bool
)

// NewRootCmd builds the fdctl root command with its persistent flags and
// mine/verify subcommands wired in.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fdctl",
		Short: "Mine and verify functional dependencies over a CSV relation",
	}

	root.PersistentFlags().StringVar(&flagInput, "input", "", "path to a CSV (or .csv.gz) relation file")
	root.PersistentFlags().BoolVar(&flagHasHeader, "has-header", true, "treat the first row as column names")
	root.PersistentFlags().StringVar(&flagSeparator, "separator", ",", "CSV field separator")
	root.PersistentFlags().StringVar(&flagNullLiteral, "null-literal", "", "string literal that denotes a null cell")
	root.PersistentFlags().BoolVar(&flagEqualNulls, "equal-nulls", false, "treat null cells as mutually equal")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newMineCmd())
	root.AddCommand(newVerifyCmd())

	return root
}

func logLevel() slog.Level {
	if flagVerbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
