package cmd

import (
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/dnamatch"
	"github.com/spf13/cobra"
)

// lcssCmd is for computing the longest common subsequence of two dna sequences.
var lcssCmd = &cobra.Command{
	Use:                        "lcss [seq-file] [seq-file]",
	Short:                      "Measure the similarity of two dna sequences",
	Run:                        dnamatch.LcssCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnamatch lcss seqA.txt seqB.txt",
	Long: `Compute the length of the longest common subsequence of the two dna
sequences and the normalized distance derived from it.

A subsequence need not be contiguous: symbols may be skipped in either
sequence as long as their order is preserved. The distance is
1 - length/min(lenA, lenB) and falls in [0, 1]: 0 when one sequence is a
subsequence of the other, 1 when they share nothing.`,
	Aliases: []string{"distance"},
}

// set flags
func init() {
	lcssCmd.Flags().StringP("out", "o", "", "output file name for a JSON result")

	RootCmd.AddCommand(lcssCmd)
}
