package cmd

import (
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/dnamatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// countCmd is for counting exact occurrences of a pattern in a dna sequence.
var countCmd = &cobra.Command{
	Use:                        "count [seq-file] [pattern-file]",
	Short:                      "Count occurrences of a pattern in a dna sequence",
	Run:                        dnamatch.CountCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnamatch count genome.txt pattern.txt --algorithm rabin-karp",
	Long: `Count how many times the pattern sequence occurs as a contiguous
substring of the dna sequence. Overlapping occurrences are all counted.

Both files must contain only the characters a, c, g and t. Line breaks
are ignored. The pattern cannot be longer than the dna sequence.`,
	Aliases: []string{"occurrences"},
}

// set flags
func init() {
	countCmd.Flags().StringP("algorithm", "a", "brute-force", "matching algorithm: brute-force or rabin-karp")
	countCmd.Flags().StringP("out", "o", "", "output file name for a JSON result")

	viper.BindPFlag("algorithm", countCmd.Flags().Lookup("algorithm"))

	RootCmd.AddCommand(countCmd)
}
