package dnamatch

import (
	"log"
	"os"

	"github.com/Giorgos-Arg/dna-pattern-matching/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra Flags like "out" and "algorithm" plus the two
// loaded sequences. They are used by both the count and lcss commands.
type Flags struct {
	// the dna sequence being searched or compared
	seq string

	// the pattern sought in seq, or the second sequence compared against it
	pattern string

	// the name of the file to write the JSON result to (optional)
	out string

	// the exact matching algorithm to run: brute-force or rabin-karp
	algorithm string
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(seqPath, patternPath, out, algorithm string) (*Flags, *config.Config) {
	c := config.New()

	p := inputParser{}
	seq, pattern, err := p.parseSequenceFiles(seqPath, patternPath)
	if err != nil {
		stderr.Fatalln(err)
	}

	return &Flags{
		seq:       seq,
		pattern:   pattern,
		out:       out,
		algorithm: algorithm,
	}, c
}

// parseCmdFlags gathers the sequences and flags of a count or lcss command.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	if len(args) < 2 {
		cmd.Help()
		stderr.Fatalln("\nexpecting two sequence files.")
	}

	out, _ := cmd.Flags().GetString("out")
	algorithm, _ := cmd.Flags().GetString("algorithm")

	p := inputParser{}
	seq, pattern, err := p.parseSequenceFiles(args[0], args[1])
	if err != nil {
		stderr.Fatalln(err)
	}

	return &Flags{
		seq:       seq,
		pattern:   pattern,
		out:       out,
		algorithm: algorithm,
	}, config.New()
}

// parseSequenceFiles loads and validates the two input sequences.
func (p *inputParser) parseSequenceFiles(seqPath, patternPath string) (seq, pattern string, err error) {
	if seq, err = ReadSeq(seqPath); err != nil {
		return "", "", err
	}
	if pattern, err = ReadSeq(patternPath); err != nil {
		return "", "", err
	}
	return seq, pattern, nil
}
