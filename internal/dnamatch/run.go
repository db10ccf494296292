package dnamatch

import (
	"fmt"
	"time"

	"github.com/Giorgos-Arg/dna-pattern-matching/config"
	"github.com/spf13/cobra"
)

// CountCmd takes a cobra command (with its flags) and runs Count.
func CountCmd(cmd *cobra.Command, args []string) {
	Count(parseCmdFlags(cmd, args))
}

// LcssCmd takes a cobra command (with its flags) and runs Compare.
func LcssCmd(cmd *cobra.Command, args []string) {
	Compare(parseCmdFlags(cmd, args))
}

// Count reports how many times the pattern occurs in the dna sequence,
// using the algorithm named in the flags.
func Count(flags *Flags, conf *config.Config) int {
	start := time.Now()

	// no alignment can fit the pattern, reject up front as a usage error
	if len(flags.pattern) > len(flags.seq) {
		stderr.Fatalln("the dna sequence must contain at least as many characters as the pattern sequence")
	}

	var occurrences int
	var err error
	switch flags.algorithm {
	case "", "brute-force", "bf":
		occurrences, err = BruteForce(flags.seq, flags.pattern)
	case "rabin-karp", "kr":
		occurrences, err = RabinKarp(flags.seq, flags.pattern, conf)
	default:
		stderr.Fatalf("unrecognized algorithm %q: expecting brute-force or rabin-karp\n", flags.algorithm)
	}
	if err != nil {
		stderr.Fatalln(err)
	}

	elapsed := time.Since(start)
	result := newCountResult(flags, occurrences, elapsed.Seconds())
	printCount(flags, occurrences)
	if flags.out != "" {
		if _, err := writeResult(flags.out, result); err != nil {
			stderr.Fatalln(err)
		}
	}

	if conf.Verbose {
		fmt.Printf("%s\n\n", elapsed)
	}

	return occurrences
}

// Compare reports the LCSS length of the two dna sequences and the
// normalized distance between them.
func Compare(flags *Flags, conf *config.Config) (int, float64) {
	start := time.Now()

	length, err := Lcss(flags.seq, flags.pattern, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	distance, err := Distance(length, len(flags.seq), len(flags.pattern))
	if err != nil {
		stderr.Fatalln(err)
	}

	elapsed := time.Since(start)
	result := newLcssResult(flags, length, distance, elapsed.Seconds())
	printCompare(flags, length, distance)
	if flags.out != "" {
		if _, err := writeResult(flags.out, result); err != nil {
			stderr.Fatalln(err)
		}
	}

	if conf.Verbose {
		fmt.Printf("%s\n\n", elapsed)
	}

	return length, distance
}
