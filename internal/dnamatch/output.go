package dnamatch

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"
)

// Result is the outcome of a single run, written as JSON when an output
// file is requested.
type Result struct {
	// Mode is the algorithm that produced this result
	Mode string `json:"mode"`

	// SeqLength is the character count of the dna sequence
	SeqLength int `json:"seqLength"`

	// PatternLength is the character count of the pattern or second sequence
	PatternLength int `json:"patternLength"`

	// Occurrences of the pattern in the sequence (count modes only)
	Occurrences *int `json:"occurrences,omitempty"`

	// Lcss length of the two sequences (lcss mode only)
	Lcss *int `json:"lcss,omitempty"`

	// Distance between the two sequences (lcss mode only)
	Distance *float64 `json:"distance,omitempty"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`
}

func newCountResult(flags *Flags, occurrences int, seconds float64) Result {
	mode := flags.algorithm
	if mode == "" {
		mode = "brute-force"
	}
	return Result{
		Mode:          mode,
		SeqLength:     len(flags.seq),
		PatternLength: len(flags.pattern),
		Occurrences:   &occurrences,
		Time:          timestamp(),
		Execution:     seconds,
	}
}

func newLcssResult(flags *Flags, length int, distance float64, seconds float64) Result {
	return Result{
		Mode:          "lcss",
		SeqLength:     len(flags.seq),
		PatternLength: len(flags.pattern),
		Lcss:          &length,
		Distance:      &distance,
		Time:          timestamp(),
		Execution:     seconds,
	}
}

// timestamp uses same format as log.Println https://golang.org/pkg/log/#Println
func timestamp() string {
	t := time.Now()
	return fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)
}

// writeResult marshals a result and writes it to the filename requested.
func writeResult(filename string, result Result) ([]byte, error) {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize result: %w", err)
	}

	if err := os.WriteFile(filename, output, 0666); err != nil {
		return nil, fmt.Errorf("failed to write result to %s: %w", filename, err)
	}

	return output, nil
}

// printCount logs a count run's summary to stdout.
func printCount(flags *Flags, occurrences int) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "seq\tpattern\toccurrences\t\n")
	fmt.Fprintf(writer, "%d\t%d\t%d\t\n", len(flags.seq), len(flags.pattern), occurrences)
	writer.Flush()
}

// printCompare logs an lcss run's summary to stdout.
func printCompare(flags *Flags, length int, distance float64) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "seqA\tseqB\tlcss\tdistance\t\n")
	fmt.Fprintf(writer, "%d\t%d\t%d\t%.2f\t\n", len(flags.seq), len(flags.pattern), length, distance)
	writer.Flush()
}
