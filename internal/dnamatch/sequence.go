// Package dnamatch compares two dna sequences: it counts exact occurrences
// of a pattern within a sequence (by brute force or Rabin-Karp) and measures
// sequence similarity via the longest common subsequence
package dnamatch

import (
	"errors"
	"fmt"
	"os"
)

// ErrAlphabet is returned when a sequence holds a character outside a,c,g,t.
var ErrAlphabet = errors.New("a dna sequence can only contain the characters a,c,g,t")

// Validate checks that every character of seq is in the dna alphabet.
func Validate(seq string) error {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'a', 'c', 'g', 't':
		default:
			return fmt.Errorf("%w: found %q at index %d", ErrAlphabet, seq[i], i)
		}
	}
	return nil
}

// ReadSeq reads a dna sequence from a file. The file may contain line
// breaks anywhere in the sequence. They are dropped.
func ReadSeq(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read sequence file: %w", err)
	}

	seq := make([]byte, 0, len(data))
	for _, b := range data {
		if b == '\n' || b == '\r' {
			continue
		}
		seq = append(seq, b)
	}

	if err := Validate(string(seq)); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return string(seq), nil
}
