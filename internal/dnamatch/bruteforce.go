package dnamatch

import "errors"

// ErrEmptyPattern is returned when an exact matcher is given an empty pattern.
var ErrEmptyPattern = errors.New("the pattern sequence is empty")

// BruteForce counts how many times pattern occurs as a contiguous substring
// of seq by comparing the two character by character at every alignment.
// Overlapping occurrences are all counted. A pattern longer than seq occurs
// zero times.
func BruteForce(seq, pattern string) (int, error) {
	if len(pattern) == 0 {
		return 0, ErrEmptyPattern
	}

	occurrences := 0
	for i := 0; i <= len(seq)-len(pattern); i++ {
		j := 0
		for j < len(pattern) && pattern[j] == seq[i+j] {
			j++
		}
		if j == len(pattern) {
			occurrences++
		}
	}

	return occurrences, nil
}
