package dnamatch

import (
	"fmt"

	"github.com/Giorgos-Arg/dna-pattern-matching/config"
)

// hasher digests fixed-length windows of a sequence as base^k polynomials
// of their character codes, reduced modulo mod after every step.
type hasher struct {
	base, mod uint64

	// lead is base^(windowLength-1) % mod, the weight of the leading
	// character. Kept so roll can subtract the outgoing character's
	// contribution in constant time.
	lead uint64
}

// newHasher builds a hasher for windows of windowLength characters.
// The leading power is accumulated with modular multiplications, never
// floating point.
func newHasher(base, mod uint64, windowLength int) hasher {
	lead := uint64(1) % mod
	for i := 1; i < windowLength; i++ {
		lead = lead * base % mod
	}
	return hasher{base: base, mod: mod, lead: lead}
}

// hash digests a full window.
func (h hasher) hash(window string) uint64 {
	var value uint64
	for i := 0; i < len(window); i++ {
		value = (value*h.base + uint64(window[i])) % h.mod
	}
	return value
}

// roll slides a window's hash one character to the right: the outgoing
// character's contribution is removed, every remaining character gains one
// power of the base, and the entering character is added. Constant time
// regardless of the window length.
func (h hasher) roll(prev uint64, out, in byte) uint64 {
	prev = (prev + h.mod - uint64(out)*h.lead%h.mod) % h.mod
	return (prev*h.base + uint64(in)) % h.mod
}

// RabinKarp counts how many times pattern occurs as a contiguous substring
// of seq. It returns the same count as BruteForce for every input but only
// compares characters when the pattern's hash matches the current window's.
// Equal hashes nominate a candidate, they never count as a match on their
// own: collisions are rejected by a full character comparison.
func RabinKarp(seq, pattern string, conf *config.Config) (int, error) {
	if len(pattern) == 0 {
		return 0, ErrEmptyPattern
	}
	if len(pattern) > len(seq) {
		return 0, nil
	}

	base, mod := conf.Hash.Base, conf.Hash.Modulus
	if base < 2 || base >= 1<<31 {
		return 0, fmt.Errorf("rolling hash base %d out of range [2, 2^31)", base)
	}
	if mod == 0 || mod >= 1<<32 {
		return 0, fmt.Errorf("rolling hash modulus %d out of range [1, 2^32)", mod)
	}

	h := newHasher(base, mod, len(pattern))
	patternHash := h.hash(pattern)
	windowHash := h.hash(seq[:len(pattern)])

	occurrences := 0
	last := len(seq) - len(pattern)
	for i := 0; i <= last; i++ {
		if windowHash == patternHash && seq[i:i+len(pattern)] == pattern {
			occurrences++
		}
		// the entering character sits one past the current window, so
		// there is nothing to roll in once the window touches the end
		if i < last {
			windowHash = h.roll(windowHash, seq[i], seq[i+len(pattern)])
		}
	}

	return occurrences, nil
}
