package dnamatch

import (
	"errors"
	"fmt"
	"math"

	"github.com/Giorgos-Arg/dna-pattern-matching/config"
)

// ErrEmptySequence is returned when a distance is requested for an empty
// sequence: 1 - lcss/min(lenA, lenB) is undefined when the shorter
// sequence has no characters.
var ErrEmptySequence = errors.New("cannot compute a distance involving an empty dna sequence")

// ErrTableTooLarge is returned when the full similarity table cannot be
// sized without overflowing.
var ErrTableTooLarge = errors.New("similarity table too large to allocate")

// grid is a bounds-checked two-dimensional table of non-negative counts
// backed by one contiguous buffer, addressed with a row stride.
type grid struct {
	rows, cols int
	cells      []int
}

// newGrid allocates a zeroed rows x cols grid, checking that the cell
// count itself does not overflow before allocating.
func newGrid(rows, cols int) (*grid, error) {
	if rows < 1 || cols < 1 || rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %d x %d cells", ErrTableTooLarge, rows, cols)
	}
	return &grid{rows: rows, cols: cols, cells: make([]int, rows*cols)}, nil
}

func (g *grid) at(i, j int) int {
	return g.cells[i*g.cols+j]
}

func (g *grid) set(i, j, v int) {
	g.cells[i*g.cols+j] = v
}

// Lcss returns the length of the longest common subsequence of a and b.
// A subsequence preserves character order but need not be contiguous.
//
// The full (lenA+1)x(lenB+1) table costs quadratic space. When it would
// exceed the configured cell budget the two-row fill is used instead, which
// produces the same length in O(min(lenA, lenB)) space.
func Lcss(a, b string, conf *config.Config) (int, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil
	}

	rows, cols := len(a)+1, len(b)+1
	if rows > conf.Lcss.MaxTableCells/cols {
		return lcssRolling(a, b), nil
	}

	return lcssTable(a, b)
}

// lcssTable fills the full table. Cell (i,j) holds the LCSS length of the
// first i characters of a and the first j characters of b; row 0 and
// column 0 stay at zero.
func lcssTable(a, b string) (int, error) {
	table, err := newGrid(len(a)+1, len(b)+1)
	if err != nil {
		return 0, err
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				table.set(i, j, table.at(i-1, j-1)+1)
			} else {
				table.set(i, j, max(table.at(i, j-1), table.at(i-1, j)))
			}
		}
	}

	return table.at(len(a), len(b)), nil
}

// lcssRolling computes the same length keeping only the current and
// previous table rows, sized by the shorter sequence.
func lcssRolling(a, b string) int {
	if len(b) > len(a) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(curr[j-1], prev[j])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// Distance converts an LCSS length into a normalized distance in [0, 1]:
// 0 when the shorter sequence is a subsequence of the longer, 1 when the
// two share no characters at all.
func Distance(lcssLength, lenA, lenB int) (float64, error) {
	shorter := min(lenA, lenB)
	if shorter == 0 {
		return 0, ErrEmptySequence
	}
	return 1 - float64(lcssLength)/float64(shorter), nil
}
