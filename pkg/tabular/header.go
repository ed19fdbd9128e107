package tabular

import (
	"strconv"
	"strings"
)

// DefaultHeaderNumericRatio is the fraction of numeric cells the data
// body must exceed before the first row is accepted as a header. A body
// with few numeric cells usually means narrative text was misdetected
// as a table, in which case no header should be assumed.
const DefaultHeaderNumericRatio = 0.15

// InferHeaderRow reports whether the first row of a normalized grid
// should be used as column labels. It only ever nominates row 0; the
// index return leaves room for multi-row headers later.
//
// Row 0 qualifies when none of its cells parse as numbers and the
// non-empty cells of the remaining rows are numeric in a fraction
// greater than numericRatio.
func InferHeaderRow(grid [][]string, numericRatio float64) (int, bool) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, false
	}
	for _, cell := range grid[0] {
		if isNumeric(cell) {
			return 0, false
		}
	}

	pool, numeric := 0, 0
	for _, row := range grid[1:] {
		for _, cell := range row {
			if cell == "" {
				continue
			}
			pool++
			if isNumeric(cell) {
				numeric++
			}
		}
	}
	ratio := 0.0
	if pool > 0 {
		ratio = float64(numeric) / float64(pool)
	}
	return 0, ratio > numericRatio
}

// isNumeric tolerates comma thousands separators ("1,234.5") and
// surrounding whitespace. Empty cells are not numeric.
func isNumeric(cell string) bool {
	s := strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
