// Package tabular cleans raw table data extracted from PDF pages into
// rectangular grids and decides whether a grid starts with a header row.
//
// Cells are plain strings; an empty string is treated the same as a
// missing cell. Raw tables coming out of a PDF extractor are often
// ragged (rows of different lengths) and padded with empty rows and
// columns, so everything in this package works on the cleaned form.
package tabular

// Normalize turns raw extracted rows into a rectangular grid:
//
//   - rows whose cells are all empty are dropped
//   - remaining rows are right-padded to the longest row length
//   - columns that are empty in every row are dropped, preserving the
//     order of the surviving columns
//
// The result may be empty. Normalize never fails and does not modify
// its input.
func Normalize(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}

	var kept [][]string
	for _, row := range rows {
		if !rowEmpty(row) {
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	maxLen := 0
	for _, row := range kept {
		if len(row) > maxLen {
			maxLen = len(row)
		}
	}

	padded := make([][]string, len(kept))
	for i, row := range kept {
		p := make([]string, maxLen)
		copy(p, row)
		padded[i] = p
	}

	var cols []int
	for c := 0; c < maxLen; c++ {
		for _, row := range padded {
			if row[c] != "" {
				cols = append(cols, c)
				break
			}
		}
	}
	if len(cols) == maxLen {
		return padded
	}

	out := make([][]string, len(padded))
	for i, row := range padded {
		projected := make([]string, len(cols))
		for j, c := range cols {
			projected[j] = row[c]
		}
		out[i] = projected
	}
	return out
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
