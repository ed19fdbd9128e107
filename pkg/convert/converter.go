package convert

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pyhub-apps/pdf2xlsx/pkg/tabular"
)

// DefaultMinTableCells is the minimum number of cells a normalized grid
// must have to count as a table. Anything smaller (an empty grid, or a
// single row with at most one column) is discarded as noise.
const DefaultMinTableCells = 2

const (
	textSheetName = "Text"
	infoSheetName = "Info"

	scannedPagesNote = "Some pages appear scanned (image-only). OCR recommended."
	noContentText    = "No extractable content found."
)

// Sheet is one named tabular unit of the output workbook. A nil Columns
// slice means the sheet is unlabeled and its columns are positional,
// indexed from 0.
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Labeled reports whether the sheet carries column labels.
func (s Sheet) Labeled() bool { return s.Columns != nil }

// Result is the conversion outcome for one document. Sheets is never
// empty: a document without any extractable tables gets a Text sheet,
// even if that sheet only holds a placeholder row.
type Result struct {
	Sheets       []Sheet
	TableCount   int
	ScannedPages []int
}

// Option configures a Converter.
type Option func(*Converter)

// WithHeaderNumericRatio overrides the numeric-ratio threshold used by
// header inference.
func WithHeaderNumericRatio(ratio float64) Option {
	return func(c *Converter) { c.headerNumericRatio = ratio }
}

// WithMinTableCells overrides the cell count below which a normalized
// grid is discarded as noise.
func WithMinTableCells(cells int) Option {
	return func(c *Converter) { c.minTableCells = cells }
}

// Converter runs the per-document conversion pipeline. It holds no
// state across documents; each Convert call scopes its own sheet name
// registry and accumulators.
type Converter struct {
	headerNumericRatio float64
	minTableCells      int
}

// NewConverter returns a Converter with the default heuristics.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		headerNumericRatio: tabular.DefaultHeaderNumericRatio,
		minTableCells:      DefaultMinTableCells,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert processes the document's pages in order and returns the
// ordered sheets: tables in page/ordinal order, then a Text sheet when
// the whole document produced no tables, then an Info sheet when any
// page looks scanned. Extraction failures on individual pages are
// recovered locally and never abort the document.
func (c *Converter) Convert(doc DocumentSource) *Result {
	res := &Result{}
	used := make(map[string]struct{})
	var textRows [][]string

	for _, page := range doc.Pages() {
		tablesOnPage := 0
		for _, raw := range extractPageTables(page) {
			grid := tabular.Normalize(raw)
			if cellCount(grid) < c.minTableCells {
				continue
			}

			sheet := Sheet{}
			if idx, ok := tabular.InferHeaderRow(grid, c.headerNumericRatio); ok {
				sheet.Columns = grid[idx]
				sheet.Rows = grid[idx+1:]
			} else {
				sheet.Rows = grid
			}

			tablesOnPage++
			name := UniqueSheetName(fmt.Sprintf("p%d_tbl%d", page.Number(), tablesOnPage), used)
			used[name] = struct{}{}
			sheet.Name = name

			res.Sheets = append(res.Sheets, sheet)
			res.TableCount++
		}

		if tablesOnPage == 0 {
			text, err := page.ExtractText()
			if err != nil {
				text = ""
			}
			for _, line := range strings.Split(text, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					textRows = append(textRows, []string{strconv.Itoa(page.Number()), line})
				}
			}
			if LikelyScanned(page) {
				res.ScannedPages = append(res.ScannedPages, page.Number())
			}
		}
	}

	if res.TableCount == 0 {
		rows := textRows
		if len(rows) == 0 {
			rows = [][]string{{"", noContentText}}
		}
		name := UniqueSheetName(textSheetName, used)
		used[name] = struct{}{}
		res.Sheets = append(res.Sheets, Sheet{
			Name:    name,
			Columns: []string{"Page", "Text"},
			Rows:    rows,
		})
	}

	if len(res.ScannedPages) > 0 {
		pages := append([]int(nil), res.ScannedPages...)
		sort.Ints(pages)
		joined := make([]string, len(pages))
		for i, p := range pages {
			joined[i] = strconv.Itoa(p)
		}
		name := UniqueSheetName(infoSheetName, used)
		used[name] = struct{}{}
		res.Sheets = append(res.Sheets, Sheet{
			Name:    name,
			Columns: []string{"Note", "Pages"},
			Rows:    [][]string{{scannedPagesNote, strings.Join(joined, ", ")}},
		})
	}

	return res
}

func cellCount(grid [][]string) int {
	if len(grid) == 0 {
		return 0
	}
	return len(grid) * len(grid[0])
}
