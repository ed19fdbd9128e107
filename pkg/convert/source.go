// Package convert turns the pages of one PDF document into an ordered
// list of named spreadsheet sheets: one sheet per detected table, a
// "Text" fallback sheet when the whole document yields no tables, and
// an "Info" sheet listing pages that look scanned.
//
// The package does not parse PDFs itself. It consumes a DocumentSource,
// a narrow contract over a PDF extraction backend, so the pipeline can
// be driven by any extractor (or by fakes in tests).
package convert

// PageSource exposes the per-page extraction capabilities the converter
// needs from a PDF backend. Every accessor that touches the underlying
// parser signals failure explicitly; the converter recovers from all of
// them locally and never aborts a document because one page misbehaved.
type PageSource interface {
	// Number returns the 1-based page number.
	Number() int

	// FindTables runs the backend's primary table detection and
	// returns the raw (possibly ragged) rows of each table found.
	FindTables() ([][][]string, error)

	// ExtractTables is the secondary detection mode, tried when
	// FindTables fails.
	ExtractTables() ([][][]string, error)

	// ExtractText returns the plain text of the page.
	ExtractText() (string, error)

	// ExtractWords returns the extractable words of the page.
	ExtractWords() ([]string, error)

	// ImageCount returns the number of embedded raster images.
	ImageCount() (int, error)
}

// DocumentSource is an opened PDF document ready for conversion.
type DocumentSource interface {
	// Pages returns the document's pages in page order.
	Pages() []PageSource

	// Close releases the underlying parser resources.
	Close() error
}

// extractPageTables tries the detection modes in order and returns the
// raw tables of the first mode that succeeds. When both fail the page
// simply contributes no tables; the error is not propagated.
func extractPageTables(p PageSource) [][][]string {
	modes := []func() ([][][]string, error){p.FindTables, p.ExtractTables}
	for _, extract := range modes {
		tables, err := extract()
		if err == nil {
			return tables
		}
	}
	return nil
}
