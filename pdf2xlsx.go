// Package pdf2xlsx converts PDF documents into xlsx workbooks. Tables
// detected on each page become sheets named p{page}_tbl{n}; a document
// without any tables gets a page-wise "Text" sheet instead, and pages
// that look scanned (image-only) are listed on an "Info" sheet.
package pdf2xlsx

import (
	"path/filepath"

	"github.com/pyhub-apps/pdf2xlsx/pkg/convert"
	"github.com/pyhub-apps/pdf2xlsx/pkg/pdfsource"
	"github.com/pyhub-apps/pdf2xlsx/pkg/workbook"
)

// Re-export the core types for callers that only need the facade.
type (
	Sheet                   = convert.Sheet
	Result                  = convert.Result
	Option                  = convert.Option
	PageSource              = convert.PageSource
	DocumentSource          = convert.DocumentSource
	DocumentUnreadableError = convert.DocumentUnreadableError
)

// Re-export converter options.
var (
	WithHeaderNumericRatio = convert.WithHeaderNumericRatio
	WithMinTableCells      = convert.WithMinTableCells
)

// Convert runs the conversion pipeline over an already opened document
// source.
func Convert(doc convert.DocumentSource, opts ...convert.Option) *convert.Result {
	return convert.NewConverter(opts...).Convert(doc)
}

// ConvertFile converts a single PDF file into xlsx workbook bytes.
// A file that cannot be opened or parsed at all fails with a
// *DocumentUnreadableError; individual broken pages inside a readable
// file never fail the document.
func ConvertFile(path string, opts ...convert.Option) ([]byte, error) {
	doc, err := pdfsource.Open(path)
	if err != nil {
		return nil, &convert.DocumentUnreadableError{Name: filepath.Base(path), Err: err}
	}
	defer doc.Close()

	return workbook.Bytes(Convert(doc, opts...).Sheets)
}
