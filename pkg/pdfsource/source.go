// Package pdfsource adapts pdfplumber-golang documents to the
// convert.DocumentSource contract.
//
// The backend occasionally panics on malformed content streams, so
// every page accessor recovers panics into errors; the converter then
// treats the page as contributing nothing, which is the behavior the
// pipeline wants for broken pages.
package pdfsource

import (
	"fmt"
	"strings"

	pdfplumber "github.com/pyhub-apps/pdfplumber-golang"
	"github.com/pyhub-apps/pdfplumber-golang/pkg/pdf"

	"github.com/pyhub-apps/pdf2xlsx/pkg/convert"
)

// Document wraps an opened pdfplumber document.
type Document struct {
	doc   pdf.Document
	pages []convert.PageSource
}

// Open opens a PDF file for conversion. pdfplumber tries its parser
// backends in order internally; if none of them can read the file the
// document is unreadable and the error is returned as-is for the
// caller to classify.
func Open(path string) (*Document, error) {
	doc, err := pdfplumber.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	d := &Document{doc: doc}
	for _, p := range doc.GetPages() {
		d.pages = append(d.pages, &page{p: p})
	}
	return d, nil
}

// Pages returns the document's pages in page order.
func (d *Document) Pages() []convert.PageSource { return d.pages }

// Close releases the parser resources.
func (d *Document) Close() error { return d.doc.Close() }

type page struct {
	p pdf.Page
}

// wordExtractor is implemented by all pdfplumber page backends, but is
// not part of the pdf.Page interface itself.
type wordExtractor interface {
	ExtractWords(opts ...pdf.WordExtractionOption) []pdf.Word
}

func (pg *page) Number() int { return pg.p.GetPageNumber() }

// FindTables runs line-based table detection, the mode that matches
// ruled tables most precisely.
func (pg *page) FindTables() (tables [][][]string, err error) {
	defer recoverExtraction(&err, "find tables")
	return pg.tables(pdf.WithTableStrategy("lines", "lines")), nil
}

// ExtractTables runs text-alignment based detection, used as the
// fallback mode for tables without ruling lines.
func (pg *page) ExtractTables() (tables [][][]string, err error) {
	defer recoverExtraction(&err, "extract tables")
	return pg.tables(pdf.WithTableStrategy("text", "text")), nil
}

func (pg *page) tables(opts ...pdf.TableExtractionOption) [][][]string {
	var tables [][][]string
	for _, t := range pg.p.ExtractTables(opts...) {
		tables = append(tables, t.Rows)
	}
	return tables
}

func (pg *page) ExtractText() (text string, err error) {
	defer recoverExtraction(&err, "extract text")
	return pg.p.ExtractText(), nil
}

func (pg *page) ExtractWords() (words []string, err error) {
	defer recoverExtraction(&err, "extract words")
	we, ok := pg.p.(wordExtractor)
	if !ok {
		// Backend without word extraction: approximate from plain text.
		return strings.Fields(pg.p.ExtractText()), nil
	}
	for _, w := range we.ExtractWords() {
		words = append(words, w.Text)
	}
	return words, nil
}

func (pg *page) ImageCount() (n int, err error) {
	defer recoverExtraction(&err, "list images")
	return len(pg.p.GetObjects().Images), nil
}

func recoverExtraction(err *error, op string) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: panic: %v", op, r)
	}
}
