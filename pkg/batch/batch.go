// Package batch converts many PDF files in one run. Each document is
// converted independently: a document that fails is recorded and the
// rest of the batch continues. Outputs keep submission order and are
// packaged into a timestamped zip archive.
package batch

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pyhub-apps/pdf2xlsx"
)

// Failure records one document that could not be converted.
type Failure struct {
	Name string
	Err  error
}

// Output is one converted workbook, named after its source document.
type Output struct {
	Name string
	Data []byte
}

// Result is the outcome of a batch run. Outputs and Failures together
// cover every submitted path; Outputs preserve submission order.
type Result struct {
	Outputs  []Output
	Failures []Failure
}

// Option configures a batch Converter.
type Option func(*Converter)

// WithParallelism allows up to n documents to convert concurrently.
// Documents are fully independent, and outputs keep submission order
// regardless of completion order. n <= 1 keeps the default sequential
// behavior.
func WithParallelism(n int) Option {
	return func(c *Converter) { c.parallel = n }
}

// WithConvertFunc replaces the per-file conversion function. Used by
// tests; the default is pdf2xlsx.ConvertFile.
func WithConvertFunc(fn func(path string) ([]byte, error)) Option {
	return func(c *Converter) { c.convert = fn }
}

// WithClock replaces the time source used for archive naming.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) { c.now = now }
}

// Converter drives the conversion of a batch of files.
type Converter struct {
	parallel int
	convert  func(path string) ([]byte, error)
	now      func() time.Time
}

// New returns a batch Converter that converts sequentially using the
// full PDF pipeline.
func New(opts ...Option) *Converter {
	c := &Converter{
		parallel: 1,
		convert:  func(path string) ([]byte, error) { return pdf2xlsx.ConvertFile(path) },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run converts every path in submission order. Per-document failures
// are collected, not propagated: the batch itself only fails when it
// cannot run at all (zero inputs).
func (c *Converter) Run(paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("batch: no input files")
	}

	type slot struct {
		data []byte
		err  error
	}
	slots := make([]slot, len(paths))

	if c.parallel > 1 {
		var g errgroup.Group
		g.SetLimit(c.parallel)
		for i, path := range paths {
			g.Go(func() error {
				slots[i].data, slots[i].err = c.convert(path)
				return nil
			})
		}
		// Worker errors are kept per slot, never returned.
		_ = g.Wait()
	} else {
		for i, path := range paths {
			slots[i].data, slots[i].err = c.convert(path)
		}
	}

	res := &Result{}
	for i, path := range paths {
		if slots[i].err != nil {
			res.Failures = append(res.Failures, Failure{Name: filepath.Base(path), Err: slots[i].err})
			continue
		}
		res.Outputs = append(res.Outputs, Output{Name: OutputName(path), Data: slots[i].data})
	}
	return res, nil
}

// WriteArchive writes the successful outputs as a zip archive. An
// all-failed batch still produces a valid (empty) archive; the failure
// report in the Result is how callers surface what went wrong.
func (r *Result) WriteArchive(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, out := range r.Outputs {
		f, err := zw.Create(out.Name)
		if err != nil {
			return fmt.Errorf("batch: archive entry %s: %w", out.Name, err)
		}
		if _, err := f.Write(out.Data); err != nil {
			return fmt.Errorf("batch: archive entry %s: %w", out.Name, err)
		}
	}
	return zw.Close()
}

// ArchiveName returns the timestamped archive file name for this run.
func (c *Converter) ArchiveName() string {
	return fmt.Sprintf("converted_excels_%s.zip", c.now().Format("20060102_150405"))
}

// OutputName maps a source document path to its workbook file name,
// replacing the extension with .xlsx.
func OutputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".xlsx"
}
