// Package workbook serializes converted sheets into xlsx workbooks
// using excelize. It carries no conversion logic of its own: labeled
// sheets get their column labels as the first row, unlabeled sheets get
// positional indices, and every data cell is written as a string.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/pyhub-apps/pdf2xlsx/pkg/convert"
)

// ErrNoSheets is returned when asked to serialize an empty sheet list.
// The converter guarantees at least one sheet per document, so hitting
// this means the caller skipped conversion.
var ErrNoSheets = errors.New("workbook: no sheets to write")

// File builds an excelize workbook from the sheets, in order. The
// caller owns the returned file and must Close it.
func File(sheets []convert.Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	f := excelize.NewFile()
	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default sheet instead of leaving it behind.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("workbook: rename sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("workbook: add sheet %q: %w", sheet.Name, err)
		}
		if err := writeSheet(f, sheet); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// Bytes serializes the sheets into xlsx bytes.
func Bytes(sheets []convert.Sheet) ([]byte, error) {
	f, err := File(sheets)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("workbook: serialize: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTo serializes the sheets and writes the workbook to w.
func WriteTo(w io.Writer, sheets []convert.Sheet) error {
	data, err := Bytes(sheets)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile serializes the sheets into an xlsx file at path.
func WriteFile(path string, sheets []convert.Sheet) error {
	data, err := Bytes(sheets)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func writeSheet(f *excelize.File, sheet convert.Sheet) error {
	width := len(sheet.Columns)
	for _, row := range sheet.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	header := make([]interface{}, width)
	for c := 0; c < width; c++ {
		if sheet.Labeled() {
			if c < len(sheet.Columns) {
				header[c] = sheet.Columns[c]
			} else {
				header[c] = ""
			}
		} else {
			header[c] = c
		}
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return fmt.Errorf("workbook: sheet %q header: %w", sheet.Name, err)
	}

	for r, row := range sheet.Rows {
		cells := make([]interface{}, len(row))
		for c, v := range row {
			cells[c] = v
		}
		start, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("workbook: sheet %q row %d: %w", sheet.Name, r+2, err)
		}
		if err := f.SetSheetRow(sheet.Name, start, &cells); err != nil {
			return fmt.Errorf("workbook: sheet %q row %d: %w", sheet.Name, r+2, err)
		}
	}
	return nil
}
