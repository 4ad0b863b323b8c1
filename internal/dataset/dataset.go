// SPDX-License-Identifier: MIT

// Package dataset reads and writes numeric CSV tables for the lvpca CLI.
//
// A table is one sample per record and one feature per field. The first
// record is treated as a header when any of its fields fails to parse as a
// number. Blank lines and lines starting with '#' are skipped.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpca/matrix"
)

var (
	// ErrEmpty is returned when a CSV source holds no data records.
	ErrEmpty = errors.New("dataset: no data rows")

	// ErrParse is returned when a data field is not a number.
	ErrParse = errors.New("dataset: field is not a number")
)

// Table is a parsed CSV: an optional header plus the numeric samples.
type Table struct {
	Header []string // nil when the source had no header row
	Data   *matrix.Dense
}

// ReadCSV parses r into a Table.
//
// Errors:
//   - ErrEmpty when no data records remain after the header.
//   - ErrParse (with line and column) for non-numeric data fields.
//   - matrix.ErrRaggedRows when records differ in width.
//   - matrix.ErrNaNInf for NaN or ±Inf values.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	var header []string
	if !numericRecord(records[0]) {
		header = trimAll(records[0])
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	width := len(records[0])
	if header != nil && len(header) != width {
		return nil, fmt.Errorf("dataset: header has %d fields, data has %d: %w", len(header), width, matrix.ErrRaggedRows)
	}
	rows := make([][]float64, len(records))
	for i, rec := range records {
		if len(rec) != width {
			return nil, fmt.Errorf("dataset: record %d has %d fields, want %d: %w", i+1, len(rec), width, matrix.ErrRaggedRows)
		}
		row := make([]float64, width)
		for j, field := range rec {
			if row[j], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				return nil, fmt.Errorf("dataset: record %d field %d %q: %w", i+1, j+1, field, ErrParse)
			}
		}
		rows[i] = row
	}

	data, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	if err = matrix.ValidateFinite(data); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return &Table{Header: header, Data: data}, nil
}

// ReadFile opens path and parses it with ReadCSV.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// WriteCSV writes m as CSV, preceded by header when it is non-nil.
// Values use the shortest representation that parses back exactly.
func WriteCSV(w io.Writer, header []string, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	if header != nil && len(header) != m.Cols() {
		return fmt.Errorf("dataset: header has %d fields, matrix has %d columns: %w", len(header), m.Cols(), matrix.ErrDimensionMismatch)
	}

	rows, err := matrix.ToRows(m)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	cw := csv.NewWriter(w)
	if header != nil {
		if err = cw.Write(header); err != nil {
			return fmt.Errorf("dataset: write header: %w", err)
		}
	}
	rec := make([]string, m.Cols())
	for i, row := range rows {
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err = cw.Write(rec); err != nil {
			return fmt.Errorf("dataset: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("dataset: flush: %w", err)
	}
	return nil
}

// WriteFile creates path and writes m to it with WriteCSV.
func WriteFile(path string, header []string, m matrix.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dataset: close %s: %w", path, cerr)
		}
	}()

	return WriteCSV(f, header, m)
}

// ComponentHeader names projected columns pc1..pck.
func ComponentHeader(k int) []string {
	h := make([]string, k)
	for i := range h {
		h[i] = "pc" + strconv.Itoa(i+1)
	}
	return h
}

// numericRecord reports whether rec looks like data. Only syntax errors mark
// header text; an out-of-range literal such as 1e400 is a data error.
func numericRecord(rec []string) bool {
	for _, f := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); errors.Is(err, strconv.ErrSyntax) {
			return false
		}
	}
	return true
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, f := range rec {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
