//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCSV loads a table from a UTF-8 comma-delimited file. The first row
// is the header. Rows shorter than the header are padded with empty
// cells, longer rows are truncated. Any I/O or parse failure is returned
// as an error; this function never panics past its boundary.
func ReadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Column-count mismatches are handled here by pad/truncate.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read %s: empty file, no header row", path)
		}
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	t := New(header...)
	rowNum := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("read %s row %d: %w", path, rowNum, err)
		}
		row := make([]string, len(header))
		for i := range header {
			if i < len(record) {
				row[i] = record[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// WriteCSV saves the table as UTF-8 comma-delimited text, header first,
// no row-index column, overwriting any existing file.
func WriteCSV(t *Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Columns); err != nil {
		file.Close()
		return fmt.Errorf("write %s header: %w", path, err)
	}
	for i, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			file.Close()
			return fmt.Errorf("write %s row %d: %w", path, i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return file.Close()
}
