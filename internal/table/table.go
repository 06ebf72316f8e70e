// Package table reads and writes flat CSV tables whose first row is a header
// naming the columns. Tables are always read whole; writes either replace the
// whole file or append complete rows.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// TimeLayout is the on-disk timestamp format of every table.
const TimeLayout = "2006-01-02 15:04:05"

var (
	// ErrMissingColumn indicates that the header lacks a declared column.
	ErrMissingColumn = errors.New("missing column")
	// ErrMissingField indicates that a row is shorter than the header.
	ErrMissingField = errors.New("missing field")
	// ErrEmptyTable indicates that the file has no header row.
	ErrEmptyTable = errors.New("table has no header")
)

// Schema declares a table: its file name and ordered columns.
type Schema struct {
	Name    string
	File    string
	Columns []string
}

// ParseError reports a row or header that does not fit its schema.
type ParseError struct {
	Table  string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: line %d: %v", e.Table, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: line %d: column %q: %v", e.Table, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Record is one data row, addressed by column name.
type Record struct {
	table  string
	line   int
	index  map[string]int
	fields []string
}

// Line returns the 1-based line number of the record in its file.
func (r Record) Line() int {
	return r.line
}

// Get returns the raw text of column.
func (r Record) Get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Int parses column as a base-10 integer.
func (r Record) Int(column string) (int, error) {
	v, err := strconv.Atoi(r.Get(column))
	if err != nil {
		return 0, &ParseError{Table: r.table, Line: r.line, Column: column, Err: err}
	}
	return v, nil
}

// Time parses column with TimeLayout in local time.
func (r Record) Time(column string) (time.Time, error) {
	v, err := ParseTime(r.Get(column))
	if err != nil {
		return time.Time{}, &ParseError{Table: r.table, Line: r.line, Column: column, Err: err}
	}
	return v, nil
}

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses s in TimeLayout as local time.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}

// Create writes header and seed rows to path unless the file already exists.
// It reports whether the file was created.
func Create(path string, schema Schema, seed [][]string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create %s table: %w", schema.Name, err)
	}

	if err := writeRows(f, schema.Columns, seed); err != nil {
		f.Close()
		return false, fmt.Errorf("failed to write %s table: %w", schema.Name, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close %s table: %w", schema.Name, err)
	}
	return true, nil
}

// ReadAll reads every data row of the table at path. Columns are located by
// header name, so extra or reordered columns are tolerated.
func ReadAll(path string, schema Schema) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s table: %w", schema.Name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Table: schema.Name, Line: 1, Err: ErrEmptyTable}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", schema.Name, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, column := range schema.Columns {
		if _, ok := index[column]; !ok {
			return nil, &ParseError{Table: schema.Name, Line: 1, Column: column, Err: ErrMissingColumn}
		}
	}

	var records []Record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s table: %w", schema.Name, err)
		}

		line, _ := reader.FieldPos(0)
		for _, column := range schema.Columns {
			if index[column] >= len(fields) {
				return nil, &ParseError{Table: schema.Name, Line: line, Column: column, Err: ErrMissingField}
			}
		}

		records = append(records, Record{
			table:  schema.Name,
			line:   line,
			index:  index,
			fields: fields,
		})
	}

	return records, nil
}

// Overwrite replaces the table at path with header and rows. The new content
// is written to a temporary file in the same directory and renamed into place.
func Overwrite(path string, schema Schema, rows [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to stage %s table: %w", schema.Name, err)
	}
	tmpName := tmp.Name()

	if err := writeRows(tmp, schema.Columns, rows); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s table: %w", schema.Name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s table: %w", schema.Name, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod %s table: %w", schema.Name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s table: %w", schema.Name, err)
	}
	return nil
}

// Append adds rows to the end of an existing table. The file must exist.
func Append(path string, schema Schema, rows ...[]string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s table: %w", schema.Name, err)
	}

	if err := writeRows(f, nil, rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s table: %w", schema.Name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s table: %w", schema.Name, err)
	}
	return nil
}

func writeRows(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if header != nil {
		if err := writer.Write(header); err != nil {
			return err
		}
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
