// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ReadJSON reads rows from a JSON array of objects. Nested arrays of
// objects become [List] values, so hierarchical data under a
// "children" key is preserved.
func ReadJSON(r io.Reader) ([]Row, error) {
	var ms []map[string]any
	if err := json.NewDecoder(r).Decode(&ms); err != nil {
		return nil, fmt.Errorf("data.ReadJSON: %w", err)
	}
	return RowsOf(ms...), nil
}

// ReadJSONTree reads a single JSON object as the root of
// hierarchical data.
func ReadJSONTree(r io.Reader) (Row, error) {
	var m map[string]any
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("data.ReadJSONTree: %w", err)
	}
	return RowOf(m), nil
}

// ReadCSV reads rows from CSV text whose first record is the header.
// Cells are parsed with [ParseCell].
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data.ReadCSV: %w", err)
	}
	return fromTable(recs), nil
}

// ReadXLSX reads rows from the named sheet of a spreadsheet workbook,
// whose first row is the header. An empty sheet name reads the
// first sheet.
func ReadXLSX(r io.Reader, sheet string) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("data.ReadXLSX: %w", err)
	}
	defer f.Close()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("data.ReadXLSX: workbook has no sheets")
		}
		sheet = sheets[0]
	}
	recs, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("data.ReadXLSX: sheet %q: %w", sheet, err)
	}
	return fromTable(recs), nil
}

// Open reads rows from the named file, choosing the format by its
// extension: .json, .csv, .xlsx. The sheet is only used for workbooks.
func Open(filename, sheet string) ([]Row, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		return ReadJSON(f)
	case ".csv":
		return ReadCSV(f)
	case ".xlsx", ".xlsm":
		return ReadXLSX(f, sheet)
	default:
		return nil, fmt.Errorf("data.Open: unsupported file type %q", ext)
	}
}

func fromTable(recs [][]string) []Row {
	if len(recs) == 0 {
		return nil
	}
	header := recs[0]
	rows := make([]Row, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		r := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(rec) {
				r[key] = ParseCell(rec[i])
			} else {
				r[key] = Value{}
			}
		}
		rows = append(rows, r)
	}
	return rows
}

// ParseCell converts a textual cell into a value: empty cells are
// [Null], then numbers, bools, and RFC 3339 or ISO dates are
// recognized, and anything else is a [String].
func ParseCell(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberValue(f)
	}
	switch strings.ToLower(s) {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly, time.DateTime} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeValue(t)
		}
	}
	return StringValue(s)
}
