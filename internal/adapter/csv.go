// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adapter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/pdiddy/dataset-builder/pkg/types"
)

const (
	columnPrompt   = "prompt"
	columnResponse = "response"
)

var errMissingHeader = errors.New("no header row")

// CSV emits one prompt/response record per data row. The first row is the
// header. Absent columns and empty cells take the default values.
type CSV struct{}

func (CSV) Format() types.Format { return types.FormatCSV }

func (c CSV) Extract(path string, data []byte) ([]types.Record, error) {
	r := csv.NewReader(bytes.NewReader(data))

	header, err := r.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: path, Line: 1, Err: errMissingHeader}
	}
	if err != nil {
		return nil, csvError(path, err)
	}
	promptIdx, responseIdx := columnIndex(header, columnPrompt), columnIndex(header, columnResponse)

	var records []types.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(path, err)
		}
		records = append(records, types.Record{
			Source: path,
			Format: c.Format(),
			Body: types.Pair{
				Prompt:   cell(row, promptIdx, types.DefaultPrompt),
				Response: cell(row, responseIdx, types.DefaultResponse),
			},
		})
	}
	return records, nil
}

// columnIndex returns the position of name in header, or -1.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if h == name {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int, fallback string) string {
	if idx < 0 || idx >= len(row) || row[idx] == "" {
		return fallback
	}
	return row[idx]
}

func csvError(path string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{Path: path, Line: perr.Line, Err: perr.Err}
	}
	return &ParseError{Path: path, Err: err}
}
