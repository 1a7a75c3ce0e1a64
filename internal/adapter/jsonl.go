// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/pdiddy/dataset-builder/pkg/types"
)

var errNotObject = errors.New("line is not a JSON object")

// JSONL parses each line as a JSON object and passes it through unchanged.
// Blank lines are skipped.
type JSONL struct{}

func (JSONL) Format() types.Format { return types.FormatJSONL }

func (j JSONL) Extract(path string, data []byte) ([]types.Record, error) {
	var records []types.Record
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if !utf8.Valid(line) {
			return nil, &ParseError{Path: path, Line: i + 1, Err: errInvalidUTF8}
		}
		if !json.Valid(line) {
			// Unmarshal again only to surface the decoder's message.
			var v any
			err := json.Unmarshal(line, &v)
			return nil, &ParseError{Path: path, Line: i + 1, Err: err}
		}
		if line[0] != '{' {
			return nil, &ParseError{Path: path, Line: i + 1, Err: errNotObject}
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, line); err != nil {
			return nil, &ParseError{Path: path, Line: i + 1, Err: err}
		}
		records = append(records, types.Record{
			Source: path,
			Format: j.Format(),
			Body:   json.RawMessage(compact.Bytes()),
		})
	}
	return records, nil
}
