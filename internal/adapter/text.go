// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adapter

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/dataset-builder/pkg/types"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// Text emits one prompt record per non-empty line, each carrying the
// placeholder response.
type Text struct{}

func (Text) Format() types.Format { return types.FormatText }

func (t Text) Extract(path string, data []byte) ([]types.Record, error) {
	var records []types.Record
	for i, line := range strings.Split(string(data), "\n") {
		if !utf8.ValidString(line) {
			return nil, &ParseError{Path: path, Line: i + 1, Err: errInvalidUTF8}
		}
		prompt := strings.TrimSpace(line)
		if prompt == "" {
			continue
		}
		records = append(records, types.Record{
			Source: path,
			Format: t.Format(),
			Body:   types.Pair{Prompt: prompt, Response: types.PlaceholderResponse},
		})
	}
	return records, nil
}
