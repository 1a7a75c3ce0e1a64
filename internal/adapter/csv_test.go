// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adapter

import (
	"encoding/csv"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dataset-builder/pkg/types"
)

func TestCSVExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []types.Pair
	}{
		{
			name:  "both columns",
			input: "prompt,response\nWhat is Go?,A language\nWho?,Gophers\n",
			want: []types.Pair{
				{Prompt: "What is Go?", Response: "A language"},
				{Prompt: "Who?", Response: "Gophers"},
			},
		},
		{
			name:  "missing response column",
			input: "prompt,notes\nhello,ignored\n",
			want:  []types.Pair{{Prompt: "hello", Response: types.DefaultResponse}},
		},
		{
			name:  "missing prompt column",
			input: "response\nanswer\n",
			want:  []types.Pair{{Prompt: types.DefaultPrompt, Response: "answer"}},
		},
		{
			name:  "columns in any order",
			input: "id,response,prompt\n1,r1,p1\n",
			want:  []types.Pair{{Prompt: "p1", Response: "r1"}},
		},
		{
			name:  "empty cell takes default",
			input: "prompt,response\nq,\n",
			want:  []types.Pair{{Prompt: "q", Response: types.DefaultResponse}},
		},
		{
			name:  "quoted fields with commas and newlines",
			input: "prompt,response\n\"a, b\",\"line1\nline2\"\n",
			want:  []types.Pair{{Prompt: "a, b", Response: "line1\nline2"}},
		},
		{
			name:  "byte order mark on header",
			input: "\ufeffprompt,response\nx,y\n",
			want:  []types.Pair{{Prompt: "x", Response: "y"}},
		},
		{
			name:  "header only",
			input: "prompt,response\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := CSV{}.Extract("pairs.csv", []byte(tt.input))
			require.NoError(t, err)
			require.Len(t, records, len(tt.want))
			for i, rec := range records {
				assert.Equal(t, types.FormatCSV, rec.Format)
				assert.Equal(t, tt.want[i], rec.Body)
			}
		})
	}
}

func TestCSVExtract_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantErr  error
	}{
		{name: "empty file", input: "", wantLine: 1, wantErr: errMissingHeader},
		{name: "extra field", input: "prompt,response\na,b\nc,d,e\n", wantLine: 3, wantErr: csv.ErrFieldCount},
		{name: "bare quote", input: "prompt,response\na \"b\" c,d\n", wantLine: 2, wantErr: csv.ErrBareQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CSV{}.Extract("bad.csv", []byte(tt.input))
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "want ParseError, got %T", err)
			assert.Equal(t, "bad.csv", perr.Path)
			assert.Equal(t, tt.wantLine, perr.Line)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
