// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dataset-builder/pkg/types"
)

func TestEncodeJSONL(t *testing.T) {
	tests := []struct {
		name string
		in   types.Dataset
		want string
	}{
		{name: "empty dataset", in: types.Dataset{}, want: ""},
		{
			name: "one line per record",
			in: types.Dataset{
				{Body: json.RawMessage(`{"a":1}`)},
				{Body: types.Pair{Prompt: "p", Response: "r"}},
			},
			want: `{"a":1}` + "\n" + `{"prompt":"p","response":"r"}` + "\n",
		},
		{
			name: "html and unicode unescaped",
			in:   types.Dataset{{Body: types.Pair{Prompt: "<a> & café", Response: "r"}}},
			want: `{"prompt":"<a> & café","response":"r"}` + "\n",
		},
		{
			name: "pdf with no pages keeps an empty list",
			in:   types.Dataset{{Body: types.PDFDocument{File: "x.pdf", Pages: []types.PDFPage{}}}},
			want: `{"file":"x.pdf","pages":[]}` + "\n",
		},
		{
			name: "embedded newlines stay on one line",
			in:   types.Dataset{{Body: types.Pair{Prompt: "a\nb", Response: "r"}}},
			want: `{"prompt":"a\nb","response":"r"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeJSONL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestEncodeJSONL_Unencodable(t *testing.T) {
	_, err := EncodeJSONL(types.Dataset{{Source: "bad", Body: make(chan int)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding record 0 from bad")
}
