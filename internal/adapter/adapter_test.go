// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dataset-builder/pkg/types"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name       string
		file       string
		wantOK     bool
		wantFormat types.Format
	}{
		{name: "pdf", file: "paper.pdf", wantOK: true, wantFormat: types.FormatPDF},
		{name: "text", file: "lines.txt", wantOK: true, wantFormat: types.FormatText},
		{name: "csv", file: "pairs.csv", wantOK: true, wantFormat: types.FormatCSV},
		{name: "jsonl", file: "rows.jsonl", wantOK: true, wantFormat: types.FormatJSONL},
		{name: "uppercase extension", file: "LINES.TXT", wantOK: true, wantFormat: types.FormatText},
		{name: "double extension uses last", file: "archive.csv.jsonl", wantOK: true, wantFormat: types.FormatJSONL},
		{name: "unknown extension", file: "notes.md", wantOK: false},
		{name: "json is not jsonl", file: "data.json", wantOK: false},
		{name: "no extension", file: "README", wantOK: false},
		{name: "dotfile", file: ".txt", wantOK: true, wantFormat: types.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := r.Lookup(tt.file)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantFormat, a.Format())
			}
		})
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("LOG", Text{})

	a, ok := r.Lookup("server.log")
	require.True(t, ok)
	assert.Equal(t, types.FormatText, a.Format())
	assert.Equal(t, []string{".csv", ".jsonl", ".log", ".pdf", ".txt"}, r.Extensions())
}
