// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data shapes shared by the dataset-builder stages:
// records, the dataset they accumulate into, and run configuration.
package types

import (
	"bytes"
	"encoding/json"
)

// Format identifies the adapter that produced a record.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatText  Format = "text"
	FormatCSV   Format = "csv"
	FormatJSONL Format = "jsonl"
)

const (
	// DefaultPrompt fills a missing prompt column in CSV input.
	DefaultPrompt = "No prompt"

	// DefaultResponse fills a missing response column in CSV input.
	DefaultResponse = "No response"

	// PlaceholderResponse is the response attached to every text line.
	PlaceholderResponse = "Your response here"

	// EmptyPageContent marks a PDF page without extractable text.
	EmptyPageContent = "No content"
)

// Pair is a prompt/response record produced by the text and CSV adapters.
type Pair struct {
	Prompt   string `json:"prompt" yaml:"prompt"`
	Response string `json:"response" yaml:"response"`
}

// PDFPage holds the extracted text of one page. Page is zero-based.
type PDFPage struct {
	Page    int    `json:"page" yaml:"page"`
	Content string `json:"content" yaml:"content"`
}

// PDFDocument is the single record produced for a PDF file.
type PDFDocument struct {
	File  string    `json:"file" yaml:"file"`
	Pages []PDFPage `json:"pages" yaml:"pages"`
}

// Record is one unit of extracted data destined for the output dataset.
// Source and Format describe provenance and are never serialized into the
// dataset line; only Body is.
type Record struct {
	// Source is the location of the file the record came from.
	Source string

	// Format is the adapter that produced the record.
	Format Format

	// Body is the JSON-serializable payload: a Pair, a PDFDocument, or a
	// json.RawMessage passed through from JSONL input.
	Body any
}

// JSON returns the record body as a single line of compact JSON without a
// trailing newline. HTML characters are left unescaped.
func (r Record) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.Body); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Dataset is the ordered sequence of records built during one run.
type Dataset []Record

// CountByFormat returns the number of records per format.
func (d Dataset) CountByFormat() map[Format]int {
	counts := make(map[Format]int)
	for _, r := range d {
		counts[r.Format]++
	}
	return counts
}
