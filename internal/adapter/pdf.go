// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adapter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/dataset-builder/pkg/types"
)

// PDF emits a single record per file holding the trimmed text of every
// page. Pages without extractable text carry types.EmptyPageContent. Only
// the embedded text layer is read; scanned pages come out empty.
type PDF struct{}

func (PDF) Format() types.Format { return types.FormatPDF }

func (p PDF) Extract(path string, data []byte) (records []types.Record, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			records, err = nil, fmt.Errorf("reading PDF %s: %v", path, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}

	numPages := r.NumPage()
	doc := types.PDFDocument{File: path, Pages: make([]types.PDFPage, 0, numPages)}

	for i := 1; i <= numPages; i++ {
		text, err := pageText(r.Page(i))
		if err != nil {
			return nil, fmt.Errorf("reading PDF %s page %d: %w", path, i, err)
		}
		if text == "" {
			text = types.EmptyPageContent
		}
		doc.Pages = append(doc.Pages, types.PDFPage{Page: i - 1, Content: text})
	}

	return []types.Record{{Source: path, Format: p.Format(), Body: doc}}, nil
}

// pageText returns the trimmed plain text of page. Font resource names are
// local to a page, so each page resolves its own fonts.
func pageText(page pdf.Page) (string, error) {
	if page.V.IsNull() || page.V.Key("Contents").IsNull() {
		return "", nil
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
