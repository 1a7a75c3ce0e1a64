// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdiddy/dataset-builder/internal/storage"
	"github.com/pdiddy/dataset-builder/pkg/types"
)

// EncodeJSONL serializes d as newline-delimited JSON, one record per line.
// An empty dataset encodes to no bytes.
func EncodeJSONL(d types.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	for i, r := range d {
		line, err := r.JSON()
		if err != nil {
			return nil, fmt.Errorf("encoding record %d from %s: %w", i, r.Source, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// WriteJSONL encodes d and replaces the object at location with it. The
// previous content is never appended to.
func WriteJSONL(ctx context.Context, store storage.Service, location string, d types.Dataset) error {
	data, err := EncodeJSONL(d)
	if err != nil {
		return err
	}
	return store.Upload(ctx, location, data)
}
