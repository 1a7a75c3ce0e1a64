// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package adapter implements the per-format extraction rules that turn one
// input file into dataset records. Each adapter is a thin pass-through of
// its parser's output into the shapes defined in pkg/types.
package adapter

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/dataset-builder/pkg/types"
)

// Adapter extracts records from the full contents of one file. Different
// formats (PDF, text, CSV, JSONL) implement this interface.
type Adapter interface {
	// Format names the records this adapter produces.
	Format() types.Format

	// Extract parses data read from path and returns its records in file
	// order. Any parse failure is returned unrecovered.
	Extract(path string, data []byte) ([]types.Record, error)
}

// Registry maps file extensions to adapters.
type Registry struct {
	byExt map[string]Adapter
}

// NewRegistry returns a registry with the four built-in adapters.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]Adapter)}
	r.Register(".pdf", PDF{})
	r.Register(".txt", Text{})
	r.Register(".csv", CSV{})
	r.Register(".jsonl", JSONL{})
	return r
}

// Register binds ext (with or without the leading dot) to a, replacing any
// previous binding.
func (r *Registry) Register(ext string, a Adapter) {
	r.byExt[normalizeExt(ext)] = a
}

// Lookup returns the adapter for the extension of name. Matching is
// case-insensitive. The second result is false for unrecognized extensions.
func (r *Registry) Lookup(name string) (Adapter, bool) {
	ext := filepath.Ext(name)
	if ext == "" {
		return nil, false
	}
	a, ok := r.byExt[strings.ToLower(ext)]
	return a, ok
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
