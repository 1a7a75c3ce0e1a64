// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset flattens a directory of heterogeneous input files into a
// single JSONL dataset. The Builder lists the directory, dispatches each
// file to the adapter registered for its extension, and accumulates the
// records in listing order. Unrecognized files are skipped silently; any
// adapter or I/O failure aborts the run before anything is written.
package dataset

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/dataset-builder/internal/adapter"
	"github.com/pdiddy/dataset-builder/internal/catalog"
	"github.com/pdiddy/dataset-builder/internal/storage"
	"github.com/pdiddy/dataset-builder/pkg/types"
)

// Source describes one input file that produced records.
type Source struct {
	Name     string       `json:"name" yaml:"name"`
	Location string       `json:"location" yaml:"location"`
	Format   types.Format `json:"format" yaml:"format"`
	Records  int          `json:"records" yaml:"records"`
	Size     int          `json:"size" yaml:"size"`
	Digest   string       `json:"digest" yaml:"digest"`
}

// Result holds the dataset collected from one input directory.
type Result struct {
	Dataset types.Dataset
	Sources []Source
	Skipped []string
}

// Summary returns the per-run counts for r.
func (r *Result) Summary() Summary {
	return Summary{
		Read:     len(r.Sources),
		Skipped:  len(r.Skipped),
		Records:  len(r.Dataset),
		ByFormat: r.Dataset.CountByFormat(),
	}
}

// Summary holds the outcome counts of a build.
type Summary struct {
	Read     int
	Skipped  int
	Records  int
	ByFormat map[types.Format]int
}

// Total returns the number of directory entries considered.
func (s Summary) Total() int {
	return s.Read + s.Skipped
}

// Builder runs the extraction pipeline against a storage service.
type Builder struct {
	store    storage.Service
	registry *adapter.Registry
	log      io.Writer
}

// NewBuilder creates a Builder that reads and writes through store and
// dispatches files through registry. Per-file status lines go to log.
func NewBuilder(store storage.Service, registry *adapter.Registry, log io.Writer) *Builder {
	if log == nil {
		log = io.Discard
	}
	return &Builder{store: store, registry: registry, log: log}
}

// Collect extracts records from every recognized file directly under
// inputDir. Files are processed one at a time in name order; each is read in
// full before its adapter runs.
func (b *Builder) Collect(ctx context.Context, inputDir string) (*Result, error) {
	objects, err := b.store.List(ctx, inputDir)
	if err != nil {
		return nil, err
	}

	result := &Result{Dataset: types.Dataset{}}
	for _, object := range objects {
		name := object.Name()
		a, ok := b.registry.Lookup(name)
		if !ok {
			result.Skipped = append(result.Skipped, name)
			fmt.Fprintf(b.log, "skipped: %s\n", name)
			continue
		}

		data, err := b.store.Download(ctx, object)
		if err != nil {
			return nil, err
		}

		location := storage.Join(inputDir, name)
		records, err := a.Extract(location, data)
		if err != nil {
			return nil, err
		}

		digest, err := Digest(data)
		if err != nil {
			return nil, fmt.Errorf("hashing %s: %w", location, err)
		}

		result.Dataset = append(result.Dataset, records...)
		result.Sources = append(result.Sources, Source{
			Name:     name,
			Location: location,
			Format:   a.Format(),
			Records:  len(records),
			Size:     len(data),
			Digest:   digest,
		})
		fmt.Fprintf(b.log, "read:    %s (%d records)\n", name, len(records))
	}
	return result, nil
}

// Build collects the dataset from cfg.InputDir and writes it to
// cfg.OutputFile, replacing any previous content. The manifest and SQLite
// catalog are written only when configured. Nothing is written if
// collection fails.
func (b *Builder) Build(ctx context.Context, cfg types.BuildConfig) (*Result, error) {
	cfg = cfg.WithDefaults()
	if cfg.SQLiteFile != "" {
		if _, err := catalog.LocalPath(cfg.SQLiteFile); err != nil {
			return nil, err
		}
	}

	result, err := b.Collect(ctx, cfg.InputDir)
	if err != nil {
		return nil, err
	}

	if err := WriteJSONL(ctx, b.store, cfg.OutputFile, result.Dataset); err != nil {
		return nil, err
	}
	fmt.Fprintf(b.log, "wrote:   %s (%d records)\n", cfg.OutputFile, len(result.Dataset))

	if cfg.ManifestFile != "" {
		m := NewManifest(cfg, result)
		if err := WriteManifest(ctx, b.store, cfg.ManifestFile, m); err != nil {
			return nil, err
		}
		fmt.Fprintf(b.log, "wrote:   %s (manifest)\n", cfg.ManifestFile)
	}

	if cfg.SQLiteFile != "" {
		if err := catalog.Save(ctx, cfg.SQLiteFile, result.Dataset); err != nil {
			return nil, err
		}
		fmt.Fprintf(b.log, "wrote:   %s (catalog)\n", cfg.SQLiteFile)
	}

	s := result.Summary()
	fmt.Fprintf(b.log, "\nBuild summary: %d records from %d files, %d skipped (total: %d)\n",
		s.Records, s.Read, s.Skipped, s.Total())
	return result, nil
}
