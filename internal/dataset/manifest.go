// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/minio/highwayhash"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dataset-builder/internal/storage"
	"github.com/pdiddy/dataset-builder/pkg/types"
)

var digestKey = []byte("dataset-builder:source-digest:v1")

// Digest returns the hex-encoded 64-bit HighwayHash of data.
func Digest(data []byte) (string, error) {
	h, err := highwayhash.New64(digestKey)
	if err != nil {
		return "", err
	}
	if _, err := h.Write(data); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Manifest is the YAML account of one build: where the records came from
// and which files were passed over.
type Manifest struct {
	Input    string               `yaml:"input"`
	Output   string               `yaml:"output"`
	Records  int                  `yaml:"records"`
	ByFormat map[types.Format]int `yaml:"by_format"`
	Sources  []Source             `yaml:"sources"`
	Skipped  []string             `yaml:"skipped,omitempty"`
}

// NewManifest builds the manifest for result as collected under cfg.
func NewManifest(cfg types.BuildConfig, result *Result) Manifest {
	sources := result.Sources
	if sources == nil {
		sources = []Source{}
	}
	return Manifest{
		Input:    cfg.InputDir,
		Output:   cfg.OutputFile,
		Records:  len(result.Dataset),
		ByFormat: result.Dataset.CountByFormat(),
		Sources:  sources,
		Skipped:  result.Skipped,
	}
}

// WriteManifest marshals m to YAML and replaces the object at location.
func WriteManifest(ctx context.Context, store storage.Service, location string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return store.Upload(ctx, location, data)
}
