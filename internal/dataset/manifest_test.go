// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dataset-builder/internal/storage"
	"github.com/pdiddy/dataset-builder/pkg/types"
)

func readManifest(t *testing.T, path string) Manifest {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var m Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	return m
}

func TestDigest(t *testing.T) {
	a1, err := Digest([]byte("same content"))
	require.NoError(t, err)
	a2, err := Digest([]byte("same content"))
	require.NoError(t, err)
	b, err := Digest([]byte("other content"))
	require.NoError(t, err)

	assert.Equal(t, a1, a2, "digest is stable")
	assert.NotEqual(t, a1, b)
	assert.Len(t, a1, 16, "64-bit digest is 16 hex characters")
}

func TestWriteManifest(t *testing.T) {
	cfg := types.BuildConfig{InputDir: "input", OutputFile: "dataset.jsonl"}
	result := &Result{
		Dataset: types.Dataset{
			{Source: "input/a.txt", Format: types.FormatText, Body: types.Pair{Prompt: "p", Response: "r"}},
		},
		Sources: []Source{{Name: "a.txt", Location: "input/a.txt", Format: types.FormatText, Records: 1, Size: 2, Digest: "00"}},
		Skipped: []string{"b.md"},
	}
	path := filepath.Join(t.TempDir(), "manifest.yaml")

	require.NoError(t, WriteManifest(context.Background(), storage.New(), path, NewManifest(cfg, result)))

	m := readManifest(t, path)
	assert.Equal(t, "input", m.Input)
	assert.Equal(t, "dataset.jsonl", m.Output)
	assert.Equal(t, 1, m.Records)
	assert.Equal(t, map[types.Format]int{types.FormatText: 1}, m.ByFormat)
	assert.Equal(t, result.Sources, m.Sources)
	assert.Equal(t, []string{"b.md"}, m.Skipped)
}

func TestNewManifest_EmptyResult(t *testing.T) {
	m := NewManifest(types.BuildConfig{}, &Result{Dataset: types.Dataset{}})
	assert.NotNil(t, m.Sources)
	assert.Zero(t, m.Records)
	assert.Empty(t, m.Skipped)
}
