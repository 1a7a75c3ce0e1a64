//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Dataset builds the CLI and flattens ./input into output/dataset.jsonl,
// writing a manifest alongside it.
func Dataset() error {
	mg.Deps(Init, Build)

	bin := filepath.Join(binDir, binName)
	fmt.Println("[dataset] Flattening input/ into output/dataset.jsonl.")
	return sh.RunV(bin, "build",
		"--input-dir", "input",
		"--output", filepath.Join("output", "dataset.jsonl"),
		"--manifest", filepath.Join("output", "manifest.yaml"),
	)
}
