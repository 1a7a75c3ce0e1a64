// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

const (
	// DefaultInputDir is the directory scanned when no input is configured.
	DefaultInputDir = "input"

	// DefaultOutputFile is the dataset written when no output is configured.
	DefaultOutputFile = "dataset.jsonl"
)

// BuildConfig holds settings for a dataset build. InputDir and OutputFile
// accept OS paths or storage URLs (file://, mem://).
type BuildConfig struct {
	// InputDir is the directory whose top-level files are flattened.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputFile is the JSONL dataset, overwritten on every run.
	OutputFile string `json:"output_file" yaml:"output_file"`

	// ManifestFile, when set, receives a YAML account of sources and counts.
	ManifestFile string `json:"manifest_file,omitempty" yaml:"manifest_file,omitempty"`

	// SQLiteFile, when set, receives a SQLite copy of the dataset.
	SQLiteFile string `json:"sqlite_file,omitempty" yaml:"sqlite_file,omitempty"`
}

// WithDefaults returns a copy of c with empty paths replaced by defaults.
func (c BuildConfig) WithDefaults() BuildConfig {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.OutputFile == "" {
		c.OutputFile = DefaultOutputFile
	}
	return c
}
