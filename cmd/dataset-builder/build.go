// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dataset-builder/internal/adapter"
	"github.com/pdiddy/dataset-builder/internal/dataset"
	"github.com/pdiddy/dataset-builder/internal/storage"
	"github.com/pdiddy/dataset-builder/pkg/types"
)

// Config keys shared by flags, environment variables, and the config file.
const (
	keyInputDir     = "input_dir"
	keyOutputFile   = "output_file"
	keyManifestFile = "manifest_file"
	keySQLiteFile   = "sqlite_file"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the JSONL dataset from the input directory",
	Long: `Build lists the top level of the input directory, extracts records from
every .pdf, .txt, .csv, and .jsonl file in name order, and writes them to the
output file as one JSON object per line. The output is replaced on every run.

Any unreadable or malformed input aborts the run and leaves the previous
output in place. Optionally writes a YAML manifest of sources and a SQLite
copy of the dataset.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()

	b := dataset.NewBuilder(storage.New(), adapter.NewRegistry(), cmd.ErrOrStderr())
	if _, err := b.Build(cmd.Context(), cfg); err != nil {
		return fmt.Errorf("building dataset: %w", err)
	}
	return nil
}

// buildConfig resolves the build settings from viper, which merges flags,
// environment, and config file in that order of precedence.
func buildConfig() types.BuildConfig {
	return types.BuildConfig{
		InputDir:     viper.GetString(keyInputDir),
		OutputFile:   viper.GetString(keyOutputFile),
		ManifestFile: viper.GetString(keyManifestFile),
		SQLiteFile:   viper.GetString(keySQLiteFile),
	}.WithDefaults()
}

func init() {
	buildCmd.Flags().String("input-dir", types.DefaultInputDir, "directory of input files (path or file:// / mem:// URL)")
	buildCmd.Flags().String("output", types.DefaultOutputFile, "JSONL dataset to write, replaced on every run")
	buildCmd.Flags().String("manifest", "", "optional YAML manifest of sources and record counts")
	buildCmd.Flags().String("sqlite", "", "optional SQLite database receiving a copy of the dataset")

	bindFlag(keyInputDir, "input-dir")
	bindFlag(keyOutputFile, "output")
	bindFlag(keyManifestFile, "manifest")
	bindFlag(keySQLiteFile, "sqlite")

	rootCmd.AddCommand(buildCmd)
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, buildCmd.Flags().Lookup(flag)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not bind --%s: %v\n", flag, err)
	}
}
