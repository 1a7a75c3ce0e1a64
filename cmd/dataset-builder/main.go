// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dataset-builder CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the dataset-builder CLI.
var rootCmd = &cobra.Command{
	Use:   "dataset-builder",
	Short: "Flatten a directory of PDF, text, CSV, and JSONL files into one JSONL dataset",
	Long: `dataset-builder walks an input directory and turns every PDF, plain text,
CSV, and JSONL file it finds into records of a single newline-delimited JSON
dataset. Files with other extensions are ignored.

Paths default to ./input and ./dataset.jsonl and can be set through flags,
DATASET_BUILDER_* environment variables, or a dataset-builder.yaml config file.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dataset-builder.yaml or ~/.config/dataset-builder/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dataset-builder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dataset-builder"))
		}
	}

	viper.SetEnvPrefix("DATASET_BUILDER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
