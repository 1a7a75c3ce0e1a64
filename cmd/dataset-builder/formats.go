// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dataset-builder/internal/adapter"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the file extensions build recognizes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r := adapter.NewRegistry()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-8s  %s\n", "Ext", "Format")
		for _, ext := range r.Extensions() {
			a, _ := r.Lookup(ext)
			fmt.Fprintf(w, "%-8s  %s\n", ext, a.Format())
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
