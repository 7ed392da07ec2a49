// SPDX-License-Identifier: MIT

// Command phom computes persistence barcodes from a YAML run config.
//
//	phom compute -c run.yaml
//	phom compute -c run.yaml --output json
//	phom validate -c run.yaml
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phom",
		Short: "Persistent homology barcodes for simplicial complexes",
		Long: `phom builds a simplicial complex, filters it by per-vertex values or
pairwise distances, and prints the resulting persistence barcode.

Results can be archived (memory, badger, sqlite) and plotted as
persistence diagrams or barcodes.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("phom v%s (%s)\n", version, commit)
		},
	})

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the barcode described by a run config",
		RunE:  runCompute,
	}
	computeCmd.Flags().StringP("config", "c", "phom.yaml", "Run config file")
	computeCmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
	rootCmd.AddCommand(computeCmd)

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Build the configured complex and check it is a simplicial complex",
		RunE:  runValidate,
	}
	validateCmd.Flags().StringP("config", "c", "phom.yaml", "Run config file")
	rootCmd.AddCommand(validateCmd)

	return rootCmd
}
