// Package main provides the CLI entry point for excelify-go.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	demoOutput  string
	outputPath  string
	level       int
	sheetNames  []string
	noInfer     bool
	pretty      bool
	format      string
	skipRows    bool
	onlySheets  []string
	verifyAfter bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excelify",
		Short: "Build minimal .xlsx packages",
		Long: `excelify-go writes minimal SpreadsheetML (.xlsx) packages with inline
strings, numbers and booleans, and reads them back for inspection.`,
		SilenceUsage: true,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a small sample workbook",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", "example.xlsx", "Output file path")
	demoCmd.Flags().IntVar(&level, "level", 6, "Deflate compression level (0-9)")

	convertCmd := &cobra.Command{
		Use:   "convert [input.csv...]",
		Short: "Convert CSV files into one workbook, one sheet per file",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: first input with .xlsx extension)")
	convertCmd.Flags().StringSliceVar(&sheetNames, "sheet", nil, "Sheet name per input (default: input file name)")
	convertCmd.Flags().BoolVar(&noInfer, "no-infer", false, "Store every field as a string")
	convertCmd.Flags().IntVar(&level, "level", 6, "Deflate compression level (0-9)")
	convertCmd.Flags().BoolVar(&verifyAfter, "verify", false, "Read the written package back and check its cross references")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print the parts, sheets and cells of a package",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVar(&format, "format", "json", "Output format: json, table")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	inspectCmd.Flags().BoolVar(&skipRows, "no-rows", false, "Only list parts and sheets")
	inspectCmd.Flags().StringSliceVar(&onlySheets, "sheet", nil, "Only include the named sheets")

	rootCmd.AddCommand(demoCmd, convertCmd, inspectCmd)
	return rootCmd
}
