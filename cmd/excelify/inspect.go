package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/excelify-go/pkg/excelify"
	"github.com/ukaji3/excelify-go/pkg/excelify/output"
)

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	includeRows := !skipRows
	opts := excelify.InspectOptions{
		Sheets:      onlySheets,
		IncludeRows: &includeRows,
	}

	wb, err := excelify.Inspect(inputPath, opts)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	switch format {
	case "json":
		jsonData, err := output.ToJSON(wb, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	case "table":
		fmt.Fprint(cmd.OutOrStdout(), output.RenderWorkbook(wb))
	default:
		return fmt.Errorf("invalid format: %s (must be json or table)", format)
	}

	return nil
}
