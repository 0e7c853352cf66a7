package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/excelify-go/pkg/excelify"
	"github.com/ukaji3/excelify-go/pkg/excelify/output"
)

type person struct {
	name   string
	age    float64
	active bool
}

var demoPeople = []person{
	{"Alice", 30, true},
	{"Bob", 25, false},
	{"Charlie", 35, true},
}

// buildDemo returns the Name/Age/Active sample workbook.
func buildDemo() (*excelify.Workbook, error) {
	wb := excelify.New()
	sheet := wb.AddSheet("Sheet1")

	for col, header := range []string{"Name", "Age", "Active"} {
		if err := sheet.WriteString(0, uint32(col), header); err != nil {
			return nil, err
		}
	}
	for i, p := range demoPeople {
		row := uint32(i + 1)
		if err := sheet.WriteString(row, 0, p.name); err != nil {
			return nil, err
		}
		if err := sheet.WriteNumber(row, 1, p.age); err != nil {
			return nil, err
		}
		if err := sheet.WriteBoolean(row, 2, p.active); err != nil {
			return nil, err
		}
	}

	return wb, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	wb, err := buildDemo()
	if err != nil {
		return fmt.Errorf("failed to build demo workbook: %w", err)
	}
	if err := wb.SetSaveOptions(excelify.SaveOptions{CompressionLevel: level}); err != nil {
		return err
	}

	sheet, err := wb.Worksheet(0)
	if err != nil {
		return err
	}
	name, err := sheet.Name()
	if err != nil {
		return err
	}

	if err := wb.Save(demoOutput); err != nil {
		return fmt.Errorf("failed to save %s: %w", demoOutput, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created worksheet: %s\n", name)
	fmt.Fprintf(out, "Total worksheets: %d\n", wb.SheetCount())
	fmt.Fprintln(out, output.SuccessStyle.Render("Saved to "+demoOutput))
	return nil
}
