package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/excelify-go/pkg/excelify/models"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF8C42"))

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB84D")).
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB84D")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)
)

// RenderWorkbook renders every sheet of wb as a titled grid.
func RenderWorkbook(wb *models.WorkbookData) string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render(wb.BookName))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d parts, %d sheets", len(wb.Parts), len(wb.Sheets))))
	s.WriteString("\n")

	for i := range wb.Sheets {
		s.WriteString("\n")
		s.WriteString(RenderSheet(&wb.Sheets[i]))
		s.WriteString("\n")
	}

	return s.String()
}

// RenderSheet renders one sheet as a grid headed by column letters, with
// the row number in the first column.
func RenderSheet(sheet *models.SheetData) string {
	var s strings.Builder

	title := fmt.Sprintf("%s (sheetId %d, %s, %s)", sheet.Name, sheet.SheetID, sheet.RelID, sheet.Part)
	s.WriteString(TitleStyle.Render(title))
	s.WriteString("\n")

	if len(sheet.Rows) == 0 {
		s.WriteString(SubtitleStyle.Render("no cells"))
		return s.String()
	}

	columns := columnLetters(sheet.Rows)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C42"))).
		Headers(append([]string{""}, columns...)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return HeaderStyle
			}
			return CellStyle
		})

	for _, row := range sheet.Rows {
		line := []string{strconv.Itoa(row.R)}
		for _, letter := range columns {
			line = append(line, FormatValue(row.C[letter]))
		}
		t.Row(line...)
	}

	s.WriteString(t.Render())
	return s.String()
}

// FormatValue renders a read-back cell value for display.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strings.ToUpper(strconv.FormatBool(x))
	default:
		return fmt.Sprint(x)
	}
}

// columnLetters returns the distinct column letters used in rows, in column
// order (shorter names first, then alphabetical).
func columnLetters(rows []models.CellRow) []string {
	seen := make(map[string]bool)
	var letters []string
	for _, row := range rows {
		for letter := range row.C {
			if !seen[letter] {
				seen[letter] = true
				letters = append(letters, letter)
			}
		}
	}
	sort.Slice(letters, func(i, j int) bool {
		if len(letters[i]) != len(letters[j]) {
			return len(letters[i]) < len(letters[j])
		}
		return letters[i] < letters[j]
	})
	return letters
}
