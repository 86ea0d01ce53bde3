// internal/report/chart.go
package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/ai-twinkle/analyzer/internal/util"
)

const (
	minChartWidth   = 40
	maxCategoryName = 32
	barIndent       = "  "
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	sourceStyle   = lipgloss.NewStyle().Faint(true)

	// One stable color per source label, assigned by first appearance.
	barPalette = []lipgloss.Color{"39", "205", "114", "214", "170", "81"}
)

func barStyle(sourceIndex int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(barPalette[sourceIndex%len(barPalette)])
}

// Chart renders a grouped horizontal bar chart for one page of categories.
// Every category shows one bar per source label; bars are scaled against the
// largest value in the whole view so pages stay comparable.
func (v *View) Chart(page Page, width int) string {
	width = util.Max(width, minChartWidth)

	var maxValue float64
	for _, category := range v.Categories {
		for _, source := range v.Sources {
			if value, ok := v.Value(category, source); ok && value > maxValue {
				maxValue = value
			}
		}
	}

	// Room for the indent, the value column, and a space either side.
	barSpace := width - len(barIndent) - 10
	barSpace = util.Max(barSpace, 10)

	var b strings.Builder
	b.WriteString(titleStyle.Render(v.PageTitle(page)))
	b.WriteString("\n")

	for _, category := range page.Categories {
		b.WriteString(categoryStyle.Render(util.TruncateRunes(category, maxCategoryName)))
		b.WriteString("\n")
		for i, source := range v.Sources {
			value, ok := v.Value(category, source)
			if !ok {
				continue
			}
			bar := strings.Repeat("█", barLength(value, maxValue, barSpace))
			b.WriteString(barIndent)
			b.WriteString(barStyle(i).Render(bar))
			b.WriteString(fmt.Sprintf(" %.3f ", value))
			b.WriteString(sourceStyle.Render(source))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func barLength(value, maxValue float64, barSpace int) int {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	length := int(value / maxValue * float64(barSpace))
	return util.Min(length, barSpace)
}

// Table renders the category × source pivot for one page as an aligned
// text table. Cells without a value stay blank.
func (v *View) Table(page Page) string {
	header := append([]string{"category"}, v.Sources...)
	rows := make([][]string, 0, len(page.Categories))
	for _, category := range page.Categories {
		row := []string{category}
		for _, source := range v.Sources {
			if value, ok := v.Value(category, source); ok {
				row = append(row, fmt.Sprintf("%.3f", value))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = utf8.RuneCountInString(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = util.Max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(padRow(header, widths)))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(padRow(row, widths))
		b.WriteString("\n")
	}
	return b.String()
}

func padRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}
