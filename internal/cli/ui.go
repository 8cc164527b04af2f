// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorGray  = lipgloss.Color("245")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader  = lipgloss.NewStyle().Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim     = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconInfo    = "›"
)

func printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf(format, args...)))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", styleSuccess.Render(iconSuccess), fmt.Sprintf(format, args...))
}

func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", styleDim.Render(iconInfo), fmt.Sprintf(format, args...))
}

// printTable writes a right-aligned numeric table: one header row, then
// one row per index of the columns (all columns share a length).
func printTable(w io.Writer, headers []string, cols ...[]float64) {
	widths := make([]int, len(headers))
	cells := make([][]string, len(cols))
	for c, col := range cols {
		widths[c] = len(headers[c])
		cells[c] = make([]string, len(col))
		for r, v := range col {
			cells[c][r] = strconv.FormatFloat(v, 'g', 6, 64)
			widths[c] = max(widths[c], len(cells[c][r]))
		}
	}

	row := make([]string, len(headers))
	for c, h := range headers {
		row[c] = fmt.Sprintf("%*s", widths[c], h)
	}
	fmt.Fprintln(w, styleHeader.Render(strings.Join(row, "  ")))
	if len(cols) == 0 {
		return
	}
	for r := range cols[0] {
		for c := range cols {
			row[c] = fmt.Sprintf("%*s", widths[c], cells[c][r])
		}
		fmt.Fprintln(w, strings.Join(row, "  "))
	}
}
