// SPDX-License-Identifier: MIT

// Package ui renders lvpca terminal output with lipgloss.
package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

const envNoColor = "NO_COLOR"

var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	yellow = lipgloss.Color("214")
	dim    = lipgloss.Color("243")
	faint  = lipgloss.Color("238")
)

var (
	AccentStyle  = lipgloss.NewStyle().Foreground(purple)
	SuccessStyle = lipgloss.NewStyle().Foreground(green)
	WarnStyle    = lipgloss.NewStyle().Foreground(yellow)
	LabelStyle   = lipgloss.NewStyle().Foreground(dim)
)

// ConfigureColor selects the lipgloss colour profile. noColor or a non-empty
// NO_COLOR environment variable force plain ASCII output.
func ConfigureColor(noColor bool) {
	if noColor || os.Getenv(envNoColor) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

func SuccessMsg(format string, a ...any) string {
	return SuccessStyle.Render("✓") + " " + fmt.Sprintf(format, a...)
}

func WarnMsg(format string, a ...any) string {
	return WarnStyle.Render("!") + " " + fmt.Sprintf(format, a...)
}

// Pair holds a key-value pair for KeyValues output.
type Pair struct {
	key   string
	value string
}

// KV creates a key-value pair.
func KV(key, value string) Pair {
	return Pair{key: key, value: value}
}

// KeyValues renders aligned "key:  value" lines with a trailing newline.
func KeyValues(indent string, pairs ...Pair) string {
	maxLen := 0
	for _, p := range pairs {
		if len(p.key) > maxLen {
			maxLen = len(p.key)
		}
	}

	var sb strings.Builder
	for _, p := range pairs {
		label := fmt.Sprintf("%-*s", maxLen+1, p.key+":")
		sb.WriteString(indent + LabelStyle.Render(label) + " " + p.value + "\n")
	}
	return sb.String()
}

// Table renders a styled table with rounded borders.
func Table(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(purple).
		Bold(true).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	oddStyle := cellStyle.Foreground(dim)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return cellStyle
			default:
				return oddStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}

// VarianceHeaders are the columns of VarianceRows.
var VarianceHeaders = []string{"component", "variance", "ratio", "cumulative"}

// VarianceRows formats explained variance, its ratio to total and the running
// cumulative ratio, one row per component.
func VarianceRows(variance []float64, total float64) [][]string {
	rows := make([][]string, len(variance))
	cum := 0.0
	for i, v := range variance {
		ratio := 0.0
		if total > 0 {
			ratio = v / total
		}
		cum += ratio
		rows[i] = []string{
			"PC" + strconv.Itoa(i+1),
			strconv.FormatFloat(v, 'g', 6, 64),
			strconv.FormatFloat(100*ratio, 'f', 2, 64) + "%",
			strconv.FormatFloat(100*cum, 'f', 2, 64) + "%",
		}
	}
	return rows
}
