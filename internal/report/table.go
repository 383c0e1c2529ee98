package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/lttr/shell-aliases/internal/usage"
)

const (
	ColorCyan = lipgloss.Color("12")
	ColorGray = lipgloss.Color("8")
)

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true).Padding(0, 1)
	CellStyle   = lipgloss.NewStyle().Padding(0, 1)
	UnusedStyle = lipgloss.NewStyle().Foreground(ColorGray).Padding(0, 1)
	BorderStyle = lipgloss.NewStyle().Foreground(ColorGray)
)

const neverUsed = "never"

func tableRows(usages []usage.AliasUsage, now time.Time) [][]string {
	rows := make([][]string, 0, len(usages))
	for _, u := range usages {
		if !u.LastUsed.Valid {
			rows = append(rows, []string{u.Alias, "", neverUsed})
			continue
		}
		rows = append(rows, []string{
			u.Alias,
			u.LastUsed.Time.UTC().Format(dateLayout),
			humanize.RelTime(u.LastUsed.Time, now, "ago", "from now"),
		})
	}
	return rows
}

func renderTable(w io.Writer, usages []usage.AliasUsage, now time.Time) error {
	rows := tableRows(usages, now)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers("ALIAS", "LAST USED", "WHEN").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case row >= 0 && row < len(rows) && rows[row][2] == neverUsed:
				return UnusedStyle
			default:
				return CellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
