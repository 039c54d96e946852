package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#FFD700") // gold, current period
	colorHeader = lipgloss.Color("#00BFFF")
	colorMuted  = lipgloss.Color("#8C8C8C")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorHeader).PaddingRight(2)
	styleCell    = lipgloss.NewStyle().PaddingRight(2)
	styleCurrent = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).PaddingRight(2)
	styleLabel   = lipgloss.NewStyle().Foreground(colorMuted)
)

// table renders left-aligned columns. Rows whose index is in highlight
// use the current-period style.
type table struct {
	headers   []string
	rows      [][]string
	highlight map[int]bool
}

func newTable(headers ...string) *table {
	return &table{headers: headers, highlight: map[int]bool{}}
}

func (t *table) add(cells ...string) int {
	t.rows = append(t.rows, cells)
	return len(t.rows) - 1
}

func (t *table) String() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range t.rows {
		for i, c := range r {
			if w := lipgloss.Width(c); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = style.Width(widths[i] + 2).Render(c)
		}
		return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, parts...), " ")
	}

	var sb strings.Builder
	sb.WriteString(line(t.headers, styleHeader))
	sb.WriteByte('\n')
	for i, r := range t.rows {
		style := styleCell
		if t.highlight[i] {
			style = styleCurrent
		}
		sb.WriteString(line(r, style))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// field renders "label: value".
func field(label, value string) string {
	return styleLabel.Render(label+":") + " " + value
}
