package render

import (
	"fmt"
	"strings"

	"emoji-stash/internal/item"

	"github.com/charmbracelet/lipgloss"
)

var (
	snapshotTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))
	snapshotEmpty = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	snapshotFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// Snapshot renders slots as a framed grid of columns cells per row, followed
// by a legend listing every occupied slot. Colors are dropped when the output
// is not a terminal.
func Snapshot(title string, slots []*item.Item, columns int) string {
	columns = max(columns, 1)
	cell := lipgloss.NewStyle().Width(CellWidth)

	var rows []string
	var legend []string
	occupied := 0
	for start := 0; start < len(slots); start += columns {
		end := min(start+columns, len(slots))
		cells := make([]string, 0, columns)
		for i, it := range slots[start:end] {
			if it == nil {
				cells = append(cells, cell.Inherit(snapshotEmpty).Render(emptyCellGlyph))
				continue
			}
			occupied++
			color := lipgloss.Color(rarityTheme(it.Rarity).Hex)
			label := strings.TrimSpace(it.Glyph + " " + cellLabel(it))
			cells = append(cells, cell.Foreground(color).Render(label))
			legend = append(legend, lipgloss.NewStyle().Foreground(color).
				Render(fmt.Sprintf("%3d  %s %s", start+i, it.Glyph, it)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	header := snapshotTitle.Render(fmt.Sprintf("%s  [%d/%d]", title, occupied, len(slots)))
	grid := snapshotFrame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	parts := []string{header, grid}
	if len(legend) > 0 {
		parts = append(parts, strings.Join(legend, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
