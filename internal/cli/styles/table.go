package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/favicache/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Bold(false)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// CacheTableColumns returns columns for the cache entry table.
func CacheTableColumns() []table.Column {
	return []table.Column{
		{Title: "Key", Width: 64},
		{Title: "Size", Width: 10},
	}
}

// CacheEntryRow converts a cache entry to a table row.
func CacheEntryRow(e entity.CacheEntry) table.Row {
	return table.Row{string(e.Key), FormatBytes(e.Size)}
}

// CacheTable renders a static table of cache entries.
func CacheTable(theme *Theme, entries []entity.CacheEntry) string {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = CacheEntryRow(e)
	}

	const (
		keyCol  = 64
		sizeCol = 10
		padding = 4
		// header line plus its bottom border
		headerHeight = 2
	)
	return NewStyledTable(theme, CacheTableColumns(), rows, keyCol+sizeCol+padding, len(rows)+headerHeight).View()
}
